// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

import (
	"log/slog"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/region"
)

// MeshGroup is the subset of the elements of one mesh in a [FieldGroup].
// It is a field that is true on its elements, and can be used wherever
// a mesh is expected. It is named "<group>.<mesh>", e.g. "bob.mesh3d",
// when its field group is named.
type MeshGroup struct {
	region.FieldBase

	// link is the link to the owning field group.
	link ownerLink

	mesh     *region.Mesh
	elements map[*region.Element]struct{}
}

func newMeshGroup(m *region.Mesh) *MeshGroup {
	mg := &MeshGroup{mesh: m, elements: map[*region.Element]struct{}{}}
	region.InitField(mg, m.Fieldmodule())
	mg.SetObserver(func(old, count int) { mg.link.sync(count) })
	m.OnDestroyElement(mg, mg.elementDestroyed)
	return mg
}

// Release releases an access to the group. It is safe to call on nil.
func (mg *MeshGroup) Release() {
	if mg != nil {
		mg.FieldBase.Release()
	}
}

// unlink drops the table access and the link to the owner.
func (mg *MeshGroup) unlink() {
	mg.link.clear()
	mg.FieldBase.Release()
}

func (mg *MeshGroup) FieldDestroyed() {
	mg.mesh.OffDestroyElement(mg)
	if owner := mg.link.owner; owner != nil {
		if d := mg.mesh.Dimension() - 1; owner.meshGroups[d] == mg {
			owner.meshGroups[d] = nil
		}
		mg.link.clear()
	}
}

func (mg *MeshGroup) domainName() string {
	return mg.mesh.Name()
}

// FieldGroup returns the owning field group, accessed, or nil if the
// mesh group is no longer part of a field group.
func (mg *MeshGroup) FieldGroup() *FieldGroup {
	owner := mg.link.owner
	if owner == nil || !owner.Access() {
		return nil
	}
	return owner
}

// Master returns the mesh the group is a subset of.
func (mg *MeshGroup) Master() *region.Mesh {
	return mg.mesh
}

// Dimension returns the dimension of the mesh.
func (mg *MeshGroup) Dimension() int {
	return mg.mesh.Dimension()
}

// Size returns the number of elements in the group.
func (mg *MeshGroup) Size() int {
	return len(mg.elements)
}

// ContainsElement returns whether the element is in the group.
func (mg *MeshGroup) ContainsElement(e *region.Element) bool {
	_, has := mg.elements[e]
	return has
}

// Elements returns the elements in ascending identifier order.
func (mg *MeshGroup) Elements() []*region.Element {
	elems := make([]*region.Element, 0, len(mg.elements))
	for e := range mg.elements {
		elems = append(elems, e)
	}
	region.SortElements(elems)
	return elems
}

// CreateElementiterator returns an iterator over the elements of the
// group in ascending identifier order. It is invalidated by any change
// to the structure of the mesh or the removal of elements from the group.
func (mg *MeshGroup) CreateElementiterator() *region.Elementiterator {
	return region.NewElementiterator(mg.mesh, mg.Elements())
}

func (mg *MeshGroup) NumComponents() int { return 1 }

// Evaluate returns 1 at locations in elements of the group, otherwise 0.
func (mg *MeshGroup) Evaluate(loc region.Location) ([]float64, error) {
	if loc.Element == nil {
		return nil, errors.Argument("mesh group needs an element location")
	}
	if mg.ContainsElement(loc.Element) {
		return []float64{1}, nil
	}
	return []float64{0}, nil
}

// check returns an error if the group can not be changed.
func (mg *MeshGroup) check() error {
	if !mg.IsValid() || !mg.mesh.IsValid() {
		return errors.Argument("mesh group is not valid")
	}
	return nil
}

// begin opens a change scope on the field module and keeps the owner
// alive until the returned function is called.
func (mg *MeshGroup) begin() func() {
	fm := mg.Fieldmodule()
	owner := mg.link.owner
	if owner != nil {
		owner.Access()
	}
	mg.Access()
	fm.BeginChange()
	return func() {
		fm.EndChange()
		mg.Release()
		owner.Release()
	}
}

// raise records changes on the owner.
func (mg *MeshGroup) raise(change Change) {
	if owner := mg.link.owner; owner != nil {
		owner.raise(change, 0)
	}
}

// mode returns the subelement handling mode of the owner.
func (mg *MeshGroup) mode() SubelementHandlingMode {
	if owner := mg.link.owner; owner != nil {
		return owner.mode
	}
	return SubelementHandlingModeNone
}

// AddElement adds the element to the group. It returns
// [errors.ErrArgument] if the element is not from the mesh of the
// group or is already in the group.
func (mg *MeshGroup) AddElement(e *region.Element) error {
	if err := mg.check(); err != nil {
		return err
	}
	if !mg.mesh.ContainsElement(e) {
		return errors.Argument("element is not from %s", mg.mesh.Name())
	}
	if mg.ContainsElement(e) {
		return errors.Argument("%v is already in the group", e)
	}
	end := mg.begin()
	defer end()
	mg.addElements([]*region.Element{e})
	return nil
}

// addElements adds the elements that are not yet in the group, with
// their subelements in full subelement handling mode, and returns
// how many were added.
func (mg *MeshGroup) addElements(elems []*region.Element) int {
	var added []*region.Element
	for _, e := range elems {
		if !mg.ContainsElement(e) {
			mg.elements[e] = struct{}{}
			added = append(added, e)
		}
	}
	if len(added) == 0 {
		return 0
	}
	if mg.mode() == SubelementHandlingModeFull {
		owner := mg.link.owner
		for _, e := range added {
			owner.addSubelements(e)
		}
	}
	mg.raise(ChangeAdd)
	return len(added)
}

// RemoveElement removes the element from the group. It returns
// [errors.ErrArgument] if the element is not in the group.
func (mg *MeshGroup) RemoveElement(e *region.Element) error {
	if err := mg.check(); err != nil {
		return err
	}
	if !mg.ContainsElement(e) {
		return errors.Argument("element is not in the group")
	}
	end := mg.begin()
	defer end()
	mg.removeElements([]*region.Element{e})
	return nil
}

// removeElements removes the elements that are in the group, with
// their unused subelements in full subelement handling mode, and
// returns how many were removed.
func (mg *MeshGroup) removeElements(elems []*region.Element) int {
	var removed []*region.Element
	for _, e := range elems {
		if mg.ContainsElement(e) {
			delete(mg.elements, e)
			removed = append(removed, e)
		}
	}
	if len(removed) == 0 {
		return 0
	}
	mg.mesh.NextGeneration()
	if mg.mode() == SubelementHandlingModeFull {
		mg.link.owner.removeSubelements(mg, removed)
	}
	mg.raise(ChangeRemove)
	return len(removed)
}

// RemoveAllElements removes all elements from the group.
// It succeeds on an empty group.
func (mg *MeshGroup) RemoveAllElements() error {
	if err := mg.check(); err != nil {
		return err
	}
	if mg.Size() == 0 {
		return nil
	}
	end := mg.begin()
	defer end()
	mg.removeElements(mg.Elements())
	return nil
}

// clear removes all elements without notifying, and returns whether
// there were any.
func (mg *MeshGroup) clear() bool {
	if len(mg.elements) == 0 {
		return false
	}
	mg.elements = map[*region.Element]struct{}{}
	mg.mesh.NextGeneration()
	return true
}

// CreateElement creates an element in the mesh with the given
// identifier, or the next unused identifier if id is -1, and adds it
// to the group. In full subelement handling mode the faces of the new
// element are defined first, so they are added with it.
func (mg *MeshGroup) CreateElement(id int, shape region.Shape, nodes []*region.Node) (*region.Element, error) {
	if err := mg.check(); err != nil {
		return nil, err
	}
	end := mg.begin()
	defer end()
	e, err := mg.mesh.CreateElement(id, shape, nodes)
	if err != nil {
		return nil, err
	}
	if mg.mode() == SubelementHandlingModeFull {
		for m := mg.mesh; m.FaceMesh() != nil; m = m.FaceMesh() {
			if err := m.DefineFaces(); err != nil {
				return nil, err
			}
		}
	}
	mg.addElements([]*region.Element{e})
	return e, nil
}

func (mg *MeshGroup) elementDestroyed(e *region.Element) {
	if !mg.ContainsElement(e) {
		return
	}
	delete(mg.elements, e)
	mg.raise(ChangeRemove)
}

// conditionGroup returns the mesh group to use as the condition for the
// mesh of this group when the condition is a mesh group or a field
// group, with ok true. The returned group may be nil when the field
// group has no mesh group for the mesh.
func (mg *MeshGroup) conditionGroup(cond region.Field) (src *MeshGroup, ok bool) {
	switch c := cond.(type) {
	case *MeshGroup:
		if c.mesh == mg.mesh {
			return c, true
		}
	case *FieldGroup:
		if !c.localRegion {
			return c.meshGroups[mg.mesh.Dimension()-1], true
		}
	}
	return nil, false
}

// checkCondition returns an error if the condition field is invalid or
// from another region.
func checkCondition(cond region.Field, fm *region.Fieldmodule) error {
	if cond == nil || !cond.AsFieldBase().IsValid() {
		return errors.Argument("invalid condition field")
	}
	if cond.AsFieldBase().Fieldmodule() != fm {
		return errors.Argument("condition field is from another region")
	}
	return nil
}

// selectElements returns the elements of the mesh for which the
// condition is true. Elements where it can not be evaluated are
// not selected.
func selectElements(elems []*region.Element, cond region.Field) []*region.Element {
	var sel []*region.Element
	for _, e := range elems {
		v, err := cond.Evaluate(region.ElementCentre(e))
		if err != nil {
			slog.Debug("condition not evaluated", "element", e.Identifier(), "err", err)
			continue
		}
		if region.IsTrue(v) {
			sel = append(sel, e)
		}
	}
	return sel
}

// AddElementsConditional adds the elements of the mesh for which the
// condition field is true at the element centre. A mesh group or field
// group condition adds its elements directly.
func (mg *MeshGroup) AddElementsConditional(cond region.Field) error {
	if err := mg.check(); err != nil {
		return err
	}
	if err := checkCondition(cond, mg.Fieldmodule()); err != nil {
		return err
	}
	end := mg.begin()
	defer end()
	if src, ok := mg.conditionGroup(cond); ok {
		if src == nil || src == mg || src.Size() == 0 {
			return nil
		}
		mg.addElements(src.Elements())
		return nil
	}
	mg.addElements(selectElements(mg.mesh.Elements(), cond))
	return nil
}

// RemoveElementsConditional removes the elements of the group for
// which the condition field is true at the element centre. Every
// element of the group is tested.
func (mg *MeshGroup) RemoveElementsConditional(cond region.Field) error {
	if err := mg.check(); err != nil {
		return err
	}
	if err := checkCondition(cond, mg.Fieldmodule()); err != nil {
		return err
	}
	if mg.Size() == 0 {
		return nil
	}
	end := mg.begin()
	defer end()
	if src, ok := mg.conditionGroup(cond); ok {
		switch {
		case src == nil || src.Size() == 0:
		case src == mg:
			mg.removeElements(mg.Elements())
		case src.Size() < mg.Size():
			mg.removeElements(src.Elements())
		default:
			var sel []*region.Element
			for _, e := range mg.Elements() {
				if src.ContainsElement(e) {
					sel = append(sel, e)
				}
			}
			mg.removeElements(sel)
		}
		return nil
	}
	mg.removeElements(selectElements(mg.Elements(), cond))
	return nil
}
