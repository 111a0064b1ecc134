// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package group provides field groups: hierarchical selections of
// whole regions and of the elements and nodes in them, kept as mesh
// and nodeset groups per region, with optional handling of the faces,
// lines and nodes of added and removed elements.
//
// Every function returning a group handle returns it accessed: the
// caller owns one access and must call Release when done with it.
package group

import (
	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/base/keylist"
	"cogentcore.org/zinc/region"
)

// FieldGroup is a field that is true on the objects it contains.
// It holds the local region flag and mesh and nodeset groups for its
// own region, and a subregion field group per child region, which
// shares its name. Changes in subregion groups are reported as
// non-local changes of their parent group.
type FieldGroup struct {
	region.FieldBase

	// link is the link to the parent group, for subregion groups.
	link ownerLink

	// localRegion is whether the whole of the own region is in the group.
	localRegion bool

	mode SubelementHandlingMode

	// meshGroups are indexed by mesh dimension - 1.
	meshGroups [3]*MeshGroup

	// nodesetGroups are for the nodes and datapoints.
	nodesetGroups [2]*NodesetGroup

	// subregions are the subregion groups by child region,
	// in creation order.
	subregions keylist.List[*region.Region, *FieldGroup]

	// pending accumulates changes until the next notification.
	pending ChangeDetail

	// extracted is the change detail of the current notification.
	extracted ChangeDetail
}

// propagateKey is the change listener key for passing subregion group
// changes up to parent groups.
type propagateKey struct{}

// New returns a new empty, unnamed field group in the given field module.
func New(fm *region.Fieldmodule) (*FieldGroup, error) {
	if !fm.IsValid() {
		return nil, errors.Argument("invalid field module")
	}
	g := &FieldGroup{mode: SubelementHandlingModeNone}
	region.InitField(g, fm)
	g.SetObserver(func(old, count int) { g.link.sync(count) })
	fm.OnChange(propagateKey{}, propagateChanges)
	fm.Region().OnDestroy(g, func(r *region.Region) { g.teardown() })
	return g, nil
}

// AsFieldGroup returns the field as a field group, or nil if it is not one.
func AsFieldGroup(f region.Field) *FieldGroup {
	g, _ := f.(*FieldGroup)
	return g
}

// FindByName returns the field group with the given name in the field
// module, accessed, or nil if there is no such field or it is not a group.
func FindByName(fm *region.Fieldmodule, name string) *FieldGroup {
	g := AsFieldGroup(fm.FindFieldByName(name))
	if g == nil || !g.Access() {
		return nil
	}
	return g
}

// propagateChanges passes the change summaries of subregion groups
// in a notification on to their parent groups as non-local changes.
func propagateChanges(changed []region.Field) {
	for _, f := range changed {
		g, ok := f.(*FieldGroup)
		if !ok || g.link.owner == nil {
			continue
		}
		if s := g.extracted.Summary(); s != 0 {
			g.link.owner.raise(0, s)
		}
	}
}

// Release releases an access to the group. It is safe to call on nil.
func (g *FieldGroup) Release() {
	if g != nil {
		g.FieldBase.Release()
	}
}

// SetName sets the name of the group, also renaming its subobject
// groups, which are named "<name>.<domain>".
func (g *FieldGroup) SetName(name string) error {
	fm := g.Fieldmodule()
	for _, sub := range g.subobjectGroups() {
		sname := name + "." + sub.domainName()
		if f := fm.FindFieldByName(sname); f != nil && f.AsFieldBase() != sub.AsFieldBase() {
			return errors.Argument("field name %q is in use", sname)
		}
	}
	if err := g.FieldBase.SetName(name); err != nil {
		return err
	}
	for _, sub := range g.subobjectGroups() {
		errors.Log(sub.AsFieldBase().SetName(name + "." + sub.domainName()))
	}
	return nil
}

func (g *FieldGroup) NumComponents() int { return 1 }

// Evaluate returns 1 at locations in the group, otherwise 0.
func (g *FieldGroup) Evaluate(loc region.Location) ([]float64, error) {
	in := g.localRegion
	switch {
	case in:
	case loc.Element != nil:
		m := loc.Element.Mesh()
		if m == nil {
			return nil, errors.Argument("element is destroyed")
		}
		if mg := g.meshGroups[m.Dimension()-1]; mg != nil {
			in = mg.ContainsElement(loc.Element)
		}
	case loc.Node != nil:
		ns := loc.Node.Nodeset()
		if ns == nil {
			return nil, errors.Argument("node is destroyed")
		}
		if ng := g.nodesetGroups[nodesetIndex(ns)]; ng != nil {
			in = ng.ContainsNode(loc.Node)
		}
	}
	if in {
		return []float64{1}, nil
	}
	return []float64{0}, nil
}

// ExtractChangeDetail moves the pending changes to the change detail
// of the current notification.
func (g *FieldGroup) ExtractChangeDetail() {
	g.extracted = g.pending
	g.pending = ChangeDetail{}
}

// ChangeDetail returns the changes of the current change notification.
func (g *FieldGroup) ChangeDetail() ChangeDetail {
	return g.extracted
}

// raise records the given changes and notifies the field module.
func (g *FieldGroup) raise(local, nonLocal Change) {
	if local|nonLocal == 0 {
		return
	}
	g.pending.Local |= local
	g.pending.NonLocal |= nonLocal
	g.Changed()
}

func (g *FieldGroup) FieldDestroyed() {
	g.teardown()
}

// teardown unlinks all table entries and the parent link, when the
// group or its region is destroyed.
func (g *FieldGroup) teardown() {
	removed := !g.IsEmpty()
	for i, mg := range g.meshGroups {
		if mg != nil {
			g.meshGroups[i] = nil
			mg.unlink()
		}
	}
	for i, ng := range g.nodesetGroups {
		if ng != nil {
			g.nodesetGroups[i] = nil
			ng.unlink()
		}
	}
	for _, r := range append([]*region.Region(nil), g.subregions.Keys...) {
		g.unlinkSubregion(r)
	}
	if fm := g.Fieldmodule(); fm != nil {
		fm.Region().OffDestroy(g)
	}
	if p := g.link.owner; p != nil {
		p.subregionDestroyed(g.Fieldmodule().Region(), removed)
	}
}

// check returns an error if the group or its region is destroyed.
func (g *FieldGroup) check() error {
	if !g.IsValid() || !g.Fieldmodule().IsValid() {
		return errors.Argument("field group is not valid")
	}
	return nil
}

// SubelementHandlingMode returns the subelement handling mode.
func (g *FieldGroup) SubelementHandlingMode() SubelementHandlingMode {
	return g.mode
}

// SetSubelementHandlingMode sets the subelement handling mode used by
// later adds and removes, and inherited by subregion groups created
// later. Existing contents and subregion groups are unchanged.
func (g *FieldGroup) SetSubelementHandlingMode(mode SubelementHandlingMode) error {
	if mode == SubelementHandlingModeInvalid || !mode.IsValid() {
		return errors.Argument("invalid subelement handling mode %v", mode)
	}
	g.mode = mode
	return nil
}

// IsEmptyLocal returns whether the group has nothing in its own region.
func (g *FieldGroup) IsEmptyLocal() bool {
	if g.localRegion {
		return false
	}
	for _, sub := range g.subobjectGroups() {
		if sub.Size() > 0 {
			return false
		}
	}
	return true
}

// IsEmpty returns whether the group has nothing in its own region or
// any subregion.
func (g *FieldGroup) IsEmpty() bool {
	if !g.IsEmptyLocal() {
		return false
	}
	for _, sg := range g.subregions.Values {
		if !sg.IsEmpty() {
			return false
		}
	}
	return true
}

// ContainsLocalRegion returns whether the whole of the own region
// is in the group.
func (g *FieldGroup) ContainsLocalRegion() bool {
	return g.localRegion
}

// AddLocalRegion adds the whole of the own region to the group.
func (g *FieldGroup) AddLocalRegion() error {
	if err := g.check(); err != nil {
		return err
	}
	if !g.localRegion {
		g.localRegion = true
		g.raise(ChangeAdd, 0)
	}
	return nil
}

// RemoveLocalRegion removes the whole of the own region from the group,
// leaving individual objects in it.
func (g *FieldGroup) RemoveLocalRegion() error {
	if err := g.check(); err != nil {
		return err
	}
	if g.localRegion {
		g.localRegion = false
		g.raise(ChangeRemove, 0)
	}
	return nil
}

// Clear removes everything in the own region from the group: the local
// region flag and the contents of all subobject groups. Subregion groups
// are unchanged. It is the same as [FieldGroup.ClearLocal].
func (g *FieldGroup) Clear() error {
	return g.ClearLocal()
}

// ClearLocal removes the local region flag and the contents of all
// subobject groups, then drops the subobject groups that are unused.
// Subregion groups are unchanged.
func (g *FieldGroup) ClearLocal() error {
	if err := g.check(); err != nil {
		return err
	}
	fm := g.Fieldmodule()
	fm.BeginChange()
	defer fm.EndChange()
	removed := g.localRegion
	g.localRegion = false
	mode := g.mode
	g.mode = SubelementHandlingModeNone
	for d := 2; d >= 0; d-- {
		if mg := g.meshGroups[d]; mg != nil && mg.clear() {
			removed = true
		}
	}
	for _, ng := range g.nodesetGroups {
		if ng != nil && ng.clear() {
			removed = true
		}
	}
	g.mode = mode
	if removed {
		g.raise(ChangeRemove, 0)
	}
	return g.RemoveEmptySubobjectGroups()
}

// clearDeep clears the group and all its subregion groups.
func (g *FieldGroup) clearDeep() error {
	fm := g.Fieldmodule()
	fm.BeginChange()
	defer fm.EndChange()
	var errs []error
	for _, sg := range append([]*FieldGroup(nil), g.subregions.Values...) {
		errs = append(errs, sg.clearDeep())
	}
	errs = append(errs, g.ClearLocal())
	return errors.Join(errs...)
}

// RemoveEmptySubobjectGroups drops the subobject groups that are empty
// and not held outside the group.
func (g *FieldGroup) RemoveEmptySubobjectGroups() error {
	if err := g.check(); err != nil {
		return err
	}
	for i, mg := range g.meshGroups {
		if mg != nil && mg.Size() == 0 && mg.AccessCount() == 1 {
			g.meshGroups[i] = nil
			mg.unlink()
		}
	}
	for i, ng := range g.nodesetGroups {
		if ng != nil && ng.Size() == 0 && ng.AccessCount() == 1 {
			g.nodesetGroups[i] = nil
			ng.unlink()
		}
	}
	return nil
}

// RemoveEmptySubgroups drops the subregion groups, recursively, and the
// subobject groups that are empty and not held outside the group.
// Changes pending in a dropped subregion group are passed to this group.
func (g *FieldGroup) RemoveEmptySubgroups() error {
	if err := g.check(); err != nil {
		return err
	}
	g.Access()
	defer g.Release()
	var errs []error
	for _, r := range append([]*region.Region(nil), g.subregions.Keys...) {
		sg := g.subregions.At(r)
		if sg == nil {
			continue
		}
		if sg.check() == nil {
			errs = append(errs, sg.RemoveEmptySubgroups())
		}
		if sg.IsEmpty() && sg.AccessCount() == 1 {
			g.raise(0, sg.pending.Summary())
			g.unlinkSubregion(r)
		}
	}
	errs = append(errs, g.RemoveEmptySubobjectGroups())
	return errors.Join(errs...)
}

// subobjectGroups returns the mesh and nodeset groups in the table.
func (g *FieldGroup) subobjectGroups() []subobjectGroup {
	var subs []subobjectGroup
	for _, mg := range g.meshGroups {
		if mg != nil {
			subs = append(subs, mg)
		}
	}
	for _, ng := range g.nodesetGroups {
		if ng != nil {
			subs = append(subs, ng)
		}
	}
	return subs
}

// subobjectGroup is a [MeshGroup] or [NodesetGroup].
type subobjectGroup interface {
	region.Field
	Size() int
	domainName() string
}

// subobjectName returns the name for the subobject group of the
// given domain, or "" if the group is unnamed.
func (g *FieldGroup) subobjectName(domain string) string {
	if g.Name() == "" {
		return ""
	}
	return g.Name() + "." + domain
}

// checkMesh returns an error if the mesh is not a mesh of the own region.
func (g *FieldGroup) checkMesh(mesh region.MeshLike) (*region.Mesh, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	if mesh == nil {
		return nil, errors.Argument("nil mesh")
	}
	m := mesh.Master()
	if !m.IsValid() || m.Fieldmodule() != g.Fieldmodule() {
		return nil, errors.Argument("mesh is not from the region of the group")
	}
	return m, nil
}

// MeshGroup returns the mesh group for the given mesh, accessed,
// or nil if there is none.
func (g *FieldGroup) MeshGroup(mesh region.MeshLike) *MeshGroup {
	m, err := g.checkMesh(mesh)
	if err != nil {
		return nil
	}
	mg := g.meshGroupEntry(m)
	if mg == nil {
		return nil
	}
	mg.Access()
	return mg
}

// meshGroupEntry returns the table entry for the mesh, relinking
// a managed mesh group of the expected name if there is no entry.
func (g *FieldGroup) meshGroupEntry(m *region.Mesh) *MeshGroup {
	d := m.Dimension() - 1
	if mg := g.meshGroups[d]; mg != nil {
		return mg
	}
	name := g.subobjectName(m.Name())
	if name == "" {
		return nil
	}
	mg, ok := g.Fieldmodule().FindFieldByName(name).(*MeshGroup)
	if !ok || mg.link.owner != nil || mg.mesh != m || !mg.IsValid() {
		return nil
	}
	g.linkMeshGroup(mg)
	return mg
}

// CreateMeshGroup creates the mesh group for the given mesh. It returns
// [errors.ErrArgument] if the mesh is not from the own region or the
// group already has a mesh group for it.
func (g *FieldGroup) CreateMeshGroup(mesh region.MeshLike) (*MeshGroup, error) {
	m, err := g.checkMesh(mesh)
	if err != nil {
		return nil, err
	}
	if g.meshGroupEntry(m) != nil {
		return nil, errors.Argument("group already has a mesh group for %s", m.Name())
	}
	name := g.subobjectName(m.Name())
	if name != "" && g.Fieldmodule().FindFieldByName(name) != nil {
		return nil, errors.Argument("field name %q is in use", name)
	}
	mg := newMeshGroup(m)
	if name != "" {
		if err := mg.FieldBase.SetName(name); err != nil {
			mg.Release()
			return nil, err
		}
	}
	g.linkMeshGroup(mg)
	return mg, nil
}

// GetOrCreateMeshGroup returns the mesh group for the given mesh,
// creating it if needed.
func (g *FieldGroup) GetOrCreateMeshGroup(mesh region.MeshLike) (*MeshGroup, error) {
	if mg := g.MeshGroup(mesh); mg != nil {
		return mg, nil
	}
	return g.CreateMeshGroup(mesh)
}

// meshGroupForUpdate returns the table entry for the mesh, creating
// it if needed, without an access for the caller.
func (g *FieldGroup) meshGroupForUpdate(m *region.Mesh) *MeshGroup {
	if mg := g.meshGroupEntry(m); mg != nil {
		return mg
	}
	mg, err := g.CreateMeshGroup(m)
	if err != nil {
		return nil
	}
	mg.Release()
	return mg
}

func (g *FieldGroup) linkMeshGroup(mg *MeshGroup) {
	mg.link.owner = g
	mg.Access()
	g.meshGroups[mg.mesh.Dimension()-1] = mg
}

// checkNodeset returns an error if the nodeset is not a nodeset of the
// own region.
func (g *FieldGroup) checkNodeset(nodeset region.NodesetLike) (*region.Nodeset, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	if nodeset == nil {
		return nil, errors.Argument("nil nodeset")
	}
	ns := nodeset.Master()
	if !ns.IsValid() || ns.Fieldmodule() != g.Fieldmodule() {
		return nil, errors.Argument("nodeset is not from the region of the group")
	}
	return ns, nil
}

func nodesetIndex(ns *region.Nodeset) int {
	if ns.DomainType() == region.DomainTypeDatapoints {
		return 1
	}
	return 0
}

// NodesetGroup returns the nodeset group for the given nodeset,
// accessed, or nil if there is none.
func (g *FieldGroup) NodesetGroup(nodeset region.NodesetLike) *NodesetGroup {
	ns, err := g.checkNodeset(nodeset)
	if err != nil {
		return nil
	}
	ng := g.nodesetGroupEntry(ns)
	if ng == nil {
		return nil
	}
	ng.Access()
	return ng
}

func (g *FieldGroup) nodesetGroupEntry(ns *region.Nodeset) *NodesetGroup {
	if ng := g.nodesetGroups[nodesetIndex(ns)]; ng != nil {
		return ng
	}
	name := g.subobjectName(ns.Name())
	if name == "" {
		return nil
	}
	ng, ok := g.Fieldmodule().FindFieldByName(name).(*NodesetGroup)
	if !ok || ng.link.owner != nil || ng.nodeset != ns || !ng.IsValid() {
		return nil
	}
	g.linkNodesetGroup(ng)
	return ng
}

// CreateNodesetGroup creates the nodeset group for the given nodeset.
// It returns [errors.ErrArgument] if the nodeset is not from the own
// region or the group already has a nodeset group for it.
func (g *FieldGroup) CreateNodesetGroup(nodeset region.NodesetLike) (*NodesetGroup, error) {
	ns, err := g.checkNodeset(nodeset)
	if err != nil {
		return nil, err
	}
	if g.nodesetGroupEntry(ns) != nil {
		return nil, errors.Argument("group already has a nodeset group for %s", ns.Name())
	}
	name := g.subobjectName(ns.Name())
	if name != "" && g.Fieldmodule().FindFieldByName(name) != nil {
		return nil, errors.Argument("field name %q is in use", name)
	}
	ng := newNodesetGroup(ns)
	if name != "" {
		if err := ng.FieldBase.SetName(name); err != nil {
			ng.Release()
			return nil, err
		}
	}
	g.linkNodesetGroup(ng)
	return ng, nil
}

// GetOrCreateNodesetGroup returns the nodeset group for the given
// nodeset, creating it if needed.
func (g *FieldGroup) GetOrCreateNodesetGroup(nodeset region.NodesetLike) (*NodesetGroup, error) {
	if ng := g.NodesetGroup(nodeset); ng != nil {
		return ng, nil
	}
	return g.CreateNodesetGroup(nodeset)
}

func (g *FieldGroup) nodesetGroupForUpdate(ns *region.Nodeset) *NodesetGroup {
	if ng := g.nodesetGroupEntry(ns); ng != nil {
		return ng
	}
	ng, err := g.CreateNodesetGroup(ns)
	if err != nil {
		return nil
	}
	ng.Release()
	return ng
}

func (g *FieldGroup) linkNodesetGroup(ng *NodesetGroup) {
	ng.link.owner = g
	ng.Access()
	g.nodesetGroups[nodesetIndex(ng.nodeset)] = ng
}
