// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/zinc/base/keylist"
	"cogentcore.org/zinc/changes"
)

// DomainType is the type of domain a field or nodeset is defined on.
type DomainType int32

const (
	// DomainTypeInvalid is an unspecified domain.
	DomainTypeInvalid DomainType = iota

	// DomainTypeNodes is the nodes nodeset.
	DomainTypeNodes

	// DomainTypeDatapoints is the datapoints nodeset.
	DomainTypeDatapoints

	// DomainTypeMesh1D is the 1D mesh.
	DomainTypeMesh1D

	// DomainTypeMesh2D is the 2D mesh.
	DomainTypeMesh2D

	// DomainTypeMesh3D is the 3D mesh.
	DomainTypeMesh3D
)

// Fieldmodule holds the meshes, nodesets and fields of one [Region].
// It has a change cache: field changes raised between [Fieldmodule.BeginChange]
// and [Fieldmodule.EndChange] are delivered to the change listeners
// once, when the outermost scope ends.
type Fieldmodule struct {
	region   *Region
	meshes   [3]*Mesh
	nodesets [2]*Nodeset

	// fields are the named fields, in naming order.
	fields keylist.List[string, Field]

	cache     changes.Cache
	changed   []Field
	listeners hookList[[]Field]

	// uid is the last node uid assigned.
	uid uint64

	valid bool
}

func newFieldmodule(r *Region) *Fieldmodule {
	fm := &Fieldmodule{region: r, valid: true}
	for d := range fm.meshes {
		fm.meshes[d] = newMesh(fm, d+1)
	}
	fm.nodesets[0] = newNodeset(fm, DomainTypeNodes)
	fm.nodesets[1] = newNodeset(fm, DomainTypeDatapoints)
	fm.cache.SetFlush(fm.flush)
	return fm
}

// Region returns the owning region.
func (fm *Fieldmodule) Region() *Region {
	return fm.region
}

// IsValid returns whether the region of the field module is alive.
func (fm *Fieldmodule) IsValid() bool {
	return fm != nil && fm.valid
}

// FindMeshByDimension returns the mesh of the given dimension 1 to 3, or nil.
func (fm *Fieldmodule) FindMeshByDimension(dim int) *Mesh {
	if dim < 1 || dim > 3 {
		return nil
	}
	return fm.meshes[dim-1]
}

// FindMeshByName returns the mesh or mesh group with the given name,
// or nil. Mesh groups are named "<group>.<mesh>", e.g. "bob.mesh3d".
func (fm *Fieldmodule) FindMeshByName(name string) MeshLike {
	for _, m := range fm.meshes {
		if m.Name() == name {
			return m
		}
	}
	if f, ok := fm.fields.AtTry(name); ok {
		if ml, ok := f.(MeshLike); ok {
			return ml
		}
	}
	return nil
}

// FindNodesetByFieldDomainType returns the nodes or datapoints nodeset, or nil.
func (fm *Fieldmodule) FindNodesetByFieldDomainType(domain DomainType) *Nodeset {
	switch domain {
	case DomainTypeNodes:
		return fm.nodesets[0]
	case DomainTypeDatapoints:
		return fm.nodesets[1]
	}
	return nil
}

// Nodes returns the nodes nodeset.
func (fm *Fieldmodule) Nodes() *Nodeset {
	return fm.nodesets[0]
}

// FindNodesetByName returns the nodeset or nodeset group with the given
// name, or nil.
func (fm *Fieldmodule) FindNodesetByName(name string) NodesetLike {
	for _, ns := range fm.nodesets {
		if ns.Name() == name {
			return ns
		}
	}
	if f, ok := fm.fields.AtTry(name); ok {
		if nl, ok := f.(NodesetLike); ok {
			return nl
		}
	}
	return nil
}

// FindFieldByName returns the field with the given name, or nil.
func (fm *Fieldmodule) FindFieldByName(name string) Field {
	f, _ := fm.fields.AtTry(name)
	return f
}

// Fields returns the named fields in the order they were named.
func (fm *Fieldmodule) Fields() []Field {
	return slices.Clone(fm.fields.Values)
}

// DefineAllFaces defines the faces of the 3D and then the 2D elements.
func (fm *Fieldmodule) DefineAllFaces() error {
	for d := 3; d >= 2; d-- {
		if err := fm.meshes[d-1].DefineFaces(); err != nil {
			return err
		}
	}
	return nil
}

// BeginChange starts caching field change notifications.
// Calls nest and must be balanced by [Fieldmodule.EndChange].
func (fm *Fieldmodule) BeginChange() {
	fm.cache.Begin()
}

// EndChange ends a change cache scope, notifying listeners of all
// fields changed in it when this was the outermost scope. It returns
// [errors.ErrArgument] if no scope is open.
func (fm *Fieldmodule) EndChange() error {
	return fm.cache.End()
}

// Caching returns whether a change cache scope is open.
func (fm *Fieldmodule) Caching() bool {
	return fm.cache.Caching()
}

// FieldChanged records that the given field has changed, notifying
// listeners now or at the end of the current change cache scope.
func (fm *Fieldmodule) FieldChanged(f Field) {
	if !fm.IsValid() {
		return
	}
	if !slices.Contains(fm.changed, f) {
		fm.changed = append(fm.changed, f)
	}
	fm.cache.Changed()
}

// OnChange adds a function called with the fields changed in each
// notification, under the given key.
func (fm *Fieldmodule) OnChange(key any, f func(changed []Field)) {
	fm.listeners.add(key, f)
}

// OffChange removes the function added with the given key.
func (fm *Fieldmodule) OffChange(key any) {
	fm.listeners.remove(key)
}

func (fm *Fieldmodule) flush() {
	changed := fm.changed
	fm.changed = nil
	for _, f := range changed {
		if cd, ok := f.(ChangeDetailer); ok {
			cd.ExtractChangeDetail()
		}
	}
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		names := make([]string, len(changed))
		for i, f := range changed {
			names[i] = f.AsFieldBase().Name()
		}
		slog.Debug("fields changed", "region", fm.region.Path(), "fields", strings.Join(names, ","))
	}
	fm.listeners.call(changed)
}

func (fm *Fieldmodule) invalidate() {
	if !fm.valid {
		return
	}
	fm.valid = false
	for _, f := range slices.Clone(fm.fields.Values) {
		f.AsFieldBase().Destroy()
	}
	fm.fields.Reset()
	for _, m := range fm.meshes {
		m.invalidate()
	}
	for _, ns := range fm.nodesets {
		ns.invalidate()
	}
	fm.changed = nil
	fm.listeners = hookList[[]Field]{}
}
