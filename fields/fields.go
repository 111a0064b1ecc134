// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fields provides the basic field types used as values and
// conditions over a region: constants, node-based values interpolated
// over elements, face membership, component extraction, and logical
// and comparison operators.
package fields

import (
	"slices"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/region"
)

// checkSources returns an error if any source field is nil or belongs
// to a field module other than fm.
func checkSources(fm *region.Fieldmodule, sources ...region.Field) error {
	if !fm.IsValid() {
		return errors.Argument("invalid field module")
	}
	for _, s := range sources {
		if s == nil || !s.AsFieldBase().IsValid() {
			return errors.Argument("invalid source field")
		}
		if s.AsFieldBase().Fieldmodule() != fm {
			return errors.Argument("source field belongs to a different region")
		}
	}
	return nil
}

// Constant is a field with the same values everywhere.
type Constant struct {
	region.FieldBase
	values []float64
}

// NewConstant returns a new constant field with the given values.
func NewConstant(fm *region.Fieldmodule, values ...float64) (*Constant, error) {
	if err := checkSources(fm); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.Argument("constant field needs at least one value")
	}
	f := &Constant{values: slices.Clone(values)}
	region.InitField(f, fm)
	return f, nil
}

func (f *Constant) NumComponents() int { return len(f.values) }

func (f *Constant) Evaluate(loc region.Location) ([]float64, error) {
	return slices.Clone(f.values), nil
}

// NodeValue is a field with values stored at nodes, interpolated
// linearly over elements from the values at their local nodes.
// Coordinates are a NodeValue field.
type NodeValue struct {
	region.FieldBase
	components int
	values     map[*region.Node][]float64
}

// NewNodeValue returns a new node value field with the given
// number of components and no values.
func NewNodeValue(fm *region.Fieldmodule, components int) (*NodeValue, error) {
	if err := checkSources(fm); err != nil {
		return nil, err
	}
	if components < 1 {
		return nil, errors.Argument("node value field needs at least one component")
	}
	f := &NodeValue{components: components, values: map[*region.Node][]float64{}}
	region.InitField(f, fm)
	return f, nil
}

func (f *NodeValue) NumComponents() int { return f.components }

// SetNodeValues sets the values at the given node.
func (f *NodeValue) SetNodeValues(n *region.Node, values ...float64) error {
	if !n.IsValid() || n.Nodeset().Fieldmodule() != f.Fieldmodule() {
		return errors.Argument("invalid node")
	}
	if len(values) != f.components {
		return errors.Argument("expected %d values, got %d", f.components, len(values))
	}
	f.values[n] = slices.Clone(values)
	f.Changed()
	return nil
}

// NodeValues returns the values at the given node, or nil if not set.
func (f *NodeValue) NodeValues(n *region.Node) []float64 {
	return f.values[n]
}

func (f *NodeValue) Evaluate(loc region.Location) ([]float64, error) {
	if loc.Node != nil {
		v, ok := f.values[loc.Node]
		if !ok || !loc.Node.IsValid() {
			return nil, errors.NotFound("%s not defined at node %d", f.Name(), loc.Node.Identifier())
		}
		return slices.Clone(v), nil
	}
	e := loc.Element
	if !e.IsValid() {
		return nil, errors.Argument("invalid location")
	}
	w := e.Shape().Basis(loc.Xi)
	res := make([]float64, f.components)
	for ln, n := range e.Nodes() {
		v, ok := f.values[n]
		if !ok {
			return nil, errors.NotFound("%s not defined at node %d of element %d", f.Name(), n.Identifier(), e.Identifier())
		}
		for c := range res {
			res[c] += w[ln] * v[c]
		}
	}
	return res, nil
}

// Component is a field returning one component of its source.
type Component struct {
	region.FieldBase
	source region.Field
	index  int
}

// NewComponent returns a field with the component of the source
// field at the given index, starting from 1.
func NewComponent(source region.Field, index int) (*Component, error) {
	if source == nil {
		return nil, errors.Argument("nil source field")
	}
	fm := source.AsFieldBase().Fieldmodule()
	if err := checkSources(fm, source); err != nil {
		return nil, err
	}
	if index < 1 || index > source.NumComponents() {
		return nil, errors.Argument("component index %d out of range 1..%d", index, source.NumComponents())
	}
	f := &Component{source: source, index: index}
	region.InitField(f, fm)
	return f, nil
}

func (f *Component) NumComponents() int { return 1 }

func (f *Component) Evaluate(loc region.Location) ([]float64, error) {
	v, err := f.source.Evaluate(loc)
	if err != nil {
		return nil, err
	}
	return []float64{v[f.index-1]}, nil
}

// IsOnFace is true for elements that are the given face of any of
// their parents, with the special face types matching all elements,
// any face or no face.
type IsOnFace struct {
	region.FieldBase
	faceType region.FaceType
}

// NewIsOnFace returns a new face condition field.
func NewIsOnFace(fm *region.Fieldmodule, faceType region.FaceType) (*IsOnFace, error) {
	if err := checkSources(fm); err != nil {
		return nil, err
	}
	if faceType == region.FaceTypeInvalid || !faceType.IsValid() {
		return nil, errors.Argument("invalid face type %v", faceType)
	}
	f := &IsOnFace{faceType: faceType}
	region.InitField(f, fm)
	return f, nil
}

// FaceType returns the face type tested.
func (f *IsOnFace) FaceType() region.FaceType { return f.faceType }

func (f *IsOnFace) NumComponents() int { return 1 }

func (f *IsOnFace) Evaluate(loc region.Location) ([]float64, error) {
	e := loc.Element
	if !e.IsValid() {
		return nil, errors.Argument("face condition needs an element location")
	}
	return []float64{boolValue(f.isOnFace(e))}, nil
}

func (f *IsOnFace) isOnFace(e *region.Element) bool {
	switch f.faceType {
	case region.FaceTypeAll:
		return true
	case region.FaceTypeAnyFace:
		return len(e.Parents()) > 0
	case region.FaceTypeNoFace:
		return len(e.Parents()) == 0
	}
	for _, p := range e.Parents() {
		if e.FaceTypeIn(p) == f.faceType {
			return true
		}
	}
	return false
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
