// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshgen

import (
	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/base/iox/ioformat"
	"cogentcore.org/zinc/fields"
	"cogentcore.org/zinc/region"
)

// Description describes a mesh by its nodes with coordinates and its
// elements of the highest dimension. Faces are defined on build.
type Description struct {
	Nodes    []Node    `json:"nodes" yaml:"nodes" toml:"nodes"`
	Elements []Element `json:"elements" yaml:"elements" toml:"elements"`
}

// Node describes a node.
type Node struct {
	ID          int       `json:"id" yaml:"id" toml:"id"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates" toml:"coordinates"`
}

// Element describes an element by its shape and node identifiers.
type Element struct {
	ID    int          `json:"id" yaml:"id" toml:"id"`
	Shape region.Shape `json:"shape" yaml:"shape" toml:"shape"`
	Nodes []int        `json:"nodes" yaml:"nodes" toml:"nodes"`
}

// Open reads a description from a TOML, YAML or JSON file.
func Open(filename string) (*Description, error) {
	d := &Description{}
	if err := ioformat.Open(d, filename); err != nil {
		return nil, err
	}
	return d, nil
}

// Save writes the description to a TOML, YAML or JSON file.
func (d *Description) Save(filename string) error {
	return ioformat.Save(d, filename)
}

// Build creates the nodes and elements in the field module, defines
// faces, and returns the coordinate field, named [CoordinatesName]
// and managed.
func (d *Description) Build(fm *region.Fieldmodule) (*fields.NodeValue, error) {
	if len(d.Nodes) == 0 {
		return nil, errors.Argument("mesh description has no nodes")
	}
	ncomp := len(d.Nodes[0].Coordinates)
	coords, err := fields.NewNodeValue(fm, ncomp)
	if err != nil {
		return nil, err
	}
	if err := coords.SetName(CoordinatesName); err != nil {
		coords.Release()
		return nil, err
	}
	coords.SetManaged(true)
	if err := d.build(fm, coords); err != nil {
		coords.Release()
		return nil, err
	}
	return coords, nil
}

func (d *Description) build(fm *region.Fieldmodule, coords *fields.NodeValue) error {
	fm.BeginChange()
	defer fm.EndChange()
	nodes := fm.Nodes()
	for _, nd := range d.Nodes {
		n, err := nodes.CreateNode(nd.ID)
		if err != nil {
			return err
		}
		if err := coords.SetNodeValues(n, nd.Coordinates...); err != nil {
			return err
		}
	}
	maxDim := 0
	for _, ed := range d.Elements {
		mesh := fm.FindMeshByDimension(ed.Shape.Dimension())
		if mesh == nil {
			return errors.Argument("element %d has invalid shape %v", ed.ID, ed.Shape)
		}
		enodes := make([]*region.Node, len(ed.Nodes))
		for i, id := range ed.Nodes {
			if enodes[i] = nodes.FindNodeByIdentifier(id); enodes[i] == nil {
				return errors.NotFound("element %d node %d not found", ed.ID, id)
			}
		}
		if _, err := mesh.CreateElement(ed.ID, ed.Shape, enodes); err != nil {
			return err
		}
		maxDim = max(maxDim, mesh.Dimension())
	}
	for dim := maxDim; dim >= 2; dim-- {
		if err := fm.FindMeshByDimension(dim).DefineFaces(); err != nil {
			return err
		}
	}
	return nil
}

// Describe returns the description of the nodes with the given
// coordinates and the elements of the highest dimension mesh.
func Describe(fm *region.Fieldmodule, coords *fields.NodeValue) *Description {
	d := &Description{}
	for _, n := range fm.Nodes().Nodes() {
		d.Nodes = append(d.Nodes, Node{ID: n.Identifier(), Coordinates: coords.NodeValues(n)})
	}
	for dim := 3; dim >= 1; dim-- {
		mesh := fm.FindMeshByDimension(dim)
		if mesh.Size() == 0 {
			continue
		}
		for _, e := range mesh.Elements() {
			ed := Element{ID: e.Identifier(), Shape: e.Shape()}
			for _, n := range e.Nodes() {
				ed.Nodes = append(ed.Nodes, n.Identifier())
			}
			d.Elements = append(d.Elements, ed)
		}
		break
	}
	return d
}
