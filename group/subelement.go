// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

import (
	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/region"
	"golang.org/x/exp/maps"
)

// addSubelements adds the faces of e, their faces in turn, and the
// nodes of e to the subobject groups, creating them as needed.
func (g *FieldGroup) addSubelements(e *region.Element) {
	g.addFaces(e)
	if ng := g.nodesetGroupForUpdate(g.Fieldmodule().Nodes()); ng != nil {
		for _, n := range e.Nodes() {
			ng.nodes[n] = struct{}{}
		}
	}
}

func (g *FieldGroup) addFaces(e *region.Element) {
	fmesh := e.Mesh().FaceMesh()
	if fmesh == nil || len(e.Faces()) == 0 {
		return
	}
	fg := g.meshGroupForUpdate(fmesh)
	if fg == nil {
		return
	}
	for _, f := range e.Faces() {
		if f == nil {
			continue
		}
		fg.elements[f] = struct{}{}
		g.addFaces(f)
	}
}

// removeSubelements removes the faces of the elements removed from the
// parent group that are no longer faces of any element in it, and so on
// down to lines, then the nodes of the removed elements that are not
// nodes of any element remaining in the mesh groups.
func (g *FieldGroup) removeSubelements(parent *MeshGroup, removed []*region.Element) {
	g.removeFaces(parent, removed)
	ng := g.nodesetGroupEntry(g.Fieldmodule().Nodes())
	if ng == nil || ng.Size() == 0 {
		return
	}
	used := map[*region.Node]bool{}
	for _, mg := range g.meshGroups {
		if mg == nil {
			continue
		}
		for e := range mg.elements {
			for _, n := range e.Nodes() {
				used[n] = true
			}
		}
	}
	var unused []*region.Node
	for _, e := range removed {
		for _, n := range e.Nodes() {
			if !used[n] && ng.ContainsNode(n) {
				unused = append(unused, n)
				used[n] = true
			}
		}
	}
	if len(unused) > 0 {
		for _, n := range unused {
			delete(ng.nodes, n)
		}
		ng.nodeset.NextGeneration()
	}
}

func (g *FieldGroup) removeFaces(parent *MeshGroup, removed []*region.Element) {
	fmesh := parent.mesh.FaceMesh()
	if fmesh == nil {
		return
	}
	fg := g.meshGroupEntry(fmesh)
	if fg == nil || fg.Size() == 0 {
		return
	}
	var faces []*region.Element
	for _, e := range removed {
		for _, f := range e.Faces() {
			if f == nil || !fg.ContainsElement(f) || hasParentIn(f, parent) {
				continue
			}
			delete(fg.elements, f)
			faces = append(faces, f)
		}
	}
	if len(faces) == 0 {
		return
	}
	fmesh.NextGeneration()
	g.removeFaces(fg, faces)
}

// hasParentIn returns whether any parent of the face is in the group.
func hasParentIn(f *region.Element, mg *MeshGroup) bool {
	for _, p := range f.Parents() {
		if mg.ContainsElement(p) {
			return true
		}
	}
	return false
}

// AddAdjacentElements adds the elements of the mesh that share a face,
// line or node of the given dimension with an element in the group,
// for one layer of neighbours. A negative shared dimension counts back
// from the mesh dimension, so -1 is faces. It returns
// [errors.ErrArgument] for a shared dimension outside 0 to the mesh
// dimension - 1, and [errors.ErrNotImplemented] for nodes shared by
// line elements. It succeeds with no change on an empty group.
func (mg *MeshGroup) AddAdjacentElements(sharedDimension int) error {
	if err := mg.check(); err != nil {
		return err
	}
	dim := mg.mesh.Dimension()
	sd := sharedDimension
	if sd < 0 {
		sd += dim
	}
	if sd < 0 || sd >= dim {
		return errors.Argument("invalid shared dimension %d for %s", sharedDimension, mg.mesh.Name())
	}
	if dim == 1 && sd == 0 {
		return errors.NotImplemented("node adjacency of line elements")
	}
	if mg.Size() == 0 {
		return nil
	}
	start := mg.Elements()
	found := map[*region.Element]struct{}{}
	add := func(a *region.Element) {
		if !mg.ContainsElement(a) {
			found[a] = struct{}{}
		}
	}
	switch {
	case sd == dim-1:
		for _, e := range start {
			for _, f := range e.Faces() {
				if f == nil {
					continue
				}
				for _, a := range f.Parents() {
					add(a)
				}
			}
		}
	case sd == 0:
		byNode := map[*region.Node][]*region.Element{}
		for _, e := range mg.mesh.Elements() {
			for _, n := range e.Nodes() {
				byNode[n] = append(byNode[n], e)
			}
		}
		for _, e := range start {
			for _, n := range e.Nodes() {
				for _, a := range byNode[n] {
					add(a)
				}
			}
		}
	default:
		for _, e := range start {
			for _, f := range e.Faces() {
				if f == nil {
					continue
				}
				for _, l := range f.Faces() {
					if l == nil {
						continue
					}
					for _, lf := range l.Parents() {
						for _, a := range lf.Parents() {
							add(a)
						}
					}
				}
			}
		}
	}
	if len(found) == 0 {
		return nil
	}
	adjacent := maps.Keys(found)
	region.SortElements(adjacent)
	end := mg.begin()
	defer end()
	mg.addElements(adjacent)
	return nil
}
