// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/zinc/base/errors"
)

// Element is an object of a [Mesh] with a shape, local nodes and,
// once faces are defined, face elements in the mesh of one lower
// dimension. A face knows the elements it is a face of as its parents.
type Element struct {
	id      int
	mesh    *Mesh
	shape   Shape
	nodes   []*Node
	faces   []*Element
	parents []*Element
}

// Identifier returns the element identifier.
func (e *Element) Identifier() int {
	return e.id
}

// Mesh returns the owning mesh, or nil once the element is destroyed.
func (e *Element) Mesh() *Mesh {
	if e == nil {
		return nil
	}
	return e.mesh
}

// IsValid returns whether the element is alive.
func (e *Element) IsValid() bool {
	return e != nil && e.mesh != nil
}

// Shape returns the element shape.
func (e *Element) Shape() Shape {
	return e.shape
}

// Dimension returns the element dimension.
func (e *Element) Dimension() int {
	return e.shape.Dimension()
}

// Nodes returns the local nodes of the element.
func (e *Element) Nodes() []*Node {
	return e.nodes
}

// Faces returns the face elements, indexed by face number, with nil
// entries for undefined faces. It is empty until faces are defined.
func (e *Element) Faces() []*Element {
	return e.faces
}

// Parents returns the elements that this element is a face of.
func (e *Element) Parents() []*Element {
	return e.parents
}

// FaceTypeIn returns the face type of this element in the given parent,
// or [FaceTypeNoFace] if it is not a face of it.
func (e *Element) FaceTypeIn(parent *Element) FaceType {
	if parent != nil {
		if i := slices.Index(parent.faces, e); i >= 0 {
			return FaceTypeForIndex(i)
		}
	}
	return FaceTypeNoFace
}

// SetIdentifier renumbers the element. It returns [errors.ErrArgument]
// if the identifier is not positive or is in use.
func (e *Element) SetIdentifier(id int) error {
	if !e.IsValid() {
		return errors.Argument("element is destroyed")
	}
	return e.mesh.renumber(e, id)
}

func (e *Element) String() string {
	return fmt.Sprintf("%s element %d", e.shape, e.id)
}

// MeshLike is a [Mesh] or a subset of one, such as a mesh group.
type MeshLike interface {
	Name() string
	Master() *Mesh
	Size() int
	ContainsElement(e *Element) bool
}

// Mesh is the set of elements of one dimension in a [Fieldmodule].
type Mesh struct {
	fm         *Fieldmodule
	dim        int
	elements   map[int]*Element
	byNodes    map[string]*Element
	generation uint64
	valid      bool
	hooks      hookList[*Element]
}

func newMesh(fm *Fieldmodule, dim int) *Mesh {
	return &Mesh{fm: fm, dim: dim, elements: map[int]*Element{}, byNodes: map[string]*Element{}, valid: true}
}

// Name returns "mesh1d", "mesh2d" or "mesh3d".
func (m *Mesh) Name() string {
	return "mesh" + strconv.Itoa(m.dim) + "d"
}

// Master returns the mesh itself.
func (m *Mesh) Master() *Mesh {
	return m
}

// Dimension returns the dimension of the elements of the mesh.
func (m *Mesh) Dimension() int {
	return m.dim
}

// Fieldmodule returns the owning field module.
func (m *Mesh) Fieldmodule() *Fieldmodule {
	return m.fm
}

// IsValid returns whether the mesh and its region are alive.
func (m *Mesh) IsValid() bool {
	return m != nil && m.valid
}

// Size returns the number of elements.
func (m *Mesh) Size() int {
	return len(m.elements)
}

// ContainsElement returns whether the element is in this mesh.
func (m *Mesh) ContainsElement(e *Element) bool {
	return e != nil && e.mesh == m
}

// Generation returns a counter incremented by every change to the
// structure of the mesh, which invalidates its iterators.
func (m *Mesh) Generation() uint64 {
	return m.generation
}

// NextGeneration increments the generation, invalidating iterators.
func (m *Mesh) NextGeneration() {
	m.generation++
}

// FaceMesh returns the mesh of one lower dimension, or nil for a line mesh.
func (m *Mesh) FaceMesh() *Mesh {
	if m.dim <= 1 {
		return nil
	}
	return m.fm.meshes[m.dim-2]
}

// FindElementByIdentifier returns the element with the given identifier, or nil.
func (m *Mesh) FindElementByIdentifier(id int) *Element {
	return m.elements[id]
}

// CreateElement creates an element with the given identifier, or with
// the next unused identifier if id is -1, with the given shape and
// local nodes from the nodes nodeset.
func (m *Mesh) CreateElement(id int, shape Shape, nodes []*Node) (*Element, error) {
	if !m.IsValid() {
		return nil, errors.Argument("mesh is not valid")
	}
	if shape.Dimension() != m.dim {
		return nil, errors.Argument("%s shape does not match %s", shape, m.Name())
	}
	if len(nodes) != shape.NumNodes() {
		return nil, errors.Argument("%s element needs %d nodes, got %d", shape, shape.NumNodes(), len(nodes))
	}
	for _, n := range nodes {
		if n.Nodeset() != m.fm.Nodes() {
			return nil, errors.Argument("element nodes must be in the nodes of the same region")
		}
	}
	if id == -1 {
		id = m.nextIdentifier()
	}
	if id < 1 {
		return nil, errors.Argument("invalid element identifier %d", id)
	}
	if _, has := m.elements[id]; has {
		return nil, errors.Argument("element %d already exists in %s", id, m.Name())
	}
	e := &Element{id: id, mesh: m, shape: shape, nodes: slices.Clone(nodes)}
	m.elements[id] = e
	if key := nodesKey(e.nodes); m.byNodes[key] == nil {
		m.byNodes[key] = e
	}
	m.NextGeneration()
	return e, nil
}

func (m *Mesh) nextIdentifier() int {
	mx := 0
	for id := range m.elements {
		mx = max(mx, id)
	}
	return mx + 1
}

// nodesKey identifies the node set of an element independent of order
// and node numbering.
func nodesKey(nodes []*Node) string {
	uids := make([]uint64, len(nodes))
	for i, n := range nodes {
		uids[i] = n.uid
	}
	slices.Sort(uids)
	var b strings.Builder
	for _, u := range uids {
		b.WriteString(strconv.FormatUint(u, 36))
		b.WriteByte(',')
	}
	return b.String()
}

// DestroyElement destroys the element, removing it as a parent of its
// faces and as a face of its parents.
func (m *Mesh) DestroyElement(e *Element) error {
	if !m.ContainsElement(e) {
		return errors.Argument("element is not in %s", m.Name())
	}
	m.hooks.call(e)
	for _, f := range e.faces {
		if f != nil {
			f.parents = slices.DeleteFunc(f.parents, func(p *Element) bool { return p == e })
		}
	}
	for _, p := range e.parents {
		for i, f := range p.faces {
			if f == e {
				p.faces[i] = nil
			}
		}
	}
	delete(m.elements, e.id)
	if key := nodesKey(e.nodes); m.byNodes[key] == e {
		delete(m.byNodes, key)
	}
	e.mesh = nil
	e.parents = nil
	m.NextGeneration()
	return nil
}

// OnDestroyElement adds a function called before each element of the
// mesh is destroyed, under the given key.
func (m *Mesh) OnDestroyElement(key any, f func(e *Element)) {
	m.hooks.add(key, f)
}

// OffDestroyElement removes the function added with the given key.
func (m *Mesh) OffDestroyElement(key any) {
	m.hooks.remove(key)
}

func (m *Mesh) renumber(e *Element, id int) error {
	if id == e.id {
		return nil
	}
	if id < 1 {
		return errors.Argument("invalid element identifier %d", id)
	}
	if _, has := m.elements[id]; has {
		return errors.Argument("element %d already exists in %s", id, m.Name())
	}
	delete(m.elements, e.id)
	e.id = id
	m.elements[id] = e
	m.NextGeneration()
	return nil
}

// Elements returns all elements in ascending identifier order.
func (m *Mesh) Elements() []*Element {
	elems := make([]*Element, 0, len(m.elements))
	for _, e := range m.elements {
		elems = append(elems, e)
	}
	SortElements(elems)
	return elems
}

// CreateElementiterator returns an iterator over all elements.
func (m *Mesh) CreateElementiterator() *Elementiterator {
	return NewElementiterator(m, m.Elements())
}

// DefineFaces creates the face elements of every element of the mesh
// in the mesh of one lower dimension, reusing a face element with the
// same nodes where one exists, so faces shared between elements are
// unique. Elements are processed in identifier order and new faces
// take the next unused identifiers.
func (m *Mesh) DefineFaces() error {
	fm := m.FaceMesh()
	if fm == nil {
		return errors.Argument("%s has no faces", m.Name())
	}
	for _, e := range m.Elements() {
		if e.faces == nil {
			e.faces = make([]*Element, e.shape.NumFaces())
		}
		for fi := range e.faces {
			if e.faces[fi] != nil {
				continue
			}
			local := e.shape.FaceNodes(fi)
			nodes := make([]*Node, len(local))
			for i, ln := range local {
				nodes[i] = e.nodes[ln]
			}
			f := fm.byNodes[nodesKey(nodes)]
			if f == nil {
				var err error
				f, err = fm.CreateElement(-1, e.shape.FaceShape(), nodes)
				if err != nil {
					return err
				}
			}
			e.faces[fi] = f
			if !slices.Contains(f.parents, e) {
				f.parents = append(f.parents, e)
			}
		}
	}
	m.NextGeneration()
	return nil
}

func (m *Mesh) invalidate() {
	m.valid = false
	m.NextGeneration()
	for _, e := range m.elements {
		e.mesh = nil
	}
	m.elements = map[int]*Element{}
	m.byNodes = map[string]*Element{}
	m.hooks = hookList[*Element]{}
}

// SortElements sorts elements by ascending identifier.
func SortElements(elems []*Element) {
	slices.SortFunc(elems, func(a, b *Element) int { return a.id - b.id })
}

// Elementiterator iterates over a snapshot of elements in ascending
// identifier order. It stops, returning nil, as soon as the structure of
// its mesh changes after the iterator was created.
type Elementiterator struct {
	mesh       *Mesh
	elements   []*Element
	index      int
	generation uint64
}

// NewElementiterator returns an iterator over the given elements of
// the mesh, which must be sorted by identifier.
func NewElementiterator(m *Mesh, elems []*Element) *Elementiterator {
	return &Elementiterator{mesh: m, elements: elems, generation: m.generation}
}

// Next returns the next element, or nil at the end or once invalidated.
func (it *Elementiterator) Next() *Element {
	if it.mesh == nil {
		return nil
	}
	if !it.mesh.IsValid() || it.mesh.generation != it.generation || it.index >= len(it.elements) {
		it.mesh = nil
		return nil
	}
	e := it.elements[it.index]
	it.index++
	return e
}
