// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"slices"

	"cogentcore.org/zinc/base/errors"
)

// Node is a point object in a [Nodeset], identified by a unique
// positive identifier within its nodeset.
type Node struct {
	id      int
	nodeset *Nodeset

	// uid never changes, and orders nodes independent of renumbering.
	uid uint64
}

// Identifier returns the node identifier.
func (n *Node) Identifier() int {
	return n.id
}

// Nodeset returns the owning nodeset, or nil once the node is destroyed.
func (n *Node) Nodeset() *Nodeset {
	if n == nil {
		return nil
	}
	return n.nodeset
}

// IsValid returns whether the node is alive.
func (n *Node) IsValid() bool {
	return n != nil && n.nodeset != nil
}

// SetIdentifier renumbers the node. It returns [errors.ErrArgument]
// if the identifier is not positive or is in use.
func (n *Node) SetIdentifier(id int) error {
	if !n.IsValid() {
		return errors.Argument("node is destroyed")
	}
	return n.nodeset.renumber(n, id)
}

// NodesetLike is a [Nodeset] or a subset of one, such as a nodeset group.
type NodesetLike interface {
	Name() string
	Master() *Nodeset
	Size() int
	ContainsNode(n *Node) bool
}

// Nodeset is the set of nodes or datapoints of a [Fieldmodule].
type Nodeset struct {
	fm         *Fieldmodule
	domain     DomainType
	nodes      map[int]*Node
	generation uint64
	valid      bool
	hooks      hookList[*Node]
}

func newNodeset(fm *Fieldmodule, domain DomainType) *Nodeset {
	return &Nodeset{fm: fm, domain: domain, nodes: map[int]*Node{}, valid: true}
}

// Name returns "nodes" or "datapoints".
func (ns *Nodeset) Name() string {
	if ns.domain == DomainTypeDatapoints {
		return "datapoints"
	}
	return "nodes"
}

// Master returns the nodeset itself.
func (ns *Nodeset) Master() *Nodeset {
	return ns
}

// DomainType returns the field domain type of the nodeset.
func (ns *Nodeset) DomainType() DomainType {
	return ns.domain
}

// Fieldmodule returns the owning field module.
func (ns *Nodeset) Fieldmodule() *Fieldmodule {
	return ns.fm
}

// IsValid returns whether the nodeset and its region are alive.
func (ns *Nodeset) IsValid() bool {
	return ns != nil && ns.valid
}

// Size returns the number of nodes.
func (ns *Nodeset) Size() int {
	return len(ns.nodes)
}

// ContainsNode returns whether the node is in this nodeset.
func (ns *Nodeset) ContainsNode(n *Node) bool {
	return n != nil && n.nodeset == ns
}

// Generation returns a counter incremented by every change to the
// structure of the nodeset, which invalidates its iterators.
func (ns *Nodeset) Generation() uint64 {
	return ns.generation
}

// NextGeneration increments the generation, invalidating iterators.
func (ns *Nodeset) NextGeneration() {
	ns.generation++
}

// FindNodeByIdentifier returns the node with the given identifier, or nil.
func (ns *Nodeset) FindNodeByIdentifier(id int) *Node {
	return ns.nodes[id]
}

// CreateNode creates a node with the given identifier, or with the next
// unused identifier if id is -1.
func (ns *Nodeset) CreateNode(id int) (*Node, error) {
	if !ns.IsValid() {
		return nil, errors.Argument("nodeset is not valid")
	}
	if id == -1 {
		id = ns.nextIdentifier()
	}
	if id < 1 {
		return nil, errors.Argument("invalid node identifier %d", id)
	}
	if _, has := ns.nodes[id]; has {
		return nil, errors.Argument("node %d already exists", id)
	}
	ns.fm.uid++
	n := &Node{id: id, nodeset: ns, uid: ns.fm.uid}
	ns.nodes[id] = n
	ns.NextGeneration()
	return n, nil
}

func (ns *Nodeset) nextIdentifier() int {
	mx := 0
	for id := range ns.nodes {
		mx = max(mx, id)
	}
	return mx + 1
}

// DestroyNode destroys the node. It returns [errors.ErrArgument] if the
// node is not in this nodeset or is used by an element.
func (ns *Nodeset) DestroyNode(n *Node) error {
	if !ns.ContainsNode(n) {
		return errors.Argument("node is not in nodeset %s", ns.Name())
	}
	if ns.domain == DomainTypeNodes {
		for _, m := range ns.fm.meshes {
			for _, e := range m.elements {
				if slices.Contains(e.nodes, n) {
					return errors.Argument("node %d is in use by element %d", n.id, e.id)
				}
			}
		}
	}
	ns.hooks.call(n)
	delete(ns.nodes, n.id)
	n.nodeset = nil
	ns.NextGeneration()
	return nil
}

// OnDestroyNode adds a function called before each node of the
// nodeset is destroyed, under the given key.
func (ns *Nodeset) OnDestroyNode(key any, f func(n *Node)) {
	ns.hooks.add(key, f)
}

// OffDestroyNode removes the function added with the given key.
func (ns *Nodeset) OffDestroyNode(key any) {
	ns.hooks.remove(key)
}

func (ns *Nodeset) renumber(n *Node, id int) error {
	if id == n.id {
		return nil
	}
	if id < 1 {
		return errors.Argument("invalid node identifier %d", id)
	}
	if _, has := ns.nodes[id]; has {
		return errors.Argument("node %d already exists", id)
	}
	delete(ns.nodes, n.id)
	n.id = id
	ns.nodes[id] = n
	ns.NextGeneration()
	return nil
}

// Nodes returns all nodes in ascending identifier order.
func (ns *Nodeset) Nodes() []*Node {
	nodes := make([]*Node, 0, len(ns.nodes))
	for _, n := range ns.nodes {
		nodes = append(nodes, n)
	}
	SortNodes(nodes)
	return nodes
}

// CreateNodeiterator returns an iterator over all nodes.
func (ns *Nodeset) CreateNodeiterator() *Nodeiterator {
	return NewNodeiterator(ns, ns.Nodes())
}

func (ns *Nodeset) invalidate() {
	ns.valid = false
	ns.NextGeneration()
	for _, n := range ns.nodes {
		n.nodeset = nil
	}
	ns.nodes = map[int]*Node{}
	ns.hooks = hookList[*Node]{}
}

// SortNodes sorts nodes by ascending identifier.
func SortNodes(nodes []*Node) {
	slices.SortFunc(nodes, func(a, b *Node) int { return a.id - b.id })
}

// Nodeiterator iterates over a snapshot of nodes in ascending identifier
// order. It stops, returning nil, as soon as the structure of its
// nodeset changes after the iterator was created.
type Nodeiterator struct {
	nodeset    *Nodeset
	nodes      []*Node
	index      int
	generation uint64
}

// NewNodeiterator returns an iterator over the given nodes of the
// nodeset, which must be sorted by identifier.
func NewNodeiterator(ns *Nodeset, nodes []*Node) *Nodeiterator {
	return &Nodeiterator{nodeset: ns, nodes: nodes, generation: ns.generation}
}

// Next returns the next node, or nil at the end or once invalidated.
func (it *Nodeiterator) Next() *Node {
	if it.nodeset == nil {
		return nil
	}
	if !it.nodeset.IsValid() || it.nodeset.generation != it.generation || it.index >= len(it.nodes) {
		it.nodeset = nil
		return nil
	}
	n := it.nodes[it.index]
	it.index++
	return n
}
