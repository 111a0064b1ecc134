// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

import (
	"log/slog"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/region"
)

// NodesetGroup is the subset of the nodes of one nodeset in a
// [FieldGroup]. It is a field that is true at its nodes, and can be used
// wherever a nodeset is expected. It is named "<group>.<nodeset>",
// e.g. "bob.nodes", when its field group is named.
type NodesetGroup struct {
	region.FieldBase

	// link is the link to the owning field group.
	link ownerLink

	nodeset *region.Nodeset
	nodes   map[*region.Node]struct{}
}

func newNodesetGroup(ns *region.Nodeset) *NodesetGroup {
	ng := &NodesetGroup{nodeset: ns, nodes: map[*region.Node]struct{}{}}
	region.InitField(ng, ns.Fieldmodule())
	ng.SetObserver(func(old, count int) { ng.link.sync(count) })
	ns.OnDestroyNode(ng, ng.nodeDestroyed)
	return ng
}

// Release releases an access to the group. It is safe to call on nil.
func (ng *NodesetGroup) Release() {
	if ng != nil {
		ng.FieldBase.Release()
	}
}

func (ng *NodesetGroup) unlink() {
	ng.link.clear()
	ng.FieldBase.Release()
}

func (ng *NodesetGroup) FieldDestroyed() {
	ng.nodeset.OffDestroyNode(ng)
	if owner := ng.link.owner; owner != nil {
		if i := nodesetIndex(ng.nodeset); owner.nodesetGroups[i] == ng {
			owner.nodesetGroups[i] = nil
		}
		ng.link.clear()
	}
}

func (ng *NodesetGroup) domainName() string {
	return ng.nodeset.Name()
}

// FieldGroup returns the owning field group, accessed, or nil if the
// nodeset group is no longer part of a field group.
func (ng *NodesetGroup) FieldGroup() *FieldGroup {
	owner := ng.link.owner
	if owner == nil || !owner.Access() {
		return nil
	}
	return owner
}

// Master returns the nodeset the group is a subset of.
func (ng *NodesetGroup) Master() *region.Nodeset {
	return ng.nodeset
}

// Size returns the number of nodes in the group.
func (ng *NodesetGroup) Size() int {
	return len(ng.nodes)
}

// ContainsNode returns whether the node is in the group.
func (ng *NodesetGroup) ContainsNode(n *region.Node) bool {
	_, has := ng.nodes[n]
	return has
}

// Nodes returns the nodes in ascending identifier order.
func (ng *NodesetGroup) Nodes() []*region.Node {
	nodes := make([]*region.Node, 0, len(ng.nodes))
	for n := range ng.nodes {
		nodes = append(nodes, n)
	}
	region.SortNodes(nodes)
	return nodes
}

// CreateNodeiterator returns an iterator over the nodes of the group
// in ascending identifier order. It is invalidated by any change to the
// structure of the nodeset or the removal of nodes from the group.
func (ng *NodesetGroup) CreateNodeiterator() *region.Nodeiterator {
	return region.NewNodeiterator(ng.nodeset, ng.Nodes())
}

func (ng *NodesetGroup) NumComponents() int { return 1 }

// Evaluate returns 1 at nodes of the group, otherwise 0.
func (ng *NodesetGroup) Evaluate(loc region.Location) ([]float64, error) {
	if loc.Node == nil {
		return nil, errors.Argument("nodeset group needs a node location")
	}
	if ng.ContainsNode(loc.Node) {
		return []float64{1}, nil
	}
	return []float64{0}, nil
}

func (ng *NodesetGroup) check() error {
	if !ng.IsValid() || !ng.nodeset.IsValid() {
		return errors.Argument("nodeset group is not valid")
	}
	return nil
}

func (ng *NodesetGroup) begin() func() {
	fm := ng.Fieldmodule()
	owner := ng.link.owner
	if owner != nil {
		owner.Access()
	}
	ng.Access()
	fm.BeginChange()
	return func() {
		fm.EndChange()
		ng.Release()
		owner.Release()
	}
}

func (ng *NodesetGroup) raise(change Change) {
	if owner := ng.link.owner; owner != nil {
		owner.raise(change, 0)
	}
}

// AddNode adds the node to the group. It returns [errors.ErrArgument]
// if the node is not from the nodeset of the group or is already in
// the group.
func (ng *NodesetGroup) AddNode(n *region.Node) error {
	if err := ng.check(); err != nil {
		return err
	}
	if !ng.nodeset.ContainsNode(n) {
		return errors.Argument("node is not from %s", ng.nodeset.Name())
	}
	if ng.ContainsNode(n) {
		return errors.Argument("node %d is already in the group", n.Identifier())
	}
	ng.addNodes([]*region.Node{n})
	return nil
}

// addNodes adds the nodes not yet in the group and returns how many
// were added.
func (ng *NodesetGroup) addNodes(nodes []*region.Node) int {
	added := 0
	for _, n := range nodes {
		if !ng.ContainsNode(n) {
			ng.nodes[n] = struct{}{}
			added++
		}
	}
	if added > 0 {
		ng.raise(ChangeAdd)
	}
	return added
}

// RemoveNode removes the node from the group. It returns
// [errors.ErrArgument] if the node is not in the group.
func (ng *NodesetGroup) RemoveNode(n *region.Node) error {
	if err := ng.check(); err != nil {
		return err
	}
	if !ng.ContainsNode(n) {
		return errors.Argument("node is not in the group")
	}
	ng.removeNodes([]*region.Node{n})
	return nil
}

// removeNodes removes the nodes in the group and returns how many
// were removed.
func (ng *NodesetGroup) removeNodes(nodes []*region.Node) int {
	removed := 0
	for _, n := range nodes {
		if ng.ContainsNode(n) {
			delete(ng.nodes, n)
			removed++
		}
	}
	if removed > 0 {
		ng.nodeset.NextGeneration()
		ng.raise(ChangeRemove)
	}
	return removed
}

// RemoveAllNodes removes all nodes from the group.
// It succeeds on an empty group.
func (ng *NodesetGroup) RemoveAllNodes() error {
	if err := ng.check(); err != nil {
		return err
	}
	ng.removeNodes(ng.Nodes())
	return nil
}

func (ng *NodesetGroup) clear() bool {
	if len(ng.nodes) == 0 {
		return false
	}
	ng.nodes = map[*region.Node]struct{}{}
	ng.nodeset.NextGeneration()
	return true
}

// CreateNode creates a node in the nodeset with the given identifier,
// or the next unused identifier if id is -1, and adds it to the group.
func (ng *NodesetGroup) CreateNode(id int) (*region.Node, error) {
	if err := ng.check(); err != nil {
		return nil, err
	}
	end := ng.begin()
	defer end()
	n, err := ng.nodeset.CreateNode(id)
	if err != nil {
		return nil, err
	}
	ng.addNodes([]*region.Node{n})
	return n, nil
}

// AddElementNodes adds the nodes of the element to the group.
func (ng *NodesetGroup) AddElementNodes(e *region.Element) error {
	if err := ng.checkElement(e); err != nil {
		return err
	}
	ng.addNodes(e.Nodes())
	return nil
}

// RemoveElementNodes removes the nodes of the element from the group.
func (ng *NodesetGroup) RemoveElementNodes(e *region.Element) error {
	if err := ng.checkElement(e); err != nil {
		return err
	}
	ng.removeNodes(e.Nodes())
	return nil
}

func (ng *NodesetGroup) checkElement(e *region.Element) error {
	if err := ng.check(); err != nil {
		return err
	}
	if !e.IsValid() || e.Mesh().Fieldmodule() != ng.Fieldmodule() {
		return errors.Argument("element is not from the region of the group")
	}
	if ng.nodeset.DomainType() != region.DomainTypeNodes {
		return errors.Argument("elements have no %s", ng.nodeset.Name())
	}
	return nil
}

func (ng *NodesetGroup) nodeDestroyed(n *region.Node) {
	if !ng.ContainsNode(n) {
		return
	}
	delete(ng.nodes, n)
	ng.raise(ChangeRemove)
}

func (ng *NodesetGroup) conditionGroup(cond region.Field) (src *NodesetGroup, ok bool) {
	switch c := cond.(type) {
	case *NodesetGroup:
		if c.nodeset == ng.nodeset {
			return c, true
		}
	case *FieldGroup:
		if !c.localRegion {
			return c.nodesetGroups[nodesetIndex(ng.nodeset)], true
		}
	}
	return nil, false
}

func selectNodes(nodes []*region.Node, cond region.Field) []*region.Node {
	var sel []*region.Node
	for _, n := range nodes {
		v, err := cond.Evaluate(region.NodeLocation(n))
		if err != nil {
			slog.Debug("condition not evaluated", "node", n.Identifier(), "err", err)
			continue
		}
		if region.IsTrue(v) {
			sel = append(sel, n)
		}
	}
	return sel
}

// AddNodesConditional adds the nodes of the nodeset for which the
// condition field is true. A nodeset group or field group condition
// adds its nodes directly.
func (ng *NodesetGroup) AddNodesConditional(cond region.Field) error {
	if err := ng.check(); err != nil {
		return err
	}
	if err := checkCondition(cond, ng.Fieldmodule()); err != nil {
		return err
	}
	end := ng.begin()
	defer end()
	if src, ok := ng.conditionGroup(cond); ok {
		if src == nil || src == ng || src.Size() == 0 {
			return nil
		}
		ng.addNodes(src.Nodes())
		return nil
	}
	ng.addNodes(selectNodes(ng.nodeset.Nodes(), cond))
	return nil
}

// RemoveNodesConditional removes the nodes of the group for which the
// condition field is true. Every node of the group is tested.
func (ng *NodesetGroup) RemoveNodesConditional(cond region.Field) error {
	if err := ng.check(); err != nil {
		return err
	}
	if err := checkCondition(cond, ng.Fieldmodule()); err != nil {
		return err
	}
	if ng.Size() == 0 {
		return nil
	}
	end := ng.begin()
	defer end()
	if src, ok := ng.conditionGroup(cond); ok {
		switch {
		case src == nil || src.Size() == 0:
		case src == ng:
			ng.removeNodes(ng.Nodes())
		case src.Size() < ng.Size():
			ng.removeNodes(src.Nodes())
		default:
			var sel []*region.Node
			for _, n := range ng.Nodes() {
				if src.ContainsNode(n) {
					sel = append(sel, n)
				}
			}
			ng.removeNodes(sel)
		}
		return nil
	}
	ng.removeNodes(selectNodes(ng.Nodes(), cond))
	return nil
}
