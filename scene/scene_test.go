// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/fields"
	"cogentcore.org/zinc/group"
	"cogentcore.org/zinc/region"
	"cogentcore.org/zinc/region/meshgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []ChangeFlags
}

func (rec *recorder) record(ev Event) {
	rec.events = append(rec.events, ev.ChangeFlags())
}

func (rec *recorder) take() []ChangeFlags {
	events := rec.events
	rec.events = nil
	return events
}

func newRecorder(t *testing.T, s *Scene) (*Selectionnotifier, *recorder) {
	n, err := s.CreateSelectionnotifier()
	require.NoError(t, err)
	rec := &recorder{}
	require.NoError(t, n.SetCallback(rec.record))
	return n, rec
}

func newGroup(t *testing.T, fm *region.Fieldmodule, name string) *group.FieldGroup {
	g, err := group.New(fm)
	require.NoError(t, err)
	require.NoError(t, g.SetName(name))
	return g
}

func TestSetSelectionField(t *testing.T) {
	root := region.NewRoot()
	fm := root.Fieldmodule()
	coords, err := meshgen.TwoCubes(fm)
	require.NoError(t, err)
	coords.Release()
	mesh3d := fm.FindMeshByDimension(3)
	e1 := mesh3d.FindElementByIdentifier(1)

	s := Of(root)
	require.NotNil(t, s)
	assert.Same(t, s, Of(root))
	n, rec := newRecorder(t, s)
	defer n.Release()

	g := newGroup(t, fm, "group")
	defer g.Release()
	mg, err := g.CreateMeshGroup(mesh3d)
	require.NoError(t, err)
	defer mg.Release()
	require.NoError(t, mg.AddElement(e1))
	assert.Empty(t, rec.take())

	require.NoError(t, s.SetSelectionField(g))
	assert.Equal(t, []ChangeFlags{ChangeAdd}, rec.take())
	sel := s.SelectionField()
	assert.Same(t, g, sel)
	sel.Release()
	require.NoError(t, s.SetSelectionField(g))
	assert.Empty(t, rec.take())

	require.NoError(t, mg.RemoveElement(e1))
	assert.Equal(t, []ChangeFlags{ChangeRemove}, rec.take())
	require.NoError(t, mg.AddElement(e1))
	assert.Equal(t, []ChangeFlags{ChangeAdd}, rec.take())

	fm.BeginChange()
	require.NoError(t, mg.RemoveElement(e1))
	require.NoError(t, g.RemoveEmptySubgroups())
	assert.Empty(t, rec.events)
	require.NoError(t, fm.EndChange())
	assert.Equal(t, []ChangeFlags{ChangeRemove}, rec.take())

	require.NoError(t, mg.AddElement(e1))
	rec.take()
	require.NoError(t, s.SetSelectionField(nil))
	assert.Equal(t, []ChangeFlags{ChangeRemove}, rec.take())
	assert.Nil(t, s.SelectionField())
	assert.Equal(t, 2, g.AccessCount())

	c, err := fields.NewConstant(fm, 1)
	require.NoError(t, err)
	defer c.Release()
	assert.ErrorIs(t, s.SetSelectionField(c), errors.ErrArgument)
	other := newGroup(t, region.NewRoot().Fieldmodule(), "group")
	defer other.Release()
	assert.ErrorIs(t, s.SetSelectionField(other), errors.ErrArgument)
	assert.Empty(t, rec.events)
}

func TestSceneBeginChange(t *testing.T) {
	root := region.NewRoot()
	fm := root.Fieldmodule()
	nodes := fm.Nodes()
	node, err := nodes.CreateNode(-1)
	require.NoError(t, err)

	s := Of(root)
	n, rec := newRecorder(t, s)
	defer n.Release()
	g := newGroup(t, fm, "group")
	defer g.Release()
	require.NoError(t, s.SetSelectionField(g))
	ng, err := g.CreateNodesetGroup(nodes)
	require.NoError(t, err)
	defer ng.Release()

	s.BeginChange()
	require.NoError(t, ng.AddNode(node))
	require.NoError(t, ng.RemoveNode(node))
	assert.Empty(t, rec.events)
	require.NoError(t, s.EndChange())
	assert.Equal(t, []ChangeFlags{ChangeAdd | ChangeRemove}, rec.take())
	assert.ErrorIs(t, s.EndChange(), errors.ErrArgument)
}

func TestHierarchicalSelection(t *testing.T) {
	root := region.NewRoot()
	child, err := root.CreateChild("child")
	require.NoError(t, err)
	nodes := child.Fieldmodule().Nodes()
	for range 4 {
		_, err := nodes.CreateNode(-1)
		require.NoError(t, err)
	}
	node2 := nodes.FindNodeByIdentifier(2)

	s := Of(root)
	n, rec := newRecorder(t, s)
	defer n.Release()
	cs := Of(child)
	cn, crec := newRecorder(t, cs)
	defer cn.Release()

	g := newGroup(t, root.Fieldmodule(), "group")
	defer g.Release()
	require.NoError(t, s.SetSelectionField(g))
	assert.Empty(t, rec.events)
	cg, err := g.CreateSubregionFieldGroup(child)
	require.NoError(t, err)
	defer cg.Release()
	ng, err := cg.CreateNodesetGroup(nodes)
	require.NoError(t, err)
	defer ng.Release()
	assert.Nil(t, cs.SelectionField())

	require.NoError(t, ng.AddNode(node2))
	assert.Equal(t, []ChangeFlags{ChangeAdd}, rec.take())
	assert.Equal(t, []ChangeFlags{ChangeAdd}, crec.take())
	sel := cs.SelectionField()
	assert.Same(t, cg, sel)
	sel.Release()

	require.NoError(t, ng.RemoveNode(node2))
	assert.Equal(t, []ChangeFlags{ChangeRemove}, rec.take())
	assert.Equal(t, []ChangeFlags{ChangeRemove}, crec.take())

	// a new scene takes the subregion group of its parent selection
	grandchild, err := child.CreateChild("grandchild")
	require.NoError(t, err)
	gcg, err := cg.CreateSubregionFieldGroup(grandchild)
	require.NoError(t, err)
	defer gcg.Release()
	sel = Of(grandchild).SelectionField()
	assert.Same(t, gcg, sel)
	sel.Release()

	require.NoError(t, s.SetSelectionField(nil))
	assert.Nil(t, cs.SelectionField())
	assert.Nil(t, Of(grandchild).SelectionField())
	assert.Empty(t, rec.events)
	assert.Empty(t, crec.events)
}

func TestReentrantCallbacks(t *testing.T) {
	root := region.NewRoot()
	fm := root.Fieldmodule()
	nodes := fm.Nodes()
	node, err := nodes.CreateNode(-1)
	require.NoError(t, err)

	s := Of(root)
	g := newGroup(t, fm, "group")
	defer g.Release()
	require.NoError(t, s.SetSelectionField(g))
	ng, err := g.CreateNodesetGroup(nodes)
	require.NoError(t, err)
	defer ng.Release()

	var created *Selectionnotifier
	createdRec := &recorder{}
	creator, err := s.CreateSelectionnotifier()
	require.NoError(t, err)
	defer creator.Release()
	require.NoError(t, creator.SetCallback(func(ev Event) {
		if created == nil {
			created, err = s.CreateSelectionnotifier()
			require.NoError(t, err)
			require.NoError(t, created.SetCallback(createdRec.record))
		}
	}))

	releaser, err := s.CreateSelectionnotifier()
	require.NoError(t, err)
	released := 0
	require.NoError(t, releaser.SetCallback(func(ev Event) {
		released++
		releaser.Release()
	}))

	last, rec := newRecorder(t, s)
	defer last.Release()

	require.NoError(t, ng.AddNode(node))
	assert.Equal(t, []ChangeFlags{ChangeAdd}, rec.take())
	assert.Equal(t, 1, released)
	assert.False(t, releaser.IsValid())
	require.NotNil(t, created)
	defer created.Release()
	assert.Empty(t, createdRec.events)
	assert.Len(t, s.notifiers, 3)

	require.NoError(t, ng.RemoveNode(node))
	assert.Equal(t, []ChangeFlags{ChangeRemove}, rec.take())
	assert.Equal(t, []ChangeFlags{ChangeRemove}, createdRec.take())
	assert.Equal(t, 1, released)

	require.NoError(t, last.ClearCallback())
	require.NoError(t, ng.AddNode(node))
	assert.Empty(t, rec.events)
	assert.Equal(t, []ChangeFlags{ChangeAdd}, createdRec.take())
	assert.ErrorIs(t, last.SetCallback(nil), errors.ErrArgument)
}

func TestFinalEvent(t *testing.T) {
	root := region.NewRoot()
	child, err := root.CreateChild("child")
	require.NoError(t, err)
	g := newGroup(t, root.Fieldmodule(), "group")
	defer g.Release()
	cg, err := g.CreateSubregionFieldGroup(child)
	require.NoError(t, err)
	require.NoError(t, cg.AddLocalRegion())
	cg.Release()

	s := Of(root)
	n, rec := newRecorder(t, s)
	defer n.Release()
	require.NoError(t, s.SetSelectionField(g))
	assert.Equal(t, []ChangeFlags{ChangeAdd}, rec.take())

	cs := Of(child)
	cn, crec := newRecorder(t, cs)
	defer cn.Release()
	assert.True(t, g.ContainsRegion(child))

	require.NoError(t, root.RemoveChild(child))
	assert.Equal(t, []ChangeFlags{ChangeFinal}, crec.take())
	assert.Equal(t, []ChangeFlags{ChangeRemove}, rec.take())
	assert.False(t, cs.IsValid())
	assert.Nil(t, cn.Scene())
	assert.True(t, cn.IsValid())
	assert.Nil(t, Of(child))
	_, err = cs.CreateSelectionnotifier()
	assert.ErrorIs(t, err, errors.ErrArgument)
	assert.ErrorIs(t, cs.SetSelectionField(nil), errors.ErrArgument)
	assert.False(t, g.ContainsRegion(child))

	root.Destroy()
	root.Destroy()
	assert.Equal(t, []ChangeFlags{ChangeFinal}, rec.take())
	assert.Empty(t, crec.events)
	assert.Nil(t, n.Scene())
}

func TestChildRegionRemoved(t *testing.T) {
	root := region.NewRoot()
	child, err := root.CreateChild("child")
	require.NoError(t, err)
	nodes := child.Fieldmodule().Nodes()
	node, err := nodes.CreateNode(-1)
	require.NoError(t, err)

	s := Of(root)
	n, rec := newRecorder(t, s)
	defer n.Release()
	g := newGroup(t, root.Fieldmodule(), "group")
	defer g.Release()
	require.NoError(t, s.SetSelectionField(g))

	cg, err := g.CreateSubregionFieldGroup(child)
	require.NoError(t, err)
	ng, err := cg.CreateNodesetGroup(nodes)
	require.NoError(t, err)
	require.NoError(t, ng.AddNode(node))
	ng.Release()
	cg.Release()
	assert.Equal(t, []ChangeFlags{ChangeAdd}, rec.take())

	require.NoError(t, root.RemoveChild(child))
	assert.True(t, g.IsEmpty())
	assert.Equal(t, []ChangeFlags{ChangeRemove}, rec.take())
}
