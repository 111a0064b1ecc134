// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

import (
	"testing"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/fields"
	"cogentcore.org/zinc/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tree returns a root region with children "a" and "b",
// and "a" with child "c".
func tree(t *testing.T) (root, a, b, c *region.Region) {
	root = region.NewRoot()
	var err error
	a, err = root.CreateChild("a")
	require.NoError(t, err)
	b, err = root.CreateChild("b")
	require.NoError(t, err)
	c, err = a.CreateChild("c")
	require.NoError(t, err)
	for _, r := range []*region.Region{root, a, b, c} {
		for range 4 {
			_, err := r.Fieldmodule().Nodes().CreateNode(-1)
			require.NoError(t, err)
		}
	}
	return
}

func TestSubregionFieldGroup(t *testing.T) {
	root, a, _, c := tree(t)
	g := newNamed(t, root.Fieldmodule(), "sel")
	defer g.Release()

	assert.Nil(t, g.SubregionFieldGroup(a))
	ag, err := g.CreateSubregionFieldGroup(a)
	require.NoError(t, err)
	defer ag.Release()
	assert.Equal(t, "sel", ag.Name())
	assert.Same(t, ag, a.Fieldmodule().FindFieldByName("sel"))

	got := g.SubregionFieldGroup(a)
	assert.Same(t, ag, got)
	got.Release()
	_, err = g.CreateSubregionFieldGroup(a)
	assert.ErrorIs(t, err, errors.ErrArgument)

	assert.Nil(t, g.SubregionFieldGroup(c))
	_, err = g.CreateSubregionFieldGroup(c)
	assert.ErrorIs(t, err, errors.ErrArgument)
	_, err = g.CreateSubregionFieldGroup(root)
	assert.ErrorIs(t, err, errors.ErrArgument)

	// the own region gives the group itself
	self := g.SubregionFieldGroup(root)
	assert.Same(t, g, self)
	assert.Equal(t, 2, g.AccessCount())
	self.Release()
	self, err = g.GetOrCreateSubregionFieldGroup(root)
	require.NoError(t, err)
	assert.Same(t, g, self)
	self.Release()
	assert.Equal(t, 1, g.AccessCount())

	cg, err := ag.GetOrCreateSubregionFieldGroup(c)
	require.NoError(t, err)
	defer cg.Release()
	assert.Equal(t, "sel", cg.Name())
}

func TestSubregionNameInUse(t *testing.T) {
	root, _, b, _ := tree(t)
	g := newNamed(t, root.Fieldmodule(), "sel")
	defer g.Release()
	f, err := fields.NewConstant(b.Fieldmodule(), 1)
	require.NoError(t, err)
	defer f.Release()
	require.NoError(t, f.SetName("sel"))

	assert.Nil(t, g.SubregionFieldGroup(b))
	_, err = g.CreateSubregionFieldGroup(b)
	assert.ErrorIs(t, err, errors.ErrArgument)
	_, err = g.GetOrCreateSubregionFieldGroup(b)
	assert.ErrorIs(t, err, errors.ErrArgument)
}

func TestRemoveEmptySubgroups(t *testing.T) {
	root, a, b, _ := tree(t)
	g := newNamed(t, root.Fieldmodule(), "sel")
	defer g.Release()

	// unreferenced empty group is dropped and destroyed
	ag, err := g.CreateSubregionFieldGroup(a)
	require.NoError(t, err)
	ag.Release()
	require.NoError(t, g.RemoveEmptySubgroups())
	assert.False(t, ag.IsValid())
	assert.Nil(t, g.SubregionFieldGroup(a))

	// externally held group is kept
	ag, err = g.CreateSubregionFieldGroup(a)
	require.NoError(t, err)
	require.NoError(t, g.RemoveEmptySubgroups())
	got := g.SubregionFieldGroup(a)
	assert.Same(t, ag, got)
	got.Release()

	// externally held subobject group keeps its group
	ng, err := ag.CreateNodesetGroup(a.Fieldmodule().Nodes())
	require.NoError(t, err)
	ag.Release()
	require.NoError(t, g.RemoveEmptySubgroups())
	assert.True(t, ag.IsValid())
	got = g.SubregionFieldGroup(a)
	assert.Same(t, ag, got)
	got.Release()
	ng.Release()
	require.NoError(t, g.RemoveEmptySubgroups())
	assert.False(t, ag.IsValid())
	assert.False(t, ng.IsValid())

	// a managed group is found again by name and relinked
	bg, err := g.CreateSubregionFieldGroup(b)
	require.NoError(t, err)
	bg.SetManaged(true)
	bg.Release()
	require.NoError(t, g.RemoveEmptySubgroups())
	assert.True(t, bg.IsValid())
	assert.Equal(t, 0, bg.AccessCount())
	assert.Equal(t, 0, g.subregions.Len())
	got = g.SubregionFieldGroup(b)
	assert.Same(t, bg, got)
	got.Release()
	assert.Equal(t, 1, g.subregions.Len())
	_, err = g.CreateSubregionFieldGroup(b)
	assert.ErrorIs(t, err, errors.ErrArgument)
	bg.SetManaged(false)
}

func TestRemoveSubregionFieldGroup(t *testing.T) {
	root, a, b, c := tree(t)
	g := newNamed(t, root.Fieldmodule(), "sel")
	defer g.Release()
	ag, err := g.CreateSubregionFieldGroup(a)
	require.NoError(t, err)
	defer ag.Release()

	assert.ErrorIs(t, g.RemoveSubregionFieldGroup(nil), errors.ErrArgument)
	assert.ErrorIs(t, g.RemoveSubregionFieldGroup(c), errors.ErrArgument)
	assert.ErrorIs(t, g.RemoveSubregionFieldGroup(b), errors.ErrNotFound)

	require.NoError(t, ag.AddLocalRegion())
	rec := recordChanges(g)
	require.NoError(t, g.RemoveSubregionFieldGroup(a))
	assert.Equal(t, []Change{ChangeRemove}, rec.changes)
	assert.Equal(t, ChangeRemove, g.ChangeDetail().NonLocal)
	assert.True(t, ag.IsValid())
	assert.True(t, ag.ContainsLocalRegion())
	assert.Equal(t, 1, ag.AccessCount())
	assert.ErrorIs(t, g.RemoveSubregionFieldGroup(a), errors.ErrNotFound)

	// still held, so found again by name
	assert.True(t, g.ContainsRegion(a))
	assert.Equal(t, 1, g.subregions.Len())
	assert.Equal(t, 2, ag.AccessCount())
}

func TestRegionMembership(t *testing.T) {
	root, a, b, c := tree(t)
	g := newNamed(t, root.Fieldmodule(), "sel")
	defer g.Release()

	require.NoError(t, g.AddRegion(c))
	assert.True(t, g.ContainsRegion(c))
	assert.False(t, g.ContainsRegion(a))
	assert.False(t, g.ContainsRegion(b))
	assert.False(t, g.IsEmpty())
	assert.True(t, g.IsEmptyLocal())

	first := g.FirstNonEmptySubregionFieldGroup()
	require.NotNil(t, first)
	assert.Same(t, c, first.Fieldmodule().Region())
	first.Release()

	require.NoError(t, g.AddRegion(root))
	assert.True(t, g.ContainsLocalRegion())
	assert.True(t, g.ContainsRegion(root))

	require.NoError(t, g.RemoveRegion(a))
	assert.False(t, g.ContainsRegion(c))
	assert.True(t, g.ContainsLocalRegion())
	assert.Nil(t, g.FirstNonEmptySubregionFieldGroup())

	require.NoError(t, g.RemoveRegion(b))
	other := region.NewRoot()
	assert.ErrorIs(t, g.AddRegion(other), errors.ErrArgument)
	assert.ErrorIs(t, g.RemoveRegion(nil), errors.ErrArgument)
	assert.False(t, g.ContainsRegion(other))

	require.NoError(t, g.RemoveRegion(root))
	assert.True(t, g.IsEmpty())
	require.NoError(t, g.RemoveEmptySubgroups())
	assert.Nil(t, g.SubregionFieldGroup(a))
}

func TestClearIsLocal(t *testing.T) {
	root, a, _, _ := tree(t)
	g := newNamed(t, root.Fieldmodule(), "sel")
	defer g.Release()
	require.NoError(t, g.AddLocalRegion())
	require.NoError(t, g.AddRegion(a))
	ng, err := g.CreateNodesetGroup(root.Fieldmodule().Nodes())
	require.NoError(t, err)
	require.NoError(t, ng.AddNode(root.Fieldmodule().Nodes().FindNodeByIdentifier(1)))
	ng.Release()

	rec := recordChanges(g)
	require.NoError(t, g.Clear())
	assert.Equal(t, []Change{ChangeRemove}, rec.changes)
	assert.False(t, g.ContainsLocalRegion())
	assert.True(t, g.IsEmptyLocal())
	assert.Nil(t, g.NodesetGroup(root.Fieldmodule().Nodes()))
	assert.True(t, g.ContainsRegion(a))
	assert.False(t, g.IsEmpty())

	require.NoError(t, g.ClearLocal())
	assert.Len(t, rec.changes, 1)
}

func TestHierarchicalChanges(t *testing.T) {
	root, a, _, c := tree(t)
	g := newNamed(t, root.Fieldmodule(), "sel")
	defer g.Release()
	rec := recordChanges(g)

	cg, err := g.GetOrCreateSubregionFieldGroup(a)
	require.NoError(t, err)
	ccg, err := cg.GetOrCreateSubregionFieldGroup(c)
	require.NoError(t, err)
	ng, err := ccg.CreateNodesetGroup(c.Fieldmodule().Nodes())
	require.NoError(t, err)
	node := c.Fieldmodule().Nodes().FindNodeByIdentifier(3)

	require.NoError(t, ng.AddNode(node))
	assert.Equal(t, []Change{ChangeAdd}, rec.changes)
	assert.Equal(t, ChangeDetail{NonLocal: ChangeAdd}, g.ChangeDetail())

	// pending changes of a dropped group reach the parent
	root.BeginHierarchicalChange()
	require.NoError(t, ng.RemoveNode(node))
	ng.Release()
	ccg.Release()
	cg.Release()
	require.NoError(t, g.RemoveEmptySubgroups())
	assert.Nil(t, g.SubregionFieldGroup(a))
	assert.Len(t, rec.changes, 1)
	require.NoError(t, root.EndHierarchicalChange())
	assert.Equal(t, []Change{ChangeAdd, ChangeRemove}, rec.changes)
	assert.Equal(t, ChangeDetail{NonLocal: ChangeRemove}, g.ChangeDetail())
}

func TestRegionDestroyUnlinks(t *testing.T) {
	root, a, _, _ := tree(t)
	g := newNamed(t, root.Fieldmodule(), "sel")
	defer g.Release()
	ag, err := g.CreateSubregionFieldGroup(a)
	require.NoError(t, err)
	defer ag.Release()
	ng, err := ag.CreateNodesetGroup(a.Fieldmodule().Nodes())
	require.NoError(t, err)
	defer ng.Release()
	it := ng.CreateNodeiterator()

	require.NoError(t, root.RemoveChild(a))
	assert.Equal(t, 0, g.subregions.Len())
	assert.False(t, ag.IsValid())
	assert.Nil(t, it.Next())
	assert.Equal(t, 1, g.AccessCount())
	assert.ErrorIs(t, ng.AddNode(nil), errors.ErrArgument)
}

func TestRegionDestroyRaisesRemove(t *testing.T) {
	root, a, b, _ := tree(t)
	g := newNamed(t, root.Fieldmodule(), "sel")
	defer g.Release()
	rec := recordChanges(g)

	ag, err := g.CreateSubregionFieldGroup(a)
	require.NoError(t, err)
	ng, err := ag.CreateNodesetGroup(a.Fieldmodule().Nodes())
	require.NoError(t, err)
	require.NoError(t, ng.AddNode(a.Fieldmodule().Nodes().FindNodeByIdentifier(1)))
	ng.Release()
	ag.Release()
	bg, err := g.CreateSubregionFieldGroup(b)
	require.NoError(t, err)
	bg.Release()
	assert.Equal(t, []Change{ChangeAdd}, rec.changes)

	require.NoError(t, root.RemoveChild(a))
	assert.True(t, g.IsEmpty())
	assert.Equal(t, []Change{ChangeAdd, ChangeRemove}, rec.changes)
	assert.Equal(t, ChangeDetail{NonLocal: ChangeRemove}, g.ChangeDetail())

	// an empty subregion group goes without a change
	require.NoError(t, root.RemoveChild(b))
	assert.Equal(t, 0, g.subregions.Len())
	assert.Len(t, rec.changes, 2)
}
