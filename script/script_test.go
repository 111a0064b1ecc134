// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/group"
	"cogentcore.org/zinc/scene"
)

func newScript(t *testing.T) (*Script, *bytes.Buffer) {
	var buf bytes.Buffer
	sc := New(&buf)
	t.Cleanup(sc.Close)
	return sc, &buf
}

func run(t *testing.T, sc *Script, lines ...string) {
	t.Helper()
	require.NoError(t, sc.Run(strings.NewReader(strings.Join(lines, "\n"))))
}

func TestGroupCommands(t *testing.T) {
	sc, buf := newScript(t)
	run(t, sc,
		"mesh block 2 1 1 10",
		"group create sel",
		"group mode sel full",
		"group add element sel 3 1",
		"group list sel",
	)
	out := buf.String()
	assert.Contains(t, out, "mesh /: 2 elements, 11 faces, 20 lines, 12 nodes\n")
	assert.Contains(t, out, "group sel /: mode Full, local region false, empty false\n")
	assert.Contains(t, out, "  mesh3d: 1\n")
	assert.Contains(t, out, "  nodes: 1 2 4 5 7 8 10 11\n")

	fm := sc.Region().Fieldmodule()
	g := group.FindByName(fm, "sel")
	require.NotNil(t, g)
	defer g.Release()
	mg := g.MeshGroup(fm.FindMeshByDimension(2))
	require.NotNil(t, mg)
	assert.Equal(t, 6, mg.Size())
	mg.Release()

	run(t, sc,
		"group create other",
		"group add field other 3 sel",
		"group remove element sel 3 1",
	)
	other := group.FindByName(fm, "other")
	require.NotNil(t, other)
	defer other.Release()
	mg = other.MeshGroup(fm.FindMeshByDimension(3))
	require.NotNil(t, mg)
	assert.Equal(t, 1, mg.Size())
	mg.Release()
	assert.True(t, g.IsEmpty())

	run(t, sc, "group add local sel")
	assert.True(t, g.ContainsLocalRegion())
	run(t, sc, "group clear sel")
	assert.False(t, g.ContainsLocalRegion())
}

func TestGroupMode(t *testing.T) {
	sc, _ := newScript(t)
	sc.Mode = group.SubelementHandlingModeFull
	run(t, sc, "mesh block 1 1 1 1", "group create sel")
	g := group.FindByName(sc.Region().Fieldmodule(), "sel")
	require.NotNil(t, g)
	defer g.Release()
	assert.Equal(t, group.SubelementHandlingModeFull, g.SubelementHandlingMode())
	assert.ErrorIs(t, sc.Exec("group mode sel partial"), errors.ErrArgument)
}

func TestRunErrors(t *testing.T) {
	sc, _ := newScript(t)
	err := sc.Run(strings.NewReader(strings.Join([]string{
		"# groups",
		"",
		"group create",
		"bogus command",
		"group add element missing 3 1",
		"mesh block 1 1 1 x",
		"group create \"sel",
		"group",
		"group create sel",
	}, "\n")))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrArgument)
	assert.ErrorIs(t, err, errors.ErrNotFound)
	require.Len(t, sc.Errors, 6)
	for i, line := range []int{3, 4, 5, 6, 7, 8} {
		assert.True(t, strings.HasPrefix(sc.Errors[i].Error(), "line "+strconv.Itoa(line)+": "), sc.Errors[i].Error())
	}
	assert.ErrorIs(t, sc.Errors[1], errors.ErrNotFound)
	g := group.FindByName(sc.Region().Fieldmodule(), "sel")
	assert.NotNil(t, g)
	g.Release()
}

func TestRegionCommands(t *testing.T) {
	sc, buf := newScript(t)
	run(t, sc,
		"region create a/b",
		"region use a",
		"region create c",
		"region use b",
		"region list",
	)
	assert.Equal(t, "/a/b", sc.Region().Path())
	assert.Equal(t, "region /\nregion /a\nregion /a/b *\nregion /a/c\n", buf.String())

	assert.ErrorIs(t, sc.Exec("region use missing"), errors.ErrNotFound)
	assert.ErrorIs(t, sc.Exec("region remove /"), errors.ErrArgument)
	run(t, sc, "region remove /a")
	assert.Equal(t, "/", sc.Region().Path())
	assert.Nil(t, sc.Root.FindChild("a"))
	run(t, sc, "region create /d", "region use /d", "region use")
	assert.Same(t, sc.Root, sc.Region())
}

func TestMeshFiles(t *testing.T) {
	sc, buf := newScript(t)
	filename := filepath.Join(t.TempDir(), "block.yaml")
	run(t, sc,
		"mesh block 1 1 1 1",
		"mesh save '"+filename+"'",
		"region create b",
		"region use b",
		"mesh open '"+filename+"'",
	)
	assert.Contains(t, buf.String(), "mesh /b: 1 elements, 6 faces, 12 lines, 8 nodes\n")
	require.NoError(t, sc.Exec("region use /"))
	run(t, sc, "region create empty", "region use empty")
	assert.ErrorIs(t, sc.Exec("mesh save x.yaml"), errors.ErrNotFound)
}

func TestSelectionCommands(t *testing.T) {
	sc, buf := newScript(t)
	run(t, sc,
		"region create a",
		"region use a",
		"mesh block 1 1 1 1",
		"group create sel",
		"selection set sel",
		"group add element sel 3 1",
		"selection list",
		"selection clear",
		"selection list",
	)
	out := buf.String()
	assert.Contains(t, out, "selection /a: Add\n")
	assert.Contains(t, out, "selection /a: Remove\n")
	assert.Contains(t, out, "group sel /a: mode None, local region false, empty false\n")
	assert.Contains(t, out, "selection /a: none\n")
	assert.Nil(t, scene.Of(sc.Region()).SelectionField())
	assert.ErrorIs(t, sc.Exec("selection set missing"), errors.ErrNotFound)
}

func TestSpectrumCommands(t *testing.T) {
	sc, buf := newScript(t)
	filename := filepath.Join(t.TempDir(), "temp.toml")
	run(t, sc,
		"spectrum preset temp blue_white_red",
		"spectrum eval temp -1",
		"spectrum eval temp 0",
		"spectrum range temp",
		"spectrum save temp '"+filename+"'",
		"spectrum open copy '"+filename+"'",
		"spectrum eval copy 1",
		"spectrum default temp",
		"spectrum list",
	)
	out := buf.String()
	assert.Contains(t, out, "spectrum temp(-1): 0 0 1 1\n")
	assert.Contains(t, out, "spectrum temp(0): 1 1 1 1\n")
	assert.Contains(t, out, "spectrum temp: range -1 1\n")
	assert.Contains(t, out, "spectrum copy(1): 1 0 0 1\n")
	assert.Contains(t, out, "spectrum temp: 2 components, range -1 1\n")
	assert.Contains(t, out, "spectrum copy: 2 components, range -1 1\n")

	def := sc.Spectra.DefaultSpectrum()
	require.NotNil(t, def)
	assert.Equal(t, "temp", def.Name())
	def.Release()

	run(t, sc,
		"spectrum create grey",
		"spectrum add grey monochrome",
		"spectrum add grey alpha 2",
		"spectrum fit grey 4 2 8",
		"spectrum eval grey 5 5",
	)
	assert.Contains(t, buf.String(), "spectrum grey(5 5): 0.5 0.5 0.5 0.5\n")
	assert.ErrorIs(t, sc.Exec("spectrum create grey"), errors.ErrArgument)
	assert.ErrorIs(t, sc.Exec("spectrum eval missing 1"), errors.ErrNotFound)
	assert.ErrorIs(t, sc.Exec("spectrum preset temp purple"), errors.ErrArgument)
	assert.ErrorIs(t, sc.Exec("spectrum range temp 1"), errors.ErrArgument)
}

func TestCommandNames(t *testing.T) {
	sc, _ := newScript(t)
	names := sc.CommandNames()
	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, "group create")
	assert.Contains(t, names, "spectrum eval")
	assert.Len(t, names, len(sc.Commands))
}
