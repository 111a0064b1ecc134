// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fields_test

import (
	"testing"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/fields"
	"cogentcore.org/zinc/region"
	"cogentcore.org/zinc/region/meshgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoCubes(t *testing.T) (*region.Fieldmodule, *fields.NodeValue) {
	fm := region.NewRoot().Fieldmodule()
	coords, err := meshgen.TwoCubes(fm)
	require.NoError(t, err)
	t.Cleanup(coords.Release)
	return fm, coords
}

func TestNodeValue(t *testing.T) {
	fm, coords := twoCubes(t)
	assert.Same(t, coords, fm.FindFieldByName(meshgen.CoordinatesName))

	n12 := fm.Nodes().FindNodeByIdentifier(12)
	v, err := coords.Evaluate(region.NodeLocation(n12))
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 10, 10}, v)

	e2 := fm.FindMeshByDimension(3).FindElementByIdentifier(2)
	v, err = coords.Evaluate(region.ElementCentre(e2))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{15, 5, 5}, v, 1e-12)

	n, err := fm.Nodes().CreateNode(-1)
	require.NoError(t, err)
	_, err = coords.Evaluate(region.NodeLocation(n))
	assert.ErrorIs(t, err, errors.ErrNotFound)
	assert.ErrorIs(t, coords.SetNodeValues(n, 1, 2), errors.ErrArgument)
}

func TestComponentAndCompare(t *testing.T) {
	fm, coords := twoCubes(t)
	x, err := fields.NewComponent(coords, 1)
	require.NoError(t, err)
	defer x.Release()
	_, err = fields.NewComponent(coords, 4)
	assert.ErrorIs(t, err, errors.ErrArgument)

	ten, err := fields.NewConstant(fm, 10)
	require.NoError(t, err)
	defer ten.Release()
	gt, err := fields.NewGreaterThan(x, ten)
	require.NoError(t, err)
	defer gt.Release()
	lt, err := fields.NewLessThan(x, ten)
	require.NoError(t, err)
	defer lt.Release()
	_, err = fields.NewGreaterThan(coords, ten)
	assert.ErrorIs(t, err, errors.ErrArgument)

	mesh := fm.FindMeshByDimension(3)
	loc1 := region.ElementCentre(mesh.FindElementByIdentifier(1))
	loc2 := region.ElementCentre(mesh.FindElementByIdentifier(2))
	v, _ := gt.Evaluate(loc1)
	assert.Equal(t, []float64{0}, v)
	v, _ = gt.Evaluate(loc2)
	assert.Equal(t, []float64{1}, v)
	v, _ = lt.Evaluate(loc1)
	assert.Equal(t, []float64{1}, v)

	or, err := fields.NewOr(gt, lt)
	require.NoError(t, err)
	defer or.Release()
	and, err := fields.NewAnd(gt, lt)
	require.NoError(t, err)
	defer and.Release()
	not, err := fields.NewNot(and)
	require.NoError(t, err)
	defer not.Release()
	for _, loc := range []region.Location{loc1, loc2} {
		v, _ = or.Evaluate(loc)
		assert.Equal(t, []float64{1}, v)
		v, _ = and.Evaluate(loc)
		assert.Equal(t, []float64{0}, v)
		v, _ = not.Evaluate(loc)
		assert.Equal(t, []float64{1}, v)
	}
}

func TestSourcesFromOtherRegion(t *testing.T) {
	fm, _ := twoCubes(t)
	other := region.NewRoot().Fieldmodule()
	a, err := fields.NewConstant(fm, 1)
	require.NoError(t, err)
	b, err := fields.NewConstant(other, 1)
	require.NoError(t, err)
	_, err = fields.NewAnd(a, b)
	assert.ErrorIs(t, err, errors.ErrArgument)
	_, err = fields.NewNot(nil)
	assert.ErrorIs(t, err, errors.ErrArgument)
	_, err = fields.NewConstant(fm)
	assert.ErrorIs(t, err, errors.ErrArgument)
}

func TestIsOnFace(t *testing.T) {
	fm, _ := twoCubes(t)
	faces := fm.FindMeshByDimension(2)
	on := func(ft region.FaceType) []int {
		f, err := fields.NewIsOnFace(fm, ft)
		require.NoError(t, err)
		defer f.Release()
		var ids []int
		for _, e := range faces.Elements() {
			v, err := f.Evaluate(region.ElementCentre(e))
			require.NoError(t, err)
			if region.IsTrue(v) {
				ids = append(ids, e.Identifier())
			}
		}
		return ids
	}
	assert.Equal(t, []int{1, 2}, on(region.FaceTypeXi1_0))
	assert.Equal(t, []int{2, 7}, on(region.FaceTypeXi1_1))
	assert.Equal(t, []int{3, 8}, on(region.FaceTypeXi2_0))
	assert.Len(t, on(region.FaceTypeAll), 11)
	assert.Len(t, on(region.FaceTypeAnyFace), 11)
	assert.Empty(t, on(region.FaceTypeNoFace))

	_, err := fields.NewIsOnFace(fm, region.FaceTypeInvalid)
	assert.ErrorIs(t, err, errors.ErrArgument)
}
