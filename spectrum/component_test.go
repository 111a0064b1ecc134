// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/zinc/base/errors"
)

const tol = 1e-5

func assertRGBA(t *testing.T, want, got RGBA) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "channel %d of %v", i, got)
	}
}

// single returns a new spectrum with one default component.
func single(t *testing.T) (*Spectrum, *Component) {
	s := New()
	t.Cleanup(s.Release)
	c, err := s.CreateComponent()
	require.NoError(t, err)
	t.Cleanup(c.Release)
	return s, c
}

func TestComponentDefaults(t *testing.T) {
	_, c := single(t)
	assert.Equal(t, 0.0, c.RangeMinimum())
	assert.Equal(t, 1.0, c.RangeMaximum())
	assert.Equal(t, 0.0, c.ColourMinimum())
	assert.Equal(t, 1.0, c.ColourMaximum())
	assert.Equal(t, ColourMappingRainbow, c.ColourMapping())
	assert.Equal(t, ScaleTypeLinear, c.ScaleType())
	assert.Equal(t, 1.0, c.Exaggeration())
	assert.Equal(t, 0.5, c.StepValue())
	assert.Equal(t, 0.2, c.BandedRatio())
	assert.Equal(t, 10, c.NumberOfBands())
	assert.Equal(t, 1, c.FieldComponent())
	assert.True(t, c.IsActive())
	assert.True(t, c.IsExtendAbove())
	assert.True(t, c.IsExtendBelow())
	assert.False(t, c.IsColourReverse())
	assert.False(t, c.IsFixMinimum())
	assert.False(t, c.IsFixMaximum())
}

func TestComponentSetters(t *testing.T) {
	_, c := single(t)
	assert.ErrorIs(t, c.SetColourMinimum(-0.1), errors.ErrArgument)
	assert.ErrorIs(t, c.SetColourMaximum(1.5), errors.ErrArgument)
	assert.ErrorIs(t, c.SetBandedRatio(0), errors.ErrArgument)
	assert.ErrorIs(t, c.SetBandedRatio(1.01), errors.ErrArgument)
	assert.ErrorIs(t, c.SetNumberOfBands(0), errors.ErrArgument)
	assert.ErrorIs(t, c.SetFieldComponent(0), errors.ErrArgument)
	assert.ErrorIs(t, c.SetColourMapping(ColourMappingInvalid), errors.ErrArgument)
	assert.ErrorIs(t, c.SetScaleType(ScaleTypeInvalid), errors.ErrArgument)
	assert.Equal(t, 0.2, c.BandedRatio())

	require.NoError(t, c.SetBandedRatio(1))
	assert.Equal(t, 1.0, c.BandedRatio())
	require.NoError(t, c.SetBandedRatio(0.3333))
	assert.Equal(t, 0.333, c.BandedRatio())
	require.NoError(t, c.SetColourMaximum(0))
	assert.Equal(t, 0.0, c.ColourMaximum())

	require.NoError(t, c.SetStepValue(0.25))
	assert.Equal(t, 0.25, c.StepValue())
	require.NoError(t, c.SetStepValue(3))
	assert.Equal(t, 0.5, c.StepValue())
	require.NoError(t, c.SetRangeMaximum(4))
	assert.Equal(t, 0.5, c.StepValue())
	require.NoError(t, c.SetRangeMinimum(1))
	assert.Equal(t, 2.5, c.StepValue())
}

func TestRainbow(t *testing.T) {
	s, _ := single(t)
	assertRGBA(t, RGBA{1, 0, 0, 1}, s.Evaluate([]float64{0}, RGBA{}))
	assertRGBA(t, RGBA{0.25, 1, 0.25, 1}, s.Evaluate([]float64{0.5}, RGBA{}))
	assertRGBA(t, RGBA{0, 0, 1, 1}, s.Evaluate([]float64{1}, RGBA{}))
	assertRGBA(t, RGBA{1, 0.45, 0, 1}, s.Evaluate([]float64{0.1}, RGBA{}))
}

func TestExtend(t *testing.T) {
	s, c := single(t)
	require.NoError(t, c.SetColourMapping(ColourMappingRed))
	assertRGBA(t, RGBA{1, 0, 0, 1}, s.Evaluate([]float64{2}, RGBA{}))
	assertRGBA(t, RGBA{0, 0, 0, 1}, s.Evaluate([]float64{-1}, RGBA{}))

	require.NoError(t, c.SetExtendAbove(false))
	require.NoError(t, c.SetExtendBelow(false))
	require.NoError(t, s.SetMaterialOverwrite(false))
	material := RGBA{0.5, 0.5, 0.5, 1}
	assertRGBA(t, material, s.Evaluate([]float64{2}, material))
	assertRGBA(t, material, s.Evaluate([]float64{-1}, material))
	assertRGBA(t, RGBA{0.25, 0.5, 0.5, 1}, s.Evaluate([]float64{0.25}, material))
	assertRGBA(t, RGBA{1, 0.5, 0.5, 1}, s.Evaluate([]float64{1}, material))
}

func TestLogScale(t *testing.T) {
	s, c := single(t)
	require.NoError(t, c.SetColourMapping(ColourMappingMonochrome))
	require.NoError(t, c.SetScaleType(ScaleTypeLog))
	v := math.Log(1.5) / math.Log(2)
	assertRGBA(t, RGBA{float32(v), float32(v), float32(v), 1}, s.Evaluate([]float64{0.5}, RGBA{}))

	require.NoError(t, c.SetExaggeration(-1))
	v = 1 - v
	assertRGBA(t, RGBA{float32(v), float32(v), float32(v), 1}, s.Evaluate([]float64{0.5}, RGBA{}))
	assertRGBA(t, RGBA{0, 0, 0, 1}, s.Evaluate([]float64{0}, RGBA{}))
	assertRGBA(t, RGBA{1, 1, 1, 1}, s.Evaluate([]float64{1}, RGBA{}))

	// no exaggeration is linear
	require.NoError(t, c.SetExaggeration(0))
	assertRGBA(t, RGBA{0.3, 0.3, 0.3, 1}, s.Evaluate([]float64{0.3}, RGBA{}))
}

func TestReverseAndColourRange(t *testing.T) {
	s, c := single(t)
	require.NoError(t, c.SetColourMapping(ColourMappingRed))
	require.NoError(t, c.SetColourMinimum(0.2))
	require.NoError(t, c.SetColourMaximum(0.6))
	assertRGBA(t, RGBA{0.3, 0, 0, 1}, s.Evaluate([]float64{0.25}, RGBA{}))
	require.NoError(t, c.SetColourReverse(true))
	assertRGBA(t, RGBA{0.5, 0, 0, 1}, s.Evaluate([]float64{0.25}, RGBA{}))
}

func TestChannelMappings(t *testing.T) {
	s, c := single(t)
	require.NoError(t, s.SetMaterialOverwrite(false))
	material := RGBA{0.1, 0.2, 0.3, 0.4}
	tests := []struct {
		mapping ColourMapping
		want    RGBA
	}{
		{ColourMappingAlpha, RGBA{0.1, 0.2, 0.3, 0.25}},
		{ColourMappingRed, RGBA{0.25, 0.2, 0.3, 0.4}},
		{ColourMappingGreen, RGBA{0.1, 0.25, 0.3, 0.4}},
		{ColourMappingBlue, RGBA{0.1, 0.2, 0.25, 0.4}},
		{ColourMappingMonochrome, RGBA{0.25, 0.25, 0.25, 0.4}},
		{ColourMappingWhiteToBlue, RGBA{0.75, 0.75, 1, 0.4}},
		{ColourMappingWhiteToRed, RGBA{1, 0.75, 0.75, 0.4}},
		{ColourMappingWhiteToGreen, RGBA{0.75, 1, 0.75, 0.4}},
	}
	for _, test := range tests {
		t.Run(test.mapping.String(), func(t *testing.T) {
			require.NoError(t, c.SetColourMapping(test.mapping))
			assertRGBA(t, test.want, s.Evaluate([]float64{0.25}, material))
		})
	}
}

func TestStep(t *testing.T) {
	s, c := single(t)
	require.NoError(t, c.SetColourMapping(ColourMappingStep))
	require.NoError(t, c.SetStepValue(0.3))
	assertRGBA(t, RGBA{1, 0, 0, 1}, s.Evaluate([]float64{0.2}, RGBA{}))
	assertRGBA(t, RGBA{0, 1, 0, 1}, s.Evaluate([]float64{0.4}, RGBA{}))
	assertRGBA(t, RGBA{0, 1, 0, 1}, s.Evaluate([]float64{5}, RGBA{}))
	require.NoError(t, c.SetColourReverse(true))
	assertRGBA(t, RGBA{0, 1, 0, 1}, s.Evaluate([]float64{0.2}, RGBA{}))
	assertRGBA(t, RGBA{1, 0, 0, 1}, s.Evaluate([]float64{0.4}, RGBA{}))
}

func TestBanded(t *testing.T) {
	s, c := single(t)
	require.NoError(t, s.SetMaterialOverwrite(false))
	require.NoError(t, c.SetColourMapping(ColourMappingBanded))
	require.NoError(t, c.SetNumberOfBands(4))
	require.NoError(t, c.SetBandedRatio(0.25))
	white := RGBA{1, 1, 1, 1}
	black := RGBA{0, 0, 0, 1}
	assertRGBA(t, black, s.Evaluate([]float64{0.05}, white))
	assertRGBA(t, black, s.Evaluate([]float64{0.3}, white))
	assertRGBA(t, white, s.Evaluate([]float64{0.4}, white))
	assertRGBA(t, white, s.Evaluate([]float64{0.95}, white))
	assertRGBA(t, white, s.Evaluate([]float64{1.5}, white))

	// values beyond the range are banded as the end bands
	assertRGBA(t, black, s.Evaluate([]float64{-0.5}, white))
	require.NoError(t, c.SetExtendBelow(false))
	assertRGBA(t, black, s.Evaluate([]float64{-0.5}, white))
}

func TestEqualRange(t *testing.T) {
	s, c := single(t)
	require.NoError(t, c.SetColourMapping(ColourMappingMonochrome))
	require.NoError(t, c.SetRangeMinimum(0.5))
	require.NoError(t, c.SetRangeMaximum(0.5))
	assertRGBA(t, RGBA{0, 0, 0, 1}, s.Evaluate([]float64{0.5}, RGBA{}))
	assertRGBA(t, RGBA{1, 1, 1, 1}, s.Evaluate([]float64{0.6}, RGBA{}))
}

func TestComposition(t *testing.T) {
	s, _ := single(t)
	alpha, err := s.CreateComponent()
	require.NoError(t, err)
	defer alpha.Release()
	require.NoError(t, alpha.SetColourMapping(ColourMappingAlpha))
	require.NoError(t, alpha.SetFieldComponent(2))

	assertRGBA(t, RGBA{1, 0, 0, 0.5}, s.Evaluate([]float64{0, 0.5}, RGBA{}))
	// the alpha component has no data
	assertRGBA(t, RGBA{1, 0, 0, 1}, s.Evaluate([]float64{0}, RGBA{}))

	require.NoError(t, alpha.SetActive(false))
	assertRGBA(t, RGBA{1, 0, 0, 1}, s.Evaluate([]float64{0, 0.5}, RGBA{}))

	assertRGBA(t, RGBA{0, 0, 0, 1}, New().Evaluate([]float64{0.5}, RGBA{0.2, 0.2, 0.2, 0.2}))
}

func TestAsRGBA(t *testing.T) {
	c := RGBA{1, 0.5, 2, 1}.AsRGBA()
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(255), c.B)
	assert.Equal(t, uint8(255), c.A)
}
