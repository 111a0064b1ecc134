// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/zinc/base/errors"
)

func TestComponentOrder(t *testing.T) {
	s := New()
	defer s.Release()
	var cs [3]*Component
	for i := range cs {
		c, err := s.CreateComponent()
		require.NoError(t, err)
		defer c.Release()
		require.NoError(t, c.SetFieldComponent(i+1))
		cs[i] = c
	}
	assert.Equal(t, 2, cs[0].AccessCount())
	order := func() []int {
		var ids []int
		for _, c := range s.Components() {
			ids = append(ids, c.FieldComponent())
		}
		return ids
	}
	assert.Equal(t, []int{1, 2, 3}, order())

	require.NoError(t, s.MoveComponentBefore(cs[2], cs[0]))
	assert.Equal(t, []int{3, 1, 2}, order())
	require.NoError(t, s.MoveComponentBefore(cs[2], nil))
	assert.Equal(t, []int{1, 2, 3}, order())
	require.NoError(t, s.MoveComponentBefore(cs[0], cs[1]))
	assert.Equal(t, []int{1, 2, 3}, order())

	first := s.FirstComponent()
	assert.Same(t, cs[0], first)
	next := s.NextComponent(first)
	assert.Same(t, cs[1], next)
	assert.Same(t, cs[0], s.PreviousComponent(next))
	assert.Nil(t, s.PreviousComponent(first))
	assert.Nil(t, s.NextComponent(cs[2]))
	assert.Equal(t, 4, cs[0].AccessCount())
	first.Release()
	next.Release()
	cs[0].Release()

	require.NoError(t, s.RemoveComponent(cs[1]))
	assert.Nil(t, cs[1].Spectrum())
	assert.Equal(t, 1, cs[1].AccessCount())
	assert.True(t, cs[1].IsValid())
	require.NoError(t, cs[1].SetActive(false))
	assert.ErrorIs(t, s.RemoveComponent(cs[1]), errors.ErrNotFound)
	assert.ErrorIs(t, s.MoveComponentBefore(cs[1], nil), errors.ErrArgument)
	assert.Equal(t, []int{1, 3}, order())

	other := New()
	defer other.Release()
	oc, err := other.CreateComponent()
	require.NoError(t, err)
	defer oc.Release()
	assert.ErrorIs(t, s.RemoveComponent(oc), errors.ErrNotFound)
	assert.ErrorIs(t, s.MoveComponentBefore(cs[0], oc), errors.ErrArgument)

	require.NoError(t, s.RemoveAllComponents())
	assert.Equal(t, 0, s.NumberOfComponents())
	assert.Nil(t, s.FirstComponent())
	assert.Nil(t, cs[2].Spectrum())
}

func TestRange(t *testing.T) {
	s := New()
	defer s.Release()
	a, err := s.CreateComponent()
	require.NoError(t, err)
	defer a.Release()
	b, err := s.CreateComponent()
	require.NoError(t, err)
	defer b.Release()
	require.NoError(t, b.SetRangeMaximum(2))
	require.NoError(t, b.SetRangeMinimum(1))

	lo, hi := s.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 2.0, hi)

	require.NoError(t, s.SetMinimumAndMaximum(0, 4))
	assert.Equal(t, 0.0, a.RangeMinimum())
	assert.Equal(t, 2.0, a.RangeMaximum())
	assert.Equal(t, 2.0, b.RangeMinimum())
	assert.Equal(t, 4.0, b.RangeMaximum())
	assert.ErrorIs(t, s.SetMinimumAndMaximum(1, 0), errors.ErrArgument)

	require.NoError(t, a.SetFixMinimum(true))
	require.NoError(t, s.SetMinimumAndMaximum(-4, 4))
	assert.Equal(t, 0.0, a.RangeMinimum())
	assert.Equal(t, 0.0, a.RangeMaximum())
	assert.Equal(t, 0.0, b.RangeMinimum())
	assert.Equal(t, 4.0, b.RangeMaximum())

	require.NoError(t, s.SetRangeFromData([]float64{3, math.NaN(), -1, 2, math.Inf(1)}))
	lo, hi = s.Range()
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 3.0, hi)
	assert.Equal(t, 0.0, a.RangeMinimum())
	assert.ErrorIs(t, s.SetRangeFromData([]float64{math.NaN()}), errors.ErrArgument)

	lo, hi, ok := RangeOf([]float64{3, -1, 2})
	assert.True(t, ok)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 3.0, hi)
}

func TestPresets(t *testing.T) {
	s := New()
	defer s.Release()

	require.NoError(t, s.ApplyPreset(PresetBlueToRed))
	assertRGBA(t, RGBA{0, 0, 1, 1}, s.Evaluate([]float64{0}, RGBA{}))
	assertRGBA(t, RGBA{1, 0, 0, 1}, s.Evaluate([]float64{1}, RGBA{}))

	require.NoError(t, s.ApplyPreset(PresetRedToBlue))
	assert.Equal(t, 1, s.NumberOfComponents())
	assertRGBA(t, RGBA{1, 0, 0, 1}, s.Evaluate([]float64{0}, RGBA{}))
	assertRGBA(t, RGBA{0, 0, 1, 1}, s.Evaluate([]float64{1}, RGBA{}))

	require.NoError(t, s.SetMinimumAndMaximum(-2, 2))
	require.NoError(t, s.ApplyPreset(PresetLogRedToBlue))
	require.Equal(t, 2, s.NumberOfComponents())
	lo, hi := s.Range()
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 2.0, hi)
	cs := s.Components()
	assert.Equal(t, -2.0, cs[0].RangeMinimum())
	assert.Equal(t, 0.0, cs[0].RangeMaximum())
	assert.Equal(t, 0.0, cs[1].RangeMinimum())
	assert.Equal(t, 2.0, cs[1].RangeMaximum())
	assertRGBA(t, RGBA{1, 0, 0, 1}, s.Evaluate([]float64{-2}, RGBA{}))
	assertRGBA(t, RGBA{0, 0, 1, 1}, s.Evaluate([]float64{2}, RGBA{}))
	assertRGBA(t, RGBA{0.25, 1, 0.25, 1}, s.Evaluate([]float64{0}, RGBA{}))

	bwr := New()
	defer bwr.Release()
	require.NoError(t, bwr.ApplyPreset(PresetBlueWhiteRed))
	lo, hi = bwr.Range()
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 1.0, hi)
	assertRGBA(t, RGBA{0, 0, 1, 1}, bwr.Evaluate([]float64{-1}, RGBA{}))
	assertRGBA(t, RGBA{1, 1, 1, 1}, bwr.Evaluate([]float64{0}, RGBA{}))
	assertRGBA(t, RGBA{1, 0, 0, 1}, bwr.Evaluate([]float64{1}, RGBA{}))

	// white stays at zero
	require.NoError(t, bwr.SetMinimumAndMaximum(-1, 3))
	cs = bwr.Components()
	assert.Equal(t, 0.0, cs[0].RangeMaximum())
	assert.Equal(t, 0.0, cs[1].RangeMinimum())
	assert.Equal(t, 3.0, cs[1].RangeMaximum())
	assertRGBA(t, RGBA{1, 1, 1, 1}, bwr.Evaluate([]float64{0}, RGBA{}))

	assert.ErrorIs(t, s.ApplyPreset(Preset(99)), errors.ErrArgument)
}

func TestDescriptionFiles(t *testing.T) {
	s := New()
	defer s.Release()
	require.NoError(t, s.ApplyPreset(PresetBlueWhiteRed))
	c, err := s.CreateComponent()
	require.NoError(t, err)
	defer c.Release()
	require.NoError(t, c.SetColourMapping(ColourMappingBanded))
	require.NoError(t, c.SetBandedRatio(0.5))
	require.NoError(t, c.SetNumberOfBands(3))
	want := s.Description()
	require.Len(t, want.Components, 3)
	assert.Equal(t, 0.5, want.Components[2].BandedRatio)

	for _, ext := range []string{".toml", ".yaml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "spectrum"+ext)
			require.NoError(t, s.Save(filename))
			read := New()
			defer read.Release()
			require.NoError(t, read.Open(filename))
			if diff := cmp.Diff(want.Components, read.Description().Components); diff != "" {
				t.Errorf("components differ (-want +got):\n%s", diff)
			}
			assert.Equal(t, s.IsMaterialOverwrite(), read.IsMaterialOverwrite())
			assertRGBA(t, s.Evaluate([]float64{0.4}, RGBA{}), read.Evaluate([]float64{0.4}, RGBA{}))
		})
	}
}

func TestSetDescriptionInvalid(t *testing.T) {
	s := New()
	defer s.Release()
	require.NoError(t, s.ApplyPreset(PresetRedToBlue))
	d := s.Description()
	d.Components = append(d.Components, d.Components[0])
	d.Components[1].BandedRatio = 0
	assert.ErrorIs(t, s.SetDescription(d), errors.ErrArgument)
	assert.Equal(t, 1, s.NumberOfComponents())

	d.Components[1].BandedRatio = 0.5
	d.Components[1].ColourMapping = ColourMappingInvalid
	assert.ErrorIs(t, s.SetDescription(d), errors.ErrArgument)
	d.Components[1].ColourMapping = ColourMappingAlpha
	require.NoError(t, s.SetDescription(d))
	assert.Equal(t, 2, s.NumberOfComponents())
}

func TestCopyFrom(t *testing.T) {
	src := New()
	defer src.Release()
	require.NoError(t, src.ApplyPreset(PresetLogBlueToRed))
	require.NoError(t, src.SetMaterialOverwrite(false))

	dst := New()
	defer dst.Release()
	require.NoError(t, dst.CopyFrom(src))
	if diff := cmp.Diff(src.Description(), dst.Description()); diff != "" {
		t.Errorf("copy differs (-src +dst):\n%s", diff)
	}
	dcs := dst.Components()
	require.NoError(t, dcs[0].SetColourMapping(ColourMappingRed))
	assert.Equal(t, ColourMappingRainbow, src.Components()[0].ColourMapping())
	assert.Same(t, dst, dcs[0].Spectrum())
	assert.NotSame(t, src.Components()[0], dcs[0])
}

func TestSpectrumChangeCache(t *testing.T) {
	m := NewModule()
	s := m.CreateSpectrum()
	defer s.Release()
	n := m.CreateNotifier()
	defer n.Release()
	var events []ChangeFlags
	require.NoError(t, n.SetCallback(func(ev Event) {
		events = append(events, ev.ChangeFlags(s))
	}))

	s.BeginChange()
	c, err := s.CreateComponent()
	require.NoError(t, err)
	defer c.Release()
	require.NoError(t, c.SetColourMapping(ColourMappingRed))
	require.NoError(t, c.SetRangeMaximum(5))
	assert.Empty(t, events)
	require.NoError(t, s.EndChange())
	assert.Equal(t, []ChangeFlags{ChangeDefinition | ChangeFullResult}, events)
	assert.ErrorIs(t, s.EndChange(), errors.ErrArgument)

	events = nil
	require.NoError(t, c.SetRangeMaximum(5))
	assert.Empty(t, events)
}
