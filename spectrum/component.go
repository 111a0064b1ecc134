// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"github.com/chewxy/math32"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/base/handle"
)

// ScaleType is how a component maps its range to [0,1].
type ScaleType int32

const (
	ScaleTypeInvalid ScaleType = iota
	ScaleTypeLinear
	ScaleTypeLog
)

// ColourMapping is how a component maps a normalised value to colour.
type ColourMapping int32

const (
	ColourMappingInvalid ColourMapping = iota
	ColourMappingAlpha
	ColourMappingBanded
	ColourMappingBlue
	ColourMappingGreen
	ColourMappingMonochrome
	ColourMappingRainbow
	ColourMappingRed
	ColourMappingStep
	ColourMappingWhiteToBlue
	ColourMappingWhiteToRed
	ColourMappingWhiteToGreen
)

// params are the settings of a [Component]. Field names match
// [ComponentDescription] so that settings copy across by name.
type params struct {
	RangeMinimum   float64
	RangeMaximum   float64
	ColourMinimum  float64
	ColourMaximum  float64
	ColourMapping  ColourMapping
	ScaleType      ScaleType
	Exaggeration   float64
	StepValue      float64
	NumberOfBands  int
	FieldComponent int
	Active         bool
	ColourReverse  bool
	ExtendAbove    bool
	ExtendBelow    bool
	FixMinimum     bool
	FixMaximum     bool

	// bandProportion is the banded ratio in thousandths.
	bandProportion int
}

func defaultParams() params {
	return params{
		RangeMinimum:   0,
		RangeMaximum:   1,
		ColourMinimum:  0,
		ColourMaximum:  1,
		ColourMapping:  ColourMappingRainbow,
		ScaleType:      ScaleTypeLinear,
		Exaggeration:   1,
		StepValue:      0.5,
		NumberOfBands:  10,
		FieldComponent: 1,
		Active:         true,
		ExtendAbove:    true,
		ExtendBelow:    true,
		bandProportion: 200,
	}
}

// Component maps one component of the data values to a colour
// contribution. It belongs to one [Spectrum] until removed from it.
type Component struct {
	handle.Ref

	// spectrum is nil once the component is removed.
	spectrum *Spectrum

	p params
}

func newComponent(s *Spectrum) *Component {
	c := &Component{spectrum: s, p: defaultParams()}
	c.Init(nil)
	return c
}

// Release releases an access to the component. It is safe to call on nil.
func (c *Component) Release() {
	if c != nil {
		c.Ref.Release()
	}
}

// IsValid returns whether the component is alive.
func (c *Component) IsValid() bool {
	return c != nil && !c.IsDestroyed()
}

// Spectrum returns the spectrum the component belongs to, or nil
// once it is removed.
func (c *Component) Spectrum() *Spectrum {
	return c.spectrum
}

func (c *Component) RangeMinimum() float64        { return c.p.RangeMinimum }
func (c *Component) RangeMaximum() float64        { return c.p.RangeMaximum }
func (c *Component) ColourMinimum() float64       { return c.p.ColourMinimum }
func (c *Component) ColourMaximum() float64       { return c.p.ColourMaximum }
func (c *Component) ColourMapping() ColourMapping { return c.p.ColourMapping }
func (c *Component) ScaleType() ScaleType         { return c.p.ScaleType }
func (c *Component) Exaggeration() float64        { return c.p.Exaggeration }
func (c *Component) StepValue() float64           { return c.p.StepValue }
func (c *Component) NumberOfBands() int           { return c.p.NumberOfBands }
func (c *Component) FieldComponent() int          { return c.p.FieldComponent }
func (c *Component) IsActive() bool               { return c.p.Active }
func (c *Component) IsColourReverse() bool        { return c.p.ColourReverse }
func (c *Component) IsExtendAbove() bool          { return c.p.ExtendAbove }
func (c *Component) IsExtendBelow() bool          { return c.p.ExtendBelow }
func (c *Component) IsFixMinimum() bool           { return c.p.FixMinimum }
func (c *Component) IsFixMaximum() bool           { return c.p.FixMaximum }

func (c *Component) check() error {
	if !c.IsValid() {
		return errors.Argument("spectrum component is destroyed")
	}
	return nil
}

func (c *Component) changed() {
	if c.spectrum != nil {
		c.spectrum.changed()
	}
}

// set assigns v to *p and reports a change if it differs.
func set[T comparable](c *Component, p *T, v T) error {
	if err := c.check(); err != nil {
		return err
	}
	if *p != v {
		*p = v
		c.changed()
	}
	return nil
}

// fixStep moves the step value to the middle of the range
// when it is not strictly inside it.
func (c *Component) fixStep() {
	if c.p.StepValue <= c.p.RangeMinimum || c.p.StepValue >= c.p.RangeMaximum {
		c.p.StepValue = 0.5 * (c.p.RangeMinimum + c.p.RangeMaximum)
	}
}

// SetRangeMinimum sets the data value mapped to the start of the colour range.
func (c *Component) SetRangeMinimum(v float64) error {
	if err := c.check(); err != nil {
		return err
	}
	if v != c.p.RangeMinimum {
		c.p.RangeMinimum = v
		c.fixStep()
		c.changed()
	}
	return nil
}

// SetRangeMaximum sets the data value mapped to the end of the colour range.
func (c *Component) SetRangeMaximum(v float64) error {
	if err := c.check(); err != nil {
		return err
	}
	if v != c.p.RangeMaximum {
		c.p.RangeMaximum = v
		c.fixStep()
		c.changed()
	}
	return nil
}

// SetColourMinimum sets the start of the colour range, in [0,1].
func (c *Component) SetColourMinimum(v float64) error {
	if v < 0 || v > 1 {
		return errors.Argument("colour minimum %g is outside [0,1]", v)
	}
	return set(c, &c.p.ColourMinimum, v)
}

// SetColourMaximum sets the end of the colour range, in [0,1].
// It may be less than the colour minimum to reverse the colours.
func (c *Component) SetColourMaximum(v float64) error {
	if v < 0 || v > 1 {
		return errors.Argument("colour maximum %g is outside [0,1]", v)
	}
	return set(c, &c.p.ColourMaximum, v)
}

// SetColourMapping sets the colour mapping.
func (c *Component) SetColourMapping(m ColourMapping) error {
	if m == ColourMappingInvalid || !m.IsValid() {
		return errors.Argument("invalid colour mapping %v", m)
	}
	return set(c, &c.p.ColourMapping, m)
}

// SetScaleType sets the scale type.
func (c *Component) SetScaleType(t ScaleType) error {
	if t == ScaleTypeInvalid || !t.IsValid() {
		return errors.Argument("invalid scale type %v", t)
	}
	return set(c, &c.p.ScaleType, t)
}

// SetExaggeration sets the exaggeration of the log scale. Positive
// values stretch the low end of the range, negative the high end.
func (c *Component) SetExaggeration(v float64) error {
	return set(c, &c.p.Exaggeration, v)
}

// SetStepValue sets the data value at which the step mapping changes
// colour. A value not strictly inside the range is replaced by the
// middle of the range.
func (c *Component) SetStepValue(v float64) error {
	if err := c.check(); err != nil {
		return err
	}
	if v != c.p.StepValue {
		c.p.StepValue = v
		c.fixStep()
		c.changed()
	}
	return nil
}

// BandedRatio returns the fraction of each band that is drawn.
func (c *Component) BandedRatio() float64 {
	return float64(c.p.bandProportion) / 1000
}

// SetBandedRatio sets the fraction of each band that is drawn,
// which must be greater than 0 and at most 1. It is kept to the
// nearest thousandth.
func (c *Component) SetBandedRatio(r float64) error {
	if r <= 0 || r > 1 {
		return errors.Argument("banded ratio %g is outside (0,1]", r)
	}
	p := int(r*1000 + 0.5)
	if p < 1 {
		p = 1
	}
	return set(c, &c.p.bandProportion, p)
}

// SetNumberOfBands sets the number of bands, at least 1.
func (c *Component) SetNumberOfBands(n int) error {
	if n < 1 {
		return errors.Argument("number of bands %d is less than 1", n)
	}
	return set(c, &c.p.NumberOfBands, n)
}

// SetFieldComponent sets the data component the component maps,
// counting from 1.
func (c *Component) SetFieldComponent(n int) error {
	if n < 1 {
		return errors.Argument("field component %d is less than 1", n)
	}
	return set(c, &c.p.FieldComponent, n)
}

// SetActive sets whether the component contributes to colours.
func (c *Component) SetActive(active bool) error {
	return set(c, &c.p.Active, active)
}

// SetColourReverse sets whether the normalised value is reversed.
func (c *Component) SetColourReverse(reverse bool) error {
	return set(c, &c.p.ColourReverse, reverse)
}

// SetExtendAbove sets whether the component applies to values above
// its range, extrapolating the colour mapping. Otherwise such values
// skip the component.
func (c *Component) SetExtendAbove(extend bool) error {
	return set(c, &c.p.ExtendAbove, extend)
}

// SetExtendBelow sets whether the component applies to values below
// its range, extrapolating the colour mapping. Otherwise such values
// skip the component.
func (c *Component) SetExtendBelow(extend bool) error {
	return set(c, &c.p.ExtendBelow, extend)
}

// SetFixMinimum sets whether the range minimum is kept when the
// spectrum range is changed.
func (c *Component) SetFixMinimum(fix bool) error {
	return set(c, &c.p.FixMinimum, fix)
}

// SetFixMaximum sets whether the range maximum is kept when the
// spectrum range is changed.
func (c *Component) SetFixMaximum(fix bool) error {
	return set(c, &c.p.FixMaximum, fix)
}

// applies returns whether the component contributes for the values:
// it must be active, its field component must be present, and the
// value must be in range or beyond an extended end. Banded and step
// mappings apply at any value.
func (c *Component) applies(values []float64) bool {
	if !c.p.Active || c.p.FieldComponent-1 >= len(values) {
		return false
	}
	if c.p.ColourMapping == ColourMappingBanded || c.p.ColourMapping == ColourMappingStep {
		return true
	}
	x := values[c.p.FieldComponent-1]
	return (x >= c.p.RangeMinimum || c.p.ExtendBelow) && (x <= c.p.RangeMaximum || c.p.ExtendAbove)
}

// normalise maps x to the unit range by the scale type. Values
// outside the range extrapolate.
func (c *Component) normalise(x float32) float32 {
	lo, hi := float32(c.p.RangeMinimum), float32(c.p.RangeMaximum)
	if lo == hi {
		if x <= lo {
			return 0
		}
		return 1
	}
	var v float32
	switch c.p.ScaleType {
	case ScaleTypeLog:
		e := float32(c.p.Exaggeration)
		switch {
		case e == 0:
			v = (x - lo) / (hi - lo)
		case e < 0:
			v = 1 - math32.Log(1-e*(hi-x)/(hi-lo))/math32.Log(1-e)
		default:
			v = math32.Log(1+e*(x-lo)/(hi-lo)) / math32.Log(1+e)
		}
		if math32.IsNaN(v) {
			// the log is undefined far outside the range
			v = 0
			if x > hi {
				v = 1
			}
		}
	default:
		v = (x - lo) / (hi - lo)
	}
	return v
}

// apply writes the colour contribution of the component for the
// values into rgba.
func (c *Component) apply(values []float64, rgba *RGBA) {
	v := c.normalise(float32(values[c.p.FieldComponent-1]))
	if c.p.ColourReverse {
		v = 1 - v
	}
	switch c.p.ColourMapping {
	case ColourMappingBanded:
		c.band(v, rgba)
		return
	case ColourMappingStep:
		c.step(v, rgba)
		return
	}
	cmin, cmax := float32(c.p.ColourMinimum), float32(c.p.ColourMaximum)
	v = cmin + (cmax-cmin)*v
	switch c.p.ColourMapping {
	case ColourMappingAlpha:
		rgba[3] = v
	case ColourMappingRainbow:
		rgba[0], rgba[1], rgba[2] = rainbow(v)
	case ColourMappingRed:
		rgba[0] = v
	case ColourMappingGreen:
		rgba[1] = v
	case ColourMappingBlue:
		rgba[2] = v
	case ColourMappingMonochrome:
		rgba[0], rgba[1], rgba[2] = v, v, v
	case ColourMappingWhiteToBlue:
		rgba[0], rgba[1], rgba[2] = 1-v, 1-v, 1
	case ColourMappingWhiteToRed:
		rgba[0], rgba[1], rgba[2] = 1, 1-v, 1-v
	case ColourMappingWhiteToGreen:
		rgba[0], rgba[1], rgba[2] = 1-v, 1, 1-v
	}
}

// rainbow maps v in [0,1] from red through yellow, green and cyan to blue.
func rainbow(v float32) (r, g, b float32) {
	switch {
	case v < 1.0/3:
		r, b = 1, 0
		if v < 1.0/6 {
			g = v * 4.5
		} else {
			g = 0.75 + (v-1.0/6)*1.5
		}
	case v < 2.0/3:
		g = 1
		if v < 0.5 {
			r = 2.5 - 4.5*v
			b = 1.5*v - 0.5
		} else {
			r = 1 - 1.5*v
			b = -2 + 4.5*v
		}
	default:
		r, b = 0, 1
		if v < 5.0/6 {
			g = 1 - (v-2.0/3)*1.5
		} else {
			g = 0.75 - (v-5.0/6)*4.5
		}
	}
	return
}

// step gives red below the step value and green from it up.
func (c *Component) step(v float32, rgba *RGBA) {
	xi := float32(0.5)
	if c.p.RangeMaximum != c.p.RangeMinimum {
		xi = float32((c.p.StepValue - c.p.RangeMinimum) / (c.p.RangeMaximum - c.p.RangeMinimum))
	}
	if xi == 0 || xi == 1 {
		xi = 0.5
	}
	if c.p.ColourReverse {
		xi = 1 - xi
	}
	if v < xi {
		rgba[0], rgba[1], rgba[2] = 1, 0, 0
	} else {
		rgba[0], rgba[1], rgba[2] = 0, 1, 0
	}
}

// band blackens the first banded ratio of each of the equal sections
// of the unit range. Values outside it fall in the end bands.
func (c *Component) band(v float32, rgba *RGBA) {
	v = math32.Max(0, math32.Min(v, 1))
	n := float32(c.p.NumberOfBands)
	section := math32.Floor(v * n)
	if section >= n {
		section = n - 1
	}
	if v*n-section < float32(c.BandedRatio()) {
		rgba[0], rgba[1], rgba[2] = 0, 0, 0
	}
}
