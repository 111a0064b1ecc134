// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectrum maps data values to colours through an ordered list
// of spectrum components, each mapping one data component over a range
// to a colour contribution.
package spectrum

import (
	"image/color"
	"math"
	"slices"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/floats"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/base/handle"
	"cogentcore.org/zinc/changes"
)

// RGBA is a colour with red, green, blue and alpha channels in [0,1].
type RGBA [4]float32

// Black is opaque black, the starting colour of a spectrum that
// overwrites the material colour.
var Black = RGBA{0, 0, 0, 1}

// Clamp returns the colour with each channel clamped to [0,1].
func (c RGBA) Clamp() RGBA {
	for i, v := range c {
		c[i] = math32.Min(math32.Max(v, 0), 1)
	}
	return c
}

// AsRGBA returns the colour as an 8-bit [color.RGBA] with
// premultiplied alpha.
func (c RGBA) AsRGBA() color.RGBA {
	c = c.Clamp()
	a := c[3]
	return color.RGBA{
		R: uint8(c[0]*a*255 + 0.5),
		G: uint8(c[1]*a*255 + 0.5),
		B: uint8(c[2]*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Spectrum is an ordered list of [Component]s that together map data
// values to a colour. Later components write over the channels set by
// earlier ones.
type Spectrum struct {
	handle.Ref

	// module is nil for a spectrum not in a module.
	module *Module
	name   string

	components []*Component

	// overwrite starts evaluation from black instead of the material colour.
	overwrite bool

	// minimum and maximum are the range of the components, kept
	// when the last component is removed.
	minimum, maximum float64

	cache changes.Cache
}

// New returns a new spectrum that is not in a module, with no
// components. The caller owns its first access.
func New() *Spectrum {
	s := &Spectrum{overwrite: true}
	s.Init(s.destroy)
	s.cache.SetFlush(s.flush)
	return s
}

// Release releases an access to the spectrum. It is safe to call on nil.
func (s *Spectrum) Release() {
	if s != nil {
		s.Ref.Release()
	}
}

// IsValid returns whether the spectrum is alive.
func (s *Spectrum) IsValid() bool {
	return s != nil && !s.IsDestroyed()
}

func (s *Spectrum) check() error {
	if !s.IsValid() {
		return errors.Argument("spectrum is destroyed")
	}
	return nil
}

// Name returns the name of the spectrum, unique in its module.
func (s *Spectrum) Name() string {
	return s.name
}

// SetName sets the name of the spectrum. It returns
// [errors.ErrArgument] for an empty name or one used by another
// spectrum in the module.
func (s *Spectrum) SetName(name string) error {
	if err := s.check(); err != nil {
		return err
	}
	if name == "" {
		return errors.Argument("spectrum name is empty")
	}
	if name == s.name {
		return nil
	}
	if s.module != nil {
		if err := s.module.rename(s, name); err != nil {
			return err
		}
	}
	s.name = name
	return nil
}

// SetManaged sets whether the spectrum stays in its module when it
// has no accesses.
func (s *Spectrum) SetManaged(managed bool) error {
	if err := s.check(); err != nil {
		return err
	}
	s.Ref.SetManaged(managed)
	return nil
}

// BeginChange starts caching change notifications of the spectrum.
// Calls nest and must be balanced by [Spectrum.EndChange].
func (s *Spectrum) BeginChange() {
	s.cache.Begin()
}

// EndChange ends a change cache scope. It returns
// [errors.ErrArgument] if no scope is open.
func (s *Spectrum) EndChange() error {
	return s.cache.End()
}

// changed recalculates the range and reports a change of definition.
func (s *Spectrum) changed() {
	s.calculateRange()
	s.cache.Changed()
}

func (s *Spectrum) flush() {
	if s.module != nil {
		s.module.spectrumChanged(s, ChangeDefinition|ChangeFullResult)
	}
}

// IsMaterialOverwrite returns whether evaluation starts from opaque
// black instead of the material colour.
func (s *Spectrum) IsMaterialOverwrite() bool {
	return s.overwrite
}

// SetMaterialOverwrite sets whether evaluation starts from opaque
// black instead of the material colour.
func (s *Spectrum) SetMaterialOverwrite(overwrite bool) error {
	if err := s.check(); err != nil {
		return err
	}
	if s.overwrite != overwrite {
		s.overwrite = overwrite
		s.changed()
	}
	return nil
}

// NumberOfComponents returns the number of components.
func (s *Spectrum) NumberOfComponents() int {
	return len(s.components)
}

// Components returns the components in order. They are not accessed.
func (s *Spectrum) Components() []*Component {
	return slices.Clone(s.components)
}

// CreateComponent adds a new component with default settings to the
// end of the list and returns it, accessed.
func (s *Spectrum) CreateComponent() (*Component, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	c := newComponent(s)
	s.components = append(s.components, c)
	c.Access()
	s.changed()
	return c, nil
}

func (s *Spectrum) index(c *Component) int {
	if c == nil || c.spectrum != s {
		return -1
	}
	return slices.Index(s.components, c)
}

// accessed returns c accessed, or nil.
func accessed(c *Component) *Component {
	if c == nil || !c.Access() {
		return nil
	}
	return c
}

// FirstComponent returns the first component, accessed,
// or nil if there are none.
func (s *Spectrum) FirstComponent() *Component {
	if len(s.components) == 0 {
		return nil
	}
	return accessed(s.components[0])
}

// NextComponent returns the component after ref, accessed,
// or nil if ref is the last or not in the spectrum.
func (s *Spectrum) NextComponent(ref *Component) *Component {
	i := s.index(ref)
	if i < 0 || i+1 >= len(s.components) {
		return nil
	}
	return accessed(s.components[i+1])
}

// PreviousComponent returns the component before ref, accessed,
// or nil if ref is the first or not in the spectrum.
func (s *Spectrum) PreviousComponent(ref *Component) *Component {
	i := s.index(ref)
	if i <= 0 {
		return nil
	}
	return accessed(s.components[i-1])
}

// MoveComponentBefore moves c to just before ref, or to the end if ref
// is nil. It returns [errors.ErrArgument] if either is not in the
// spectrum.
func (s *Spectrum) MoveComponentBefore(c, ref *Component) error {
	if err := s.check(); err != nil {
		return err
	}
	from := s.index(c)
	if from < 0 {
		return errors.Argument("component is not in spectrum %q", s.name)
	}
	to := len(s.components)
	if ref != nil {
		if to = s.index(ref); to < 0 {
			return errors.Argument("reference component is not in spectrum %q", s.name)
		}
	}
	if from == to || from+1 == to {
		return nil
	}
	s.components = slices.Delete(s.components, from, from+1)
	if to > from {
		to--
	}
	s.components = slices.Insert(s.components, to, c)
	s.changed()
	return nil
}

// RemoveComponent removes the component from the spectrum. It returns
// [errors.ErrNotFound] if the component is not in the spectrum.
func (s *Spectrum) RemoveComponent(c *Component) error {
	if err := s.check(); err != nil {
		return err
	}
	i := s.index(c)
	if i < 0 {
		return errors.NotFound("component is not in spectrum %q", s.name)
	}
	s.components = slices.Delete(s.components, i, i+1)
	c.spectrum = nil
	c.Release()
	s.changed()
	return nil
}

// RemoveAllComponents removes every component from the spectrum.
func (s *Spectrum) RemoveAllComponents() error {
	if err := s.check(); err != nil {
		return err
	}
	if len(s.components) == 0 {
		return nil
	}
	s.clearComponents()
	s.changed()
	return nil
}

func (s *Spectrum) clearComponents() {
	components := s.components
	s.components = nil
	for _, c := range components {
		c.spectrum = nil
		c.Release()
	}
}

// Range returns the smallest range minimum and the largest range
// maximum of the components.
func (s *Spectrum) Range() (minimum, maximum float64) {
	return s.minimum, s.maximum
}

func (s *Spectrum) calculateRange() {
	if len(s.components) == 0 {
		return
	}
	s.minimum = s.components[0].p.RangeMinimum
	s.maximum = s.components[0].p.RangeMaximum
	for _, c := range s.components[1:] {
		s.minimum = min(s.minimum, c.p.RangeMinimum)
		s.maximum = max(s.maximum, c.p.RangeMaximum)
	}
}

// SetMinimumAndMaximum changes the range of the spectrum, moving the
// range of each component so that its position relative to the
// spectrum range is kept. Fixed component ends are not moved. It
// returns [errors.ErrArgument] if minimum is greater than maximum.
func (s *Spectrum) SetMinimumAndMaximum(minimum, maximum float64) error {
	if err := s.check(); err != nil {
		return err
	}
	if minimum > maximum {
		return errors.Argument("spectrum minimum %g is greater than maximum %g", minimum, maximum)
	}
	if minimum == s.minimum && maximum == s.maximum {
		return nil
	}
	oldMin, oldMax := s.minimum, s.maximum
	oldRange, r := oldMax-oldMin, maximum-minimum
	for _, c := range s.components {
		lo, hi := minimum, maximum
		if oldRange > 0 {
			lo = minimum + r*(c.p.RangeMinimum-oldMin)/oldRange
			hi = maximum - r*(oldMax-c.p.RangeMaximum)/oldRange
		}
		if !c.p.FixMinimum {
			c.p.RangeMinimum = lo
		}
		if !c.p.FixMaximum {
			c.p.RangeMaximum = hi
		}
		c.fixStep()
	}
	s.minimum, s.maximum = minimum, maximum
	if len(s.components) > 0 {
		s.calculateRange()
	}
	s.cache.Changed()
	return nil
}

// RangeOf returns the smallest and largest of the finite data values,
// and false if there are none.
func RangeOf(data []float64) (minimum, maximum float64, ok bool) {
	finite := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 0, false
	}
	return floats.Min(finite), floats.Max(finite), true
}

// SetRangeFromData sets the range of the spectrum to that of the
// finite data values. It returns [errors.ErrArgument] if there are none.
func (s *Spectrum) SetRangeFromData(data []float64) error {
	minimum, maximum, ok := RangeOf(data)
	if !ok {
		return errors.Argument("no finite data values for spectrum %q", s.name)
	}
	return s.SetMinimumAndMaximum(minimum, maximum)
}

// Evaluate returns the colour of the data values, starting from the
// material colour, or from opaque black if the spectrum overwrites the
// material. Each active component whose field component is within the
// values writes the channels of its colour mapping in turn. The result
// is clamped to [0,1].
func (s *Spectrum) Evaluate(values []float64, material RGBA) RGBA {
	rgba := material
	if s.overwrite {
		rgba = Black
	}
	for _, c := range s.components {
		if c.applies(values) {
			c.apply(values, &rgba)
		}
	}
	return rgba.Clamp()
}

// destroy removes the components and takes the spectrum out of its module.
func (s *Spectrum) destroy() {
	s.clearComponents()
	if s.module != nil {
		s.module.remove(s)
	}
}
