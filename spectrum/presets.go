// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"cogentcore.org/zinc/base/errors"
)

// Preset is a predefined set of spectrum components.
type Preset int32

const (
	PresetRedToBlue Preset = iota
	PresetBlueToRed
	PresetLogRedToBlue
	PresetLogBlueToRed
	PresetBlueWhiteRed
)

// ApplyPreset replaces the components of the spectrum with those of
// the preset. A spectrum that had components keeps its range; an empty
// one takes the range of the preset.
func (s *Spectrum) ApplyPreset(p Preset) error {
	if err := s.check(); err != nil {
		return err
	}
	if !p.IsValid() {
		return errors.Argument("invalid spectrum preset %v", p)
	}
	s.BeginChange()
	defer s.EndChange()
	keepRange := len(s.components) > 0
	minimum, maximum := s.Range()
	s.clearComponents()
	switch p {
	case PresetRedToBlue, PresetBlueToRed:
		c := s.addComponent()
		if p == PresetBlueToRed {
			c.p.ColourMinimum, c.p.ColourMaximum = 1, 0
		}
	case PresetLogRedToBlue, PresetLogBlueToRed:
		lower, upper := s.addComponent(), s.addComponent()
		lower.p.ScaleType = ScaleTypeLog
		lower.p.Exaggeration = 1
		lower.p.RangeMinimum, lower.p.RangeMaximum = -1, 0
		lower.p.ExtendAbove = false
		upper.p.ScaleType = ScaleTypeLog
		upper.p.Exaggeration = -1
		upper.p.RangeMinimum, upper.p.RangeMaximum = 0, 1
		upper.p.ExtendBelow = false
		if p == PresetLogRedToBlue {
			lower.p.ColourMinimum, lower.p.ColourMaximum = 0, 0.5
			upper.p.ColourMinimum, upper.p.ColourMaximum = 0.5, 1
		} else {
			lower.p.ColourReverse, upper.p.ColourReverse = true, true
			lower.p.ColourMinimum, lower.p.ColourMaximum = 0.5, 1
			upper.p.ColourMinimum, upper.p.ColourMaximum = 0, 0.5
		}
		lower.fixStep()
		upper.fixStep()
	case PresetBlueWhiteRed:
		blue, red := s.addComponent(), s.addComponent()
		blue.p.ScaleType = ScaleTypeLog
		blue.p.Exaggeration = -10
		blue.p.RangeMinimum, blue.p.RangeMaximum = -1, 0
		blue.p.ColourReverse = true
		blue.p.FixMaximum = true
		blue.p.ExtendAbove = false
		blue.p.ColourMapping = ColourMappingWhiteToBlue
		red.p.ScaleType = ScaleTypeLog
		red.p.Exaggeration = 10
		red.p.RangeMinimum, red.p.RangeMaximum = 0, 1
		red.p.FixMinimum = true
		red.p.ExtendBelow = false
		red.p.ColourMapping = ColourMappingWhiteToRed
		blue.fixStep()
		red.fixStep()
	}
	s.changed()
	if keepRange {
		return s.SetMinimumAndMaximum(minimum, maximum)
	}
	return nil
}

// addComponent appends a default component held only by the spectrum.
func (s *Spectrum) addComponent() *Component {
	c := newComponent(s)
	s.components = append(s.components, c)
	return c
}
