// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"github.com/jinzhu/copier"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/base/iox/ioformat"
)

// Description is the saved form of a spectrum.
type Description struct {
	Name              string                 `toml:"name" yaml:"name" json:"name"`
	MaterialOverwrite bool                   `toml:"material_overwrite" yaml:"material_overwrite" json:"material_overwrite"`
	Components        []ComponentDescription `toml:"components" yaml:"components" json:"components"`
}

// ComponentDescription is the saved form of a spectrum component.
type ComponentDescription struct {
	RangeMinimum   float64       `toml:"range_minimum" yaml:"range_minimum" json:"range_minimum"`
	RangeMaximum   float64       `toml:"range_maximum" yaml:"range_maximum" json:"range_maximum"`
	ColourMinimum  float64       `toml:"colour_minimum" yaml:"colour_minimum" json:"colour_minimum"`
	ColourMaximum  float64       `toml:"colour_maximum" yaml:"colour_maximum" json:"colour_maximum"`
	ColourMapping  ColourMapping `toml:"colour_mapping" yaml:"colour_mapping" json:"colour_mapping"`
	ScaleType      ScaleType     `toml:"scale_type" yaml:"scale_type" json:"scale_type"`
	Exaggeration   float64       `toml:"exaggeration" yaml:"exaggeration" json:"exaggeration"`
	StepValue      float64       `toml:"step_value" yaml:"step_value" json:"step_value"`
	BandedRatio    float64       `toml:"banded_ratio" yaml:"banded_ratio" json:"banded_ratio"`
	NumberOfBands  int           `toml:"number_of_bands" yaml:"number_of_bands" json:"number_of_bands"`
	FieldComponent int           `toml:"field_component" yaml:"field_component" json:"field_component"`
	Active         bool          `toml:"active" yaml:"active" json:"active"`
	ColourReverse  bool          `toml:"colour_reverse" yaml:"colour_reverse" json:"colour_reverse"`
	ExtendAbove    bool          `toml:"extend_above" yaml:"extend_above" json:"extend_above"`
	ExtendBelow    bool          `toml:"extend_below" yaml:"extend_below" json:"extend_below"`
	FixMinimum     bool          `toml:"fix_minimum" yaml:"fix_minimum" json:"fix_minimum"`
	FixMaximum     bool          `toml:"fix_maximum" yaml:"fix_maximum" json:"fix_maximum"`
}

// validate checks the settings the component setters would reject.
func (cd *ComponentDescription) validate() error {
	switch {
	case cd.ColourMinimum < 0 || cd.ColourMinimum > 1:
		return errors.Argument("colour minimum %g is outside [0,1]", cd.ColourMinimum)
	case cd.ColourMaximum < 0 || cd.ColourMaximum > 1:
		return errors.Argument("colour maximum %g is outside [0,1]", cd.ColourMaximum)
	case cd.ColourMapping == ColourMappingInvalid || !cd.ColourMapping.IsValid():
		return errors.Argument("invalid colour mapping %v", cd.ColourMapping)
	case cd.ScaleType == ScaleTypeInvalid || !cd.ScaleType.IsValid():
		return errors.Argument("invalid scale type %v", cd.ScaleType)
	case cd.BandedRatio <= 0 || cd.BandedRatio > 1:
		return errors.Argument("banded ratio %g is outside (0,1]", cd.BandedRatio)
	case cd.NumberOfBands < 1:
		return errors.Argument("number of bands %d is less than 1", cd.NumberOfBands)
	case cd.FieldComponent < 1:
		return errors.Argument("field component %d is less than 1", cd.FieldComponent)
	}
	return nil
}

// Description returns the saved form of the spectrum.
func (s *Spectrum) Description() Description {
	d := Description{Name: s.name, MaterialOverwrite: s.overwrite}
	for _, c := range s.components {
		var cd ComponentDescription
		errors.Log(copier.Copy(&cd, &c.p))
		cd.BandedRatio = c.BandedRatio()
		d.Components = append(d.Components, cd)
	}
	return d
}

// SetDescription replaces the settings and components of the spectrum
// with those of the description. The name is not changed. Nothing is
// changed if any component description is invalid.
func (s *Spectrum) SetDescription(d Description) error {
	if err := s.check(); err != nil {
		return err
	}
	for i := range d.Components {
		if err := d.Components[i].validate(); err != nil {
			return errors.Join(errors.Argument("component %d", i+1), err)
		}
	}
	s.BeginChange()
	defer s.EndChange()
	s.clearComponents()
	s.overwrite = d.MaterialOverwrite
	for _, cd := range d.Components {
		c := s.addComponent()
		if err := copier.Copy(&c.p, &cd); err != nil {
			return err
		}
		c.p.bandProportion = max(int(cd.BandedRatio*1000+0.5), 1)
	}
	s.changed()
	return nil
}

// Save writes the description of the spectrum to the file, in TOML,
// YAML or JSON by its extension.
func (s *Spectrum) Save(filename string) error {
	return ioformat.Save(s.Description(), filename)
}

// Open reads a description from the file, in TOML, YAML or JSON by
// its extension, and applies it to the spectrum.
func (s *Spectrum) Open(filename string) error {
	var d Description
	if err := ioformat.Open(&d, filename); err != nil {
		return err
	}
	return s.SetDescription(d)
}

// CopyFrom replaces the settings and components of the spectrum with
// copies of those of src. The name is not changed.
func (s *Spectrum) CopyFrom(src *Spectrum) error {
	if err := s.check(); err != nil {
		return err
	}
	if err := src.check(); err != nil {
		return err
	}
	if src == s {
		return nil
	}
	s.BeginChange()
	defer s.EndChange()
	s.clearComponents()
	s.overwrite = src.overwrite
	for _, sc := range src.components {
		c := s.addComponent()
		if err := copier.Copy(&c.p, &sc.p); err != nil {
			return err
		}
		c.p.bandProportion = sc.p.bandProportion
	}
	s.changed()
	return nil
}
