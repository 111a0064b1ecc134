// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"errors"
	"strconv"
	"strings"
)

var _ScaleTypeValues = []ScaleType{ScaleTypeInvalid, ScaleTypeLinear, ScaleTypeLog}
var _ScaleTypeNameToValueMap = map[string]ScaleType{`Invalid`: ScaleTypeInvalid, `invalid`: ScaleTypeInvalid, `Linear`: ScaleTypeLinear, `linear`: ScaleTypeLinear, `Log`: ScaleTypeLog, `log`: ScaleTypeLog}
var _ScaleTypeDescMap = map[ScaleType]string{ScaleTypeInvalid: `ScaleTypeInvalid is not a valid scale.`, ScaleTypeLinear: `ScaleTypeLinear maps the range linearly.`, ScaleTypeLog: `ScaleTypeLog maps the range through a log curve set by the exaggeration.`}
var _ScaleTypeMap = map[ScaleType]string{ScaleTypeInvalid: `Invalid`, ScaleTypeLinear: `Linear`, ScaleTypeLog: `Log`}

// String returns the string representation of this ScaleType value.
func (i ScaleType) String() string {
	if str, ok := _ScaleTypeMap[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the ScaleType value from its string representation,
// and returns an error if the string is invalid.
func (i *ScaleType) SetString(s string) error {
	if val, ok := _ScaleTypeNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _ScaleTypeNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type ScaleType")
}

// Int64 returns the ScaleType value as an int64.
func (i ScaleType) Int64() int64 { return int64(i) }

// SetInt64 sets the ScaleType value from an int64.
func (i *ScaleType) SetInt64(in int64) { *i = ScaleType(in) }

// Desc returns the description of the ScaleType value.
func (i ScaleType) Desc() string {
	if str, ok := _ScaleTypeDescMap[i]; ok {
		return str
	}
	return i.String()
}

// ScaleTypeValues returns all possible values for the type ScaleType.
func ScaleTypeValues() []ScaleType { return _ScaleTypeValues }

// IsValid returns whether the value is a valid option for type ScaleType.
func (i ScaleType) IsValid() bool {
	_, ok := _ScaleTypeMap[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i ScaleType) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *ScaleType) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _ColourMappingValues = []ColourMapping{ColourMappingInvalid, ColourMappingAlpha, ColourMappingBanded, ColourMappingBlue, ColourMappingGreen, ColourMappingMonochrome, ColourMappingRainbow, ColourMappingRed, ColourMappingStep, ColourMappingWhiteToBlue, ColourMappingWhiteToRed, ColourMappingWhiteToGreen}
var _ColourMappingNameToValueMap = map[string]ColourMapping{`Invalid`: ColourMappingInvalid, `invalid`: ColourMappingInvalid, `Alpha`: ColourMappingAlpha, `alpha`: ColourMappingAlpha, `Banded`: ColourMappingBanded, `banded`: ColourMappingBanded, `Blue`: ColourMappingBlue, `blue`: ColourMappingBlue, `Green`: ColourMappingGreen, `green`: ColourMappingGreen, `Monochrome`: ColourMappingMonochrome, `monochrome`: ColourMappingMonochrome, `Rainbow`: ColourMappingRainbow, `rainbow`: ColourMappingRainbow, `Red`: ColourMappingRed, `red`: ColourMappingRed, `Step`: ColourMappingStep, `step`: ColourMappingStep, `WhiteToBlue`: ColourMappingWhiteToBlue, `whitetoblue`: ColourMappingWhiteToBlue, `WhiteToRed`: ColourMappingWhiteToRed, `whitetored`: ColourMappingWhiteToRed, `WhiteToGreen`: ColourMappingWhiteToGreen, `whitetogreen`: ColourMappingWhiteToGreen}
var _ColourMappingDescMap = map[ColourMapping]string{ColourMappingInvalid: `ColourMappingInvalid is not a valid mapping.`, ColourMappingAlpha: `ColourMappingAlpha sets the alpha channel only.`, ColourMappingBanded: `ColourMappingBanded draws black bands over equal sections of the range.`, ColourMappingBlue: `ColourMappingBlue sets the blue channel.`, ColourMappingGreen: `ColourMappingGreen sets the green channel.`, ColourMappingMonochrome: `ColourMappingMonochrome sets the red, green and blue channels to the same value.`, ColourMappingRainbow: `ColourMappingRainbow maps through red, yellow, green, cyan and blue.`, ColourMappingRed: `ColourMappingRed sets the red channel.`, ColourMappingStep: `ColourMappingStep gives red below the step value and green above it.`, ColourMappingWhiteToBlue: `ColourMappingWhiteToBlue fades from white to blue.`, ColourMappingWhiteToRed: `ColourMappingWhiteToRed fades from white to red.`, ColourMappingWhiteToGreen: `ColourMappingWhiteToGreen fades from white to green.`}
var _ColourMappingMap = map[ColourMapping]string{ColourMappingInvalid: `Invalid`, ColourMappingAlpha: `Alpha`, ColourMappingBanded: `Banded`, ColourMappingBlue: `Blue`, ColourMappingGreen: `Green`, ColourMappingMonochrome: `Monochrome`, ColourMappingRainbow: `Rainbow`, ColourMappingRed: `Red`, ColourMappingStep: `Step`, ColourMappingWhiteToBlue: `WhiteToBlue`, ColourMappingWhiteToRed: `WhiteToRed`, ColourMappingWhiteToGreen: `WhiteToGreen`}

// String returns the string representation of this ColourMapping value.
func (i ColourMapping) String() string {
	if str, ok := _ColourMappingMap[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the ColourMapping value from its string representation,
// and returns an error if the string is invalid.
func (i *ColourMapping) SetString(s string) error {
	if val, ok := _ColourMappingNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _ColourMappingNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type ColourMapping")
}

// Int64 returns the ColourMapping value as an int64.
func (i ColourMapping) Int64() int64 { return int64(i) }

// SetInt64 sets the ColourMapping value from an int64.
func (i *ColourMapping) SetInt64(in int64) { *i = ColourMapping(in) }

// Desc returns the description of the ColourMapping value.
func (i ColourMapping) Desc() string {
	if str, ok := _ColourMappingDescMap[i]; ok {
		return str
	}
	return i.String()
}

// ColourMappingValues returns all possible values for the type ColourMapping.
func ColourMappingValues() []ColourMapping { return _ColourMappingValues }

// IsValid returns whether the value is a valid option for type ColourMapping.
func (i ColourMapping) IsValid() bool {
	_, ok := _ColourMappingMap[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i ColourMapping) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *ColourMapping) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _PresetValues = []Preset{PresetRedToBlue, PresetBlueToRed, PresetLogRedToBlue, PresetLogBlueToRed, PresetBlueWhiteRed}
var _PresetNameToValueMap = map[string]Preset{`RedToBlue`: PresetRedToBlue, `redtoblue`: PresetRedToBlue, `BlueToRed`: PresetBlueToRed, `bluetored`: PresetBlueToRed, `LogRedToBlue`: PresetLogRedToBlue, `logredtoblue`: PresetLogRedToBlue, `LogBlueToRed`: PresetLogBlueToRed, `logbluetored`: PresetLogBlueToRed, `BlueWhiteRed`: PresetBlueWhiteRed, `bluewhitered`: PresetBlueWhiteRed}
var _PresetDescMap = map[Preset]string{PresetRedToBlue: `PresetRedToBlue is a linear rainbow from red at the minimum to blue at the maximum.`, PresetBlueToRed: `PresetBlueToRed is a linear rainbow from blue at the minimum to red at the maximum.`, PresetLogRedToBlue: `PresetLogRedToBlue is a rainbow from red to blue, log scaled either side of the middle of the range.`, PresetLogBlueToRed: `PresetLogBlueToRed is a rainbow from blue to red, log scaled either side of the middle of the range.`, PresetBlueWhiteRed: `PresetBlueWhiteRed goes from blue through white at zero to red.`}
var _PresetMap = map[Preset]string{PresetRedToBlue: `RedToBlue`, PresetBlueToRed: `BlueToRed`, PresetLogRedToBlue: `LogRedToBlue`, PresetLogBlueToRed: `LogBlueToRed`, PresetBlueWhiteRed: `BlueWhiteRed`}

// String returns the string representation of this Preset value.
func (i Preset) String() string {
	if str, ok := _PresetMap[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the Preset value from its string representation,
// and returns an error if the string is invalid.
func (i *Preset) SetString(s string) error {
	if val, ok := _PresetNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _PresetNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type Preset")
}

// Int64 returns the Preset value as an int64.
func (i Preset) Int64() int64 { return int64(i) }

// SetInt64 sets the Preset value from an int64.
func (i *Preset) SetInt64(in int64) { *i = Preset(in) }

// Desc returns the description of the Preset value.
func (i Preset) Desc() string {
	if str, ok := _PresetDescMap[i]; ok {
		return str
	}
	return i.String()
}

// PresetValues returns all possible values for the type Preset.
func PresetValues() []Preset { return _PresetValues }

// IsValid returns whether the value is a valid option for type Preset.
func (i Preset) IsValid() bool {
	_, ok := _PresetMap[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Preset) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Preset) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _ChangeFlagsValues = []ChangeFlags{ChangeAdd, ChangeRemove, ChangeIdentifier, ChangeDefinition, ChangeFullResult, ChangeFinal}
var _ChangeFlagsNameToValueMap = map[string]ChangeFlags{`Add`: ChangeAdd, `add`: ChangeAdd, `Remove`: ChangeRemove, `remove`: ChangeRemove, `Identifier`: ChangeIdentifier, `identifier`: ChangeIdentifier, `Definition`: ChangeDefinition, `definition`: ChangeDefinition, `FullResult`: ChangeFullResult, `fullresult`: ChangeFullResult, `Final`: ChangeFinal, `final`: ChangeFinal}
var _ChangeFlagsDescMap = map[ChangeFlags]string{ChangeAdd: `ChangeAdd is set when the spectrum was added to the module.`, ChangeRemove: `ChangeRemove is set when the spectrum was removed from the module.`, ChangeIdentifier: `ChangeIdentifier is set when the spectrum was renamed.`, ChangeDefinition: `ChangeDefinition is set when the settings of the spectrum changed.`, ChangeFullResult: `ChangeFullResult is set when colours given by the spectrum may have changed.`, ChangeFinal: `ChangeFinal is set when the spectrum is destroyed.`}
var _ChangeFlagsMap = map[ChangeFlags]string{ChangeAdd: `Add`, ChangeRemove: `Remove`, ChangeIdentifier: `Identifier`, ChangeDefinition: `Definition`, ChangeFullResult: `FullResult`, ChangeFinal: `Final`}

// String returns the string representation of this ChangeFlags value,
// with set flags joined by "|" and "None" for no flags.
func (i ChangeFlags) String() string {
	if i == 0 {
		return "None"
	}
	var names []string
	for _, v := range _ChangeFlagsValues {
		if i&v != 0 {
			names = append(names, _ChangeFlagsMap[v])
		}
	}
	if rest := i &^ ChangeFlagsAll(); rest != 0 {
		names = append(names, strconv.FormatInt(int64(rest), 10))
	}
	return strings.Join(names, "|")
}

// SetString sets the ChangeFlags value from its string representation,
// and returns an error if the string is invalid.
func (i *ChangeFlags) SetString(s string) error {
	*i = 0
	if s == "" || strings.EqualFold(s, "None") {
		return nil
	}
	for _, flg := range strings.Split(s, "|") {
		if val, ok := _ChangeFlagsNameToValueMap[strings.ToLower(strings.TrimSpace(flg))]; ok {
			*i |= val
			continue
		}
		return errors.New(flg + " is not a valid value for type ChangeFlags")
	}
	return nil
}

// Int64 returns the ChangeFlags value as an int64.
func (i ChangeFlags) Int64() int64 { return int64(i) }

// SetInt64 sets the ChangeFlags value from an int64.
func (i *ChangeFlags) SetInt64(in int64) { *i = ChangeFlags(in) }

// Desc returns the description of a single ChangeFlags flag.
func (i ChangeFlags) Desc() string {
	if str, ok := _ChangeFlagsDescMap[i]; ok {
		return str
	}
	return i.String()
}

// ChangeFlagsValues returns the single flag values of the type ChangeFlags.
func ChangeFlagsValues() []ChangeFlags { return _ChangeFlagsValues }

// ChangeFlagsAll returns all flags of the type ChangeFlags set.
func ChangeFlagsAll() ChangeFlags {
	var all ChangeFlags
	for _, v := range _ChangeFlagsValues {
		all |= v
	}
	return all
}

// IsValid returns whether the value only has defined flags set.
func (i ChangeFlags) IsValid() bool { return i&^ChangeFlagsAll() == 0 }

// HasFlag returns whether all of the given flags are set.
func (i ChangeFlags) HasFlag(f ChangeFlags) bool { return i&f == f }

// SetFlag sets or clears the given flags.
func (i *ChangeFlags) SetFlag(on bool, f ...ChangeFlags) {
	for _, fl := range f {
		if on {
			*i |= fl
		} else {
			*i &^= fl
		}
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i ChangeFlags) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *ChangeFlags) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
