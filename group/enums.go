// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

import (
	"errors"
	"strconv"
	"strings"
)

var _ChangeValues = []Change{ChangeAdd, ChangeRemove}
var _ChangeNameToValueMap = map[string]Change{`Add`: ChangeAdd, `add`: ChangeAdd, `Remove`: ChangeRemove, `remove`: ChangeRemove}
var _ChangeDescMap = map[Change]string{ChangeAdd: `ChangeAdd is set when objects or regions were added.`, ChangeRemove: `ChangeRemove is set when objects or regions were removed.`}
var _ChangeMap = map[Change]string{ChangeAdd: `Add`, ChangeRemove: `Remove`}

// String returns the string representation of this Change value,
// with set flags joined by "|" and "None" for no flags.
func (i Change) String() string {
	if i == 0 {
		return "None"
	}
	var names []string
	for _, v := range _ChangeValues {
		if i&v != 0 {
			names = append(names, _ChangeMap[v])
		}
	}
	if rest := i &^ ChangeAll(); rest != 0 {
		names = append(names, strconv.FormatInt(int64(rest), 10))
	}
	return strings.Join(names, "|")
}

// SetString sets the Change value from its string representation,
// and returns an error if the string is invalid.
func (i *Change) SetString(s string) error {
	*i = 0
	if s == "" || strings.EqualFold(s, "None") {
		return nil
	}
	for _, flg := range strings.Split(s, "|") {
		if val, ok := _ChangeNameToValueMap[strings.ToLower(strings.TrimSpace(flg))]; ok {
			*i |= val
			continue
		}
		return errors.New(flg + " is not a valid value for type Change")
	}
	return nil
}

// Int64 returns the Change value as an int64.
func (i Change) Int64() int64 { return int64(i) }

// SetInt64 sets the Change value from an int64.
func (i *Change) SetInt64(in int64) { *i = Change(in) }

// Desc returns the description of a single Change flag.
func (i Change) Desc() string {
	if str, ok := _ChangeDescMap[i]; ok {
		return str
	}
	return i.String()
}

// ChangeValues returns the single flag values of the type Change.
func ChangeValues() []Change { return _ChangeValues }

// ChangeAll returns all flags of the type Change set.
func ChangeAll() Change {
	var all Change
	for _, v := range _ChangeValues {
		all |= v
	}
	return all
}

// IsValid returns whether the value only has defined flags set.
func (i Change) IsValid() bool { return i&^ChangeAll() == 0 }

// HasFlag returns whether all of the given flags are set.
func (i Change) HasFlag(f Change) bool { return i&f == f }

// SetFlag sets or clears the given flags.
func (i *Change) SetFlag(on bool, f ...Change) {
	for _, fl := range f {
		if on {
			*i |= fl
		} else {
			*i &^= fl
		}
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Change) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Change) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _SubelementHandlingModeValues = []SubelementHandlingMode{SubelementHandlingModeInvalid, SubelementHandlingModeNone, SubelementHandlingModeFull}
var _SubelementHandlingModeNameToValueMap = map[string]SubelementHandlingMode{`Invalid`: SubelementHandlingModeInvalid, `invalid`: SubelementHandlingModeInvalid, `None`: SubelementHandlingModeNone, `none`: SubelementHandlingModeNone, `Full`: SubelementHandlingModeFull, `full`: SubelementHandlingModeFull}
var _SubelementHandlingModeDescMap = map[SubelementHandlingMode]string{SubelementHandlingModeInvalid: `SubelementHandlingModeInvalid is not a valid mode.`, SubelementHandlingModeNone: `SubelementHandlingModeNone only changes the objects given.`, SubelementHandlingModeFull: `SubelementHandlingModeFull also adds the faces, lines and nodes of added elements, and removes those of removed elements that are not used by any element remaining in the group.`}
var _SubelementHandlingModeMap = map[SubelementHandlingMode]string{SubelementHandlingModeInvalid: `Invalid`, SubelementHandlingModeNone: `None`, SubelementHandlingModeFull: `Full`}

// String returns the string representation of this SubelementHandlingMode value.
func (i SubelementHandlingMode) String() string {
	if str, ok := _SubelementHandlingModeMap[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the SubelementHandlingMode value from its string representation,
// and returns an error if the string is invalid.
func (i *SubelementHandlingMode) SetString(s string) error {
	if val, ok := _SubelementHandlingModeNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _SubelementHandlingModeNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type SubelementHandlingMode")
}

// Int64 returns the SubelementHandlingMode value as an int64.
func (i SubelementHandlingMode) Int64() int64 { return int64(i) }

// SetInt64 sets the SubelementHandlingMode value from an int64.
func (i *SubelementHandlingMode) SetInt64(in int64) { *i = SubelementHandlingMode(in) }

// Desc returns the description of the SubelementHandlingMode value.
func (i SubelementHandlingMode) Desc() string {
	if str, ok := _SubelementHandlingModeDescMap[i]; ok {
		return str
	}
	return i.String()
}

// SubelementHandlingModeValues returns all possible values for the type SubelementHandlingMode.
func SubelementHandlingModeValues() []SubelementHandlingMode { return _SubelementHandlingModeValues }

// IsValid returns whether the value is a valid option for type SubelementHandlingMode.
func (i SubelementHandlingMode) IsValid() bool {
	_, ok := _SubelementHandlingModeMap[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i SubelementHandlingMode) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *SubelementHandlingMode) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
