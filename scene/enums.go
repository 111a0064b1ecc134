// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"strconv"
	"strings"
)

var _ChangeFlagsValues = []ChangeFlags{ChangeAdd, ChangeRemove, ChangeFinal}
var _ChangeFlagsNameToValueMap = map[string]ChangeFlags{`Add`: ChangeAdd, `add`: ChangeAdd, `Remove`: ChangeRemove, `remove`: ChangeRemove, `Final`: ChangeFinal, `final`: ChangeFinal}
var _ChangeFlagsDescMap = map[ChangeFlags]string{ChangeAdd: `ChangeAdd is set when objects were added to the selection.`, ChangeRemove: `ChangeRemove is set when objects were removed from the selection.`, ChangeFinal: `ChangeFinal is set once, when the scene is destroyed.`}
var _ChangeFlagsMap = map[ChangeFlags]string{ChangeAdd: `Add`, ChangeRemove: `Remove`, ChangeFinal: `Final`}

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
