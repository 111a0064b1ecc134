// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fields

import (
	"errors"
	"strconv"
	"strings"
)

var _OpValues = []Op{OpNot, OpAnd, OpOr, OpGreaterThan, OpLessThan}
var _OpNameToValueMap = map[string]Op{`Not`: OpNot, `not`: OpNot, `And`: OpAnd, `and`: OpAnd, `Or`: OpOr, `or`: OpOr, `GreaterThan`: OpGreaterThan, `greaterthan`: OpGreaterThan, `LessThan`: OpLessThan, `lessthan`: OpLessThan}
var _OpDescMap = map[Op]string{OpNot: `OpNot is true where its source is false.`, OpAnd: `OpAnd is true where both sources are true.`, OpOr: `OpOr is true where either source is true.`, OpGreaterThan: `OpGreaterThan is true where the first source is greater than the second.`, OpLessThan: `OpLessThan is true where the first source is less than the second.`}
var _OpMap = map[Op]string{OpNot: `Not`, OpAnd: `And`, OpOr: `Or`, OpGreaterThan: `GreaterThan`, OpLessThan: `LessThan`}

// String returns the string representation of this Op value.
func (i Op) String() string {
	if str, ok := _OpMap[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the Op value from its string representation,
// and returns an error if the string is invalid.
func (i *Op) SetString(s string) error {
	if val, ok := _OpNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _OpNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type Op")
}

// Int64 returns the Op value as an int64.
func (i Op) Int64() int64 { return int64(i) }

// SetInt64 sets the Op value from an int64.
func (i *Op) SetInt64(in int64) { *i = Op(in) }

// Desc returns the description of the Op value.
func (i Op) Desc() string {
	if str, ok := _OpDescMap[i]; ok {
		return str
	}
	return i.String()
}

// OpValues returns all possible values for the type Op.
func OpValues() []Op { return _OpValues }

// IsValid returns whether the value is a valid option for type Op.
func (i Op) IsValid() bool {
	_, ok := _OpMap[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Op) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Op) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
