// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "strconv"

// Result is the closed set of status codes reported by the
// zinc operations, for callers that need an integer code.
type Result int32

const (
	// ResultOK is returned for success.
	ResultOK Result = iota

	// ResultErrorGeneral is returned for an unclassified failure.
	ResultErrorGeneral

	// ResultErrorArgument is returned for invalid or inconsistent input.
	ResultErrorArgument

	// ResultErrorNotFound is returned when the requested association
	// does not exist.
	ResultErrorNotFound

	// ResultErrorNotImplemented is returned for a recognized but
	// unsupported parameter combination.
	ResultErrorNotImplemented
)

// ResultOf returns the [Result] corresponding to the given error.
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return ResultOK
	case Is(err, ErrArgument):
		return ResultErrorArgument
	case Is(err, ErrNotFound):
		return ResultErrorNotFound
	case Is(err, ErrNotImplemented):
		return ResultErrorNotImplemented
	}
	return ResultErrorGeneral
}

var _ResultNames = []string{"OK", "ErrorGeneral", "ErrorArgument", "ErrorNotFound", "ErrorNotImplemented"}

// String returns the string representation of this Result value.
func (i Result) String() string {
	if i < 0 || int(i) >= len(_ResultNames) {
		return "Result(" + strconv.Itoa(int(i)) + ")"
	}
	return _ResultNames[i]
}

// IsValid returns whether the value is a valid option for its enum type.
func (i Result) IsValid() bool {
	return i >= 0 && int(i) < len(_ResultNames)
}
