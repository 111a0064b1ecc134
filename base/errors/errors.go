// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides the result taxonomy shared by the zinc
// packages, along with a set of error handling helpers that
// extend the standard library errors package.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
)

var (
	// ErrArgument is returned for a nil or invalid handle, an object
	// belonging to the wrong region, an invalid enum value or a
	// malformed numeric parameter.
	ErrArgument = errors.New("invalid argument")

	// ErrNotFound is returned when an operation targets an association
	// that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotImplemented is returned for a recognized but unsupported
	// combination of parameters.
	ErrNotImplemented = errors.New("not implemented")
)

// New is a wrapper around [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is is a wrapper around [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a wrapper around [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is a wrapper around [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Argument returns an [ErrArgument] with the given formatted detail.
func Argument(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrArgument, fmt.Sprintf(format, a...))
}

// NotFound returns an [ErrNotFound] with the given formatted detail.
func NotFound(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, a...))
}

// NotImplemented returns an [ErrNotImplemented] with the given formatted detail.
func NotImplemented(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrNotImplemented, fmt.Sprintf(format, a...))
}

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 ignores an error return value for a function returning
// a value and an error, allowing direct usage of the value.
// The intended usage is:
//
//	a := errors.Ignore1(MyFunc(v))
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}
