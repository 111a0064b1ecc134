// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the logging level and handler setup
// used by the zinc command line tools.
package logx

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It defaults to
// [slog.LevelInfo], or [slog.LevelDebug] and [slog.LevelWarn] under
// the debug and release build tags respectively.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [UserLevel])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return UserLevel
	}
}

// LevelFromString returns the level for the given name
// (debug, info, warn or error), and false if it is not one of those.
func LevelFromString(s string) (slog.Level, bool) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(s)); err != nil {
		return UserLevel, false
	}
	return lv, true
}

// NewHandler returns a text [slog.Handler] writing to the given writer
// at [UserLevel], with level names coloured when w is a terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: &levelVar{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			if a.Key != slog.LevelKey {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			return slog.String(slog.LevelKey, LevelString(out, lv))
		},
	})
}

// SetDefault installs [NewHandler] over w as the default slog logger.
func SetDefault(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w)))
}

// LevelString returns the name of the given level styled for the given
// output: red for errors, yellow for warnings and faint for debug.
func LevelString(out *termenv.Output, lv slog.Level) string {
	s := out.String(lv.String())
	switch {
	case lv >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case lv >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case lv < slog.LevelInfo:
		s = s.Faint()
	}
	return s.String()
}

// levelVar reads [UserLevel] at each call so that changes
// made after handler creation apply.
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }
