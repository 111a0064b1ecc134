// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, UserLevel, LevelFromFlags(false, false, false))
}

func TestLevelFromString(t *testing.T) {
	lv, ok := LevelFromString("warn")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, lv)
	_, ok = LevelFromString("loud")
	assert.False(t, ok)
}

func TestHandler(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()

	var b bytes.Buffer
	lg := slog.New(NewHandler(&b))
	UserLevel = slog.LevelWarn
	lg.Info("hidden")
	assert.Empty(t, b.String())
	lg.Warn("shown", "group", "sel")
	assert.Contains(t, b.String(), "shown")
	assert.Contains(t, b.String(), "group=sel")
	assert.NotContains(t, b.String(), "time=")
}

func TestLevelString(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	assert.Equal(t, "ERROR", LevelString(out, slog.LevelError))
	assert.Equal(t, "DEBUG", LevelString(out, slog.LevelDebug))
}
