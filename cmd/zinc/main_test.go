// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/group"
	"cogentcore.org/zinc/logx"
	"cogentcore.org/zinc/spectrum"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o666))
	return filename
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, spectrum.PresetBlueToRed, cfg.Spectrum)
	assert.Equal(t, group.SubelementHandlingModeNone, cfg.SubelementHandling)
	assert.False(t, cfg.Watch)
	lv, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logx.UserLevel, lv)

	filename := writeFile(t, "zinc.toml", strings.Join([]string{
		`log_level = "debug"`,
		`spectrum = "BlueWhiteRed"`,
		`subelement_handling = "full"`,
		`watch = true`,
	}, "\n"))
	cfg, err = LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, spectrum.PresetBlueWhiteRed, cfg.Spectrum)
	assert.Equal(t, group.SubelementHandlingModeFull, cfg.SubelementHandling)
	assert.True(t, cfg.Watch)
	lv, err = cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lv)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "mode.toml", `subelement_handling = "invalid"`))
	assert.ErrorIs(t, err, errors.ErrArgument)

	_, err = LoadConfig(writeFile(t, "preset.toml", `spectrum = "purple"`))
	assert.Error(t, err)

	cfg, err := LoadConfig(writeFile(t, "level.toml", `log_level = "loud"`))
	require.NoError(t, err)
	_, err = cfg.Level()
	assert.ErrorIs(t, err, errors.ErrArgument)
}

func TestRunFiles(t *testing.T) {
	level := logx.UserLevel
	t.Cleanup(func() { logx.UserLevel = level })

	cfg := writeFile(t, "zinc.toml", `spectrum = "RedToBlue"`)
	good := writeFile(t, "good.zinc", "spectrum eval default 0\n")
	bad := writeFile(t, "bad.zinc", "# bad\nspectrum eval missing 0\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-q", "-config", cfg, good}, nil, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "spectrum default(0): 1 0 0 1\n", stdout.String())
	assert.Equal(t, slog.LevelError, logx.UserLevel)

	stdout.Reset()
	code = run([]string{"-config", cfg, bad, good}, nil, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Equal(t, "spectrum default(0): 1 0 0 1\n", stdout.String())
	assert.Contains(t, stderr.String(), "line 2")
	assert.Contains(t, stderr.String(), "bad.zinc")
}

func TestRunStdin(t *testing.T) {
	level := logx.UserLevel
	t.Cleanup(func() { logx.UserLevel = level })

	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("spectrum eval default 1\n"), &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "spectrum default(1): 1 0 0 1\n", stdout.String())

	assert.Equal(t, 2, run([]string{"-watch"}, strings.NewReader(""), &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-bogus"}, nil, &stdout, &stderr))
	assert.Equal(t, 0, run([]string{"-h"}, nil, &stdout, &stderr))
}
