// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Bands int
	Range []float64
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	in := testStruct{Name: "banded", Bands: 4, Range: []float64{-1, 2.5}}
	for _, ext := range []string{".toml", ".yaml", ".json"} {
		fn := filepath.Join(dir, "spectrum"+ext)
		require.NoError(t, Save(&in, fn))
		var out testStruct
		require.NoError(t, Open(&out, fn))
		assert.Equal(t, in, out, ext)
	}
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("a/b.YML")
	assert.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = FormatOf("mesh.exf")
	assert.Error(t, err)
}
