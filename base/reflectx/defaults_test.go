// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/zinc/base/errors"
)

type inner struct {
	Count int     `default:"3"`
	Scale float32 `default:"0.5"`
}

type options struct {
	Name    string     `default:"zinc"`
	Enabled bool       `default:"true"`
	Level   slog.Level `default:"warn"`
	Size    uint8      `default:"0x10"`
	Inner   inner
	Plain   string
	hidden  int `default:"9"`
}

func TestSetFromDefaultTags(t *testing.T) {
	var o options
	o.Plain = "kept"
	require.NoError(t, SetFromDefaultTags(&o))
	assert.Equal(t, "zinc", o.Name)
	assert.True(t, o.Enabled)
	assert.Equal(t, slog.LevelWarn, o.Level)
	assert.Equal(t, uint8(16), o.Size)
	assert.Equal(t, 3, o.Inner.Count)
	assert.Equal(t, float32(0.5), o.Inner.Scale)
	assert.Equal(t, "kept", o.Plain)
	assert.Equal(t, 0, o.hidden)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	assert.ErrorIs(t, SetFromDefaultTags(options{}), errors.ErrArgument)
	assert.ErrorIs(t, SetFromDefaultTags(new(int)), errors.ErrArgument)

	type bad struct {
		Count int      `default:"many"`
		Names []string `default:"a"`
		Name  string   `default:"set"`
	}
	var b bad
	err := SetFromDefaultTags(&b)
	assert.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotImplemented)
	assert.Equal(t, "set", b.Name)
}
