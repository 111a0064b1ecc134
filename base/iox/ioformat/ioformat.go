// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ioformat opens and saves objects in TOML, YAML or JSON,
// choosing the format from the file extension.
package ioformat

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/zinc/base/iox/jsonx"
	"cogentcore.org/zinc/base/iox/tomlx"
	"cogentcore.org/zinc/base/iox/yamlx"
)

// Format is a supported encoding format.
type Format int32

const (
	TOML Format = iota
	YAML
	JSON
)

// FormatOf returns the format for the extension of the given filename.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return TOML, fmt.Errorf("ioformat: unsupported file extension for %q", filename)
}

// Open reads the given object from the given file, in the format
// given by its extension.
func Open(v any, filename string) error {
	f, err := FormatOf(filename)
	if err != nil {
		return err
	}
	switch f {
	case YAML:
		return yamlx.Open(v, filename)
	case JSON:
		return jsonx.Open(v, filename)
	}
	return tomlx.Open(v, filename)
}

// Save writes the given object to the given file, in the format
// given by its extension.
func Save(v any, filename string) error {
	f, err := FormatOf(filename)
	if err != nil {
		return err
	}
	switch f {
	case YAML:
		return yamlx.Save(v, filename)
	case JSON:
		return jsonx.Save(v, filename)
	}
	return tomlx.Save(v, filename)
}
