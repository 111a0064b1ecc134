// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/base/fsx"
	"cogentcore.org/zinc/base/iox/tomlx"
	"cogentcore.org/zinc/base/reflectx"
	"cogentcore.org/zinc/group"
	"cogentcore.org/zinc/logx"
	"cogentcore.org/zinc/spectrum"
)

// DefaultConfigFile is the config file read when none is given
// and it exists in the working directory.
const DefaultConfigFile = "zinc.toml"

// Config is the configuration of the zinc command.
type Config struct {

	// LogLevel is the logging level: debug, info, warn or error.
	// The verbosity flags override it.
	LogLevel string `toml:"log_level"`

	// Spectrum is the preset of the default spectrum.
	Spectrum spectrum.Preset `toml:"spectrum" default:"BlueToRed"`

	// SubelementHandling is the subelement handling mode of the
	// groups made by group create.
	SubelementHandling group.SubelementHandlingMode `toml:"subelement_handling" default:"None"`

	// Watch is whether to run the scripts again when they change.
	Watch bool `toml:"watch"`
}

// LoadConfig returns the config from the `default:` tags overridden by
// the given TOML file. An empty filename reads [DefaultConfigFile] if
// it exists.
func LoadConfig(filename string) (*Config, error) {
	cfg := &Config{}
	if err := reflectx.SetFromDefaultTags(cfg); err != nil {
		return nil, err
	}
	if filename == "" {
		ok, err := fsx.FileExists(DefaultConfigFile)
		if err != nil {
			return nil, err
		}
		if !ok {
			return cfg, nil
		}
		filename = DefaultConfigFile
	}
	if err := tomlx.Open(cfg, filename); err != nil {
		return nil, err
	}
	if !cfg.Spectrum.IsValid() {
		return nil, errors.Argument("invalid spectrum preset %v", cfg.Spectrum)
	}
	if cfg.SubelementHandling == group.SubelementHandlingModeInvalid || !cfg.SubelementHandling.IsValid() {
		return nil, errors.Argument("invalid subelement handling %v", cfg.SubelementHandling)
	}
	return cfg, nil
}

// Level returns the logging level of the config, or [logx.UserLevel]
// if it has none.
func (cfg *Config) Level() (slog.Level, error) {
	if cfg.LogLevel == "" {
		return logx.UserLevel, nil
	}
	lv, ok := logx.LevelFromString(cfg.LogLevel)
	if !ok {
		return lv, errors.Argument("invalid log level %q", cfg.LogLevel)
	}
	return lv, nil
}
