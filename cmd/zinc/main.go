// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command zinc runs zinc scripts: commands that build regions and
// meshes, edit groups and the scene selection, and evaluate and save
// spectra.
//
// Usage:
//
//	zinc [-v|-vv|-q] [-config zinc.toml] [-watch] [script...]
//
// With no scripts, commands are read from standard input.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/logx"
	"cogentcore.org/zinc/script"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run runs the command with the given arguments and returns its exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zinc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	vv := fs.Bool("vv", false, "log debug messages")
	v := fs.Bool("v", false, "log info messages")
	q := fs.Bool("q", false, "only log errors")
	configFile := fs.String("config", "", "TOML config `file` (default "+DefaultConfigFile+" if present)")
	watchFlag := fs.Bool("watch", false, "run the scripts again when they change")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: zinc [flags] [script...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	logx.SetDefault(stderr)

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		errors.Log(err)
		return 1
	}
	lv, err := cfg.Level()
	if err != nil {
		errors.Log(err)
		return 1
	}
	logx.UserLevel = lv
	if *vv || *v || *q {
		logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	}
	if *watchFlag {
		cfg.Watch = true
	}

	files := fs.Args()
	if len(files) == 0 {
		if cfg.Watch {
			errors.Log(errors.Argument("-watch needs script files"))
			return 2
		}
		if err := runScript(cfg, stdout, func(sc *script.Script) error { return sc.Run(stdin) }); err != nil {
			errors.Log(err)
			return 1
		}
		return 0
	}

	code := 0
	for _, f := range files {
		if err := runFile(cfg, stdout, f); err != nil {
			code = 1
		}
	}
	if !cfg.Watch {
		return code
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watch(ctx, files, func(f string) { runFile(cfg, stdout, f) }); err != nil {
		errors.Log(err)
		return 1
	}
	return 0
}

// runFile runs the script file, logging its errors.
func runFile(cfg *Config, stdout io.Writer, filename string) error {
	err := runScript(cfg, stdout, func(sc *script.Script) error { return sc.RunFile(filename) })
	if err != nil {
		errors.Log(fmt.Errorf("%s: %w", filename, err))
	}
	return err
}

// runScript calls f with a new script set up from the config.
func runScript(cfg *Config, stdout io.Writer, f func(sc *script.Script) error) error {
	sc := script.New(stdout)
	defer sc.Close()
	sc.Mode = cfg.SubelementHandling
	def := sc.Spectra.DefaultSpectrum()
	err := def.ApplyPreset(cfg.Spectrum)
	def.Release()
	if err != nil {
		return err
	}
	return f(sc)
}
