// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script provides a line oriented command language over the
// region, group, scene and spectrum packages, used by the zinc command.
//
// Each line is one command of two words followed by arguments, split
// like a shell command line:
//
//	region create body/heart
//	region use body/heart
//	mesh block 2 1 1 10
//	group create sel
//	group add element sel 3 1
//	group mode sel full
//	group list sel
//	selection set sel
//	spectrum preset temperature blue_white_red
//	spectrum eval temperature 0.5
//	spectrum save temperature temperature.toml
//
// Empty lines and lines starting with # are skipped.
package script

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/muesli/termenv"
	"golang.org/x/exp/maps"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/group"
	"cogentcore.org/zinc/region"
	"cogentcore.org/zinc/scene"
	"cogentcore.org/zinc/spectrum"
)

// Script runs commands over a region tree and a spectrum module.
type Script struct {

	// Commands are the commands by their first two words, such as
	// "group create".
	Commands map[string]func(args ...string) error

	// Root is the root region of the tree the commands act on.
	Root *region.Region

	// Spectra is the spectrum module of the spectrum commands.
	Spectra *spectrum.Module

	// Mode is the subelement handling mode of the groups made
	// by group create.
	Mode group.SubelementHandlingMode

	// Errors are the errors of the lines run so far.
	Errors []error

	// current is the region that commands act on.
	current *region.Region

	out *termenv.Output

	// notifiers are the selection notifiers by region path.
	notifiers map[string]*scene.Selectionnotifier
}

// New returns a new [Script] over a new root region and spectrum
// module, writing its output to w.
func New(w io.Writer) *Script {
	if w == nil {
		w = os.Stdout
	}
	root := region.NewRoot()
	sc := &Script{
		Root:      root,
		Spectra:   spectrum.NewModule(),
		Mode:      group.SubelementHandlingModeNone,
		current:   root,
		out:       termenv.NewOutput(w),
		notifiers: map[string]*scene.Selectionnotifier{},
	}
	sc.InstallCommands()
	return sc
}

// Region returns the region that commands act on.
func (sc *Script) Region() *region.Region {
	return sc.current
}

// Run runs each line of the reader. A failing line does not stop the
// lines after it. It returns the errors of all failing lines joined,
// each prefixed with its line number.
func (sc *Script) Run(r io.Reader) error {
	var errs []error
	scan := bufio.NewScanner(r)
	n := 0
	for scan.Scan() {
		n++
		if err := sc.Exec(scan.Text()); err != nil {
			err = fmt.Errorf("line %d: %w", n, err)
			sc.Errors = append(sc.Errors, err)
			errs = append(errs, err)
		}
	}
	if err := scan.Err(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// RunFile runs the lines of the given file.
func (sc *Script) RunFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return sc.Run(f)
}

// Exec runs one command line.
func (sc *Script) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return errors.Argument("error parsing args: %v", err)
	}
	if len(args) < 2 {
		return errors.Argument("command %q needs a subcommand", line)
	}
	name := args[0] + " " + args[1]
	cmd, ok := sc.Commands[name]
	if !ok {
		return errors.NotFound("unknown command %q", name)
	}
	slog.Debug("script", "command", name, "args", args[2:])
	return cmd(args[2:]...)
}

// CommandNames returns the sorted names of the commands.
func (sc *Script) CommandNames() []string {
	names := maps.Keys(sc.Commands)
	slices.Sort(names)
	return names
}

// Close releases the selection notifiers of the script and destroys
// its region tree.
func (sc *Script) Close() {
	for _, n := range sc.notifiers {
		n.Release()
	}
	clear(sc.notifiers)
	sc.Root.Destroy()
}

// printf writes to the output with the first word in bold.
func (sc *Script) printf(head, format string, a ...any) {
	fmt.Fprintf(sc.out, "%s %s\n", sc.out.String(head).Bold(), fmt.Sprintf(format, a...))
}

// nargs returns an error unless there are between lo and hi
// arguments, with hi < 0 for no limit.
func nargs(args []string, lo, hi int, usage string) error {
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		return errors.Argument("usage: %s", usage)
	}
	return nil
}
