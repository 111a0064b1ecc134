// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers for the zinc command.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/zinc/base/errors"
)

// FileExists checks whether the given file exists, returning true if so,
// false if not, and an error if there is an error in accessing the file.
// A directory is not a file.
func FileExists(filePath string) (bool, error) {
	fsys, name, err := DirFS(filePath)
	if err != nil {
		return false, err
	}
	return FileExistsFS(fsys, name)
}

// DirFS returns the directory part of the given file path as an os.DirFS
// and the file name as a string.
func DirFS(fpath string) (fs.FS, string, error) {
	fabs, err := filepath.Abs(fpath)
	if err != nil {
		return nil, "", err
	}
	dir, fname := filepath.Split(fabs)
	return os.DirFS(dir), fname, nil
}

// FileExistsFS is [FileExists] on the given file system.
func FileExistsFS(fsys fs.FS, filePath string) (bool, error) {
	info, err := fs.Stat(fsys, filePath)
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
