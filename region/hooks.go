// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import "slices"

// hookList is an ordered list of functions registered under keys,
// so that observers can remove themselves.
type hookList[T any] struct {
	keys  []any
	funcs []func(T)
}

func (hl *hookList[T]) add(key any, f func(T)) {
	if i := slices.Index(hl.keys, key); i >= 0 {
		hl.funcs[i] = f
		return
	}
	hl.keys = append(hl.keys, key)
	hl.funcs = append(hl.funcs, f)
}

func (hl *hookList[T]) remove(key any) {
	if i := slices.Index(hl.keys, key); i >= 0 {
		hl.keys = slices.Delete(hl.keys, i, i+1)
		hl.funcs = slices.Delete(hl.funcs, i, i+1)
	}
}

// call calls the functions over a snapshot of the list, so they can
// add or remove hooks while being called.
func (hl *hookList[T]) call(v T) {
	keys := slices.Clone(hl.keys)
	funcs := slices.Clone(hl.funcs)
	for i, f := range funcs {
		if slices.Index(hl.keys, keys[i]) < 0 {
			continue
		}
		f(v)
	}
}
