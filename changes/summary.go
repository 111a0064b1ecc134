// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package changes

// Flags is the constraint for change summary bit masks.
type Flags interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// Summary is a [Cache] that accumulates a bitwise-OR of change flags
// and delivers the coalesced mask to its flush function. A scope in
// which nothing was raised delivers nothing, and flags are never
// cancelled: raising Add then Remove in one scope delivers Add|Remove.
type Summary[F Flags] struct {
	cache   Cache
	flags   F
	deliver func(F)
}

// NewSummary returns a new [Summary] with the given flush function.
func NewSummary[F Flags](flush func(F)) *Summary[F] {
	s := &Summary[F]{}
	s.SetFlush(flush)
	return s
}

// SetFlush sets the function receiving the coalesced flags.
func (s *Summary[F]) SetFlush(flush func(F)) {
	s.deliver = flush
	s.cache.SetFlush(s.flush)
}

func (s *Summary[F]) flush() {
	f := s.flags
	s.flags = 0
	if f != 0 && s.deliver != nil {
		s.deliver(f)
	}
}

// Begin starts a cache scope.
func (s *Summary[F]) Begin() {
	s.cache.Begin()
}

// End ends a cache scope; see [Cache.End].
func (s *Summary[F]) End() error {
	return s.cache.End()
}

// Raise ORs the given flags into the pending summary, delivering
// immediately when no scope is open. Zero flags are ignored.
func (s *Summary[F]) Raise(f F) {
	if f == 0 {
		return
	}
	s.flags |= f
	s.cache.Changed()
}

// Flags returns the flags pending delivery.
func (s *Summary[F]) Flags() F {
	return s.flags
}

// Caching returns whether a cache scope is open.
func (s *Summary[F]) Caching() bool {
	return s.cache.Caching()
}
