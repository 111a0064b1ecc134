// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package changes provides the nested begin/end change cache used by
// every zinc module that notifies observers: mutations raised inside
// a cache scope are coalesced and flushed once, when the outermost
// scope ends.
package changes

import "cogentcore.org/zinc/base/errors"

// Cache is a nesting counter with a pending flag and a flush function.
// While the nesting is above zero, [Cache.Changed] only records that a
// change is pending; the flush function runs once when the outermost
// [Cache.End] brings the nesting back to zero. The zero value is idle
// with no flush function.
type Cache struct {
	nesting int
	pending bool
	flush   func()
}

// NewCache returns a new [Cache] with the given flush function.
func NewCache(flush func()) *Cache {
	return &Cache{flush: flush}
}

// SetFlush sets the function called to deliver pending changes.
func (c *Cache) SetFlush(flush func()) {
	c.flush = flush
}

// Begin starts a cache scope. Scopes nest.
func (c *Cache) Begin() {
	c.nesting++
}

// End ends a cache scope, flushing pending changes when this was
// the outermost scope. It returns [errors.ErrArgument] if no
// scope is open.
func (c *Cache) End() error {
	if c.nesting <= 0 {
		return errors.Argument("changes: End called without matching Begin")
	}
	c.nesting--
	if c.nesting == 0 && c.pending {
		c.deliver()
	}
	return nil
}

// Changed records a change. It is delivered immediately when the
// cache is idle, and deferred to the end of the outermost scope otherwise.
func (c *Cache) Changed() {
	c.pending = true
	if c.nesting == 0 {
		c.deliver()
	}
}

// deliver runs the flush function inside a scope, so that changes
// raised by observers during the flush are delivered after it returns.
func (c *Cache) deliver() {
	for c.pending {
		c.pending = false
		if c.flush == nil {
			return
		}
		c.nesting++
		c.flush()
		c.nesting--
	}
}

// Caching returns whether a cache scope is open.
func (c *Cache) Caching() bool {
	return c.nesting > 0
}

// Nesting returns the current scope depth.
func (c *Cache) Nesting() int {
	return c.nesting
}

// Pending returns whether a change is waiting for the end of the scope.
func (c *Cache) Pending() bool {
	return c.pending
}
