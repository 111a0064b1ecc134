// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package handle provides the access count and managed flag shared by
// every zinc object exposed through handles: an object is destroyed only
// when its access count drops to zero and it is not managed.
package handle

// Ref is an access count with a managed pin. Embed it in an object
// and call [Ref.Init] when the object is created; the creator then
// owns the first access.
type Ref struct {
	count     int
	managed   bool
	destroyed bool

	// onDestroy is called once, when the object is destroyed.
	onDestroy func()

	// onChange is called after each change of the access count.
	onChange func(old, count int)
}

// Init sets the access count to one, owned by the creator, and sets
// the function called when the object is destroyed.
func (r *Ref) Init(onDestroy func()) {
	r.count = 1
	r.destroyed = false
	r.onDestroy = onDestroy
}

// SetObserver sets a function called after each change of the access
// count, with the old and new counts.
func (r *Ref) SetObserver(f func(old, count int)) {
	r.onChange = f
}

// Access increments the access count. It returns false if the object
// has already been destroyed.
func (r *Ref) Access() bool {
	if r == nil || r.destroyed {
		return false
	}
	r.count++
	if r.onChange != nil {
		r.onChange(r.count-1, r.count)
	}
	return true
}

// Release decrements the access count, destroying the object when it
// reaches zero and the object is not managed. It is safe to call on
// a nil or destroyed Ref.
func (r *Ref) Release() {
	if r == nil || r.destroyed || r.count <= 0 {
		return
	}
	r.count--
	if r.onChange != nil {
		r.onChange(r.count+1, r.count)
	}
	r.check()
}

// AccessCount returns the current access count.
func (r *Ref) AccessCount() int {
	return r.count
}

// IsManaged returns whether the object is pinned alive
// independent of its access count.
func (r *Ref) IsManaged() bool {
	return r.managed
}

// SetManaged sets whether the object is pinned alive independent of
// its access count. Clearing the flag on an object with no accesses
// destroys it.
func (r *Ref) SetManaged(managed bool) {
	if r.destroyed {
		return
	}
	r.managed = managed
	r.check()
}

// IsDestroyed returns whether the object has been destroyed.
func (r *Ref) IsDestroyed() bool {
	return r.destroyed
}

// Destroy destroys the object regardless of its access count.
// It is used when the owner of the object goes away.
func (r *Ref) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true
	if r.onDestroy != nil {
		r.onDestroy()
	}
}

func (r *Ref) check() {
	if r.count == 0 && !r.managed {
		r.Destroy()
	}
}
