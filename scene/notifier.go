// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/base/handle"
)

// Selectionnotifier calls its callback with each selection [Event] of
// its scene. It is destroyed when its last access is released, and
// gets no events after that or after its scene is destroyed.
type Selectionnotifier struct {
	handle.Ref

	// scene is nil once the scene is destroyed.
	scene *Scene

	callback func(Event)
}

// Release releases an access to the notifier. It is safe to call on nil.
func (n *Selectionnotifier) Release() {
	if n != nil {
		n.Ref.Release()
	}
}

// IsValid returns whether the notifier is alive.
func (n *Selectionnotifier) IsValid() bool {
	return n != nil && !n.IsDestroyed()
}

// Scene returns the scene of the notifier, or nil once the scene
// is destroyed.
func (n *Selectionnotifier) Scene() *Scene {
	return n.scene
}

// SetCallback sets the function called with each selection event.
func (n *Selectionnotifier) SetCallback(f func(Event)) error {
	if !n.IsValid() || f == nil {
		return errors.Argument("invalid selection notifier or callback")
	}
	n.callback = f
	return nil
}

// ClearCallback stops calls to the callback.
func (n *Selectionnotifier) ClearCallback() error {
	if !n.IsValid() {
		return errors.Argument("invalid selection notifier")
	}
	n.callback = nil
	return nil
}

func (n *Selectionnotifier) notify(ev Event) {
	if n.callback != nil && n.scene != nil {
		n.callback(ev)
	}
}

func (n *Selectionnotifier) destroy() {
	n.callback = nil
	if n.scene != nil {
		n.scene.removeNotifier(n)
		n.scene = nil
	}
}
