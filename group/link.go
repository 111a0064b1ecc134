// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

// ownerLink links a table entry (a subobject group or a subregion
// field group) to the [FieldGroup] owning the table. While the entry
// has accesses beyond the one held by the table, it holds one access
// on the owner, so an externally held entry keeps its owner alive.
type ownerLink struct {
	owner *FieldGroup

	// held is whether the access on owner is held.
	held bool
}

// sync takes or drops the access on the owner for the given access
// count of the entry. It is the access count observer of the entry.
func (l *ownerLink) sync(count int) {
	want := l.owner != nil && count > 1
	if want == l.held {
		return
	}
	l.held = want
	if want {
		l.owner.Access()
	} else {
		l.owner.Release()
	}
}

// clear drops any access on the owner and unlinks it.
func (l *ownerLink) clear() {
	owner := l.owner
	held := l.held
	l.owner = nil
	l.held = false
	if held {
		owner.Release()
	}
}
