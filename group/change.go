// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

// Change is the set of changes made to the contents of a group.
type Change int32

const (
	// ChangeAdd is set when objects or regions were added.
	ChangeAdd Change = 1 << iota

	// ChangeRemove is set when objects or regions were removed.
	ChangeRemove
)

// SubelementHandlingMode determines whether adding or removing
// elements also adds or removes their faces, lines and nodes.
type SubelementHandlingMode int32

const (
	// SubelementHandlingModeInvalid is not a valid mode.
	SubelementHandlingModeInvalid SubelementHandlingMode = iota

	// SubelementHandlingModeNone only changes the objects given.
	SubelementHandlingModeNone

	// SubelementHandlingModeFull also adds the faces, lines and nodes of
	// added elements, and removes those of removed elements that are not
	// used by any element remaining in the group.
	SubelementHandlingModeFull
)

// ChangeDetail records the changes to a [FieldGroup] in its own region
// (Local) and in the groups of descendant regions (NonLocal).
type ChangeDetail struct {
	Local    Change
	NonLocal Change
}

// Summary returns the local and non-local changes combined.
func (cd ChangeDetail) Summary() Change {
	return cd.Local | cd.NonLocal
}
