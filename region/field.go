// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/base/handle"
)

// Field is a function that can be evaluated at a [Location] in the
// region of its [Fieldmodule]. Conditions for group operations are fields
// whose value is true when non-zero.
type Field interface {
	// AsFieldBase returns the [FieldBase] embedded in the field.
	AsFieldBase() *FieldBase

	// NumComponents returns the number of values returned by Evaluate.
	NumComponents() int

	// Evaluate returns the field values at the given location.
	Evaluate(loc Location) ([]float64, error)
}

// ChangeDetailer is implemented by fields that keep a detailed record
// of their changes. ExtractChangeDetail is called by the [Fieldmodule]
// at the start of each change notification, so that the detail can be
// read by the change listeners while new changes accumulate separately.
type ChangeDetailer interface {
	ExtractChangeDetail()
}

// Destroyer is implemented by fields that need to release
// resources when they are destroyed.
type Destroyer interface {
	FieldDestroyed()
}

// FieldBase is the handle state embedded in every [Field]:
// the owning [Fieldmodule], the optional unique name, and the access
// count with managed flag. A field is destroyed when it has no accesses
// and is not managed; it then leaves the name registry.
type FieldBase struct {
	handle.Ref

	// fm is the owning field module.
	fm *Fieldmodule

	// name is unique within fm, or empty.
	name string

	// self is the embedding field.
	self Field
}

// InitField initializes the field base of the given newly created field
// for the given field module. The creator owns the first access.
func InitField(f Field, fm *Fieldmodule) {
	fb := f.AsFieldBase()
	fb.fm = fm
	fb.self = f
	fb.Init(fb.destroy)
}

// AsFieldBase returns the field base itself.
func (fb *FieldBase) AsFieldBase() *FieldBase {
	return fb
}

// Fieldmodule returns the owning field module.
func (fb *FieldBase) Fieldmodule() *Fieldmodule {
	return fb.fm
}

// Name returns the field name, which is empty for an unnamed field.
func (fb *FieldBase) Name() string {
	return fb.name
}

// SetName sets the unique name of the field, making it discoverable
// with [Fieldmodule.FindFieldByName]. It returns [errors.ErrArgument]
// if the name is empty or used by another field.
func (fb *FieldBase) SetName(name string) error {
	if fb.IsDestroyed() || fb.fm == nil {
		return errors.Argument("field is destroyed")
	}
	if name == "" {
		return errors.Argument("field name must not be empty")
	}
	if name == fb.name {
		return nil
	}
	if fb.fm.fields.IndexByKey(name) >= 0 {
		return errors.Argument("field name %q is in use", name)
	}
	if fb.name == "" {
		if err := fb.fm.fields.Add(name, fb.self); err != nil {
			return err
		}
	} else if err := fb.fm.fields.Rename(fb.name, name); err != nil {
		return err
	}
	fb.name = name
	return nil
}

// IsValid returns whether the field is alive.
func (fb *FieldBase) IsValid() bool {
	return fb != nil && !fb.IsDestroyed()
}

func (fb *FieldBase) destroy() {
	if fb.fm != nil && fb.name != "" {
		fb.fm.fields.DeleteByKey(fb.name)
	}
	if d, ok := fb.self.(Destroyer); ok {
		d.FieldDestroyed()
	}
}

// Changed notifies the field module that this field has changed.
func (fb *FieldBase) Changed() {
	if fb.fm != nil && !fb.IsDestroyed() {
		fb.fm.FieldChanged(fb.self)
	}
}

// Location is a place where a field is evaluated: a point in an
// element given by its xi coordinates, or a node.
type Location struct {
	// Element is the element containing the location, if any.
	Element *Element

	// Xi are the element chart coordinates.
	Xi []float64

	// Node is the node for a node location.
	Node *Node
}

// ElementCentre returns the location at the centre of the given element,
// which is where conditions are evaluated for element operations.
func ElementCentre(e *Element) Location {
	xi := make([]float64, e.Dimension())
	for i := range xi {
		xi[i] = 0.5
	}
	return Location{Element: e, Xi: xi}
}

// NodeLocation returns the location of the given node.
func NodeLocation(n *Node) Location {
	return Location{Node: n}
}

// IsTrue returns whether field values are true: any non-zero component.
func IsTrue(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return true
		}
	}
	return false
}
