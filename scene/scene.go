// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the scene of a region: its selection field
// and the selection notifiers that report changes to it.
package scene

import (
	"log/slog"
	"slices"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/changes"
	"cogentcore.org/zinc/group"
	"cogentcore.org/zinc/region"
)

// ChangeFlags are the changes reported in a selection [Event].
type ChangeFlags int32

const (
	// ChangeAdd is set when objects were added to the selection.
	ChangeAdd ChangeFlags = 1 << iota

	// ChangeRemove is set when objects were removed from the selection.
	ChangeRemove

	// ChangeFinal is set once, when the scene is destroyed.
	ChangeFinal
)

// Event is a change to the selection of a scene.
type Event struct {
	flags ChangeFlags
}

// ChangeFlags returns the changes in the event, which are never none.
func (ev Event) ChangeFlags() ChangeFlags {
	return ev.flags
}

// flagsOf returns the selection change flags for group changes.
func flagsOf(c group.Change) ChangeFlags {
	var f ChangeFlags
	if c.HasFlag(group.ChangeAdd) {
		f |= ChangeAdd
	}
	if c.HasFlag(group.ChangeRemove) {
		f |= ChangeRemove
	}
	return f
}

// sceneKey is the region attachment key of the scene.
type sceneKey struct{}

// Scene is the scene of a region. Its selection field is a field group
// of the region; the selection field of the scene of each child region
// follows the subregion group for that region.
type Scene struct {
	region *region.Region

	// selection is the selection field group, held with one access.
	selection *group.FieldGroup

	// notifiers are the live selection notifiers, in creation order.
	notifiers []*Selectionnotifier

	// events coalesces selection events while changes are cached.
	events changes.Summary[ChangeFlags]

	destroyed bool
}

// Of returns the scene of the region, creating it if needed. It
// returns nil for a destroyed region. A new scene takes the subregion
// group of the selection of its parent scene as its selection field.
func Of(r *region.Region) *Scene {
	if !r.IsValid() {
		return nil
	}
	if s, ok := r.Attachment(sceneKey{}).(*Scene); ok {
		return s
	}
	s := &Scene{region: r}
	s.events.SetFlush(s.notify)
	r.SetAttachment(sceneKey{}, s)
	r.Fieldmodule().OnChange(s, s.fieldsChanged)
	r.OnDestroy(s, func(r *region.Region) { s.regionDestroyed() })
	if p := r.Parent(); p != nil {
		if ps, ok := p.Attachment(sceneKey{}).(*Scene); ok && ps.selection != nil {
			sg := ps.selection.SubregionFieldGroup(r)
			s.setSelection(sg)
			sg.Release()
		}
	}
	return s
}

// Region returns the region of the scene.
func (s *Scene) Region() *region.Region {
	return s.region
}

// IsValid returns whether the scene is alive.
func (s *Scene) IsValid() bool {
	return s != nil && !s.destroyed
}

func (s *Scene) check() error {
	if !s.IsValid() {
		return errors.Argument("scene is destroyed")
	}
	return nil
}

// BeginChange starts caching selection events, which are delivered as
// one event when the outermost scope ends. Calls nest and must be
// balanced by [Scene.EndChange].
func (s *Scene) BeginChange() {
	s.events.Begin()
}

// EndChange ends a selection event cache scope. It returns
// [errors.ErrArgument] if no scope is open.
func (s *Scene) EndChange() error {
	return s.events.End()
}

// SelectionField returns the selection field group, accessed,
// or nil if there is none.
func (s *Scene) SelectionField() *group.FieldGroup {
	if !s.IsValid() || s.selection == nil || !s.selection.Access() {
		return nil
	}
	return s.selection
}

// SetSelectionField sets the selection field, which must be a field
// group of the region of the scene, or nil to clear it. Notifiers
// receive REMOVE if the previous field was not empty and ADD if the
// new field is not empty.
func (s *Scene) SetSelectionField(f region.Field) error {
	if err := s.check(); err != nil {
		return err
	}
	var g *group.FieldGroup
	if f != nil {
		g = group.AsFieldGroup(f)
		if g == nil {
			return errors.Argument("selection field %q is not a field group", f.AsFieldBase().Name())
		}
		if !g.IsValid() || g.Fieldmodule() != s.region.Fieldmodule() {
			return errors.Argument("selection field is not from region %s", s.region.Path())
		}
	}
	s.setSelection(g)
	return nil
}

func (s *Scene) setSelection(g *group.FieldGroup) {
	if g == s.selection {
		return
	}
	s.events.Begin()
	defer s.events.End()
	isEmpty := g == nil || g.IsEmpty()
	wasEmpty := s.selection == nil || s.selection.IsEmpty()
	if g != nil {
		g.Access()
	}
	s.selection.Release()
	s.selection = g
	s.syncChildren()
	if !wasEmpty {
		s.events.Raise(ChangeRemove)
	}
	if !isEmpty {
		s.events.Raise(ChangeAdd)
	}
}

// syncChildren sets the selection field of the existing scenes of the
// child regions to the matching subregion group.
func (s *Scene) syncChildren() {
	for _, c := range s.region.Children() {
		cs, ok := c.Attachment(sceneKey{}).(*Scene)
		if !ok || !cs.IsValid() {
			continue
		}
		var sg *group.FieldGroup
		if s.selection != nil {
			sg = s.selection.SubregionFieldGroup(c)
		}
		cs.setSelection(sg)
		sg.Release()
	}
}

// fieldsChanged reports changes to the selection field group.
func (s *Scene) fieldsChanged(changed []region.Field) {
	if s.selection == nil {
		return
	}
	for _, f := range changed {
		if g, ok := f.(*group.FieldGroup); ok && g == s.selection {
			s.events.Begin()
			s.events.Raise(flagsOf(g.ChangeDetail().Summary()))
			s.syncChildren()
			s.events.End()
			return
		}
	}
}

// notify delivers an event to the notifiers over a snapshot of the
// list, each kept accessed during its callback, so that callbacks can
// create and release notifiers.
func (s *Scene) notify(flags ChangeFlags) {
	if len(s.notifiers) == 0 {
		return
	}
	slog.Debug("selection event", "region", s.region.Path(), "flags", flags)
	ev := Event{flags: flags}
	snapshot := slices.Clone(s.notifiers)
	held := make([]bool, len(snapshot))
	for i, n := range snapshot {
		held[i] = n.Access()
	}
	for i, n := range snapshot {
		if held[i] {
			n.notify(ev)
			n.Release()
		}
	}
}

// regionDestroyed sends the final event and detaches the notifiers
// and the selection field.
func (s *Scene) regionDestroyed() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.notify(ChangeFinal)
	for _, n := range s.notifiers {
		n.scene = nil
	}
	s.notifiers = nil
	s.selection.Release()
	s.selection = nil
	if fm := s.region.Fieldmodule(); fm != nil {
		fm.OffChange(s)
	}
}

// CreateSelectionnotifier returns a new notifier of the selection events
// of the scene. It returns [errors.ErrArgument] if the scene is destroyed.
func (s *Scene) CreateSelectionnotifier() (*Selectionnotifier, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	n := &Selectionnotifier{scene: s}
	n.Init(n.destroy)
	s.notifiers = append(s.notifiers, n)
	return n, nil
}

func (s *Scene) removeNotifier(n *Selectionnotifier) {
	if i := slices.Index(s.notifiers, n); i >= 0 {
		s.notifiers = slices.Delete(s.notifiers, i, i+1)
	}
}
