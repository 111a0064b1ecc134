// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/base/handle"
	"cogentcore.org/zinc/base/keylist"
	"cogentcore.org/zinc/changes"
)

// ChangeFlags are the changes to a spectrum reported in a module [Event].
type ChangeFlags int32

const (
	ChangeAdd ChangeFlags = 1 << iota
	ChangeRemove
	ChangeIdentifier
	ChangeDefinition
	ChangeFullResult
	ChangeFinal
)

// DefaultName is the name of the spectrum made by [Module.DefaultSpectrum].
const DefaultName = "default"

// Module is the set of named spectra of a context. A spectrum stays in
// the module while it has accesses or is managed. Changes to the
// spectra are reported to the module notifiers as one [Event] per
// change cache scope.
type Module struct {
	spectra keylist.List[string, *Spectrum]

	// defaultSpectrum is held with one access.
	defaultSpectrum *Spectrum

	cache   changes.Cache
	pending map[*Spectrum]ChangeFlags

	notifiers []*Notifier
}

// NewModule returns a new empty spectrum module.
func NewModule() *Module {
	m := &Module{}
	m.cache.SetFlush(m.flush)
	return m
}

// CreateSpectrum adds a new spectrum with no components to the
// module, named "spectrum<n>" with the lowest free n from the
// number of spectra plus one, and returns it with one access.
func (m *Module) CreateSpectrum() *Spectrum {
	s := New()
	s.module = m
	i := m.spectra.Len()
	for {
		i++
		s.name = fmt.Sprintf("spectrum%d", i)
		if m.spectra.IndexByKey(s.name) < 0 {
			break
		}
	}
	m.spectra.Add(s.name, s)
	m.spectrumChanged(s, ChangeAdd)
	return s
}

// Duplicate adds a copy of the spectrum to the module under a new
// name and returns it with one access.
func (m *Module) Duplicate(src *Spectrum) (*Spectrum, error) {
	if !src.IsValid() {
		return nil, errors.Argument("spectrum is destroyed")
	}
	m.BeginChange()
	defer m.EndChange()
	s := m.CreateSpectrum()
	if err := s.CopyFrom(src); err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

// FindSpectrumByName returns the spectrum with the name, accessed,
// or nil if there is none.
func (m *Module) FindSpectrumByName(name string) *Spectrum {
	s, ok := m.spectra.AtTry(name)
	if !ok || !s.Access() {
		return nil
	}
	return s
}

// Names returns the names of the spectra in the order they were added.
func (m *Module) Names() []string {
	return slices.Clone(m.spectra.Keys)
}

// DefaultSpectrum returns the default spectrum, accessed. If none is
// set, the spectrum named [DefaultName] becomes the default, created
// as a managed blue to red spectrum over [0,1] if needed.
func (m *Module) DefaultSpectrum() *Spectrum {
	if s := m.defaultSpectrum; s != nil && s.Access() {
		return s
	}
	s := m.FindSpectrumByName(DefaultName)
	if s == nil {
		m.BeginChange()
		s = m.CreateSpectrum()
		errors.Log(s.SetName(DefaultName))
		errors.Log(s.ApplyPreset(PresetBlueToRed))
		errors.Log(s.SetMinimumAndMaximum(0, 1))
		m.EndChange()
	}
	s.Ref.SetManaged(true)
	m.setDefault(s)
	return s
}

// SetDefaultSpectrum sets the default spectrum, which must be in the
// module, or clears it if s is nil.
func (m *Module) SetDefaultSpectrum(s *Spectrum) error {
	if s != nil && (!s.IsValid() || s.module != m) {
		return errors.Argument("spectrum is not in the module")
	}
	m.setDefault(s)
	return nil
}

func (m *Module) setDefault(s *Spectrum) {
	if s == m.defaultSpectrum {
		return
	}
	if s != nil {
		s.Access()
	}
	old := m.defaultSpectrum
	m.defaultSpectrum = s
	old.Release()
}

// BeginChange starts caching change notifications of the module.
// Calls nest and must be balanced by [Module.EndChange].
func (m *Module) BeginChange() {
	m.cache.Begin()
}

// EndChange ends a change cache scope, notifying the changes made in
// it when this was the outermost scope. It returns
// [errors.ErrArgument] if no scope is open.
func (m *Module) EndChange() error {
	return m.cache.End()
}

func (m *Module) rename(s *Spectrum, name string) error {
	if err := m.spectra.Rename(s.name, name); err != nil {
		return errors.Argument("spectrum name %q is in use", name)
	}
	m.spectrumChanged(s, ChangeIdentifier)
	return nil
}

func (m *Module) remove(s *Spectrum) {
	m.spectra.DeleteByKey(s.name)
	if m.defaultSpectrum == s {
		m.defaultSpectrum = nil
	}
	m.spectrumChanged(s, ChangeRemove|ChangeFinal)
}

func (m *Module) spectrumChanged(s *Spectrum, f ChangeFlags) {
	if m.pending == nil {
		m.pending = map[*Spectrum]ChangeFlags{}
	}
	m.pending[s] |= f
	m.cache.Changed()
}

func (m *Module) flush() {
	pending := m.pending
	m.pending = nil
	if len(pending) == 0 {
		return
	}
	ev := Event{changes: pending}
	for _, f := range pending {
		ev.summary |= f
	}
	slog.Debug("spectra changed", "spectra", len(pending), "flags", ev.summary)
	snapshot := slices.Clone(m.notifiers)
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

// CreateNotifier returns a new notifier of the changes to the spectra
// of the module, with one access.
func (m *Module) CreateNotifier() *Notifier {
	n := &Notifier{module: m}
	n.Init(n.destroy)
	m.notifiers = append(m.notifiers, n)
	return n
}

// Event reports the changes to the spectra of a module in one change
// cache scope.
type Event struct {
	summary ChangeFlags
	changes map[*Spectrum]ChangeFlags
}

// SummaryChangeFlags returns the union of the changes to all spectra.
func (ev Event) SummaryChangeFlags() ChangeFlags {
	return ev.summary
}

// ChangeFlags returns the changes to the given spectrum.
func (ev Event) ChangeFlags(s *Spectrum) ChangeFlags {
	return ev.changes[s]
}

// Notifier calls its callback with each [Event] of its module.
type Notifier struct {
	handle.Ref

	module   *Module
	callback func(Event)
}

// Release releases an access to the notifier. It is safe to call on nil.
func (n *Notifier) Release() {
	if n != nil {
		n.Ref.Release()
	}
}

// SetCallback sets the function called with each event.
func (n *Notifier) SetCallback(f func(Event)) error {
	if n == nil || n.IsDestroyed() || f == nil {
		return errors.Argument("invalid spectrum module notifier or callback")
	}
	n.callback = f
	return nil
}

// ClearCallback stops calls to the callback.
func (n *Notifier) ClearCallback() {
	n.callback = nil
}

func (n *Notifier) notify(ev Event) {
	if n.callback != nil {
		n.callback(ev)
	}
}

func (n *Notifier) destroy() {
	n.callback = nil
	if i := slices.Index(n.module.notifiers, n); i >= 0 {
		n.module.notifiers = slices.Delete(n.module.notifiers, i, i+1)
	}
}
