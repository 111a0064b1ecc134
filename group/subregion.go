// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

import (
	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/region"
)

// checkChild returns an error if r is not a direct child of the own region.
func (g *FieldGroup) checkChild(r *region.Region) error {
	if err := g.check(); err != nil {
		return err
	}
	if !r.IsValid() || r.Parent() != g.Fieldmodule().Region() {
		return errors.Argument("region is not a child of the region of the group")
	}
	return nil
}

// subregionEntry returns the table entry for the child region, relinking
// an unlinked field group of the same name in the child region if there
// is no entry.
func (g *FieldGroup) subregionEntry(r *region.Region) *FieldGroup {
	if sg := g.subregions.At(r); sg != nil {
		return sg
	}
	if g.Name() == "" {
		return nil
	}
	sg, ok := r.Fieldmodule().FindFieldByName(g.Name()).(*FieldGroup)
	if !ok || sg.link.owner != nil || !sg.IsValid() {
		return nil
	}
	g.linkSubregion(r, sg)
	return sg
}

func (g *FieldGroup) linkSubregion(r *region.Region, sg *FieldGroup) {
	sg.link.owner = g
	sg.Access()
	g.subregions.Add(r, sg)
	r.OnDestroy(g, func(r *region.Region) {
		sg := g.subregions.At(r)
		g.subregionDestroyed(r, sg != nil && !sg.IsEmpty())
	})
}

// subregionDestroyed drops the table entry for a destroyed child region,
// raising a non-local remove if its group was not empty.
func (g *FieldGroup) subregionDestroyed(r *region.Region, removed bool) {
	if g.subregions.At(r) == nil {
		return
	}
	g.unlinkSubregion(r)
	if removed {
		g.raise(0, ChangeRemove)
	}
}

// unlinkSubregion drops the table entry for the child region.
func (g *FieldGroup) unlinkSubregion(r *region.Region) {
	sg := g.subregions.At(r)
	if sg == nil {
		return
	}
	g.subregions.DeleteByKey(r)
	r.OffDestroy(g)
	sg.link.clear()
	sg.Release()
}

// SubregionFieldGroup returns the group for the given child region,
// accessed, or nil if there is none. A group for the child region that
// is no longer linked to this group, such as one dropped by
// [FieldGroup.RemoveEmptySubgroups] but kept alive by its handles, is
// found by name and linked again. It returns nil if the field of that
// name in the child region is not a field group. For the own region it
// returns the group itself.
func (g *FieldGroup) SubregionFieldGroup(r *region.Region) *FieldGroup {
	if g.check() == nil && r == g.Fieldmodule().Region() {
		g.Access()
		return g
	}
	if g.checkChild(r) != nil {
		return nil
	}
	sg := g.subregionEntry(r)
	if sg == nil {
		return nil
	}
	sg.Access()
	return sg
}

// CreateSubregionFieldGroup creates the group for the given child
// region, with the name and subelement handling mode of this group.
// It returns [errors.ErrArgument] if r is not a child of the own region,
// a group for it already exists or can be found by name, or another
// field has the name.
func (g *FieldGroup) CreateSubregionFieldGroup(r *region.Region) (*FieldGroup, error) {
	if err := g.checkChild(r); err != nil {
		return nil, err
	}
	if g.subregionEntry(r) != nil {
		return nil, errors.Argument("group already has a subregion group for %s", r.Path())
	}
	cfm := r.Fieldmodule()
	if g.Name() != "" && cfm.FindFieldByName(g.Name()) != nil {
		return nil, errors.Argument("field name %q is in use in region %s", g.Name(), r.Path())
	}
	sg, err := New(cfm)
	if err != nil {
		return nil, err
	}
	sg.mode = g.mode
	if g.Name() != "" {
		if err := sg.SetName(g.Name()); err != nil {
			sg.Release()
			return nil, err
		}
	}
	g.linkSubregion(r, sg)
	return sg, nil
}

// GetOrCreateSubregionFieldGroup returns the group for the given child
// region, creating it if needed.
func (g *FieldGroup) GetOrCreateSubregionFieldGroup(r *region.Region) (*FieldGroup, error) {
	if sg := g.SubregionFieldGroup(r); sg != nil {
		return sg, nil
	}
	return g.CreateSubregionFieldGroup(r)
}

// RemoveSubregionFieldGroup unlinks the group for the given child region
// from this group. The group stays valid while it has other handles.
// It returns [errors.ErrArgument] if r is not a child of the own region,
// and [errors.ErrNotFound] if there is no group for it.
func (g *FieldGroup) RemoveSubregionFieldGroup(r *region.Region) error {
	if err := g.checkChild(r); err != nil {
		return err
	}
	sg := g.subregions.At(r)
	if sg == nil {
		return errors.NotFound("no subregion group for %s", r.Path())
	}
	empty := sg.IsEmpty()
	g.unlinkSubregion(r)
	if !empty {
		g.raise(0, ChangeRemove)
	}
	return nil
}

// subregionPath returns the regions from the child of the own region
// down to r, or an error if r is not a descendant of the own region.
func (g *FieldGroup) subregionPath(r *region.Region) ([]*region.Region, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	own := g.Fieldmodule().Region()
	if !r.IsValid() || !r.IsDescendantOf(own) {
		return nil, errors.Argument("region is not in the region tree of the group")
	}
	var path []*region.Region
	for p := r; p != own; p = p.Parent() {
		path = append([]*region.Region{p}, path...)
	}
	return path, nil
}

// AddRegion adds the whole of r, which is the own region or a
// descendant of it, to the group, creating subregion groups as needed.
func (g *FieldGroup) AddRegion(r *region.Region) error {
	path, err := g.subregionPath(r)
	if err != nil {
		return err
	}
	cur := g
	cur.Access()
	for _, cr := range path {
		next, err := cur.GetOrCreateSubregionFieldGroup(cr)
		cur.Release()
		if err != nil {
			return err
		}
		cur = next
	}
	defer cur.Release()
	return cur.AddLocalRegion()
}

// RemoveRegion removes r, which is the own region or a descendant of
// it, and everything in its descendants, from the group.
func (g *FieldGroup) RemoveRegion(r *region.Region) error {
	sg, err := g.findRegionGroup(r)
	if err != nil || sg == nil {
		return err
	}
	defer sg.Release()
	return sg.clearDeep()
}

// ContainsRegion returns whether the whole of r, which is the own
// region or a descendant of it, is in the group.
func (g *FieldGroup) ContainsRegion(r *region.Region) bool {
	sg, err := g.findRegionGroup(r)
	if err != nil || sg == nil {
		return false
	}
	defer sg.Release()
	return sg.localRegion
}

// findRegionGroup returns the group for r, accessed, or nil if there is none.
func (g *FieldGroup) findRegionGroup(r *region.Region) (*FieldGroup, error) {
	path, err := g.subregionPath(r)
	if err != nil {
		return nil, err
	}
	cur := g
	cur.Access()
	for _, cr := range path {
		next := cur.SubregionFieldGroup(cr)
		cur.Release()
		if next == nil {
			return nil, nil
		}
		cur = next
	}
	return cur, nil
}

// FirstNonEmptySubregionFieldGroup returns the first subregion group,
// searching depth first in creation order, that has anything in its own
// region, accessed, or nil if there is none.
func (g *FieldGroup) FirstNonEmptySubregionFieldGroup() *FieldGroup {
	for _, sg := range g.subregions.Values {
		if !sg.IsEmptyLocal() {
			sg.Access()
			return sg
		}
		if found := sg.FirstNonEmptySubregionFieldGroup(); found != nil {
			return found
		}
	}
	return nil
}
