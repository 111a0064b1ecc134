// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package region provides the region tree and the minimal field module
// object model that groups and selection build on: meshes of elements,
// nodesets of nodes, and named fields with handle lifecycles.
package region

import (
	"strings"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/base/keylist"
)

// Region is a node in the region tree. Each region owns one
// [Fieldmodule] and any number of named child regions.
type Region struct {
	name     string
	parent   *Region
	children keylist.List[string, *Region]
	fm       *Fieldmodule

	// attachments are objects owned by the region on behalf of other
	// packages, such as its scene.
	attachments map[any]any

	destroyHooks hookList[*Region]
	destroyed    bool
}

// NewRoot returns a new root region.
func NewRoot() *Region {
	r := &Region{}
	r.fm = newFieldmodule(r)
	return r
}

// Name returns the region name, which is empty for a root region.
func (r *Region) Name() string {
	return r.name
}

// Parent returns the parent region, or nil for a root.
func (r *Region) Parent() *Region {
	return r.parent
}

// Root returns the root of the tree containing the region.
func (r *Region) Root() *Region {
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Path returns the slash separated path from the root, "/" for the root.
func (r *Region) Path() string {
	if r.parent == nil {
		return "/"
	}
	var names []string
	for p := r; p.parent != nil; p = p.parent {
		names = append(names, p.name)
	}
	var b strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(names[i])
	}
	return b.String()
}

// IsValid returns whether the region is alive.
func (r *Region) IsValid() bool {
	return r != nil && !r.destroyed
}

// Fieldmodule returns the field module of the region.
func (r *Region) Fieldmodule() *Fieldmodule {
	return r.fm
}

// Children returns the child regions in creation order.
func (r *Region) Children() []*Region {
	return append([]*Region(nil), r.children.Values...)
}

// FindChild returns the child region with the given name, or nil.
func (r *Region) FindChild(name string) *Region {
	return r.children.At(name)
}

// FindSubregion returns the descendant at the given slash separated
// path relative to this region, or nil. An empty path is this region.
func (r *Region) FindSubregion(path string) *Region {
	cur := r
	for _, name := range strings.Split(strings.Trim(path, "/"), "/") {
		if name == "" {
			continue
		}
		if cur = cur.FindChild(name); cur == nil {
			return nil
		}
	}
	return cur
}

// CreateChild creates a child region with the given name. It returns
// [errors.ErrArgument] if the name is empty, contains a slash or is
// used by another child.
func (r *Region) CreateChild(name string) (*Region, error) {
	if !r.IsValid() {
		return nil, errors.Argument("region is destroyed")
	}
	if name == "" || strings.Contains(name, "/") {
		return nil, errors.Argument("invalid region name %q", name)
	}
	if r.FindChild(name) != nil {
		return nil, errors.Argument("region %s already has child %q", r.Path(), name)
	}
	c := &Region{name: name, parent: r}
	c.fm = newFieldmodule(c)
	r.children.Add(name, c)
	return c, nil
}

// CreateSubregion returns the descendant at the given path,
// creating any missing regions on the way.
func (r *Region) CreateSubregion(path string) (*Region, error) {
	cur := r
	for _, name := range strings.Split(strings.Trim(path, "/"), "/") {
		if name == "" {
			continue
		}
		next := cur.FindChild(name)
		if next == nil {
			var err error
			if next, err = cur.CreateChild(name); err != nil {
				return nil, err
			}
		}
		cur = next
	}
	return cur, nil
}

// RemoveChild destroys the given child region and its descendants.
func (r *Region) RemoveChild(child *Region) error {
	if child == nil || child.parent != r {
		return errors.Argument("region is not a child of %s", r.Path())
	}
	child.Destroy()
	return nil
}

// IsDescendantOf returns whether the region is the given region or
// one of its descendants.
func (r *Region) IsDescendantOf(ancestor *Region) bool {
	for p := r; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Attachment returns the object attached under the given key, or nil.
func (r *Region) Attachment(key any) any {
	return r.attachments[key]
}

// SetAttachment attaches an object under the given key; nil removes it.
func (r *Region) SetAttachment(key, v any) {
	if v == nil {
		delete(r.attachments, key)
		return
	}
	if r.attachments == nil {
		r.attachments = map[any]any{}
	}
	r.attachments[key] = v
}

// OnDestroy adds a function called once when the region is destroyed,
// under the given key.
func (r *Region) OnDestroy(key any, f func(r *Region)) {
	r.destroyHooks.add(key, f)
}

// OffDestroy removes the function added with the given key.
func (r *Region) OffDestroy(key any) {
	r.destroyHooks.remove(key)
}

// Destroy destroys the region: its children first, then its destroy
// hooks are called, then its meshes, nodesets and named fields are
// invalidated, and it is removed from its parent.
func (r *Region) Destroy() {
	if r.destroyed {
		return
	}
	for _, c := range r.Children() {
		c.Destroy()
	}
	r.destroyed = true
	r.destroyHooks.call(r)
	r.destroyHooks = hookList[*Region]{}
	r.fm.invalidate()
	r.attachments = nil
	if r.parent != nil {
		r.parent.children.DeleteByKey(r.name)
	}
}

// BeginHierarchicalChange begins a change cache scope on the field
// module of this region and every descendant region.
func (r *Region) BeginHierarchicalChange() {
	r.fm.BeginChange()
	for _, c := range r.children.Values {
		c.BeginHierarchicalChange()
	}
}

// EndHierarchicalChange ends the scopes begun by
// [Region.BeginHierarchicalChange], descendants first.
func (r *Region) EndHierarchicalChange() error {
	var errs []error
	for _, c := range r.Children() {
		if err := c.EndHierarchicalChange(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := r.fm.EndChange(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
