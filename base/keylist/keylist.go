// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key (e.g., names) to indexes,
to support fast lookup by name. It backs the named registries
in zinc, where both insertion order and lookup by name matter.
*/
package keylist

import (
	"fmt"
	"slices"
)

// List implements an ordered list (slice) of Values,
// with a map from a key (e.g., names) to indexes,
// to support fast lookup by name. The zero value is ready to use.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values].
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List].
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// reindex rebuilds the index map from Keys.
func (kl *List[K, V]) reindex() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

// Reset removes all items.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = nil
}

// Set sets given key to given value, adding to the end of the list
// if not already present, and otherwise replacing with this new value.
func (kl *List[K, V]) Set(key K, val V) {
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.append(key, val)
}

// Add adds an item to the end of the list with given key.
// An error is returned if the key is already on the list.
func (kl *List[K, V]) Add(key K, val V) error {
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.append(key, val)
	return nil
}

func (kl *List[K, V]) append(key K, val V) {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// Insert inserts the given value with the given key at the given index.
// An error is returned if the key is already on the list.
func (kl *List[K, V]) Insert(idx int, key K, val V) error {
	if _, has := kl.indexes[key]; has {
		return fmt.Errorf("keylist.Insert: key %v is already on the list", key)
	}
	kl.Keys = slices.Insert(kl.Keys, idx, key)
	kl.Values = slices.Insert(kl.Values, idx, val)
	kl.reindex()
	return nil
}

// At returns the value corresponding to the given key,
// with a zero value returned for a missing key.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if kl != nil {
		if idx, ok := kl.indexes[key]; ok {
			return kl.Values[idx], true
		}
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of the given key, with a -1 for missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	if kl == nil {
		return -1
	}
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByIndex deletes the item at the given index.
func (kl *List[K, V]) DeleteByIndex(idx int) {
	kl.Keys = slices.Delete(kl.Keys, idx, idx+1)
	kl.Values = slices.Delete(kl.Values, idx, idx+1)
	kl.reindex()
}

// DeleteByKey deletes the item with the given key,
// returning false if it does not find it.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx := kl.IndexByKey(key)
	if idx < 0 {
		return false
	}
	kl.DeleteByIndex(idx)
	return true
}

// Rename changes the key of an item in place, keeping its position.
// It returns an error if the old key is missing or the new key is taken.
func (kl *List[K, V]) Rename(old, key K) error {
	idx := kl.IndexByKey(old)
	if idx < 0 {
		return fmt.Errorf("keylist.Rename: key %v is not on the list", old)
	}
	if old == key {
		return nil
	}
	if _, has := kl.indexes[key]; has {
		return fmt.Errorf("keylist.Rename: key %v is already on the list", key)
	}
	delete(kl.indexes, old)
	kl.Keys[idx] = key
	kl.indexes[key] = idx
	return nil
}

// Move moves the item at index from so that it ends up
// immediately before the item currently at index to.
// A to index equal to Len moves the item to the end.
func (kl *List[K, V]) Move(from, to int) {
	if from == to || from+1 == to {
		return
	}
	k, v := kl.Keys[from], kl.Values[from]
	kl.Keys = slices.Delete(kl.Keys, from, from+1)
	kl.Values = slices.Delete(kl.Values, from, from+1)
	if to > from {
		to--
	}
	kl.Keys = slices.Insert(kl.Keys, to, k)
	kl.Values = slices.Insert(kl.Values, to, v)
	kl.reindex()
}
