// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circe

import (
	"iter"
	"maps"
	"slices"
)

// Field is a single key/value entry of an Object.
type Field struct {
	Key   string
	Value Value
}

// Object represents a JSON object: an insertion-ordered mapping from
// string keys to values with at most one entry per key.
//
// Insertion order is the order observed by iteration and printing.
// Equality between Objects is insensitive to order (see [Object.Equal]).
//
// An Object is immutable: every operation that would modify it returns
// a new Object and leaves the receiver untouched. A nil *Object is
// treated as empty by all methods.
type Object struct {
	entries []Field
	index   map[string]int // key to position in entries
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{}
}

// Singleton returns an Object holding only the given entry.
func Singleton(key string, value Value) *Object {
	return &Object{
		entries: []Field{{Key: key, Value: value}},
		index:   map[string]int{key: 0},
	}
}

// FromPairs returns an Object holding the given entries in order.
// When a key occurs more than once, the value of its last occurrence
// is kept at the position of its first occurrence.
func FromPairs(fields []Field) *Object {
	o := &Object{
		entries: make([]Field, 0, len(fields)),
		index:   make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if i, ok := o.index[f.Key]; ok {
			o.entries[i].Value = f.Value
		} else {
			o.index[f.Key] = len(o.entries)
			o.entries = append(o.entries, f)
		}
	}
	return o
}

// Len returns the number of entries.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.entries)
}

// IsEmpty reports whether the Object has no entries.
func (o *Object) IsEmpty() bool { return o.Len() == 0 }

// Get returns the value for key and reports whether it is present.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.entries[i].Value, true
}

// Contains reports whether key is present.
func (o *Object) Contains(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.index[key]
	return ok
}

// Keys returns the keys in insertion order.
// The sequence is restartable: each range over it starts fresh.
func (o *Object) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < o.Len(); i++ {
			if !yield(o.entries[i].Key) {
				return
			}
		}
	}
}

// Values returns the values in insertion order.
// The sequence is restartable: each range over it starts fresh.
func (o *Object) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for i := 0; i < o.Len(); i++ {
			if !yield(o.entries[i].Value) {
				return
			}
		}
	}
}

// Pairs returns the key/value entries in insertion order.
// The sequence is restartable: each range over it starts fresh.
func (o *Object) Pairs() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i := 0; i < o.Len(); i++ {
			if !yield(o.entries[i].Key, o.entries[i].Value) {
				return
			}
		}
	}
}

// Fields returns a copy of the entries in insertion order.
func (o *Object) Fields() []Field {
	if o.Len() == 0 {
		return nil
	}
	return slices.Clone(o.entries)
}

// Add returns a new Object with value stored under key.
// An existing key keeps its position and has its value replaced;
// a new key is appended at the end. The receiver is not modified.
func (o *Object) Add(key string, value Value) *Object {
	n := o.clone()
	if i, ok := n.index[key]; ok {
		n.entries[i].Value = value
		return n
	}
	n.index[key] = len(n.entries)
	n.entries = append(n.entries, Field{Key: key, Value: value})
	return n
}

// Remove returns a new Object without an entry for key.
// If key is absent the receiver is returned unchanged.
func (o *Object) Remove(key string) *Object {
	if !o.Contains(key) {
		return o
	}
	fields := make([]Field, 0, o.Len()-1)
	for _, f := range o.entries {
		if f.Key != key {
			fields = append(fields, f)
		}
	}
	return FromPairs(fields)
}

// MapValues returns a new Object with f applied to every value,
// preserving keys and their order. f must be pure; the order in which
// it is applied across entries is unspecified.
func (o *Object) MapValues(f func(Value) Value) *Object {
	if o.Len() == 0 {
		return NewObject()
	}
	entries := make([]Field, len(o.entries))
	for i, e := range o.entries {
		entries[i] = Field{Key: e.Key, Value: f(e.Value)}
	}
	return &Object{entries: entries, index: o.index}
}

// Filter returns a new Object keeping only the entries for which
// pred reports true, preserving the order of the survivors.
func (o *Object) Filter(pred func(key string, value Value) bool) *Object {
	fields := make([]Field, 0, o.Len())
	for _, f := range o.fields() {
		if pred(f.Key, f.Value) {
			fields = append(fields, f)
		}
	}
	return FromPairs(fields)
}

// DeepMerge returns the recursive union of o and other.
//
// Keys unique to o come first, in o's order, followed by all of
// other's keys in other's order. For a key present in both, the value
// is other's, except that two object values are merged recursively;
// either way the entry sits at other's position.
func (o *Object) DeepMerge(other *Object) *Object {
	fields := make([]Field, 0, o.Len()+other.Len())
	for _, f := range o.fields() {
		if !other.Contains(f.Key) {
			fields = append(fields, f)
		}
	}
	for _, f := range other.fields() {
		if base, ok := o.Get(f.Key); ok {
			fields = append(fields, Field{Key: f.Key, Value: base.DeepMerge(f.Value)})
		} else {
			fields = append(fields, f)
		}
	}
	return FromPairs(fields)
}

// Equal reports whether o and other hold the same set of entries,
// irrespective of order. Values compare with [Value.Equal].
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for _, f := range o.fields() {
		v, ok := other.Get(f.Key)
		if !ok || !f.Value.Equal(v) {
			return false
		}
	}
	return true
}

func (o *Object) fields() []Field {
	if o == nil {
		return nil
	}
	return o.entries
}

func (o *Object) clone() *Object {
	if o == nil || len(o.entries) == 0 {
		return &Object{index: make(map[string]int)}
	}
	return &Object{
		entries: slices.Clone(o.entries),
		index:   maps.Clone(o.index),
	}
}
