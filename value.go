// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circe

import (
	"math"
	"slices"
	"strconv"
)

// Kind represents each possible JSON value kind:
//
//   - 'n': null
//   - 'f': false
//   - 't': true
//   - '0': number
//   - '"': string
//   - '[': array
//   - '{': object
type Kind byte

const (
	KindNull   Kind = 'n'
	KindFalse  Kind = 'f'
	KindTrue   Kind = 't'
	KindNumber Kind = '0'
	KindString Kind = '"'
	KindArray  Kind = '['
	KindObject Kind = '{'
)

// String prints the kind in a humanly readable fashion.
func (k Kind) String() string {
	switch k {
	case 'n':
		return "null"
	case 'f':
		return "false"
	case 't':
		return "true"
	case '0':
		return "number"
	case '"':
		return "string"
	case '[':
		return "array"
	case '{':
		return "object"
	default:
		return "<invalid kind: " + strconv.QuoteRune(rune(k)) + ">"
	}
}

// Value represents a single JSON value, which is one of the following:
//   - a JSON literal (i.e., null, true, or false)
//   - a JSON number (see [Number])
//   - a JSON string
//   - a JSON array of values
//   - a JSON object (see [Object])
//
// A Value is immutable; every transformation returns a new Value.
// Values may share structure internally, but no operation on one Value
// can be observed through another. The zero Value is Null.
type Value struct {
	kind Kind
	num  Number
	str  string
	arr  []Value
	obj  *Object
}

var (
	// Null is the JSON null value.
	Null = Value{kind: 'n'}
	// True is the JSON true value.
	True = Value{kind: 't'}
	// False is the JSON false value.
	False = Value{kind: 'f'}
)

// Bool constructs a Value for a JSON boolean.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// String constructs a Value for a JSON string.
func String(s string) Value {
	return Value{kind: '"', str: s}
}

// Int constructs a Value for a JSON number from an int64.
func Int(n int64) Value {
	return Value{kind: '0', num: NumberFromInt64(n)}
}

// Uint constructs a Value for a JSON number from a uint64.
func Uint(n uint64) Value {
	return Value{kind: '0', num: NumberFromUint64(n)}
}

// Float constructs a Value for a JSON number from a float64.
// It returns [ErrNonFinite] if n is NaN or infinite,
// since JSON has no representation for either.
func Float(n float64) (Value, error) {
	num, err := NumberFromFloat64(n)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: '0', num: num}, nil
}

// FloatOrNull is like [Float], except a non-finite n becomes Null.
func FloatOrNull(n float64) Value {
	v, err := Float(n)
	if err != nil {
		return Null
	}
	return v
}

// FloatOrString is like [Float], except a non-finite n becomes
// one of the strings "NaN", "Infinity", or "-Infinity".
func FloatOrString(n float64) Value {
	switch {
	case math.IsNaN(n):
		return String("NaN")
	case math.IsInf(n, +1):
		return String("Infinity")
	case math.IsInf(n, -1):
		return String("-Infinity")
	}
	v, _ := Float(n)
	return v
}

// FromNumber constructs a Value for a JSON number.
func FromNumber(n Number) Value {
	return Value{kind: '0', num: n}
}

// Array constructs a Value for a JSON array holding the given elements.
// The input slice is copied.
func Array(elems ...Value) Value {
	return Value{kind: '[', arr: slices.Clone(elems)}
}

// FromObject constructs a Value for a JSON object.
// A nil Object is treated as empty.
func FromObject(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: '{', obj: o}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	if v.kind == 0 {
		return KindNull // zero Value is Null
	}
	return v.kind
}

// IsNull reports whether the value is null. An empty string,
// empty array, or empty object is not null.
func (v Value) IsNull() bool { return v.Kind() == 'n' }

// IsBool reports whether the value is a JSON boolean.
func (v Value) IsBool() bool { k := v.Kind(); return k == 't' || k == 'f' }

// IsNumber reports whether the value is a JSON number.
func (v Value) IsNumber() bool { return v.Kind() == '0' }

// IsString reports whether the value is a JSON string.
func (v Value) IsString() bool { return v.Kind() == '"' }

// IsArray reports whether the value is a JSON array.
func (v Value) IsArray() bool { return v.Kind() == '[' }

// IsObject reports whether the value is a JSON object.
func (v Value) IsObject() bool { return v.Kind() == '{' }

// AsBool returns the boolean and reports whether the value is a boolean.
func (v Value) AsBool() (bool, bool) {
	switch v.Kind() {
	case 't':
		return true, true
	case 'f':
		return false, true
	}
	return false, false
}

// AsNumber returns the number and reports whether the value is a number.
func (v Value) AsNumber() (Number, bool) {
	if v.Kind() != '0' {
		return Number{}, false
	}
	return v.num, true
}

// AsString returns the text and reports whether the value is a string.
func (v Value) AsString() (string, bool) {
	if v.Kind() != '"' {
		return "", false
	}
	return v.str, true
}

// AsArray returns a copy of the elements and reports whether
// the value is an array.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind() != '[' {
		return nil, false
	}
	return slices.Clone(v.arr), true
}

// AsObject returns the object and reports whether the value is an object.
func (v Value) AsObject() (*Object, bool) {
	if v.Kind() != '{' {
		return nil, false
	}
	return v.obj, true
}

// Fold reduces v by applying exactly one of the six handlers,
// chosen by the kind of v.
func Fold[T any](
	v Value,
	onNull func() T,
	onBool func(bool) T,
	onNumber func(Number) T,
	onString func(string) T,
	onArray func([]Value) T,
	onObject func(*Object) T,
) T {
	switch v.Kind() {
	case 'n':
		return onNull()
	case 'f':
		return onBool(false)
	case 't':
		return onBool(true)
	case '0':
		return onNumber(v.num)
	case '"':
		return onString(v.str)
	case '[':
		return onArray(slices.Clone(v.arr))
	case '{':
		return onObject(v.obj)
	default:
		panic("BUG: invalid value kind " + v.Kind().String())
	}
}

// DeepMerge returns the recursive union of v and other.
// If both are objects they merge per [Object.DeepMerge];
// any other combination yields other unchanged.
func (v Value) DeepMerge(other Value) Value {
	lhs, ok1 := v.AsObject()
	rhs, ok2 := other.AsObject()
	if ok1 && ok2 {
		return FromObject(lhs.DeepMerge(rhs))
	}
	return other
}

// DropNullValues removes the direct entries of an object whose value
// is null. Nested values are untouched and non-objects are returned
// unchanged.
func (v Value) DropNullValues() Value {
	if obj, ok := v.AsObject(); ok {
		return FromObject(obj.Filter(func(_ string, e Value) bool { return !e.IsNull() }))
	}
	return v
}

// DeepDropNullValues removes null-valued object entries at every
// depth of the tree. Null elements of arrays are kept: only object
// entries are dropped.
func (v Value) DeepDropNullValues() Value {
	switch v.Kind() {
	case '[':
		elems := make([]Value, len(v.arr))
		for i, e := range v.arr {
			elems[i] = e.DeepDropNullValues()
		}
		return Value{kind: '[', arr: elems}
	case '{':
		obj := v.obj.
			Filter(func(_ string, e Value) bool { return !e.IsNull() }).
			MapValues(Value.DeepDropNullValues)
		return FromObject(obj)
	}
	return v
}

// DropEmptyValues removes the direct entries of an object whose value
// is an empty array or an empty object. All other entries, including
// null ones, are kept, and nested values are untouched.
func (v Value) DropEmptyValues() Value {
	obj, ok := v.AsObject()
	if !ok {
		return v
	}
	return FromObject(obj.Filter(func(_ string, e Value) bool {
		switch e.Kind() {
		case '[':
			return len(e.arr) > 0
		case '{':
			return !e.obj.IsEmpty()
		}
		return true
	}))
}

// FindAllByKey collects the value of every object entry in the tree
// whose key equals key, in depth-first pre-order. Traversal continues
// into collected values as with any other.
func (v Value) FindAllByKey(key string) []Value {
	var found []Value
	var walk func(Value)
	walk = func(v Value) {
		switch v.Kind() {
		case '[':
			for _, e := range v.arr {
				walk(e)
			}
		case '{':
			for _, f := range v.obj.fields() {
				if f.Key == key {
					found = append(found, f.Value)
				}
				walk(f.Value)
			}
		}
	}
	walk(v)
	return found
}

// MapObject applies f if the value is an object and
// returns the value unchanged otherwise.
func (v Value) MapObject(f func(*Object) *Object) Value {
	if obj, ok := v.AsObject(); ok {
		return FromObject(f(obj))
	}
	return v
}

// MapArray applies f to the elements if the value is an array and
// returns the value unchanged otherwise.
func (v Value) MapArray(f func([]Value) []Value) Value {
	if elems, ok := v.AsArray(); ok {
		return Array(f(elems)...)
	}
	return v
}

// MapString applies f if the value is a string and
// returns the value unchanged otherwise.
func (v Value) MapString(f func(string) string) Value {
	if s, ok := v.AsString(); ok {
		return String(f(s))
	}
	return v
}

// MapNumber applies f if the value is a number and
// returns the value unchanged otherwise.
func (v Value) MapNumber(f func(Number) Number) Value {
	if n, ok := v.AsNumber(); ok {
		return FromNumber(f(n))
	}
	return v
}

// Equal reports whether v and other represent the same JSON value.
// Numbers compare by mathematical value, arrays element-wise in order,
// and objects as unordered key/value sets.
func (v Value) Equal(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case 'n', 'f', 't':
		return true
	case '0':
		return v.num.Equal(other.num)
	case '"':
		return v.str == other.str
	case '[':
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case '{':
		return v.obj.Equal(other.obj)
	default:
		panic("BUG: invalid value kind " + v.Kind().String())
	}
}

// Print renders the value as JSON text under p's configuration.
func (v Value) Print(p *Printer) string {
	return p.Print(v)
}

// String renders the value as compact JSON text.
func (v Value) String() string {
	return Compact.Print(v)
}
