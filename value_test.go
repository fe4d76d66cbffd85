// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueZeroIsNull(t *testing.T) {
	var v Value
	require.True(t, v.IsNull())
	require.Equal(t, KindNull, v.Kind())
	require.True(t, v.Equal(Null))
	require.Equal(t, "null", v.String())
}

func TestValueAccessorsDistinguishVariants(t *testing.T) {
	values := map[Kind]Value{
		KindNull:   Null,
		KindTrue:   True,
		KindFalse:  False,
		KindNumber: Int(0),
		KindString: String(""),
		KindArray:  Array(),
		KindObject: FromObject(NewObject()),
	}
	for kind, v := range values {
		require.Equal(t, kind, v.Kind())
		require.Equal(t, kind == KindNull, v.IsNull(), "IsNull of %v", kind)
		require.Equal(t, kind == KindTrue || kind == KindFalse, v.IsBool(), "IsBool of %v", kind)
		require.Equal(t, kind == KindNumber, v.IsNumber(), "IsNumber of %v", kind)
		require.Equal(t, kind == KindString, v.IsString(), "IsString of %v", kind)
		require.Equal(t, kind == KindArray, v.IsArray(), "IsArray of %v", kind)
		require.Equal(t, kind == KindObject, v.IsObject(), "IsObject of %v", kind)

		_, ok := v.AsString()
		require.Equal(t, kind == KindString, ok)
		_, ok = v.AsNumber()
		require.Equal(t, kind == KindNumber, ok)
		_, ok = v.AsArray()
		require.Equal(t, kind == KindArray, ok)
		_, ok = v.AsObject()
		require.Equal(t, kind == KindObject, ok)
		_, ok = v.AsBool()
		require.Equal(t, kind == KindTrue || kind == KindFalse, ok)
	}

	// The empty string and Null are different values.
	require.False(t, String("").Equal(Null))
	require.False(t, String("").IsNull())
}

func TestFold(t *testing.T) {
	describe := func(v Value) string {
		return Fold(v,
			func() string { return "null" },
			func(b bool) string {
				if b {
					return "bool:true"
				}
				return "bool:false"
			},
			func(n Number) string { return "number:" + n.String() },
			func(s string) string { return "string:" + s },
			func(a []Value) string { return "array" },
			func(o *Object) string { return "object" },
		)
	}
	require.Equal(t, "null", describe(Null))
	require.Equal(t, "bool:true", describe(True))
	require.Equal(t, "bool:false", describe(Bool(false)))
	require.Equal(t, "number:42", describe(Int(42)))
	require.Equal(t, "string:hi", describe(String("hi")))
	require.Equal(t, "array", describe(Array(Null)))
	require.Equal(t, "object", describe(FromObject(Singleton("k", Null))))
}

func TestDropNullValuesIsShallow(t *testing.T) {
	v := mustParseJSON(t, `{"a":null,"b":{"c":null,"d":1}}`)
	require.Equal(t, `{"b":{"c":null,"d":1}}`, v.DropNullValues().String())
	require.Equal(t, `{"b":{"d":1}}`, v.DeepDropNullValues().String())

	// The original is untouched.
	require.Equal(t, `{"a":null,"b":{"c":null,"d":1}}`, v.String())

	// Non-objects pass through unchanged.
	require.Equal(t, `[null]`, Array(Null).DropNullValues().String())
	require.True(t, Null.DropNullValues().IsNull())
}

func TestDeepDropNullValuesKeepsArrayNulls(t *testing.T) {
	v := mustParseJSON(t, `{"a":[null,{"b":null,"c":1}],"d":null}`)
	require.Equal(t, `{"a":[null,{"c":1}]}`, v.DeepDropNullValues().String())
}

func TestDropEmptyValues(t *testing.T) {
	v := mustParseJSON(t, `{"a":[],"b":{},"c":null,"d":[1],"e":{"f":{}},"g":""}`)
	// Shallow: only direct empty-array and empty-object entries go;
	// null and the nested empty object stay.
	require.Equal(t, `{"c":null,"d":[1],"e":{"f":{}},"g":""}`, v.DropEmptyValues().String())

	require.True(t, Int(1).DropEmptyValues().Equal(Int(1)))
}

func TestFindAllByKey(t *testing.T) {
	v := mustParseJSON(t, `{
		"id": 1,
		"nested": {"id": 2, "list": [{"id": 3}, {"other": {"id": 4}}]},
		"id2": {"id": {"id": 5}}
	}`)
	var got []string
	for _, m := range v.FindAllByKey("id") {
		got = append(got, m.String())
	}
	// Pre-order, and traversal continues into collected values.
	require.Equal(t, []string{"1", "2", "3", "4", `{"id":5}`, "5"}, got)

	require.Empty(t, v.FindAllByKey("missing"))
}

func TestValueEqual(t *testing.T) {
	require.True(t, mustParseJSON(t, `{"a":1,"b":2}`).Equal(mustParseJSON(t, `{"b":2,"a":1}`)))
	require.True(t, mustParseJSON(t, `{"n":1.0}`).Equal(mustParseJSON(t, `{"n":1.00}`)))
	require.True(t, mustParseJSON(t, `[1e2]`).Equal(mustParseJSON(t, `[100]`)))
	require.False(t, mustParseJSON(t, `[1,2]`).Equal(mustParseJSON(t, `[2,1]`)))
	require.False(t, mustParseJSON(t, `[1,2]`).Equal(mustParseJSON(t, `[1,2,3]`)))
	require.False(t, True.Equal(False))
	require.False(t, Int(0).Equal(String("0")))
	require.True(t, Array().Equal(Array()))
	require.False(t, Array().Equal(FromObject(NewObject())))
}

func TestValueDeepMerge(t *testing.T) {
	base := mustParseJSON(t, `{"b":0,"c":3}`)
	other := mustParseJSON(t, `{"a":1,"b":2}`)
	require.Equal(t, `{"c":3,"a":1,"b":2}`, base.DeepMerge(other).String())

	// Any non-object pairing replaces wholesale.
	require.True(t, Int(1).DeepMerge(String("x")).Equal(String("x")))
	require.True(t, base.DeepMerge(Null).IsNull())
	require.True(t, Null.DeepMerge(base).Equal(base))
}

func TestFloatConstructors(t *testing.T) {
	_, err := Float(math.NaN())
	require.ErrorIs(t, err, ErrNonFinite)
	_, err = Float(math.Inf(1))
	require.ErrorIs(t, err, ErrNonFinite)

	v, err := Float(1.5)
	require.NoError(t, err)
	require.Equal(t, "1.5", v.String())

	require.True(t, FloatOrNull(math.NaN()).IsNull())
	require.Equal(t, `"NaN"`, FloatOrString(math.NaN()).String())
	require.Equal(t, `"Infinity"`, FloatOrString(math.Inf(1)).String())
	require.Equal(t, `"-Infinity"`, FloatOrString(math.Inf(-1)).String())
	require.Equal(t, "2.5", FloatOrString(2.5).String())
	require.Equal(t, "2.5", FloatOrNull(2.5).String())
}

func TestValueImmutability(t *testing.T) {
	elems := []Value{Int(1), Int(2)}
	v := Array(elems...)
	elems[0] = Int(9) // the constructor copied its input
	got, ok := v.AsArray()
	require.True(t, ok)
	require.True(t, got[0].Equal(Int(1)))

	got[1] = Int(9) // AsArray returns a fresh copy
	again, _ := v.AsArray()
	require.True(t, again[1].Equal(Int(2)))
}

func TestValueSingleVariantMaps(t *testing.T) {
	v := mustParseJSON(t, `{"a":1}`)
	mapped := v.MapObject(func(o *Object) *Object { return o.Add("b", Int(2)) })
	require.Equal(t, `{"a":1,"b":2}`, mapped.String())
	require.Equal(t, `{"a":1}`, v.String())

	require.Equal(t, `"HI"`, String("hi").MapString(func(s string) string { return "HI" }).String())
	require.Equal(t, `[2,1]`, mustParseJSON(t, `[1,2]`).MapArray(func(e []Value) []Value {
		e[0], e[1] = e[1], e[0]
		return e
	}).String())

	// A map for a different variant leaves the value unchanged.
	require.True(t, Int(1).MapString(func(string) string { return "x" }).Equal(Int(1)))
}
