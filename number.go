// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circe

import (
	"hash/fnv"
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v2"

	"github.com/armanbilge/circe/internal/jsonwire"
)

// Number represents one JSON number exactly.
//
// A Number preserves the full precision of the literal it was
// constructed from, so values far outside the range of float64
// (e.g., 1e1000) remain exact. Precision is only lost on explicitly
// lossy conversions such as [Number.Float64], never on construction,
// equality, or ordering.
//
// Two Numbers are equal if and only if they denote the same
// mathematical value, regardless of the originating literal text:
// 1.0 equals 1.00, 1E2 equals 100, and -0 equals 0.
//
// The zero Number is the number zero. A Number is immutable.
type Number struct {
	dec apd.Decimal
}

// maxBigIntDigits bounds the magnitude of integers materialized by
// BigInt so that a small literal like 1e2000000000 cannot allocate
// gigabytes of digits.
const maxBigIntDigits = 1 << 18

// ParseNumber constructs a Number from a JSON number literal.
// It accepts exactly the grammar of RFC 8259, section 6:
// a leading '+', leading zeros (e.g., 01), a decimal point without
// fractional digits, an empty exponent, and the non-finite forms
// NaN and Infinity are all rejected with a [SyntaxError].
func ParseNumber(s string) (Number, error) {
	n := jsonwire.ConsumeNumber(s)
	if n != len(s) || n == 0 {
		return Number{}, &SyntaxError{Offset: int64(n), str: "invalid number literal " + strconv.Quote(s)}
	}
	var d apd.Decimal
	if _, cond, err := d.SetString(s); err != nil || cond != 0 || d.Form != apd.Finite {
		return Number{}, &SyntaxError{str: "number literal " + strconv.Quote(s) + " exceeds the representable exponent range"}
	}
	return Number{dec: d}, nil
}

// NumberFromFloat64 constructs a Number with the value of the shortest
// decimal literal that converts back to exactly f.
// It returns [ErrNonFinite] if f is NaN or infinite.
func NumberFromFloat64(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, ErrNonFinite
	}
	var d apd.Decimal
	if _, _, err := d.SetString(string(jsonwire.AppendFloat(nil, f))); err != nil {
		panic("BUG: unparsable formatted float: " + err.Error())
	}
	return Number{dec: d}, nil
}

// NumberFromInt64 constructs a Number with the value of i.
func NumberFromInt64(i int64) Number {
	return Number{dec: *apd.New(i, 0)}
}

// NumberFromUint64 constructs a Number with the value of u.
func NumberFromUint64(u uint64) Number {
	var c big.Int
	c.SetUint64(u)
	return Number{dec: *apd.NewWithBigInt(&c, 0)}
}

// NumberFromBigInt constructs a Number with the value of i,
// which may be arbitrarily large. The input is copied.
func NumberFromBigInt(i *big.Int) Number {
	var c big.Int
	c.Set(i)
	return Number{dec: *apd.NewWithBigInt(&c, 0)}
}

// NumberFromDecimal constructs a Number with the value of d,
// preserving its exact coefficient and exponent. The input is copied.
// It returns [ErrNonFinite] if d is NaN or infinite.
func NumberFromDecimal(d *apd.Decimal) (Number, error) {
	if d.Form != apd.Finite {
		return Number{}, ErrNonFinite
	}
	var c apd.Decimal
	c.Set(d)
	return Number{dec: c}, nil
}

// Float64 returns the nearest float64 to the represented value.
// The conversion is lossy: values beyond the float64 range saturate
// at ±[math.MaxFloat64] and values below the subnormal range
// underflow to zero.
func (n Number) Float64() float64 {
	f, err := strconv.ParseFloat(n.dec.String(), 64)
	if err != nil && math.IsInf(f, 0) {
		return math.Copysign(math.MaxFloat64, f)
	}
	return f
}

// BigInt returns the represented value as a big integer.
// It reports false if the value has a fractional part or if
// materializing the integer would exceed an internal size bound.
func (n Number) BigInt() (*big.Int, bool) {
	var r apd.Decimal
	r.Reduce(&n.dec)
	if r.Exponent < 0 {
		return nil, false
	}
	if int64(r.Exponent)+r.NumDigits() > maxBigIntDigits {
		return nil, false
	}
	i := new(big.Int).Set(&r.Coeff)
	if r.Exponent > 0 {
		i.Mul(i, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(r.Exponent)), nil))
	}
	if r.Negative {
		i.Neg(i)
	}
	return i, true
}

// Int64 returns the represented value as an int64.
// It reports false if the value has a fractional part or
// overflows the int64 range.
func (n Number) Int64() (int64, bool) {
	i, ok := n.BigInt()
	if !ok || !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// Decimal returns a copy of the represented value as an arbitrary
// precision decimal.
func (n Number) Decimal() *apd.Decimal {
	var d apd.Decimal
	d.Set(&n.dec)
	return &d
}

// Cmp compares the mathematical values of n and o and returns
// -1, 0, or +1. Negative zero compares equal to zero.
func (n Number) Cmp(o Number) int {
	return n.dec.Cmp(&o.dec)
}

// Equal reports whether n and o denote the same mathematical value.
func (n Number) Equal(o Number) bool {
	return n.Cmp(o) == 0
}

// Hash returns a hash of the mathematical value of n.
// Equal Numbers hash identically regardless of originating literal text.
func (n Number) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(n.canonical()))
	return h.Sum64()
}

// canonical returns the unique literal for the represented value:
// no trailing zeros in the coefficient and no sign on zero.
func (n Number) canonical() string {
	if n.dec.IsZero() {
		return "0"
	}
	var r apd.Decimal
	r.Reduce(&n.dec)
	return r.String()
}

// String returns a JSON number literal that parses back to a Number
// equal to n. The literal is not necessarily the text n was parsed from.
func (n Number) String() string {
	return n.dec.String()
}
