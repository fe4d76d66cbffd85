// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"math"
	"strconv"
)

// ConsumeNumber consumes the longest prefix of src that is
// a valid JSON number per RFC 8259, section 6, and reports its length.
// It returns 0 if no prefix of src is a valid number.
//
// The grammar rejects a leading '+', leading zeros (e.g., 01),
// a decimal point without fractional digits, and an empty exponent.
func ConsumeNumber[Bytes ~[]byte | ~string](src Bytes) (n int) {
	// Consume the optional sign.
	if len(src) > n && src[n] == '-' {
		n++
	}

	// Consume the integer component.
	switch {
	case len(src) > n && src[n] == '0':
		n++
	case len(src) > n && '1' <= src[n] && src[n] <= '9':
		n++
		for len(src) > n && '0' <= src[n] && src[n] <= '9' {
			n++
		}
	default:
		return 0
	}

	// Consume the optional fractional component.
	if len(src) > n && src[n] == '.' {
		m := n + 1
		if len(src) <= m || src[m] < '0' || src[m] > '9' {
			return n // bare decimal point; the integer prefix is still a number
		}
		for len(src) > m && '0' <= src[m] && src[m] <= '9' {
			m++
		}
		n = m
	}

	// Consume the optional exponent component.
	if len(src) > n && (src[n] == 'e' || src[n] == 'E') {
		m := n + 1
		if len(src) > m && (src[m] == '+' || src[m] == '-') {
			m++
		}
		if len(src) <= m || src[m] < '0' || src[m] > '9' {
			return n // empty exponent; the prefix so far is still a number
		}
		for len(src) > m && '0' <= src[m] && src[m] <= '9' {
			m++
		}
		n = m
	}
	return n
}

// AppendFloat appends src to dst as a JSON number per RFC 8259, section 6.
// It formats numbers similar to the ES6 number-to-string conversion.
// See https://go.dev/issue/14135.
//
// The output is identical to ECMA-262, 6th edition, section 7.1.12.1 and with
// RFC 8785, section 3.2.2.3 for 64-bit floating-point numbers except for -0,
// which is formatted as -0 instead of just 0.
func AppendFloat(dst []byte, src float64) []byte {
	abs := math.Abs(src)
	fmt := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmt = 'e'
	}
	dst = strconv.AppendFloat(dst, src, fmt, -1, 64)
	if fmt == 'e' {
		// Clean up e-09 to e-9.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}
