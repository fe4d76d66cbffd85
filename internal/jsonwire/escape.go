// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire implements stateless functionality for
// producing JSON text per RFC 8259.
package jsonwire

import "unicode/utf8"

// Validity of these checked in TestEscapeRunesTables.
var (
	escapeCanonical = EscapeRunes{
		asciiCache: [...]int8{
			-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
			-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
			00, 00, -1, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
			00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
			00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
			00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, -1, 00, 00, 00,
			00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
			00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
		},
	}
	escapeNonASCII = EscapeRunes{asciiCache: escapeCanonical.asciiCache, nonASCII: true}
)

// EscapeRunes reports whether a rune must be escaped.
type EscapeRunes struct {
	// asciiCache is a cache of whether an ASCII character must be escaped,
	// where 0 means not escaped and -1 escapes with the short sequence (e.g., \n).
	asciiCache [utf8.RuneSelf]int8

	// nonASCII specifies that every rune above the ASCII range is escaped
	// with one or two \uXXXX sequences.
	nonASCII bool
}

// MakeEscapeRunes returns the escape table for the escape parameters.
func MakeEscapeRunes(nonASCII bool) *EscapeRunes {
	if nonASCII {
		return &escapeNonASCII
	}
	return &escapeCanonical
}

// IsCanonical reports whether this uses canonical escaping,
// which is the minimal amount of escaping to produce a valid JSON string.
func (e *EscapeRunes) IsCanonical() bool { return !e.nonASCII }

// needEscapeASCII reports whether c must be escaped.
// It assumes c < utf8.RuneSelf.
func (e *EscapeRunes) needEscapeASCII(c byte) bool {
	return e.asciiCache[c] != 0
}

// needEscapeRune reports whether r must be escaped.
// It assumes r >= utf8.RuneSelf.
func (e *EscapeRunes) needEscapeRune(r rune) bool {
	return e.nonASCII
}
