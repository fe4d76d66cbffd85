// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"slices"
	"unicode/utf16"
	"unicode/utf8"
)

// AppendQuote appends src to dst as a JSON string per RFC 8259, section 7.
//
// It never fails: invalid UTF-8 bytes are replaced with
// the Unicode replacement character.
// The escape table specifies which runes to escape beyond those that
// the grammar requires. In canonical mode the shortest representable form
// is used, which is also the canonical form for strings
// (RFC 8785, section 3.2.2.2).
func AppendQuote[Bytes ~[]byte | ~string](dst []byte, src Bytes, escape *EscapeRunes) []byte {
	var i, n int
	dst = slices.Grow(dst, len(`"`)+len(src)+len(`"`))
	dst = append(dst, '"')
	if escape == nil || escape.IsCanonical() {
		// Optimize for canonical formatting.
		for uint(len(src)) > uint(n) {
			// Handle single-byte ASCII.
			if c := src[n]; c < utf8.RuneSelf {
				n++
				if escapeCanonical.needEscapeASCII(c) {
					dst = append(dst, src[i:n-1]...)
					dst = appendEscapedASCII(dst, c)
					i = n
				}
				continue
			}

			// Handle multi-byte Unicode.
			_, rn := utf8.DecodeRuneInString(string(truncateMaxUTF8(src[n:])))
			n += rn
			if rn == 1 { // must be utf8.RuneError since we already checked for single-byte ASCII
				dst = append(dst, src[i:n-rn]...)
				dst = append(dst, "\ufffd"...)
				i = n
			}
		}
	} else {
		// Handle arbitrary escaping.
		for uint(len(src)) > uint(n) {
			// Handle single-byte ASCII.
			if c := src[n]; c < utf8.RuneSelf {
				n++
				if escape.needEscapeASCII(c) {
					dst = append(dst, src[i:n-1]...)
					dst = appendEscapedASCII(dst, c)
					i = n
				}
				continue
			}

			// Handle multi-byte Unicode.
			switch r, rn := utf8.DecodeRuneInString(string(truncateMaxUTF8(src[n:]))); {
			case r == utf8.RuneError && rn == 1:
				dst = append(dst, src[i:n]...)
				if escape.needEscapeRune(r) {
					dst = append(dst, `\ufffd`...)
				} else {
					dst = append(dst, "\ufffd"...)
				}
				n += rn
				i = n
			case escape.needEscapeRune(r):
				dst = append(dst, src[i:n]...)
				dst = appendEscapedUnicode(dst, r)
				n += rn
				i = n
			default:
				n += rn
			}
		}
	}
	dst = append(dst, src[i:n]...)
	dst = append(dst, '"')
	return dst
}

func appendEscapedASCII(dst []byte, c byte) []byte {
	switch c {
	case '"', '\\':
		dst = append(dst, '\\', c)
	case '\b':
		dst = append(dst, "\\b"...)
	case '\f':
		dst = append(dst, "\\f"...)
	case '\n':
		dst = append(dst, "\\n"...)
	case '\r':
		dst = append(dst, "\\r"...)
	case '\t':
		dst = append(dst, "\\t"...)
	default:
		dst = appendEscapedUTF16(dst, uint16(c))
	}
	return dst
}

func appendEscapedUnicode(dst []byte, r rune) []byte {
	if r1, r2 := utf16.EncodeRune(r); r1 != '\ufffd' && r2 != '\ufffd' {
		dst = appendEscapedUTF16(dst, uint16(r1))
		dst = appendEscapedUTF16(dst, uint16(r2))
	} else {
		dst = appendEscapedUTF16(dst, uint16(r))
	}
	return dst
}

func appendEscapedUTF16(dst []byte, x uint16) []byte {
	const hex = "0123456789abcdef"
	return append(dst, '\\', 'u', hex[(x>>12)&0xf], hex[(x>>8)&0xf], hex[(x>>4)&0xf], hex[(x>>0)&0xf])
}

// truncateMaxUTF8 truncates b to the maximum length of a UTF-8 sequence
// so that converting a subslice to a string stays cheap.
func truncateMaxUTF8[Bytes ~[]byte | ~string](b Bytes) Bytes {
	if len(b) > utf8.UTFMax {
		return b[:utf8.UTFMax]
	}
	return b
}
