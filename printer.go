// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circe

import (
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/armanbilge/circe/internal/jsonwire"
)

// Printer renders a [Value] to JSON text under a fixed configuration.
//
// A Printer is safe for concurrent use. Its only mutable state is a
// cache of the whitespace fragments needed at each nesting depth,
// computed on first use of a depth and reused by every later print.
// Concurrent prints may race to compute a depth's fragments; all of
// them observe one consistent published result.
type Printer struct {
	indent         string
	spacedSeps     bool
	escapeNonASCII bool
	sortKeys       bool
	reuseBuffers   bool

	escape *jsonwire.EscapeRunes

	// pieces is a grow-only slice indexed by depth,
	// republished as a whole on every extension.
	pieces atomic.Pointer[[]pieces]
}

// pieces holds the verbatim text fragments emitted around the
// structural tokens of containers opened at one nesting depth.
type pieces struct {
	objOpen  string // after '{', in front of the first entry
	objClose string // in front of '}'
	arrOpen  string // after '[', in front of the first element
	arrClose string // in front of ']'
	objComma string // between object entries
	arrComma string // between array elements
	colon    string // between a key and its value
}

// An Option configures a Printer.
type Option func(*Printer)

// WithIndent specifies that nested values be indented by copies of
// the given unit, one per nesting level, each on its own line.
// An empty unit selects compact output.
func WithIndent(indent string) Option {
	if s := strings.Trim(indent, " \t"); len(s) > 0 {
		panic(errorPrefix + "invalid character " + strconv.QuoteRune(rune(s[0])) + " in indent")
	}
	return func(p *Printer) { p.indent = indent }
}

// WithSpacedSeparators specifies that compact output include a space
// after each comma and colon. It has no effect on indented output,
// which always spaces its colons.
func WithSpacedSeparators(v bool) Option {
	return func(p *Printer) { p.spacedSeps = v }
}

// WithEscapeNonASCII specifies that every code point at or above
// U+0080 be emitted as one or two \uXXXX sequences, using a surrogate
// pair for code points beyond the Basic Multilingual Plane.
func WithEscapeNonASCII(v bool) Option {
	return func(p *Printer) { p.escapeNonASCII = v }
}

// WithSortedKeys specifies that object entries be emitted in ascending
// lexicographic order of their keys by UTF-16 codepoint. Only the
// emission order is affected; the insertion order of the objects
// themselves is not changed.
func WithSortedKeys(v bool) Option {
	return func(p *Printer) { p.sortKeys = v }
}

// WithReuseBuffers specifies that output buffers be drawn from and
// returned to an internal pool across Print calls. Every call still
// observes a logically empty buffer; content never leaks between
// prints.
func WithReuseBuffers(v bool) Option {
	return func(p *Printer) { p.reuseBuffers = v }
}

// NewPrinter constructs a Printer with the given options.
// With no options it prints compact JSON.
func NewPrinter(opts ...Option) *Printer {
	p := new(Printer)
	for _, opt := range opts {
		opt(p)
	}
	p.escape = jsonwire.MakeEscapeRunes(p.escapeNonASCII)
	return p
}

// Commonly used printer configurations.
var (
	Compact         = NewPrinter()
	Indent2         = NewPrinter(WithIndent("  "))
	Indent4         = NewPrinter(WithIndent("    "))
	CompactSortKeys = NewPrinter(WithSortedKeys(true))
	Indent2SortKeys = NewPrinter(WithIndent("  "), WithSortedKeys(true))
	Indent4SortKeys = NewPrinter(WithIndent("    "), WithSortedKeys(true))
)

// Print renders v as JSON text. It always succeeds for finite trees.
func (p *Printer) Print(v Value) string {
	if p.reuseBuffers {
		b := getBuffer()
		defer putBuffer(b)
		b.buf = p.appendValue(b.buf, v, 0)
		return string(b.buf)
	}
	return string(p.appendValue(nil, v, 0))
}

func (p *Printer) appendValue(dst []byte, v Value, depth int) []byte {
	switch v.Kind() {
	case 'n':
		return append(dst, "null"...)
	case 'f':
		return append(dst, "false"...)
	case 't':
		return append(dst, "true"...)
	case '0':
		return append(dst, v.num.String()...)
	case '"':
		return jsonwire.AppendQuote(dst, v.str, p.escape)
	case '[':
		return p.appendArray(dst, v.arr, depth)
	case '{':
		return p.appendObject(dst, v.obj, depth)
	default:
		panic("BUG: invalid value kind " + v.Kind().String())
	}
}

func (p *Printer) appendArray(dst []byte, elems []Value, depth int) []byte {
	if len(elems) == 0 {
		return append(dst, "[]"...)
	}
	pc := p.piecesAt(depth)
	dst = append(dst, '[')
	dst = append(dst, pc.arrOpen...)
	for i, e := range elems {
		if i > 0 {
			dst = append(dst, pc.arrComma...)
		}
		dst = p.appendValue(dst, e, depth+1)
	}
	dst = append(dst, pc.arrClose...)
	return append(dst, ']')
}

func (p *Printer) appendObject(dst []byte, obj *Object, depth int) []byte {
	fields := obj.fields()
	if len(fields) == 0 {
		return append(dst, "{}"...)
	}
	if p.sortKeys {
		// Sort a fresh copy; the object's own order is untouched.
		fields = slices.Clone(fields)
		slices.SortStableFunc(fields, func(a, b Field) int {
			switch {
			case jsonwire.LessUTF16(a.Key, b.Key):
				return -1
			case jsonwire.LessUTF16(b.Key, a.Key):
				return +1
			default:
				return 0
			}
		})
	}
	pc := p.piecesAt(depth)
	dst = append(dst, '{')
	dst = append(dst, pc.objOpen...)
	for i, f := range fields {
		if i > 0 {
			dst = append(dst, pc.objComma...)
		}
		dst = jsonwire.AppendQuote(dst, f.Key, p.escape)
		dst = append(dst, pc.colon...)
		dst = p.appendValue(dst, f.Value, depth+1)
	}
	dst = append(dst, pc.objClose...)
	return append(dst, '}')
}

// piecesAt returns the fragments for containers opened at depth,
// computing and publishing them on first use.
func (p *Printer) piecesAt(depth int) *pieces {
	if ps := p.pieces.Load(); ps != nil && depth < len(*ps) {
		return &(*ps)[depth]
	}
	return p.growPieces(depth)
}

func (p *Printer) growPieces(depth int) *pieces {
	for {
		old := p.pieces.Load()
		var cur []pieces
		if old != nil {
			cur = *old
		}
		if depth < len(cur) {
			return &cur[depth]
		}
		grown := make([]pieces, depth+1)
		copy(grown, cur)
		for d := len(cur); d <= depth; d++ {
			grown[d] = p.makePieces(d)
		}
		// Publish the extended slice. On a lost race the winner's
		// slice holds identical fragments, so retrying is only
		// needed to avoid shrinking the cache.
		if p.pieces.CompareAndSwap(old, &grown) {
			return &grown[depth]
		}
	}
}

func (p *Printer) makePieces(depth int) pieces {
	if p.indent == "" {
		comma, colon := ",", ":"
		if p.spacedSeps {
			comma, colon = ", ", ": "
		}
		return pieces{objComma: comma, arrComma: comma, colon: colon}
	}
	outer := "\n" + strings.Repeat(p.indent, depth)
	inner := outer + p.indent
	return pieces{
		objOpen:  inner,
		objClose: outer,
		arrOpen:  inner,
		arrClose: outer,
		objComma: "," + inner,
		arrComma: "," + inner,
		colon:    ": ",
	}
}
