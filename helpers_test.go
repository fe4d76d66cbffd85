// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circe

import (
	"strings"
	"testing"
	"unicode/utf16"
)

// mustParseJSON converts JSON text into a Value.
// Document parsing is out of scope for the library itself,
// so the tests carry this minimal reader for round-trip checks.
func mustParseJSON(t *testing.T, s string) Value {
	t.Helper()
	p := &testParser{t: t, s: s}
	p.skipSpace()
	v := p.parseValue()
	p.skipSpace()
	if p.i != len(p.s) {
		t.Fatalf("trailing input at offset %d in %q", p.i, s)
	}
	return v
}

type testParser struct {
	t *testing.T
	s string
	i int
}

func (p *testParser) fatalf(format string, args ...any) {
	p.t.Helper()
	p.t.Fatalf(format, args...)
}

func (p *testParser) skipSpace() {
	for p.i < len(p.s) && (p.s[p.i] == ' ' || p.s[p.i] == '\t' || p.s[p.i] == '\n' || p.s[p.i] == '\r') {
		p.i++
	}
}

func (p *testParser) next() byte {
	if p.i >= len(p.s) {
		p.fatalf("unexpected end of input in %q", p.s)
	}
	c := p.s[p.i]
	p.i++
	return c
}

func (p *testParser) expect(c byte) {
	if got := p.next(); got != c {
		p.fatalf("expected %q at offset %d in %q, got %q", c, p.i-1, p.s, got)
	}
}

func (p *testParser) literal(lit string) {
	if !strings.HasPrefix(p.s[p.i:], lit) {
		p.fatalf("expected %q at offset %d in %q", lit, p.i, p.s)
	}
	p.i += len(lit)
}

func (p *testParser) parseValue() Value {
	p.skipSpace()
	if p.i >= len(p.s) {
		p.fatalf("unexpected end of input in %q", p.s)
	}
	switch c := p.s[p.i]; {
	case c == 'n':
		p.literal("null")
		return Null
	case c == 't':
		p.literal("true")
		return True
	case c == 'f':
		p.literal("false")
		return False
	case c == '"':
		return String(p.parseString())
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseObject()
	default:
		return p.parseNumber()
	}
}

func (p *testParser) parseArray() Value {
	p.expect('[')
	p.skipSpace()
	if p.i < len(p.s) && p.s[p.i] == ']' {
		p.i++
		return Array()
	}
	var elems []Value
	for {
		elems = append(elems, p.parseValue())
		p.skipSpace()
		if c := p.next(); c == ']' {
			return Array(elems...)
		} else if c != ',' {
			p.fatalf("expected ',' or ']' at offset %d in %q", p.i-1, p.s)
		}
	}
}

func (p *testParser) parseObject() Value {
	p.expect('{')
	p.skipSpace()
	if p.i < len(p.s) && p.s[p.i] == '}' {
		p.i++
		return FromObject(NewObject())
	}
	var fields []Field
	for {
		p.skipSpace()
		key := p.parseString()
		p.skipSpace()
		p.expect(':')
		fields = append(fields, Field{Key: key, Value: p.parseValue()})
		p.skipSpace()
		if c := p.next(); c == '}' {
			return FromObject(FromPairs(fields))
		} else if c != ',' {
			p.fatalf("expected ',' or '}' at offset %d in %q", p.i-1, p.s)
		}
	}
}

func (p *testParser) parseString() string {
	p.expect('"')
	var sb strings.Builder
	for {
		switch c := p.next(); c {
		case '"':
			return sb.String()
		case '\\':
			switch e := p.next(); e {
			case '"', '\\', '/':
				sb.WriteByte(e)
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'u':
				r := rune(p.hex4())
				if utf16.IsSurrogate(r) && strings.HasPrefix(p.s[p.i:], `\u`) {
					p.i += 2
					r = utf16.DecodeRune(r, rune(p.hex4()))
				}
				sb.WriteRune(r)
			default:
				p.fatalf("invalid escape %q at offset %d in %q", e, p.i-1, p.s)
			}
		default:
			sb.WriteByte(c)
		}
	}
}

func (p *testParser) hex4() (x uint16) {
	for range 4 {
		c := p.next()
		switch {
		case '0' <= c && c <= '9':
			x = x<<4 | uint16(c-'0')
		case 'a' <= c && c <= 'f':
			x = x<<4 | uint16(c-'a'+10)
		case 'A' <= c && c <= 'F':
			x = x<<4 | uint16(c-'A'+10)
		default:
			p.fatalf("invalid hex digit %q at offset %d in %q", c, p.i-1, p.s)
		}
	}
	return x
}

func (p *testParser) parseNumber() Value {
	start := p.i
	for p.i < len(p.s) && strings.ContainsRune("+-.0123456789eE", rune(p.s[p.i])) {
		p.i++
	}
	n, err := ParseNumber(p.s[start:p.i])
	if err != nil {
		p.fatalf("invalid number at offset %d in %q: %v", start, p.s, err)
	}
	return FromNumber(n)
}
