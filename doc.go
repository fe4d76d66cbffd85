// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package circe provides an immutable in-memory representation of
// JSON documents, an arbitrary-precision numeric model that preserves
// the exact meaning of any JSON number, and a configurable printer
// that renders values back to text.
//
// [Value] is the document node: null, boolean, number, string, array,
// or object. [Number] represents a JSON number exactly, so equality
// and ordering follow mathematical value rather than literal text.
// [Object] is an insertion-ordered, key-unique mapping with
// structural operations such as merging and filtering. [Printer]
// serializes a Value under formatting options covering indentation,
// non-ASCII escaping, key sorting, and output buffer pooling.
//
// Values, numbers, and objects are immutable and safe for concurrent
// use. Parsing of full JSON documents is deliberately out of scope;
// this package is the value model that parser front-ends and
// encoder/decoder layers build upon.
package circe
