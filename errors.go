// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circe

import "errors"

const errorPrefix = "circe: "

// ErrNonFinite is returned when constructing a Number from a NaN or
// infinite floating-point value, neither of which JSON can represent.
var ErrNonFinite = errors.New(errorPrefix + "number is not finite")

// SyntaxError is a description of a JSON number syntax error.
//
// The contents of this error as produced by this package may change over time.
type SyntaxError struct {
	// Offset indicates that an error occurred after processing Offset bytes.
	Offset int64
	str    string
}

func (e *SyntaxError) Error() string { return errorPrefix + e.str }
