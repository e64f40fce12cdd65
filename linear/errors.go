// Copyright 2025 Gustavo C. Viegas. All rights reserved.

package linear

import "errors"

// Sentinel errors returned by the algebra functions.
// Callers match them with errors.Is.
//
// Elementwise arithmetic and Unit are deliberately absent from
// this list: division by zero and normalization of a zero vector
// follow IEEE-754 semantics (Inf/NaN propagate) rather than
// returning an error.
var (
	// ErrDimension indicates an operand with too few dimensions,
	// such as a cross product of 2-component vectors.
	ErrDimension = errors.New("linear: not enough dimensions")

	// ErrShape indicates matrix operands whose shapes do not
	// align for the requested operation.
	ErrShape = errors.New("linear: operand shapes do not align")

	// ErrIndex indicates a column access past the end of a row
	// with no default value to substitute.
	ErrIndex = errors.New("linear: index beyond row length")

	// ErrDegenerate indicates input with no usable geometry,
	// such as a reflection line of coincident points or an
	// empty collection.
	ErrDegenerate = errors.New("linear: degenerate input")
)
