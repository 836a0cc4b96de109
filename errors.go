// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the operation boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// null matrix -> shape/dimension -> index -> selection -> capacity.

var (
	// ErrNilMatrix indicates that an operation was attempted on a null
	// (uninitialized) matrix, i.e. one with absent storage. The zero value
	// of Dense is null; so is a Dense after dropping its last row/column.
	ErrNilMatrix = errors.New("matrix: matrix is null (uninitialized)")

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub with different shapes, Mul where a.Cols != b.Rows,
	// jagged input rows, or a values list whose length does not match the
	// expected row/column size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (trace,
	// diagonal/triangular/identity checks) but the input was not.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds, after negative-index wraparound where supported.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrCapacityExceeded is returned by Builder.AppendRow once the fixed
	// row capacity declared at construction is exhausted.
	ErrCapacityExceeded = errors.New("matrix: builder row capacity exceeded")
)

// ErrNoSelection is returned by Change/ChangeAll when no row selection is
// active. It wraps ErrOutOfRange so callers that only distinguish the
// index-error kind still match via errors.Is(err, ErrOutOfRange).
var ErrNoSelection = fmt.Errorf("matrix: no active row selection: %w", ErrOutOfRange)
