// SPDX-License-Identifier: MIT
// Package matrix — incremental row-by-row construction.
//
// Builder replaces the historical incremental fill API on the value type:
// the fill cursor lives here, in a dedicated single-use type, so Dense
// itself carries no construction state. The usual alternative is passing a
// complete [][]float64 to NewDenseFromData.

package matrix

import "fmt"

const (
	opNewBuilder = "NewBuilder"
	opAppendRow  = "AppendRow"
	opBuild      = "Build"
)

// Builder accumulates rows for a matrix of a fixed, pre-declared shape.
// It is a single-goroutine, single-use object: create, append exactly
// `rows` rows, then Build.
type Builder struct {
	rows, cols int       // declared target shape (both >= 1)
	data       []float64 // flat row-major accumulation buffer
	filled     int       // number of rows appended so far
	built      bool      // guards against reuse after Build
}

// NewBuilder creates a Builder for a rows×cols matrix.
// Errors: ErrInvalidDimensions when rows <= 0 or cols <= 0.
// Complexity: O(r*c) allocation.
func NewBuilder(rows, cols int) (*Builder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNewBuilder, rows, cols, ErrInvalidDimensions)
	}

	return &Builder{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// AppendRow copies values in as the next row.
// Errors: ErrCapacityExceeded once all declared rows are filled (or after
// Build), ErrDimensionMismatch when len(values) != cols.
// Complexity: O(c).
func (b *Builder) AppendRow(values ...float64) error {
	if b.built || b.filled >= b.rows {
		return fmt.Errorf("%s: %d rows already filled: %w", opAppendRow, b.rows, ErrCapacityExceeded)
	}
	if err := ValidateVecLen(values, b.cols); err != nil {
		return matrixErrorf(opAppendRow, err)
	}
	copy(b.data[b.filled*b.cols:(b.filled+1)*b.cols], values)
	b.filled++

	return nil
}

// Filled returns how many rows have been appended so far. Complexity: O(1).
func (b *Builder) Filled() int { return b.filled }

// Build finalizes the matrix. Every declared row must have been appended.
// The builder hands its buffer over to the result and must not be reused;
// further AppendRow calls fail with ErrCapacityExceeded.
// Errors: ErrDimensionMismatch when rows are missing.
// Complexity: O(1).
func (b *Builder) Build() (*Dense, error) {
	if b.filled != b.rows {
		return nil, fmt.Errorf("%s: %d of %d rows filled: %w",
			opBuild, b.filled, b.rows, ErrDimensionMismatch)
	}
	b.built = true

	return &Dense{r: b.rows, c: b.cols, data: b.data}, nil
}
