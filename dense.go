// SPDX-License-Identifier: MIT

// Package matrix — Dense storage (row-major), constructors & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At and friends return errors instead of panicking.
//   - Keep the "null matrix" representable: the zero value of Dense has nil
//     storage and 0×0 shape, distinct from a zero-filled matrix.
//   - Enforce the copy discipline: every [][]float64 entering or leaving the
//     package is deep-copied, never aliased.
//
// Complexity quicksheet:
//   - NewDense/NewDenseFilled/Identity: O(r*c) init; At: O(1);
//     DeepCopy/Entries/Clear/String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// Threshold is the process-wide tolerance used by every floating-point
// "is this effectively zero" comparison in the structural classifiers
// (IsDiagonal, IsUpperTriangular, IsLowerTriangular, IsSparse, IsIdentity).
// Value equality (Equals) is intentionally exact and does not use it.
const Threshold = 1e-6

// nullMatrixToken is the fixed sentinel rendered by String for a null
// matrix, so display-only paths never fail.
const nullMatrixToken = "<null_matrix>"

// ---------- error context tags ----------

const (
	ctxAt         = "At"         // method tag used in error wrappers
	ctxRow        = "Row"        // method tag used in error wrappers
	ctxColumn     = "Column"     // method tag used in error wrappers
	ctxCreate     = "Create"     // ctor tag for in-place re-initialization
	ctxCreateFrom = "CreateFrom" // ctor tag for in-place data ingestion
)

// ---------- formatting literals ----------

const (
	_fmtMatOpen  = "[   " // opening bracket of the whole matrix
	_fmtMatClose = "   ]" // closing bracket of the whole matrix
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtRowSep   = ",\n    " // separator between rows
	_fmtSep      = ", "      // separator between values within a row
)

// denseErrorf wraps an underlying sentinel with Dense method context and
// the callsite indices, preserving errors.Is matching via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r, c hold dimensions (rows, cols); both 0 iff data is nil.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - selectedRow/hasSelection form the transient row-mutation cursor used
//     only by the Select→Change protocol; they are not part of the
//     mathematical value and are never copied by DeepCopy.
//
// The zero value Dense{} is the null (uninitialized) matrix.
type Dense struct {
	r, c         int       // row and column counts (>=1 when initialized; 0 when null)
	data         []float64 // contiguous row-major storage (len == r*c); nil when null
	selectedRow  int       // row armed by Select for the next Change
	hasSelection bool      // true only between Select and Change
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled flat buffer (make zero-fills deterministically).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFilled creates an r×c matrix with every cell initialized to val.
// Same validation as NewDense.
// Complexity: O(r*c).
func NewDenseFilled(rows, cols int, val float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = val
	}

	return m, nil
}

// NewDenseFromData creates a matrix by deep-copying data.
// Implementation:
//   - Stage 1: reject nil/empty input (ErrNilMatrix) and jagged or empty
//     rows (ErrDimensionMismatch) before any allocation escapes.
//   - Stage 2: copy row by row into a fresh flat buffer.
//
// Behavior highlights:
//   - Mutating the caller's slices after construction never changes the
//     matrix; no row slice is retained.
//
// Errors:
//   - ErrNilMatrix (nil or zero-length data), ErrDimensionMismatch (jagged rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromData(data [][]float64) (*Dense, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("NewDenseFromData: %w", ErrNilMatrix)
	}
	rows, cols := len(data), len(data[0])
	if cols == 0 {
		return nil, fmt.Errorf("NewDenseFromData: row 0 is empty: %w", ErrDimensionMismatch)
	}
	// Validate rectangularity before allocating the result.
	for i := 1; i < rows; i++ {
		if len(data[i]) != cols {
			return nil, fmt.Errorf("NewDenseFromData: row %d has %d columns, want %d: %w",
				i, len(data[i]), cols, ErrDimensionMismatch)
		}
	}

	m := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	for i := 0; i < rows; i++ {
		copy(m.data[i*cols:(i+1)*cols], data[i]) // element-wise duplication, never aliasing
	}

	return m, nil
}

// Identity returns the n×n identity matrix (1.0 on the main diagonal).
// Errors: ErrInvalidDimensions when n < 1.
// Complexity: O(n^2).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrInvalidDimensions)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Create re-initializes the receiver in place as an r×c zero matrix,
// superseding any prior shape, content, and selection state.
// Errors: ErrInvalidDimensions. On error the receiver is left unchanged.
// Complexity: O(r*c).
func (m *Dense) Create(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("Dense.%s(%d,%d): %w", ctxCreate, rows, cols, ErrInvalidDimensions)
	}
	m.r, m.c = rows, cols
	m.data = make([]float64, rows*cols)
	m.resetSelection()

	return nil
}

// CreateFrom re-initializes the receiver in place from a deep copy of data,
// with the same validation as NewDenseFromData. On error the receiver is
// left unchanged (all-or-nothing).
// Complexity: O(r*c).
func (m *Dense) CreateFrom(data [][]float64) error {
	fresh, err := NewDenseFromData(data)
	if err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxCreateFrom, err)
	}
	m.r, m.c = fresh.r, fresh.c
	m.data = fresh.data // fresh is local; no aliasing escapes
	m.resetSelection()

	return nil
}

// Rows returns the number of rows (0 for a null matrix). Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns (0 for a null matrix). Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape returns the dimensions and ok=true when the matrix is initialized;
// a null matrix reports (0, 0, false). Complexity: O(1).
func (m *Dense) Shape() (rows, cols int, ok bool) {
	return m.r, m.c, !m.IsNull()
}

// IsNull reports whether the matrix is uninitialized (absent storage).
// Distinct from a zero matrix, whose storage is present and zero-filled.
// Complexity: O(1).
func (m *Dense) IsNull() bool { return m == nil || m.data == nil }

// wrapIndex applies negative-index wraparound (one wrap: -1 means the last
// element) and reports whether the result lies within [0, limit).
func wrapIndex(idx, limit int) (int, bool) {
	if idx < 0 {
		idx += limit
	}

	return idx, idx >= 0 && idx < limit
}

// At returns the value at (row, col), allowing negative-index wraparound:
// At(-1, -1) reads the last row and column.
// Implementation:
//   - Stage 1: null check, then wrap and bounds-check both indices.
//   - Stage 2: load from the flat buffer at row*c + col.
//
// Errors:
//   - ErrNilMatrix (null matrix), ErrOutOfRange (index beyond bounds after wrap).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if m.IsNull() {
		return 0, fmt.Errorf("Dense.%s: %w", ctxAt, ErrNilMatrix)
	}
	r, ok := wrapIndex(row, m.r)
	if !ok {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	c, ok := wrapIndex(col, m.c)
	if !ok {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[r*m.c+c], nil
}

// Row returns a copy of row i (negative-index wraparound applies).
// The returned slice never aliases internal storage.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if m.IsNull() {
		return nil, fmt.Errorf("Dense.%s: %w", ctxRow, ErrNilMatrix)
	}
	r, ok := wrapIndex(i, m.r)
	if !ok {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[r*m.c:(r+1)*m.c])

	return out, nil
}

// Column returns a copy of column j (negative-index wraparound applies).
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(r).
func (m *Dense) Column(j int) ([]float64, error) {
	if m.IsNull() {
		return nil, fmt.Errorf("Dense.%s: %w", ctxColumn, ErrNilMatrix)
	}
	c, ok := wrapIndex(j, m.c)
	if !ok {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+c]
	}

	return out, nil
}

// Entries returns a deep copy of the contents as a rectangular
// [][]float64, or nil for a null matrix. The result never aliases internal
// storage; mutating it cannot change the matrix.
// Complexity: O(r*c).
func (m *Dense) Entries() [][]float64 {
	if m.IsNull() {
		return nil
	}
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// DeepCopy returns an independent matrix with identical values.
// No storage is shared with the original, and the selection cursor is not
// carried over (a fresh copy starts Unselected). DeepCopy of a null matrix
// is another null matrix.
// Complexity: O(r*c).
func (m *Dense) DeepCopy() *Dense {
	if m.IsNull() {
		return &Dense{}
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Clear zeroes every entry in place, keeping the shape.
// Errors: ErrNilMatrix when the matrix is null.
// Complexity: O(r*c).
func (m *Dense) Clear() error {
	if m.IsNull() {
		return fmt.Errorf("Dense.Clear: %w", ErrNilMatrix)
	}
	for i := range m.data {
		m.data[i] = 0.0
	}

	return nil
}

// String renders the matrix as a bracketed, row-grouped form:
//
//	[   [1, 2],
//	    [3, 4]   ]
//
// A null matrix renders the fixed sentinel "<null_matrix>" instead of
// failing; display-only paths never error.
// Complexity: O(r*c).
func (m *Dense) String() string {
	if m.IsNull() {
		return nullMatrixToken
	}
	var b strings.Builder
	b.WriteString(_fmtMatOpen)
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
		if i+1 < m.r {
			b.WriteString(_fmtRowSep)
		}
	}
	b.WriteString(_fmtMatClose)

	return b.String()
}

// resetSelection disarms the row-mutation cursor. Internal; called by every
// operation that replaces or reshapes the storage.
func (m *Dense) resetSelection() {
	m.selectedRow = 0
	m.hasSelection = false
}
