// SPDX-License-Identifier: MIT
// Package matrix — structural editing of rows and columns.
//
// All editors validate first and mutate only on success (all-or-nothing).
// Operations that reshape or reorder storage disarm any active row
// selection, since the armed index no longer refers to the same row.

package matrix

import (
	"fmt"
	"sort"
)

const (
	opAddRow     = "AddRow"
	opAddColumn  = "AddColumn"
	opInsertRow  = "InsertRow"
	opInsertCol  = "InsertColumn"
	opDropRow    = "DropRow"
	opDropColumn = "DropColumn"
	opSwapRows   = "SwapRows"
	opSwapCols   = "SwapColumns"
	opMinor      = "Minor"
	opSort       = "Sort"
)

// AddRow appends a row at the bottom of the matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(values) != Cols).
// Complexity: O(r*c) for the storage rebuild.
func (m *Dense) AddRow(values ...float64) error {
	if err := ValidateInitialized(m); err != nil {
		return matrixErrorf(opAddRow, err)
	}

	return m.insertRowAt(opAddRow, m.r, values)
}

// AddColumn appends a column at the right edge of the matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(values) != Rows).
// Complexity: O(r*c).
func (m *Dense) AddColumn(values ...float64) error {
	if err := ValidateInitialized(m); err != nil {
		return matrixErrorf(opAddColumn, err)
	}

	return m.insertColumnAt(opAddColumn, m.c, values)
}

// InsertRow inserts a row before index i; i may equal Rows to append.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense) InsertRow(i int, values ...float64) error {
	if err := ValidateInitialized(m); err != nil {
		return matrixErrorf(opInsertRow, err)
	}
	if i < 0 || i > m.r {
		return fmt.Errorf("%s: row %d of %d: %w", opInsertRow, i, m.r, ErrOutOfRange)
	}

	return m.insertRowAt(opInsertRow, i, values)
}

// InsertColumn inserts a column before index j; j may equal Cols to append.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense) InsertColumn(j int, values ...float64) error {
	if err := ValidateInitialized(m); err != nil {
		return matrixErrorf(opInsertCol, err)
	}
	if j < 0 || j > m.c {
		return fmt.Errorf("%s: column %d of %d: %w", opInsertCol, j, m.c, ErrOutOfRange)
	}

	return m.insertColumnAt(opInsertCol, j, values)
}

// insertRowAt rebuilds storage with values inserted as row i.
// Assumes the receiver is initialized and 0 <= i <= rows.
func (m *Dense) insertRowAt(opTag string, i int, values []float64) error {
	if err := ValidateVecLen(values, m.c); err != nil {
		return matrixErrorf(opTag, err)
	}
	next := make([]float64, (m.r+1)*m.c)
	copy(next, m.data[:i*m.c])
	copy(next[i*m.c:], values)
	copy(next[(i+1)*m.c:], m.data[i*m.c:])
	m.r++
	m.data = next
	m.resetSelection()

	return nil
}

// insertColumnAt rebuilds storage with values inserted as column j.
// Assumes the receiver is initialized and 0 <= j <= cols.
func (m *Dense) insertColumnAt(opTag string, j int, values []float64) error {
	if err := ValidateVecLen(values, m.r); err != nil {
		return matrixErrorf(opTag, err)
	}
	nc := m.c + 1
	next := make([]float64, m.r*nc)
	for i := 0; i < m.r; i++ {
		copy(next[i*nc:], m.data[i*m.c:i*m.c+j])
		next[i*nc+j] = values[i]
		copy(next[i*nc+j+1:], m.data[i*m.c+j:(i+1)*m.c])
	}
	m.c = nc
	m.data = next
	m.resetSelection()

	return nil
}

// DropRow removes row i (negative-index wraparound applies). Dropping the
// last remaining row leaves the matrix null.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(r*c).
func (m *Dense) DropRow(i int) error {
	if err := ValidateInitialized(m); err != nil {
		return matrixErrorf(opDropRow, err)
	}
	r, ok := wrapIndex(i, m.r)
	if !ok {
		return fmt.Errorf("%s: row %d of %d: %w", opDropRow, i, m.r, ErrOutOfRange)
	}
	if m.r == 1 {
		*m = Dense{} // removing the only row yields the null matrix
		return nil
	}
	next := make([]float64, (m.r-1)*m.c)
	copy(next, m.data[:r*m.c])
	copy(next[r*m.c:], m.data[(r+1)*m.c:])
	m.r--
	m.data = next
	m.resetSelection()

	return nil
}

// DropColumn removes column j (negative-index wraparound applies).
// Dropping the last remaining column leaves the matrix null.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(r*c).
func (m *Dense) DropColumn(j int) error {
	if err := ValidateInitialized(m); err != nil {
		return matrixErrorf(opDropColumn, err)
	}
	c, ok := wrapIndex(j, m.c)
	if !ok {
		return fmt.Errorf("%s: column %d of %d: %w", opDropColumn, j, m.c, ErrOutOfRange)
	}
	if m.c == 1 {
		*m = Dense{} // removing the only column yields the null matrix
		return nil
	}
	nc := m.c - 1
	next := make([]float64, m.r*nc)
	for i := 0; i < m.r; i++ {
		copy(next[i*nc:], m.data[i*m.c:i*m.c+c])
		copy(next[i*nc+c:], m.data[i*m.c+c+1:(i+1)*m.c])
	}
	m.c = nc
	m.data = next
	m.resetSelection()

	return nil
}

// SwapRows exchanges rows i and k in place (wraparound applies to both).
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) SwapRows(i, k int) error {
	if err := ValidateInitialized(m); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	a, ok := wrapIndex(i, m.r)
	if !ok {
		return fmt.Errorf("%s: row %d of %d: %w", opSwapRows, i, m.r, ErrOutOfRange)
	}
	b, ok := wrapIndex(k, m.r)
	if !ok {
		return fmt.Errorf("%s: row %d of %d: %w", opSwapRows, k, m.r, ErrOutOfRange)
	}
	if a == b {
		return nil
	}
	for j := 0; j < m.c; j++ {
		m.data[a*m.c+j], m.data[b*m.c+j] = m.data[b*m.c+j], m.data[a*m.c+j]
	}
	m.resetSelection()

	return nil
}

// SwapColumns exchanges columns j and k in place (wraparound applies).
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(r).
func (m *Dense) SwapColumns(j, k int) error {
	if err := ValidateInitialized(m); err != nil {
		return matrixErrorf(opSwapCols, err)
	}
	a, ok := wrapIndex(j, m.c)
	if !ok {
		return fmt.Errorf("%s: column %d of %d: %w", opSwapCols, j, m.c, ErrOutOfRange)
	}
	b, ok := wrapIndex(k, m.c)
	if !ok {
		return fmt.Errorf("%s: column %d of %d: %w", opSwapCols, k, m.c, ErrOutOfRange)
	}
	if a == b {
		return nil
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+a], m.data[i*m.c+b] = m.data[i*m.c+b], m.data[i*m.c+a]
	}

	return nil
}

// Minor returns a fresh (rows-1)×(cols-1) matrix with the given row and
// column removed (wraparound applies). Requires at least 2 rows and
// 2 columns so the result is a legal matrix.
// Errors: ErrNilMatrix, ErrInvalidDimensions (result would be empty),
// ErrOutOfRange.
// Complexity: O(r*c).
func (m *Dense) Minor(row, col int) (*Dense, error) {
	if err := ValidateInitialized(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.r < 2 || m.c < 2 {
		return nil, fmt.Errorf("%s: matrix is %dx%d: %w", opMinor, m.r, m.c, ErrInvalidDimensions)
	}
	r, ok := wrapIndex(row, m.r)
	if !ok {
		return nil, fmt.Errorf("%s: row %d of %d: %w", opMinor, row, m.r, ErrOutOfRange)
	}
	c, ok := wrapIndex(col, m.c)
	if !ok {
		return nil, fmt.Errorf("%s: column %d of %d: %w", opMinor, col, m.c, ErrOutOfRange)
	}

	res, err := NewDense(m.r-1, m.c-1)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	di := 0
	for i := 0; i < m.r; i++ {
		if i == r {
			continue
		}
		dj := 0
		for j := 0; j < m.c; j++ {
			if j == c {
				continue
			}
			res.data[di*res.c+dj] = m.data[i*m.c+j]
			dj++
		}
		di++
	}

	return res, nil
}

// Sort sorts each row of the matrix in ascending order, in place.
// Errors: ErrNilMatrix.
// Complexity: O(r * c log c).
func (m *Dense) Sort() error {
	if err := ValidateInitialized(m); err != nil {
		return matrixErrorf(opSort, err)
	}
	for i := 0; i < m.r; i++ {
		sort.Float64s(m.data[i*m.c : (i+1)*m.c])
	}

	return nil
}
