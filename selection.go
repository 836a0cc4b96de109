// SPDX-License-Identifier: MIT
// Package matrix — two-phase row-mutation protocol (Select then Change).
//
// State machine: Unselected → (Select) → Selected → (Change/ChangeAll) →
// Unselected. Change without a prior Select is an error, not a no-op.
// The cursor is per-instance; it is disarmed by any operation that
// replaces or reshapes the storage, and is never carried by DeepCopy.

package matrix

import "fmt"

const (
	opSelect = "Select"
	opChange = "Change"
)

// Select arms the row-mutation cursor on the given row and returns the
// receiver to allow chaining with Change:
//
//	if _, err := m.Select(1); err != nil { ... }
//	if err := m.Change(4, 5, 6); err != nil { ... }
//
// The index is strict (no negative wraparound): 0 <= index < Rows.
// Errors: ErrNilMatrix (null matrix), ErrOutOfRange (index out of bounds).
// Complexity: O(1).
func (m *Dense) Select(index int) (*Dense, error) {
	if err := ValidateInitialized(m); err != nil {
		return m, matrixErrorf(opSelect, err)
	}
	if index < 0 || index >= m.r {
		return m, fmt.Errorf("%s: row %d of %d: %w", opSelect, index, m.r, ErrOutOfRange)
	}
	m.selectedRow = index
	m.hasSelection = true

	return m, nil
}

// Change overwrites the selected row with values, then disarms the
// selection. Requires len(values) == Cols and an active selection.
// Validation is all-or-nothing: on any failure the row is untouched and
// the selection state is preserved.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrong values count; the
// message carries both counts), ErrNoSelection (Change before Select;
// matches ErrOutOfRange via errors.Is).
// Complexity: O(c).
func (m *Dense) Change(values ...float64) error {
	if err := ValidateInitialized(m); err != nil {
		return matrixErrorf(opChange, err)
	}
	if err := ValidateVecLen(values, m.c); err != nil {
		return matrixErrorf(opChange, err)
	}
	if !m.hasSelection {
		return matrixErrorf(opChange, ErrNoSelection)
	}
	copy(m.data[m.selectedRow*m.c:(m.selectedRow+1)*m.c], values)
	m.resetSelection()

	return nil
}

// ChangeAll overwrites the selected row with a single repeated value, then
// disarms the selection. Same selection precondition as Change.
// Errors: ErrNilMatrix, ErrNoSelection.
// Complexity: O(c).
func (m *Dense) ChangeAll(value float64) error {
	if err := ValidateInitialized(m); err != nil {
		return matrixErrorf(opChange, err)
	}
	if !m.hasSelection {
		return matrixErrorf(opChange, ErrNoSelection)
	}
	base := m.selectedRow * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] = value
	}
	m.resetSelection()

	return nil
}
