package matrix_test

import (
	"testing"

	matrix "github.com/mitsuki31/jmatrix-sub000"
	"github.com/stretchr/testify/require"
)

func TestSelectChange_ReplacesRow(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	sel, err := m.Select(1)
	require.NoError(t, err)
	require.Same(t, m, sel) // Select returns the receiver for chaining

	require.NoError(t, m.Change(7, 8, 9))
	require.Equal(t, [][]float64{{1, 2, 3}, {7, 8, 9}}, m.Entries())
}

func TestChangeAll_FillsSelectedRow(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := m.Select(0)
	require.NoError(t, err)
	require.NoError(t, m.ChangeAll(0.5))
	require.Equal(t, [][]float64{{0.5, 0.5, 0.5}, {4, 5, 6}}, m.Entries())
}

func TestChange_WithoutSelectFails(t *testing.T) {
	// Change before any Select on a fresh matrix is an error, not a no-op.
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	err := m.Change(9, 9)
	require.ErrorIs(t, err, matrix.ErrNoSelection)
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // same error kind as bad indices
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Entries())

	require.ErrorIs(t, m.ChangeAll(9), matrix.ErrNoSelection)
}

func TestChange_DisarmsSelection(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.Select(0)
	require.NoError(t, err)
	require.NoError(t, m.Change(5, 6))

	// The state machine is back to Unselected: a second Change must fail.
	require.ErrorIs(t, m.Change(7, 8), matrix.ErrNoSelection)
}

func TestChange_WrongValueCountKeepsSelection(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.Select(1)
	require.NoError(t, err)

	err = m.Change(1, 2, 3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorContains(t, err, "got 3 values, want 2")
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Entries())

	// The failed Change did not consume the selection.
	require.NoError(t, m.Change(9, 9))
	require.Equal(t, [][]float64{{1, 2}, {9, 9}}, m.Entries())
}

func TestSelect_Validation(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.Select(-1) // Select is strict: no negative wraparound
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Select(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var null matrix.Dense
	_, err = null.Select(0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSelection_IsPerInstance(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{5, 6}, {7, 8}})

	_, err := a.Select(0)
	require.NoError(t, err)

	// b has no selection of its own.
	require.ErrorIs(t, b.Change(9, 9), matrix.ErrNoSelection)
	// a's selection still works.
	require.NoError(t, a.Change(9, 9))
}

func TestSelection_NotCarriedByDeepCopy(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	_, err := m.Select(0)
	require.NoError(t, err)

	cp := m.DeepCopy()
	require.ErrorIs(t, cp.Change(9, 9), matrix.ErrNoSelection)
}

func TestSelection_DisarmedByStorageReplacement(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	other := mustDense(t, [][]float64{{1, 1}, {1, 1}})

	_, err := m.Select(1)
	require.NoError(t, err)

	// Replacing the storage (instance arithmetic) invalidates the cursor.
	require.NoError(t, m.Add(other))
	require.ErrorIs(t, m.Change(0, 0), matrix.ErrNoSelection)
}
