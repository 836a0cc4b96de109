package matrix_test

import (
	"testing"

	matrix "github.com/mitsuki31/jmatrix-sub000"
	"github.com/stretchr/testify/require"
)

func TestIsSquare(t *testing.T) {
	sq := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	ok, err := sq.IsSquare()
	require.NoError(t, err)
	require.True(t, ok)

	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	ok, err = rect.IsSquare()
	require.NoError(t, err)
	require.False(t, ok)

	var null matrix.Dense
	_, err = null.IsSquare()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestIsDiagonal_WithinThreshold(t *testing.T) {
	// Off-diagonal values below the 1e-6 threshold still count as zero.
	m := mustDense(t, [][]float64{{3, 1e-7}, {-1e-8, 5}})
	ok, err := m.IsDiagonal()
	require.NoError(t, err)
	require.True(t, ok)

	m = mustDense(t, [][]float64{{3, 1e-5}, {0, 5}})
	ok, err = m.IsDiagonal()
	require.NoError(t, err)
	require.False(t, ok)

	rect := mustDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}})
	_, err = rect.IsDiagonal()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestIsTriangular(t *testing.T) {
	lower := mustDense(t, [][]float64{{1, 0, 0}, {2, 3, 0}, {4, 5, 6}})
	ok, err := lower.IsLowerTriangular()
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = lower.IsUpperTriangular()
	require.NoError(t, err)
	require.False(t, ok)

	upper := mustDense(t, [][]float64{{1, 2, 3}, {0, 4, 5}, {0, 0, 6}})
	ok, err = upper.IsUpperTriangular()
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = upper.IsLowerTriangular()
	require.NoError(t, err)
	require.False(t, ok)

	// A diagonal matrix is both.
	diag := mustDense(t, [][]float64{{1, 0}, {0, 2}})
	ok, err = diag.IsLowerTriangular()
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = diag.IsUpperTriangular()
	require.NoError(t, err)
	require.True(t, ok)

	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = rect.IsUpperTriangular()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestIsSparse_CountHeuristic(t *testing.T) {
	// 3x4 with exactly 4 nonzero cells: sparse (4 <= max(3,4)=4).
	m := mustDense(t, [][]float64{
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 3, 4},
	})
	ok, err := m.IsSparse()
	require.NoError(t, err)
	require.True(t, ok)

	// A fifth nonzero cell makes it dense.
	_, err = m.Select(0)
	require.NoError(t, err)
	require.NoError(t, m.Change(1, 5, 0, 0))
	ok, err = m.IsSparse()
	require.NoError(t, err)
	require.False(t, ok)

	// Sub-threshold values do not count as nonzero.
	tiny := mustDense(t, [][]float64{{1e-7, 1e-9}, {0, 1e-8}})
	ok, err = tiny.IsSparse()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIdentityProperties(t *testing.T) {
	id, err := matrix.Identity(5)
	require.NoError(t, err)

	ok, err := id.IsSquare()
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = id.IsDiagonal()
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = id.IsIdentity()
	require.NoError(t, err)
	require.True(t, ok)

	tr, err := id.Trace()
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)
}

func TestIsIdentity_Negative(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 0}, {0, 2}})
	ok, err := m.IsIdentity()
	require.NoError(t, err)
	require.False(t, ok)

	rect := mustDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}})
	_, err = rect.IsIdentity()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
