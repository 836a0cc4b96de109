package matrix_test

import (
	"math"
	"testing"

	matrix "github.com/mitsuki31/jmatrix-sub000"
	"github.com/stretchr/testify/require"
)

func TestEquals_ValueSemantics(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	c := mustDense(t, [][]float64{{1, 2}, {3, 5}})

	require.True(t, a.Equals(a)) // same instance
	require.True(t, a.Equals(b)) // same values
	require.False(t, a.Equals(c))

	// Shape mismatch is never equal, even with a common prefix of values.
	d := mustDense(t, [][]float64{{1, 2, 0}, {3, 4, 0}})
	require.False(t, a.Equals(d))
}

func TestEquals_IsExactNotThresholdBased(t *testing.T) {
	// A sub-threshold difference makes matrices unequal: equality is exact,
	// unlike the classifiers, which tolerate round-off.
	a := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	b := mustDense(t, [][]float64{{1, 1e-9}, {0, 1}})
	require.False(t, a.Equals(b))

	okA, err := a.IsIdentity()
	require.NoError(t, err)
	okB, err := b.IsIdentity()
	require.NoError(t, err)
	require.True(t, okA)
	require.True(t, okB)
}

func TestEquals_NullMatrices(t *testing.T) {
	var a, b matrix.Dense
	require.True(t, a.Equals(&b))

	c := mustDense(t, [][]float64{{1}})
	require.False(t, a.Equals(c))
	require.False(t, c.Equals(&a))
}

func TestShapeEquals(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{9, 9}, {9, 9}})
	require.True(t, matrix.ShapeEquals(a, b))

	c := mustDense(t, [][]float64{{1, 2, 3}})
	require.False(t, matrix.ShapeEquals(a, c))

	// Two null matrices have equal *values* but no shape: ShapeEquals is
	// false while Equals is true. This asymmetry is intentional.
	var n1, n2 matrix.Dense
	require.False(t, matrix.ShapeEquals(&n1, &n2))
	require.True(t, n1.Equals(&n2))
	require.False(t, matrix.ShapeEquals(&n1, a))
}

func TestHash_ConsistentWithEquals(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, a.Hash(), b.Hash())

	// Equal after mutation back to the same value.
	require.NoError(t, b.Scale(2))
	require.NoError(t, b.Scale(0.5))
	if b.Equals(a) {
		require.Equal(t, a.Hash(), b.Hash())
	}

	// Null matrices are equal, so they must hash identically.
	var n1, n2 matrix.Dense
	require.Equal(t, n1.Hash(), n2.Hash())
}

func TestHash_NormalizesNegativeZero(t *testing.T) {
	a := mustDense(t, [][]float64{{0}})
	neg := math.Copysign(0, -1)
	b := mustDense(t, [][]float64{{neg}})

	// 0.0 == -0.0, so the matrices are equal and must hash identically.
	require.True(t, a.Equals(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestHash_DiffersForDifferentValues(t *testing.T) {
	// Not required by the contract, but FNV over contents should separate
	// these; same shape, different values.
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{4, 3}, {2, 1}})
	require.NotEqual(t, a.Hash(), b.Hash())
}
