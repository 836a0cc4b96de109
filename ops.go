// SPDX-License-Identifier: MIT
// Package matrix — arithmetic kernels & facades on *Dense.
//
// Purpose:
//   - Provide Add/Sub/Mul/Scale/Transpose/Trace with strict fail-fast
//     validation and clear errors on dimension mismatches.
//   - Package-level functions allocate a fresh result and never mutate
//     their operands; the method forms replace the receiver's storage with
//     the computed result (all-or-nothing: validation precedes mutation).
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 for elementwise; i→k→j for Mul).
//   - Operations work directly on the flat row-major buffers; no hidden
//     allocations beyond the single result buffer.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opTrace     = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil to avoid wrapping a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and the
// flat-loop kernel. Inputs must be initialized and have identical shapes;
// a fresh Dense is allocated and operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate Dense(rows, cols).
//   - Stage 2: single flat loop 0..n-1 over the row-major buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (both from validation; the
//     mismatch message carries both shapes).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B and returns a fresh result.
// Errors: ErrNilMatrix (null operand), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the elementwise difference C = A - B and returns a fresh result.
// Errors: ErrNilMatrix (null operand), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: validate both operands initialized and A.Cols == B.Rows.
//   - Stage 2: naïve triple loop in i→k→j order with row-major strides,
//     skipping zero A[i,k] to avoid useless multiplies.
//
// Errors:
//   - ErrNilMatrix (null operand), ErrDimensionMismatch (inner mismatch;
//     message reports both shapes, e.g. "A = 2x3, B = 4x2").
//
// Determinism:
//   - Fixed i→k→j loop order; stable accumulation.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateInitialized(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateInitialized(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Scale returns a fresh matrix whose elements are alpha * m[i,j].
// Always succeeds on an initialized operand; the original is not mutated.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateInitialized(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range res.data {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// Transpose returns a fresh matrix with rows and columns swapped (mᵀ):
// the result is cols×rows with T[j][i] = M[i][j]. Transpose is its own
// inverse. The input is never mutated.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateInitialized(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res, err := NewDense(m.c, m.r) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			// data[i*cols + j] → res.data[j*rows + i]
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Trace returns the sum of the main-diagonal entries Σ M[i][i].
// Errors: ErrNilMatrix (null), ErrNonSquare (non-square operand).
// Complexity: O(n).
func Trace(m *Dense) (float64, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum float64
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// ---------- instance-mutating forms ----------
//
// Each method validates first, computes the full result, and only then
// swaps the receiver's storage, so a failed call leaves the receiver
// untouched. Replacing the storage also disarms any active row selection,
// since the selected row no longer refers to the old contents.

// adopt replaces the receiver's shape and storage with src's and disarms
// the selection cursor. src must be freshly allocated by the caller.
func (m *Dense) adopt(src *Dense) {
	m.r, m.c = src.r, src.c
	m.data = src.data
	m.resetSelection()
}

// Add replaces the receiver with the elementwise sum m + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense) Add(b *Dense) error {
	res, err := Add(m, b)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// Sub replaces the receiver with the elementwise difference m - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense) Sub(b *Dense) error {
	res, err := Sub(m, b)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// Mul replaces the receiver with the matrix product m × b; the receiver
// takes the result shape rows(m)×cols(b).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*n*c).
func (m *Dense) Mul(b *Dense) error {
	res, err := Mul(m, b)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// Scale multiplies every cell of the receiver by alpha in place.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) error {
	if err := ValidateInitialized(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	for idx := range m.data {
		m.data[idx] *= alpha
	}

	return nil
}

// Transpose replaces the receiver with its transpose; for a non-square
// matrix the receiver's dimensions are swapped.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func (m *Dense) Transpose() error {
	res, err := Transpose(m)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// Trace returns the sum of the receiver's main-diagonal entries.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n).
func (m *Dense) Trace() (float64, error) { return Trace(m) }
