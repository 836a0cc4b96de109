// SPDX-License-Identifier: MIT
// Package matrix — threshold-based structural classifiers.
//
// Every "is this cell zero" decision here uses the package constant
// Threshold (|x| > Threshold ⇒ treated as nonzero) to absorb floating
// round-off. This is deliberately different from Equals, which compares
// cells exactly; the two notions must not be unified.

package matrix

import "math"

// Classifier operation tags for error wrapping.
const (
	opIsSquare   = "IsSquare"
	opIsDiagonal = "IsDiagonal"
	opIsLowerTri = "IsLowerTriangular"
	opIsUpperTri = "IsUpperTriangular"
	opIsSparse   = "IsSparse"
	opIsIdentity = "IsIdentity"
)

// effectivelyZero reports whether v is treated as zero under Threshold.
func effectivelyZero(v float64) bool { return math.Abs(v) <= Threshold }

// IsSquare reports whether the matrix has as many rows as columns.
// Errors: ErrNilMatrix when the matrix is null.
// Complexity: O(1).
func (m *Dense) IsSquare() (bool, error) {
	if err := ValidateInitialized(m); err != nil {
		return false, matrixErrorf(opIsSquare, err)
	}

	return m.r == m.c, nil
}

// IsDiagonal reports whether every off-diagonal cell is effectively zero
// within Threshold. Requires a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^2).
func (m *Dense) IsDiagonal() (bool, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return false, matrixErrorf(opIsDiagonal, err)
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if i != j && !effectivelyZero(m.data[base+j]) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsLowerTriangular reports whether every cell strictly above the main
// diagonal is effectively zero within Threshold. Requires a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^2), scanning only the strict upper triangle.
func (m *Dense) IsLowerTriangular() (bool, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return false, matrixErrorf(opIsLowerTri, err)
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := i + 1; j < m.c; j++ { // strict upper triangle
			if !effectivelyZero(m.data[base+j]) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsUpperTriangular reports whether every cell strictly below the main
// diagonal is effectively zero within Threshold. Requires a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^2), scanning only the strict lower triangle.
func (m *Dense) IsUpperTriangular() (bool, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return false, matrixErrorf(opIsUpperTri, err)
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < i; j++ { // strict lower triangle
			if !effectivelyZero(m.data[base+j]) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsSparse reports whether the matrix is sparse under the count heuristic:
// the number of cells with |value| > Threshold must not exceed
// max(rows, cols). This is a detection heuristic over dense storage, not a
// storage-format decision, and is intentionally count-based rather than
// percentage-based.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) with early exit once the bound is crossed.
func (m *Dense) IsSparse() (bool, error) {
	if err := ValidateInitialized(m); err != nil {
		return false, matrixErrorf(opIsSparse, err)
	}
	bound := m.r
	if m.c > bound {
		bound = m.c
	}
	nonzero := 0
	for _, v := range m.data {
		if !effectivelyZero(v) {
			nonzero++
			if nonzero > bound {
				return false, nil // early exit: already dense
			}
		}
	}

	return true, nil
}

// IsIdentity reports whether the matrix is the identity within Threshold:
// diagonal cells within Threshold of 1, off-diagonal cells effectively
// zero. Requires a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^2).
func (m *Dense) IsIdentity() (bool, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return false, matrixErrorf(opIsIdentity, err)
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			v := m.data[base+j]
			if i == j {
				if math.Abs(v-1.0) > Threshold {
					return false, nil
				}
			} else if !effectivelyZero(v) {
				return false, nil
			}
		}
	}

	return true, nil
}
