// SPDX-License-Identifier: MIT
// Package matrix: single, canonical source of truth for common validation
// checks. Kernels and facades delegate null/shape/square checks here and
// wrap the returned sentinel with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate only when they fail
//     (the failure message carries the observed shapes for diagnostics).

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// dimensionErrorf builds a wrapped ErrDimensionMismatch carrying both
// operand shapes, e.g. "Mul: A = 2x3, B = 4x2: matrix: dimension mismatch".
func dimensionErrorf(tag string, ar, ac, br, bc int) error {
	return fmt.Errorf("%s: A = %dx%d, B = %dx%d: %w", tag, ar, ac, br, bc, ErrDimensionMismatch)
}

// nonSquareErrorf builds a wrapped ErrNonSquare carrying the observed shape.
func nonSquareErrorf(rows, cols int) error {
	return fmt.Errorf("matrix is %dx%d: %w", rows, cols, ErrNonSquare)
}

// ValidateInitialized ensures the matrix is non-nil and has backing storage.
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func ValidateInitialized(m *Dense) error {
	if m.IsNull() {
		return validatorErrorf("ValidateInitialized", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes both are initialized (caller must ensure). The failure message
// reports both shapes, e.g. "A = 2x3, B = 4x2", to aid debugging.
// Returns nil or wrapped ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("ValidateSameShape: A = %dx%d, B = %dx%d: %w",
			a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is initialized. Returns wrapped ErrNonSquare with the observed
// shape on violation. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return fmt.Errorf("ValidateSquare: matrix is %dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for matrix multiplication.
// Assumes both are initialized. The failure message reports both shapes.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if a.c != b.r {
		return fmt.Errorf("ValidateMulCompatible: A = %dx%d, B = %dx%d: %w",
			a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape — composite: Initialized(a) → Initialized(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateInitialized(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateInitialized(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareInitialized — composite: Initialized → Square.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquareInitialized(m *Dense) error {
	if err := ValidateInitialized(m); err != nil {
		return validatorErrorf("ValidateSquareInitialized", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareInitialized", err)
	}

	return nil
}

// ValidateVecLen ensures the values list has exactly the expected length n.
// Used by Change, row/column editing, and the Builder; the failure message
// reports both the observed and expected counts.
// Errors: wrapped ErrDimensionMismatch. Complexity: O(1).
func ValidateVecLen(values []float64, n int) error {
	if len(values) != n {
		return fmt.Errorf("ValidateVecLen: got %d values, want %d: %w",
			len(values), n, ErrDimensionMismatch)
	}

	return nil
}

// validateData checks a raw [][]float64 for presence and rectangularity.
// Returns the shape on success. Internal; raw-array kernels delegate here.
// Errors: ErrNilMatrix (nil/empty), ErrDimensionMismatch (empty or jagged rows).
// Complexity: O(r).
func validateData(data [][]float64) (rows, cols int, err error) {
	if len(data) == 0 {
		return 0, 0, validatorErrorf("validateData", ErrNilMatrix)
	}
	rows, cols = len(data), len(data[0])
	if cols == 0 {
		return 0, 0, validatorErrorf("validateData", ErrDimensionMismatch)
	}
	for i := 1; i < rows; i++ {
		if len(data[i]) != cols {
			return 0, 0, fmt.Errorf("validateData: row %d has %d columns, want %d: %w",
				i, len(data[i]), cols, ErrDimensionMismatch)
		}
	}

	return rows, cols, nil
}
