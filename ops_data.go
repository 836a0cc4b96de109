// SPDX-License-Identifier: MIT
// Package matrix — raw [][]float64 kernels.
//
// These mirror the *Dense facades for callers that hold plain 2D slices
// and do not want to construct a Dense first. Validation is identical
// (presence, rectangularity, shape compatibility) and results are always
// freshly allocated rectangular slices; inputs are never mutated or
// aliased into outputs.

package matrix

import "sort"

// AddData computes the elementwise sum of two rectangular 2D slices.
// Errors: ErrNilMatrix (nil/empty input), ErrDimensionMismatch (jagged
// input or shape mismatch; the message reports both shapes).
// Complexity: O(r*c).
func AddData(a, b [][]float64) ([][]float64, error) { return addSubData(a, b, +1, opAdd) }

// SubData computes the elementwise difference of two rectangular 2D slices.
// Errors as AddData. Complexity: O(r*c).
func SubData(a, b [][]float64) ([][]float64, error) { return addSubData(a, b, -1, opSub) }

// addSubData shares validation and the loop kernel between AddData/SubData.
func addSubData(a, b [][]float64, sign float64, opTag string) ([][]float64, error) {
	ar, ac, err := validateData(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	br, bc, err := validateData(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if ar != br || ac != bc {
		return nil, dimensionErrorf(opTag, ar, ac, br, bc)
	}

	out := make([][]float64, ar)
	for i := 0; i < ar; i++ {
		out[i] = make([]float64, ac)
		for j := 0; j < ac; j++ {
			out[i][j] = a[i][j] + sign*b[i][j]
		}
	}

	return out, nil
}

// MultiplyData performs matrix multiplication on two rectangular 2D slices,
// returning a fresh rows(a)×cols(b) result.
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner mismatch; message
// reports both shapes). Complexity: O(r*n*c).
func MultiplyData(a, b [][]float64) ([][]float64, error) {
	ar, ac, err := validateData(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	br, bc, err := validateData(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if ac != br {
		return nil, dimensionErrorf(opMul, ar, ac, br, bc)
	}

	out := make([][]float64, ar)
	var i, j, k int
	var av float64
	for i = 0; i < ar; i++ {
		out[i] = make([]float64, bc)
		for k = 0; k < ac; k++ {
			av = a[i][k]
			if av == 0 {
				continue // skip zero for performance
			}
			for j = 0; j < bc; j++ {
				out[i][j] += av * b[k][j]
			}
		}
	}

	return out, nil
}

// ScaleData multiplies every cell of a rectangular 2D slice by alpha,
// returning a fresh result.
// Errors: ErrNilMatrix, ErrDimensionMismatch (jagged input).
// Complexity: O(r*c).
func ScaleData(a [][]float64, alpha float64) ([][]float64, error) {
	rows, cols, err := validateData(a)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			out[i][j] = a[i][j] * alpha
		}
	}

	return out, nil
}

// TransposeData returns the transpose of a rectangular 2D slice as a fresh
// cols×rows result.
// Errors: ErrNilMatrix, ErrDimensionMismatch (jagged input).
// Complexity: O(r*c).
func TransposeData(a [][]float64) ([][]float64, error) {
	rows, cols, err := validateData(a)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = a[i][j]
		}
	}

	return out, nil
}

// TraceData returns the main-diagonal sum of a square rectangular 2D slice.
// Errors: ErrNilMatrix, ErrDimensionMismatch (jagged), ErrNonSquare.
// Complexity: O(n) after validation.
func TraceData(a [][]float64) (float64, error) {
	rows, cols, err := validateData(a)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	if rows != cols {
		return 0, matrixErrorf(opTrace, nonSquareErrorf(rows, cols))
	}
	var sum float64
	for i := 0; i < rows; i++ {
		sum += a[i][i]
	}

	return sum, nil
}

// SortData sorts each row of a rectangular 2D slice in ascending order,
// returning a fresh result; the input is not mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch (jagged input).
// Complexity: O(r * c log c).
func SortData(a [][]float64) ([][]float64, error) {
	rows, cols, err := validateData(a)
	if err != nil {
		return nil, matrixErrorf(opSort, err)
	}

	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		copy(out[i], a[i])
		sort.Float64s(out[i])
	}

	return out, nil
}
