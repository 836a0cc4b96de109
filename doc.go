// SPDX-License-Identifier: MIT

// Package matrix implements a dense, real-valued matrix value type with
// construction, elementwise and matrix arithmetic, transposition, trace,
// structural classification, value equality, and a two-phase row-mutation
// protocol (Select then Change).
//
// The package provides:
//
//   - Dense, a row-major float64 matrix whose zero value is the null
//     (uninitialized) matrix, distinct from a zero-filled matrix.
//   - Arithmetic in three calling shapes: package-level functions on
//     *Dense returning fresh results (Add, Sub, Mul, Scale, Transpose),
//     instance-mutating methods replacing the receiver's storage, and raw
//     [][]float64 kernels (AddData, MultiplyData, TransposeData, ...).
//   - Threshold-based structural classifiers (IsDiagonal, IsSparse, ...)
//     and exact value equality (Equals) with a consistent Hash.
//   - A Builder for incremental row-by-row construction, kept separate
//     from the value type so Dense carries no fill cursor.
//
// All user-triggered error conditions are reported through sentinel errors
// (ErrNilMatrix, ErrDimensionMismatch, ...) matched via errors.Is; no
// operation panics on bad input, prints, or keeps error state between
// calls. Every [][]float64 crossing the API boundary is deep-copied, so
// two Dense values never share mutable storage.
//
// Dense is not safe for concurrent mutation; treat values as confined to
// one goroutine or copy before sharing.
package matrix
