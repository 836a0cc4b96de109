// SPDX-License-Identifier: MIT

// Package matrix — value equality, shape comparison, and structural hash.

package matrix

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Equals reports deep value equality: true iff both are the same instance,
// or both are null, or they have identical shape and every corresponding
// cell is exactly equal. Cell comparison is exact (==), not
// Threshold-based; equality is decided purely by structural comparison and
// never by hash values.
// Complexity: O(r*c) with early exit on the first differing cell.
func (m *Dense) Equals(other *Dense) bool {
	if m == other {
		return true
	}
	if m.IsNull() || other.IsNull() {
		// Two null matrices are equal; a null and an initialized one are not.
		return m.IsNull() && other.IsNull()
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != other.data[idx] {
			return false
		}
	}

	return true
}

// ShapeEquals reports whether a and b are both initialized with identical
// rows and cols. It is false when either operand is null — including when
// both are, which deliberately differs from Equals on two null matrices.
// Complexity: O(1).
func ShapeEquals(a, b *Dense) bool {
	if a.IsNull() || b.IsNull() {
		return false
	}

	return a.r == b.r && a.c == b.c
}

// Hash returns a structural FNV-1a hash consistent with Equals: two equal
// matrices always hash identically (distinct matrices may collide). The
// hash covers the shape and every cell's IEEE-754 bit pattern, with -0.0
// normalized to +0.0 so that exactly-equal cells contribute equal bits.
// A null matrix hashes to a fixed value.
// Complexity: O(r*c).
func (m *Dense) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	if m.IsNull() {
		return h.Sum64() // fixed offset basis for every null matrix
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(m.r))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.c))
	_, _ = h.Write(buf[:])
	for _, v := range m.data {
		if v == 0 {
			v = 0 // normalize -0.0: == treats them equal, bit patterns differ
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}
