// Package geom: value-semantics helpers for Matrix3 — clone, equality,
// hashing, formatting, and point application.
package geom

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strconv"
	"strings"
)

// Clone returns a deep copy of this matrix. The copy shares no storage
// with the receiver.
// Complexity: O(1), single allocation.
func (m *Matrix3) Clone() *Matrix3 {
	return &Matrix3{M: m.M}
}

// Equal reports whether this matrix and other have exactly equal
// components (bitwise float64 comparison, no epsilon tolerance).
// A nil other is never equal.
func (m *Matrix3) Equal(other *Matrix3) bool {
	if other == nil {
		return false
	}

	return m.M == other.M
}

// Hash returns a hash derived from all nine components, suitable for
// value-keyed caches. Equal matrices hash identically: the hash is
// FNV-1a over the IEEE-754 bit patterns in row-major order.
// Complexity: O(1).
func (m *Matrix3) Hash() uint64 {
	h := fnv.New64a()

	var buf [8]byte
	for _, v := range m.M {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:]) // fnv Write never fails
	}

	return h.Sum64()
}

// String implements fmt.Stringer: the nine components in row-major
// order, comma-separated.
func (m *Matrix3) String() string {
	var sb strings.Builder
	for i, v := range m.M {
		if i > 0 {
			sb.WriteString(", ") // separate values with comma
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}

	return sb.String()
}

// Transform applies this matrix to the 2D point (x, y), treating it as
// the homogeneous column vector (x, y, 1), and returns the transformed
// coordinates. The homogeneous row is assumed to be (0, 0, 1); for
// matrices produced by the setter surface this always holds.
// Complexity: O(1).
func (m *Matrix3) Transform(x, y float64) (float64, float64) {
	return m.M[0]*x + m.M[1]*y + m.M[2],
		m.M[3]*x + m.M[4]*y + m.M[5]
}
