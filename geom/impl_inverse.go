// SPDX-License-Identifier: MIT
// Package geom: transpose and inversion kernels for Matrix3.
//
// Purpose:
//   - Keep the only algorithmically nontrivial routines (determinant,
//     adjugate inversion) in one file with a fixed evaluation order.
//   - Guarantee aliasing safety: both kernels stage every source
//     component before the first destination write, so src == receiver
//     is fully supported.

package geom

import "math"

// TransposeMatrix sets this matrix to the transpose of the specified
// matrix (rows become columns).
//
// Implementation:
//   - Stage 1: Validate src is non-nil; the receiver is untouched on failure.
//   - Stage 2: Stage all nine source components through a local copy,
//     then write the transposed layout.
//
// Behavior highlights:
//   - Aliasing-safe: m.TransposeMatrix(m) is correct. A sequential
//     field-by-field copy would corrupt the off-diagonal slots when
//     src and receiver are the same instance; the staged copy makes
//     the transpose a true involution regardless of aliasing.
//
// Inputs:
//   - src: matrix whose transpose is computed (non-nil).
//
// Returns:
//   - *Matrix3: the receiver, set to srcᵀ, for chaining.
//   - error   : ErrNilMatrix when src is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix3) TransposeMatrix(src *Matrix3) (*Matrix3, error) {
	// Validate the source before any write
	if src == nil {
		return nil, geomErrorf(opTransposeMatrix, keyMissingMatrix, ErrNilMatrix)
	}

	// Stage the source components; correct even when src == m
	ms := src.M

	m.M[0] = ms[0]
	m.M[1] = ms[3]
	m.M[2] = ms[6]

	m.M[3] = ms[1]
	m.M[4] = ms[4]
	m.M[5] = ms[7]

	m.M[6] = ms[2]
	m.M[7] = ms[5]
	m.M[8] = ms[8]

	return m, nil
}

// Determinant returns the determinant of this matrix, computed by
// cofactor expansion along the first row. Fixed evaluation order keeps
// the result bit-stable across calls.
// Complexity: O(1).
func (m *Matrix3) Determinant() float64 {
	return m.M[0]*(m.M[4]*m.M[8]-m.M[5]*m.M[7]) -
		m.M[1]*(m.M[3]*m.M[8]-m.M[5]*m.M[6]) +
		m.M[2]*(m.M[3]*m.M[7]-m.M[4]*m.M[6])
}

// InvertMatrix sets this matrix to the inverse of the specified matrix.
//
// Implementation:
//   - Stage 1: Validate src is non-nil; the receiver is untouched on failure.
//   - Stage 2: Compute the determinant by cofactor expansion and the
//     magnitude s = max|component|. Reject as singular when s == 0 or
//     |det| < SingularEps·s³ (relative test; the determinant scales with
//     the cube of the matrix magnitude).
//   - Stage 3: Write the adjugate (transposed cofactor matrix) scaled by
//     1/det into the receiver.
//
// Behavior highlights:
//   - Closed-form adjugate: exact operation count, no pivoting decisions,
//     fully deterministic.
//   - Aliasing-safe: all cofactors are computed from a staged copy of
//     src before the first write, so m.InvertMatrix(m) is correct.
//   - Validation and the singularity test both precede any write; a
//     failed call leaves the receiver bit-identical.
//
// Inputs:
//   - src: matrix whose inverse is computed (non-nil).
//
// Returns:
//   - *Matrix3: the receiver, set to src⁻¹, for chaining.
//   - error   : ErrNilMatrix when src is nil;
//     ErrSingularMatrix when src has no usable inverse.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The relative threshold makes the test scale-invariant: uniformly
//     scaling a matrix by k scales its determinant by k³, so an
//     absolute epsilon would misclassify well-conditioned large or
//     small matrices.
func (m *Matrix3) InvertMatrix(src *Matrix3) (*Matrix3, error) {
	// Validate the source before any write
	if src == nil {
		return nil, geomErrorf(opInvertMatrix, keyMissingMatrix, ErrNilMatrix)
	}

	// Stage the source components; correct even when src == m
	ms := src.M

	// Cofactors of the first row, reused by the determinant
	c0 := ms[4]*ms[8] - ms[5]*ms[7]
	c1 := ms[5]*ms[6] - ms[3]*ms[8]
	c2 := ms[3]*ms[7] - ms[4]*ms[6]

	det := ms[0]*c0 + ms[1]*c1 + ms[2]*c2

	// Magnitude of the source: the largest absolute component
	var s float64
	for _, v := range ms {
		if a := math.Abs(v); a > s {
			s = a
		}
	}

	// Relative singularity test; s == 0 means the all-zero matrix
	if s == 0 || math.Abs(det) < SingularEps*s*s*s {
		return nil, geomErrorf(opInvertMatrix, keySingularMatrix, ErrSingularMatrix)
	}

	inv := 1 / det

	// Adjugate (transposed cofactor matrix) scaled by 1/det
	m.M[0] = c0 * inv
	m.M[1] = (ms[2]*ms[7] - ms[1]*ms[8]) * inv
	m.M[2] = (ms[1]*ms[5] - ms[2]*ms[4]) * inv

	m.M[3] = c1 * inv
	m.M[4] = (ms[0]*ms[8] - ms[2]*ms[6]) * inv
	m.M[5] = (ms[2]*ms[3] - ms[0]*ms[5]) * inv

	m.M[6] = c2 * inv
	m.M[7] = (ms[1]*ms[6] - ms[0]*ms[7]) * inv
	m.M[8] = (ms[0]*ms[4] - ms[1]*ms[3]) * inv

	return m, nil
}
