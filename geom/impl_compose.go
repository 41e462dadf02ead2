// SPDX-License-Identifier: MIT
// Package geom: composition kernels for Matrix3 — full 3×3 products and
// the convenience composers that right-multiply canonical transforms.
//
// Purpose:
//   - Keep all row·column dot-product code in one place with a fixed
//     evaluation order for deterministic floating-point results.
//   - Provide a literal-component overload so the convenience composers
//     never allocate an intermediate matrix.

package geom

import "math"

// SetToMultiply sets this matrix to the product a·b using standard
// row·column dot products over the 3×3 components.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil; the receiver is untouched on failure.
//   - Stage 2: Read operand components through locals, then write all nine products
//     in row-major order. Staging through locals keeps the kernel correct even when
//     the receiver aliases a or b.
//
// Behavior highlights:
//   - Fixed evaluation order (row 1 → row 3, column 1 → column 3).
//   - No allocation; the receiver is the only destination.
//   - Aliasing-safe: m.SetToMultiply(m, b), m.SetToMultiply(a, m) and
//     m.SetToMultiply(m, m) all produce the mathematical product.
//
// Inputs:
//   - a: left multiplicand (non-nil).
//   - b: right multiplicand (non-nil).
//
// Returns:
//   - *Matrix3: the receiver, set to a·b, for chaining.
//   - error   : ErrNilMatrix when either operand is nil.
//
// Complexity:
//   - Time O(1) (27 multiplies, 18 adds), Space O(1).
func (m *Matrix3) SetToMultiply(a, b *Matrix3) (*Matrix3, error) {
	// Validate both operands before any write
	if a == nil || b == nil {
		return nil, geomErrorf(opSetToMultiply, keyMissingMatrix, ErrNilMatrix)
	}

	// Stage operand components so the receiver may alias either operand
	ma := a.M
	mb := b.M

	m.M[0] = ma[0]*mb[0] + ma[1]*mb[3] + ma[2]*mb[6]
	m.M[1] = ma[0]*mb[1] + ma[1]*mb[4] + ma[2]*mb[7]
	m.M[2] = ma[0]*mb[2] + ma[1]*mb[5] + ma[2]*mb[8]

	m.M[3] = ma[3]*mb[0] + ma[4]*mb[3] + ma[5]*mb[6]
	m.M[4] = ma[3]*mb[1] + ma[4]*mb[4] + ma[5]*mb[7]
	m.M[5] = ma[3]*mb[2] + ma[4]*mb[5] + ma[5]*mb[8]

	m.M[6] = ma[6]*mb[0] + ma[7]*mb[3] + ma[8]*mb[6]
	m.M[7] = ma[6]*mb[1] + ma[7]*mb[4] + ma[8]*mb[7]
	m.M[8] = ma[6]*mb[2] + ma[7]*mb[5] + ma[8]*mb[8]

	return m, nil
}

// MultiplyByMatrix right-multiplies this matrix by the specified matrix,
// setting this = this·other. When the result is applied to a column
// vector, other's transform takes effect first, then the pre-existing
// transform of the receiver.
//
// Implementation:
//   - Stage 1: Validate other is non-nil; the receiver is untouched on failure.
//   - Stage 2: Per output row, hold the receiver's row in three temporaries,
//     then overwrite the row with its dot products against other's columns.
//
// Behavior highlights:
//   - In-place: only three scalar temporaries per row, no matrix copy.
//   - Aliasing-safe for other == m: other's components are read through a
//     staged copy of its array.
//
// Inputs:
//   - other: right multiplicand (non-nil).
//
// Returns:
//   - *Matrix3: the receiver, set to this·other, for chaining.
//   - error   : ErrNilMatrix when other is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix3) MultiplyByMatrix(other *Matrix3) (*Matrix3, error) {
	// Validate the operand before any write
	if other == nil {
		return nil, geomErrorf(opMultiplyByMatrix, keyMissingMatrix, ErrNilMatrix)
	}

	// Stage other's components; correct even when other == m
	mb := other.M

	var r1, r2, r3 float64 // receiver-row temporaries

	r1, r2, r3 = m.M[0], m.M[1], m.M[2]
	m.M[0] = r1*mb[0] + r2*mb[3] + r3*mb[6]
	m.M[1] = r1*mb[1] + r2*mb[4] + r3*mb[7]
	m.M[2] = r1*mb[2] + r2*mb[5] + r3*mb[8]

	r1, r2, r3 = m.M[3], m.M[4], m.M[5]
	m.M[3] = r1*mb[0] + r2*mb[3] + r3*mb[6]
	m.M[4] = r1*mb[1] + r2*mb[4] + r3*mb[7]
	m.M[5] = r1*mb[2] + r2*mb[5] + r3*mb[8]

	r1, r2, r3 = m.M[6], m.M[7], m.M[8]
	m.M[6] = r1*mb[0] + r2*mb[3] + r3*mb[6]
	m.M[7] = r1*mb[1] + r2*mb[4] + r3*mb[7]
	m.M[8] = r1*mb[2] + r2*mb[5] + r3*mb[8]

	return m, nil
}

// MultiplyByComponents right-multiplies this matrix by a matrix given as
// nine literal components, row by row: this = this·[m11..m33]. The
// overload exists so the convenience composers below avoid constructing
// an intermediate Matrix3.
// Complexity: O(1), no allocation.
func (m *Matrix3) MultiplyByComponents(
	m11, m12, m13,
	m21, m22, m23,
	m31, m32, m33 float64,
) *Matrix3 {
	var r1, r2, r3 float64 // receiver-row temporaries

	r1, r2, r3 = m.M[0], m.M[1], m.M[2]
	m.M[0] = r1*m11 + r2*m21 + r3*m31
	m.M[1] = r1*m12 + r2*m22 + r3*m32
	m.M[2] = r1*m13 + r2*m23 + r3*m33

	r1, r2, r3 = m.M[3], m.M[4], m.M[5]
	m.M[3] = r1*m11 + r2*m21 + r3*m31
	m.M[4] = r1*m12 + r2*m22 + r3*m32
	m.M[5] = r1*m13 + r2*m23 + r3*m33

	r1, r2, r3 = m.M[6], m.M[7], m.M[8]
	m.M[6] = r1*m11 + r2*m21 + r3*m31
	m.M[7] = r1*m12 + r2*m22 + r3*m32
	m.M[8] = r1*m13 + r2*m23 + r3*m33

	return m
}

// MultiplyByTranslation right-multiplies this matrix by a translation
// matrix with the specified components: the translation is applied
// before the receiver's pre-existing transform.
func (m *Matrix3) MultiplyByTranslation(x, y float64) *Matrix3 {
	return m.MultiplyByComponents(
		1, 0, x,
		0, 1, y,
		0, 0, 1)
}

// MultiplyByRotation right-multiplies this matrix by a rotation matrix
// for the specified angle in degrees. Positive angles rotate
// counter-clockwise.
func (m *Matrix3) MultiplyByRotation(angleDegrees float64) *Matrix3 {
	c := math.Cos(angleDegrees * degToRad)
	s := math.Sin(angleDegrees * degToRad)

	return m.MultiplyByComponents(
		c, -s, 0,
		s, c, 0,
		0, 0, 1)
}

// MultiplyByScale right-multiplies this matrix by a scale matrix with
// the specified components.
func (m *Matrix3) MultiplyByScale(xScale, yScale float64) *Matrix3 {
	return m.MultiplyByComponents(
		xScale, 0, 0,
		0, yScale, 0,
		0, 0, 1)
}

// MultiplyByVerticalFlip right-multiplies this matrix by the vertical
// flip matrix (maps y=0 to y=1 and y=1 to y=0), converting a
// top-left-origin image space into the renderer's bottom-left-origin
// space before the receiver's pre-existing transform applies.
func (m *Matrix3) MultiplyByVerticalFlip() *Matrix3 {
	return m.MultiplyByComponents(
		1, 0, 0,
		0, -1, 1,
		0, 0, 1)
}
