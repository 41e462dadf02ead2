// Package geom: core Matrix3 type and the numeric constants shared by
// its kernels. Components are stored in a flat row-major array: the
// element at row r, column c lives at index 3r+c.
package geom

import "math"

// SingularEps is the relative determinant threshold used by InvertMatrix.
// A source matrix with |det| < SingularEps·s³, where s is the largest
// absolute component, is reported as ErrSingularMatrix. The cube keeps
// the test scale-invariant: the determinant of a 3×3 matrix grows with
// the third power of its magnitude.
const SingularEps = 1e-12

// degToRad converts the degree-based public API to the radians required
// by math.Sin and math.Cos. Positive angles rotate counter-clockwise.
const degToRad = math.Pi / 180

// identity holds the components of the 3×3 identity matrix, row-major.
var identity = [9]float64{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Matrix3 is a 3×3 matrix in row-major order, used throughout the
// rendering pipeline to represent 2D affine transforms in homogeneous
// coordinates:
//
//	[ M[0] M[1] M[2] ]   [ a  b  tx ]
//	[ M[3] M[4] M[5] ] = [ c  d  ty ]
//	[ M[6] M[7] M[8] ]   [ 0  0  1  ]
//
// Indices {0,1,3,4} form the linear (rotation/scale) part, {2,5} the
// translation part, and {6,7,8} the homogeneous row, conventionally
// (0,0,1) for a valid affine transform. The convention is never
// enforced: components pass through unchecked (no NaN/Inf validation).
type Matrix3 struct {
	// M holds the matrix components in row-major order. The field is
	// exported deliberately: hot-path callers may read and write
	// components directly instead of going through the setter surface.
	// The zero value of M is the all-zero matrix, not the identity;
	// use NewMatrix3 or SetToIdentity when an identity start is needed.
	M [9]float64
}

// NewMatrix3 constructs a 3×3 identity matrix.
// Complexity: O(1), single allocation.
func NewMatrix3() *Matrix3 {
	return &Matrix3{M: identity}
}

// NewMatrix3With constructs a 3×3 matrix from nine explicit components,
// given row by row (m11 is row 1 column 1, m23 is row 2 column 3, …).
// Complexity: O(1), single allocation.
func NewMatrix3With(
	m11, m12, m13,
	m21, m22, m23,
	m31, m32, m33 float64,
) *Matrix3 {
	return &Matrix3{M: [9]float64{
		m11, m12, m13,
		m21, m22, m23,
		m31, m32, m33,
	}}
}
