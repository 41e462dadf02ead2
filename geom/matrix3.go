// Package geom: Matrix3 assignment surface — whole-matrix set, partial
// setters (which touch only their named slots), and canonical-transform
// factories (which overwrite all nine slots).
package geom

import "math"

// Set overwrites all nine components with the specified values, given
// row by row, and returns the receiver for chaining.
// Complexity: O(1).
func (m *Matrix3) Set(
	m11, m12, m13,
	m21, m22, m23,
	m31, m32, m33 float64,
) *Matrix3 {
	m.M[0] = m11
	m.M[1] = m12
	m.M[2] = m13

	m.M[3] = m21
	m.M[4] = m22
	m.M[5] = m23

	m.M[6] = m31
	m.M[7] = m32
	m.M[8] = m33

	return m
}

// SetMatrix copies all nine components from other into the receiver.
// Stage 1 (Validate): other must be non-nil; on failure the receiver is untouched.
// Stage 2 (Execute): copy the component array.
// Returns the receiver, or ErrNilMatrix.
// Complexity: O(1).
func (m *Matrix3) SetMatrix(other *Matrix3) (*Matrix3, error) {
	// Validate argument presence before any write
	if other == nil {
		return nil, geomErrorf(opSetMatrix, keyMissingMatrix, ErrNilMatrix)
	}

	// Copy the flat component array
	m.M = other.M

	return m, nil
}

// SetTranslation sets the translation components (indices 2 and 5) to
// the specified values; the other seven components are left untouched.
// Returns the receiver for chaining.
func (m *Matrix3) SetTranslation(x, y float64) *Matrix3 {
	m.M[2] = x
	m.M[5] = y

	return m
}

// SetRotation sets the rotation components (indices 0, 1, 3, 4) for the
// specified angle in degrees; the other five components are left
// untouched. Positive angles rotate counter-clockwise.
func (m *Matrix3) SetRotation(angleDegrees float64) *Matrix3 {
	c := math.Cos(angleDegrees * degToRad)
	s := math.Sin(angleDegrees * degToRad)

	m.M[0] = c
	m.M[1] = -s

	m.M[3] = s
	m.M[4] = c

	return m
}

// SetScale sets the scale components (indices 0 and 4) to the specified
// values; the other seven components are left untouched.
func (m *Matrix3) SetScale(xScale, yScale float64) *Matrix3 {
	m.M[0] = xScale
	m.M[4] = yScale

	return m
}

// SetToIdentity sets this matrix to the 3×3 identity matrix, discarding
// all prior content.
func (m *Matrix3) SetToIdentity() *Matrix3 {
	m.M = identity

	return m
}

// SetToTranslation sets this matrix to a translation matrix with the
// specified components, discarding all prior content:
//
//	[ 1 0 x ]
//	[ 0 1 y ]
//	[ 0 0 1 ]
func (m *Matrix3) SetToTranslation(x, y float64) *Matrix3 {
	m.M[0] = 1
	m.M[1] = 0
	m.M[2] = x

	m.M[3] = 0
	m.M[4] = 1
	m.M[5] = y

	m.M[6] = 0
	m.M[7] = 0
	m.M[8] = 1

	return m
}

// SetToRotation sets this matrix to a rotation matrix for the specified
// angle in degrees, discarding all prior content. Positive angles
// rotate counter-clockwise.
func (m *Matrix3) SetToRotation(angleDegrees float64) *Matrix3 {
	c := math.Cos(angleDegrees * degToRad)
	s := math.Sin(angleDegrees * degToRad)

	m.M[0] = c
	m.M[1] = -s
	m.M[2] = 0

	m.M[3] = s
	m.M[4] = c
	m.M[5] = 0

	m.M[6] = 0
	m.M[7] = 0
	m.M[8] = 1

	return m
}

// SetToScale sets this matrix to a scale matrix with the specified
// components, discarding all prior content.
func (m *Matrix3) SetToScale(xScale, yScale float64) *Matrix3 {
	m.M[0] = xScale
	m.M[1] = 0
	m.M[2] = 0

	m.M[3] = 0
	m.M[4] = yScale
	m.M[5] = 0

	m.M[6] = 0
	m.M[7] = 0
	m.M[8] = 1

	return m
}

// SetToVerticalFlip sets this matrix to one that flips and shifts the
// y-axis, discarding all prior content:
//
//	[ 1  0 0 ]
//	[ 0 -1 1 ]
//	[ 0  0 1 ]
//
// The result maps y=0 to y=1 and y=1 to y=0. It is used to convert a
// top-left-origin image coordinate space into the bottom-left-origin
// space the renderer draws in.
func (m *Matrix3) SetToVerticalFlip() *Matrix3 {
	m.M[0] = 1
	m.M[1] = 0
	m.M[2] = 0

	m.M[3] = 0
	m.M[4] = -1
	m.M[5] = 1

	m.M[6] = 0
	m.M[7] = 0
	m.M[8] = 1

	return m
}
