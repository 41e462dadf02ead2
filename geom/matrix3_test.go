// Package geom_test contains unit tests for Matrix3 construction,
// assignment, partial setters, and canonical-transform factories.
package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/terraglide/terraglide/geom"
)

// TestNewMatrix3Identity ensures default construction yields the identity matrix.
func TestNewMatrix3Identity(t *testing.T) {
	m := geom.NewMatrix3() // default construction
	require.Equal(t, [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1}, m.M) // expect exact identity components
}

// TestNewMatrix3With ensures explicit construction stores components row-major.
func TestNewMatrix3With(t *testing.T) {
	m := geom.NewMatrix3With(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9)
	require.Equal(t, [9]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.M) // row-major order preserved
}

// TestSetOverwritesAll verifies Set replaces all nine components and returns the receiver.
func TestSetOverwritesAll(t *testing.T) {
	m := seqMatrix()
	got := m.Set(
		9, 8, 7,
		6, 5, 4,
		3, 2, 1)
	require.Same(t, m, got)                                      // fluent: returns the receiver
	require.Equal(t, [9]float64{9, 8, 7, 6, 5, 4, 3, 2, 1}, m.M) // all slots overwritten
}

// TestSetMatrixCopies verifies SetMatrix copies all components from the argument.
func TestSetMatrixCopies(t *testing.T) {
	src := seqMatrix()
	dst := geom.NewMatrix3()

	got, err := dst.SetMatrix(src)
	require.NoError(t, err)        // valid argument: no error
	require.Same(t, dst, got)      // fluent: returns the receiver
	require.Equal(t, src.M, dst.M) // components copied exactly

	// the copy is by value: mutating src must not affect dst
	src.M[0] = -100
	require.Equal(t, 1.0, dst.M[0]) // dst keeps the copied value
}

// TestSetMatrixNil ensures a nil argument fails with ErrNilMatrix and
// leaves the receiver bit-identical.
func TestSetMatrixNil(t *testing.T) {
	m := seqMatrix()
	before := m.M // snapshot the component store

	got, err := m.SetMatrix(nil)
	require.ErrorIs(t, err, geom.ErrNilMatrix) // sentinel matched via errors.Is
	require.Nil(t, got)                        // no receiver returned on failure
	require.Equal(t, before, m.M)              // receiver unchanged
}

// TestSetTranslationTouchesOnlyTranslationSlots verifies indices {2,5}
// change and the other seven components stay bit-identical.
func TestSetTranslationTouchesOnlyTranslationSlots(t *testing.T) {
	m := seqMatrix()
	before := m.M // snapshot all components

	got := m.SetTranslation(-11.5, 42.25)
	require.Same(t, m, got) // fluent: returns the receiver

	require.Equal(t, -11.5, m.M[2]) // x translation written
	require.Equal(t, 42.25, m.M[5]) // y translation written
	for _, i := range []int{0, 1, 3, 4, 6, 7, 8} {
		require.Equal(t, before[i], m.M[i], "component %d must be untouched", i)
	}
}

// TestSetRotationTouchesOnlyRotationSlots verifies indices {0,1,3,4}
// receive the rotation block and the other five components stay bit-identical.
func TestSetRotationTouchesOnlyRotationSlots(t *testing.T) {
	m := seqMatrix()
	before := m.M

	m.SetRotation(90)

	require.InDelta(t, 0, m.M[0], approxDelta)  // cos 90° = 0
	require.InDelta(t, -1, m.M[1], approxDelta) // -sin 90° = -1
	require.InDelta(t, 1, m.M[3], approxDelta)  // sin 90° = 1
	require.InDelta(t, 0, m.M[4], approxDelta)  // cos 90° = 0
	for _, i := range []int{2, 5, 6, 7, 8} {
		require.Equal(t, before[i], m.M[i], "component %d must be untouched", i)
	}
}

// TestSetScaleTouchesOnlyScaleSlots verifies indices {0,4} change and
// the other seven components stay bit-identical.
func TestSetScaleTouchesOnlyScaleSlots(t *testing.T) {
	m := seqMatrix()
	before := m.M

	m.SetScale(2.5, -3)

	require.Equal(t, 2.5, m.M[0]) // x scale written
	require.Equal(t, -3.0, m.M[4]) // y scale written
	for _, i := range []int{1, 2, 3, 5, 6, 7, 8} {
		require.Equal(t, before[i], m.M[i], "component %d must be untouched", i)
	}
}

// TestSetToIdentity verifies the factory discards all prior content.
func TestSetToIdentity(t *testing.T) {
	m := seqMatrix()
	m.SetToIdentity()
	require.Equal(t, geom.NewMatrix3().M, m.M) // exact identity
}

// TestSetToTranslation verifies the full translation matrix layout.
func TestSetToTranslation(t *testing.T) {
	m := seqMatrix().SetToTranslation(7, -8)
	require.Equal(t, [9]float64{
		1, 0, 7,
		0, 1, -8,
		0, 0, 1}, m.M) // prior content fully discarded
}

// TestSetToRotation90 checks the canonical 90° rotation components.
func TestSetToRotation90(t *testing.T) {
	m := geom.NewMatrix3().SetToRotation(90)
	requireComponentsInDelta(t, [9]float64{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1}, m)
}

// TestSetToRotationOrientation confirms positive angles rotate
// counter-clockwise: 90° maps the +x axis onto +y.
func TestSetToRotationOrientation(t *testing.T) {
	x, y := geom.NewMatrix3().SetToRotation(90).Transform(1, 0)
	require.InDelta(t, 0, x, approxDelta) // +x axis leaves the x axis
	require.InDelta(t, 1, y, approxDelta) // and lands on +y
}

// TestSetToScale verifies the full scale matrix layout.
func TestSetToScale(t *testing.T) {
	m := seqMatrix().SetToScale(4, 0.5)
	require.Equal(t, [9]float64{
		4, 0, 0,
		0, 0.5, 0,
		0, 0, 1}, m.M)
}

// TestSetToVerticalFlip verifies the flip layout and the y=0↔y=1 mapping.
func TestSetToVerticalFlip(t *testing.T) {
	m := seqMatrix().SetToVerticalFlip()
	require.Equal(t, [9]float64{
		1, 0, 0,
		0, -1, 1,
		0, 0, 1}, m.M)

	_, y0 := m.Transform(0.25, 0) // top edge of an image...
	_, y1 := m.Transform(0.25, 1) // ...and its bottom edge
	require.Equal(t, 1.0, y0)     // y=0 maps to y=1
	require.Equal(t, 0.0, y1)     // y=1 maps to y=0
}

// TestComponentsPassThroughUnchecked confirms no NaN/Inf validation is
// performed anywhere on the assignment surface.
func TestComponentsPassThroughUnchecked(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	m := geom.NewMatrix3().Set(
		nan, inf, 0,
		0, 1, 0,
		0, 0, 1)
	require.True(t, math.IsNaN(m.M[0])) // NaN stored as-is
	require.True(t, math.IsInf(m.M[1], 1))

	// direct store writes are part of the public contract
	m.M[8] = inf
	require.True(t, math.IsInf(m.M[8], 1))
}
