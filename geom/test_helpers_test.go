// Package geom_test: shared helpers for the Matrix3 test suite.
package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/terraglide/terraglide/geom"
)

// approxDelta is the tolerance for trigonometric and inversion results.
const approxDelta = 1e-9

// seqMatrix returns a matrix with the distinct components 1..9, handy
// for detecting any unintended slot write.
func seqMatrix() *geom.Matrix3 {
	return geom.NewMatrix3With(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9)
}

// requireComponentsInDelta asserts each of got's nine components is
// within approxDelta of want, reporting the failing index.
func requireComponentsInDelta(t *testing.T, want [9]float64, got *geom.Matrix3) {
	t.Helper()
	for i := 0; i < 9; i++ {
		require.InDelta(t, want[i], got.M[i], approxDelta, "component %d", i)
	}
}

// requireIdentityInDelta asserts got approximates the identity matrix.
func requireIdentityInDelta(t *testing.T, got *geom.Matrix3) {
	t.Helper()
	requireComponentsInDelta(t, [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1}, got)
}
