// Package geom provides the transform primitives of the terraglide
// rendering pipeline.
//
// The geom package provides:
//
//   - Matrix3, a mutable 3×3 row-major matrix representing 2D affine
//     transforms (rotation, scale, translation, vertical flip) as
//     homogeneous coordinates.
//   - Fluent mutators: every mutation writes in place and returns the
//     receiver, so transforms compose as method chains.
//   - Transpose and inversion kernels that are safe under self-aliasing,
//     with explicit singularity detection via ErrSingularMatrix.
//
// Matrix3 is a pure value type: equality, hashing and formatting operate
// on the nine components only, and the component store M is exported so
// performance-sensitive callers (the renderer hot path) can read and
// write components directly, bypassing the setter surface.
//
// Instances carry no internal synchronization; concurrent mutation of a
// single Matrix3 must be prevented by the caller.
//
// See the examples in this package for composition patterns.
package geom
