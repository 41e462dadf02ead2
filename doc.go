// Package terraglide is the geometry core of a geospatial rendering
// pipeline — compact transform primitives that cameras, screen-space
// projection and image compositing build on.
//
// 🚀 What is terraglide?
//
//	A small, deterministic library that provides:
//		• geom.Matrix3 — mutable 3×3 row-major matrix for 2D affine
//		  transforms (rotation, scale, translation, axis flip)
//		• Fluent composition: chain translate/rotate/scale/flip mutators
//		• Transpose and inversion with explicit singularity detection
//		• logmsg — the message formatter behind every raised error
//
// ✨ Why choose terraglide?
//
//   - Predictable numerics – fixed evaluation order, no hidden state
//   - Rock-solid errors – sentinel errors matched via errors.Is
//   - Pure Go – no cgo, no hidden deps
//   - Renderer-friendly – the component store is directly addressable
//     for hot paths that bypass the setter surface
//
// Under the hood, everything is organized under two subpackages:
//
//	geom/   — Matrix3 value type and its full operation set
//	logmsg/ — severity/type/operation/key error-message formatting
//
// Quick ASCII example:
//
//	[ 1 0 tx ]   a screen-space placement is usually built as
//	[ 0 1 ty ]   translation · rotation · scale, composed by
//	[ 0 0 1  ]   right-multiplying each step into one Matrix3.
//
// Dive into the package docs for the full operation table, aliasing
// guarantees, and the singularity policy used by inversion.
//
//	go get github.com/terraglide/terraglide/geom
package terraglide
