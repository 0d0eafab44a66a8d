// Package approx provides approximate equality for values where exact
// comparison is meaningless because of rounding error.
//
// A type adopts the capability by implementing [ApproxEq] for itself:
//
//	type Image []byte
//
//	func (img Image) Approx(other Image) bool { ... }
//
// Only Approx is required. [Assert] derives the assertion form from it and
// halts with a "<self> != <other>" diagnostic when the values differ. Types
// that need a different diagnostic, such as fixed decimal places, implement
// [Asserter] as well.
//
// # Built-in implementations
//
//   - Float32: |a-b| <= 1e-3
//   - Float64: |a-b| <= 1e-6
//   - Slice[T]: equal length and positionally approx-equal elements
//   - Option[T]: Some/Some delegates to T, None/None holds, mixed presence fails
//   - F32x4, F64x4: lane-wise scalar rule (build tag approxsimd only)
//
// Tolerances are inclusive and fixed per type. NaN is never approximately
// equal to anything, itself included.
//
// # Usage
//
//	approx.Float64(0.1 + 0.2).Approx(0.3)           // true
//	approx.Float64s(got).Approx(approx.Float64s(want))
//	approx.Assert(approx.Some(approx.Float32(1)), approx.None[approx.Float32]()) // panics
//
// The packed vector types are compiled only when building with
//
//	go build -tags approxsimd
//
// and use the algo-vecmath SIMD kernels for the lane difference and reduction.
package approx
