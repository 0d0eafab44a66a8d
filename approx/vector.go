//go:build approxsimd

package approx

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// F32x4 is a packed vector of four float32 lanes, compared lane-wise with
// the Float32 tolerance.
type F32x4 [4]float32

// F64x4 is a packed vector of four float64 lanes, compared lane-wise with
// the Float64 tolerance.
type F64x4 [4]float64

var negOnes = [4]float64{-1, -1, -1, -1}

func (v F32x4) Approx(other F32x4) bool {
	var diff [4]float64
	for i := range v {
		d := v[i] - other[i]
		diff[i] = float64(d)
	}
	return lanesWithin(&diff, float64(Tolerance32))
}

func (v F32x4) AssertApprox(other F32x4) {
	if !v.Approx(other) {
		Fail(fmt.Sprintf("%.3f", [4]float32(v)), fmt.Sprintf("%.3f", [4]float32(other)))
	}
}

func (v F64x4) Approx(other F64x4) bool {
	// diff = other*(-1) + v
	var diff [4]float64
	vecmath.MulAddBlock(diff[:], other[:], negOnes[:], v[:])
	return lanesWithin(&diff, float64(Tolerance64))
}

func (v F64x4) AssertApprox(other F64x4) {
	if !v.Approx(other) {
		Fail(fmt.Sprintf("%.6f", [4]float64(v)), fmt.Sprintf("%.6f", [4]float64(other)))
	}
}

// lanesWithin reports whether every lane of diff lies in [-tol, tol].
// MaxAbs does not propagate NaN reliably, so NaN lanes are rejected first.
func lanesWithin(diff *[4]float64, tol float64) bool {
	for _, d := range diff {
		if math.IsNaN(d) {
			return false
		}
	}
	return vecmath.MaxAbs(diff[:]) <= tol
}

// Kernel names the highest SIMD level the detected CPU offers to the
// vecmath kernels, or "None" when only the generic path applies.
func Kernel() string {
	features := cpu.DetectFeatures()
	for _, level := range []cpu.SIMDLevel{cpu.SIMDAVX2, cpu.SIMDSSE2, cpu.SIMDNEON} {
		if cpu.Supports(features, level) {
			return level.String()
		}
	}
	return cpu.SIMDNone.String()
}
