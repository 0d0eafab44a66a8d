package approx

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Float32 is a float32 with a 1e-3 absolute tolerance.
type Float32 float32

// Float64 is a float64 with a 1e-6 absolute tolerance.
type Float64 float64

const (
	Tolerance32 Float32 = 1e-3
	Tolerance64 Float64 = 1e-6
)

// Within reports whether |a-b| <= tol, evaluated in F arithmetic.
// It is false whenever the difference is NaN.
func Within[F constraints.Float](a, b, tol F) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func (f Float32) Approx(other Float32) bool {
	return Within(f, other, Tolerance32)
}

// AssertApprox formats both operands with three decimals, matching the
// order of magnitude of the tolerance.
func (f Float32) AssertApprox(other Float32) {
	if !f.Approx(other) {
		Fail(fmt.Sprintf("%.3f", float32(f)), fmt.Sprintf("%.3f", float32(other)))
	}
}

func (f Float32) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func (f Float64) Approx(other Float64) bool {
	return Within(f, other, Tolerance64)
}

// AssertApprox formats both operands with six decimals.
func (f Float64) AssertApprox(other Float64) {
	if !f.Approx(other) {
		Fail(fmt.Sprintf("%.6f", float64(f)), fmt.Sprintf("%.6f", float64(other)))
	}
}

func (f Float64) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}
