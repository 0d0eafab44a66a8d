package approx

import "golang.org/x/exp/constraints"

// Slice is a sequence compared element by element. Two slices are
// approximately equal when they have the same length and every pair of
// elements at the same position is. Order matters.
type Slice[T ApproxEq[T]] []T

func (s Slice[T]) Approx(other Slice[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Approx(other[i]) {
			return false
		}
	}
	return true
}

// Float32s copies a plain float32 slice into a Slice[Float32].
func Float32s(x []float32) Slice[Float32] {
	return convert[float32, Float32](x)
}

// Float64s copies a plain float64 slice into a Slice[Float64].
func Float64s(x []float64) Slice[Float64] {
	return convert[float64, Float64](x)
}

func convert[S, D constraints.Float](x []S) []D {
	if x == nil {
		return nil
	}
	out := make([]D, len(x))
	for i, v := range x {
		out[i] = D(v)
	}
	return out
}
