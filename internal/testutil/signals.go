package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns n samples of a sine completing the given number
// of cycles over the sequence.
func DeterministicSine(n int, cycles, amplitude float64) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	step := 2 * math.Pi * cycles / float64(n)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise returns uniform values in [-amplitude, amplitude) from a
// fixed seed.
func DeterministicNoise(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC returns n copies of value.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Perturb returns a copy of x with delta added to every element.
func Perturb(x []float64, delta float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v + delta
	}
	return out
}

// PerturbAt returns a copy of x with delta added to x[pos] only.
// Out-of-range positions leave the copy unchanged.
func PerturbAt(x []float64, pos int, delta float64) []float64 {
	out := append([]float64(nil), x...)
	if pos >= 0 && pos < len(out) {
		out[pos] += delta
	}
	return out
}

// ToFloat32 narrows x to float32.
func ToFloat32(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}
	return out
}
