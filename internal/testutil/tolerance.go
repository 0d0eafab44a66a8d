package testutil

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrLengthMismatch is returned by MaxAbsDiff for slices of different length.
var ErrLengthMismatch = errors.New("testutil: length mismatch")

// MaxAbsDiff returns the largest |a[i]-b[i]|. It is the brute-force oracle
// the approx tests check the element-wise comparison against. A NaN
// difference is returned as NaN.
func MaxAbsDiff[F constraints.Float](a, b []F) (F, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	var maxDiff F
	for i := range a {
		d := a[i] - b[i]
		if d != d {
			return d, nil
		}
		if d < 0 {
			d = -d
		}
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
