// Package approxtest reports approximate-equality mismatches through a
// testing.TB instead of panicking.
package approxtest

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-approxeq/approx"
)

// Require fails t immediately if got and want are not approximately equal.
func Require[A approx.ApproxEq[A]](t testing.TB, got, want A) {
	t.Helper()
	if msg, ok := mismatch(got, want); !ok {
		require.Fail(t, "values are not approximately equal", msg)
	}
}

// Check records a failure on t if got and want are not approximately equal
// and reports whether they were.
func Check[A approx.ApproxEq[A]](t testing.TB, got, want A) bool {
	t.Helper()
	msg, ok := mismatch(got, want)
	if !ok {
		return assert.Fail(t, "values are not approximately equal", msg)
	}
	return true
}

// RequireSlice fails t if got and want differ in length or if any element
// pair is not approximately equal under the Float64 tolerance. The first
// offending index is reported.
func RequireSlice(t testing.TB, got, want []float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		if msg, ok := mismatch(approx.Float64(got[i]), approx.Float64(want[i])); !ok {
			require.Fail(t, fmt.Sprintf("index %d is not approximately equal", i), msg)
		}
	}
}

// mismatch runs the assertion form and converts its panic into the
// diagnostic message. Panics other than a mismatch are re-raised.
func mismatch[A approx.ApproxEq[A]](got, want A) (msg string, ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, isErr := r.(error)
		var m *approx.MismatchError
		if !isErr || !errors.As(err, &m) {
			panic(r)
		}
		msg, ok = m.Error(), false
	}()
	approx.Assert(got, want)
	return "", true
}
