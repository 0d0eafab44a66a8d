package approx

import "github.com/google/go-cmp/cmp"

// Comparer returns a go-cmp option that compares every A reached by
// cmp.Equal or cmp.Diff with A's Approx method.
//
// go-cmp requires comparers to be symmetric, so A's policy must be too. All
// built-in implementations are.
func Comparer[A ApproxEq[A]]() cmp.Option {
	return cmp.Comparer(func(x, y A) bool {
		return x.Approx(y)
	})
}
