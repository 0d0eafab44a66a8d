package approx

import "fmt"

// ApproxEq is implemented by types that can judge another value of the same
// type as approximately equal under a type-defined policy.
//
// Approx must be pure: it must not modify either operand and always returns
// a result. Implementations should also format meaningfully with %v, since
// that representation ends up in assertion diagnostics.
type ApproxEq[A any] interface {
	Approx(other A) bool
}

// Asserter overrides the default assertion of a type, typically to control
// the precision of the diagnostic. AssertApprox must panic through [Fail]
// when the values are not approximately equal.
type Asserter[A any] interface {
	AssertApprox(other A)
}

// MismatchError is the panic value of a failed approximate-equality
// assertion. It carries the formatted operands.
type MismatchError struct {
	Left  string
	Right string
}

func (e *MismatchError) Error() string {
	return e.Left + " != " + e.Right
}

// Fail halts the current goroutine with a *MismatchError built from the
// formatted operands.
func Fail(left, right string) {
	panic(&MismatchError{Left: left, Right: right})
}

// Equal reports whether self and other are approximately equal.
func Equal[A ApproxEq[A]](self, other A) bool {
	return self.Approx(other)
}

// Assert panics with a *MismatchError if self and other are not
// approximately equal. If self implements [Asserter] its AssertApprox is used
// instead of the default "%v != %v" diagnostic.
func Assert[A ApproxEq[A]](self, other A) {
	if a, ok := any(self).(Asserter[A]); ok {
		a.AssertApprox(other)
		return
	}
	if !self.Approx(other) {
		Fail(fmt.Sprintf("%v", self), fmt.Sprintf("%v", other))
	}
}
