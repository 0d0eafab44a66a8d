package approx

// Borrower yields a read-only view of an A. It lets reference-like wrappers
// stand in as the comparand without the implementation knowing about them.
type Borrower[A any] interface {
	Borrow() A
}

type ref[A any] struct {
	p *A
}

func (r ref[A]) Borrow() A {
	if r.p == nil {
		var zero A
		return zero
	}
	return *r.p
}

// Ref adapts a pointer to a [Borrower]. A nil pointer borrows the zero value.
func Ref[A any](p *A) Borrower[A] {
	return ref[A]{p: p}
}

// ApproxBorrowed compares self against the value other borrows.
func ApproxBorrowed[A ApproxEq[A], B Borrower[A]](self A, other B) bool {
	return self.Approx(other.Borrow())
}

// AssertBorrowed is [Assert] for a borrowed comparand.
func AssertBorrowed[A ApproxEq[A], B Borrower[A]](self A, other B) {
	Assert(self, other.Borrow())
}
