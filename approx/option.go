package approx

import "fmt"

// Option is a value that may be absent. Two options are approximately equal
// when both are absent, or both are present and their values are.
type Option[T ApproxEq[T]] struct {
	value T
	ok    bool
}

// Some returns a present option holding v.
func Some[T ApproxEq[T]](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent option.
func None[T ApproxEq[T]]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) Approx(other Option[T]) bool {
	switch {
	case o.ok && other.ok:
		return o.value.Approx(other.value)
	case !o.ok && !other.ok:
		return true
	default:
		return false
	}
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
