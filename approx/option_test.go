package approx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionApprox(t *testing.T) {
	tests := []struct {
		name string
		a, b Option[Float64]
		want bool
	}{
		{"none none", None[Float64](), None[Float64](), true},
		{"some none", Some(Float64(1.0)), None[Float64](), false},
		{"none some", None[Float64](), Some(Float64(1.0)), false},
		{"some some within", Some(Float64(1.0)), Some(Float64(1.0000001)), true},
		{"some some beyond", Some(Float64(1.0)), Some(Float64(1.1)), false},
		{"some nan", Some(Float64(math.NaN())), Some(Float64(math.NaN())), false},
		{"zero value is none", Option[Float64]{}, None[Float64](), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Approx(tt.b); got != tt.want {
				t.Fatalf("%v.Approx(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestOptionFollowsElementTolerance(t *testing.T) {
	assert.True(t, Some(Float32(1)).Approx(Some(Float32(1.0008))))
	assert.False(t, Some(Float64(1)).Approx(Some(Float64(1.0008))))
}

func TestOptionGet(t *testing.T) {
	v, ok := Some(Float32(2.5)).Get()
	assert.True(t, ok)
	assert.Equal(t, Float32(2.5), v)

	v, ok = None[Float32]().Get()
	assert.False(t, ok)
	assert.Zero(t, v)

	assert.True(t, Some(Float64(0)).IsSome())
	assert.False(t, None[Float64]().IsSome())
}

func TestOptionOfSlice(t *testing.T) {
	a := Some(Slice[Float64]{1, 2})
	b := Some(Slice[Float64]{1, 2.0000001})
	c := Some(Slice[Float64]{1})

	assert.True(t, a.Approx(b))
	assert.False(t, a.Approx(c))
	assert.False(t, a.Approx(None[Slice[Float64]]()))
}

func TestSliceOfOptions(t *testing.T) {
	a := Slice[Option[Float32]]{Some(Float32(1)), None[Float32]()}
	b := Slice[Option[Float32]]{Some(Float32(1.0002)), None[Float32]()}
	c := Slice[Option[Float32]]{Some(Float32(1)), Some(Float32(0))}

	assert.True(t, a.Approx(b))
	assert.False(t, a.Approx(c))
}

func TestOptionString(t *testing.T) {
	assert.Equal(t, "None", None[Float64]().String())
	assert.Equal(t, "Some(0.25)", Some(Float64(0.25)).String())
	assert.Equal(t, "Some([1 2])", Some(Slice[Float32]{1, 2}).String())
}

func TestOptionAssert(t *testing.T) {
	require.NotPanics(t, func() { Assert(None[Float32](), None[Float32]()) })
	require.PanicsWithError(t, "Some(1) != None", func() { Assert(Some(Float32(1)), None[Float32]()) })
}
