package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(48, 1, 1.0)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if math.Abs(s[12]-1) > 1e-12 {
		t.Fatalf("s[12] = %v, want 1 at a quarter cycle", s[12])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicSineEmpty(t *testing.T) {
	if s := DeterministicSine(0, 3, 1); len(s) != 0 {
		t.Fatalf("len = %d, want 0", len(s))
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestPerturb(t *testing.T) {
	x := []float64{1, 2, 3}
	p := Perturb(x, 0.5)
	for i := range x {
		if p[i] != x[i]+0.5 {
			t.Fatalf("p[%d] = %v, want %v", i, p[i], x[i]+0.5)
		}
	}
	if x[0] != 1 {
		t.Fatal("Perturb modified its input")
	}
}

func TestPerturbAt(t *testing.T) {
	x := DC(1, 4)
	p := PerturbAt(x, 2, 0.25)
	for i, v := range p {
		want := 1.0
		if i == 2 {
			want = 1.25
		}
		if v != want {
			t.Fatalf("p[%d] = %v, want %v", i, v, want)
		}
	}
	if x[2] != 1 {
		t.Fatal("PerturbAt modified its input")
	}
}

func TestPerturbAtOutOfBounds(t *testing.T) {
	p := PerturbAt(DC(0.5, 3), 10, 1)
	for i, v := range p {
		if v != 0.5 {
			t.Fatalf("p[%d] = %v, want 0.5 for out-of-bounds pos", i, v)
		}
	}
}

func TestToFloat32(t *testing.T) {
	f := ToFloat32([]float64{0.5, -2})
	if len(f) != 2 || f[0] != 0.5 || f[1] != -2 {
		t.Fatalf("ToFloat32 = %v, want [0.5 -2]", f)
	}
}
