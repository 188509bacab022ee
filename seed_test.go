package galaxy

import (
	"math"
	"testing"
)

func TestSeededSequence_Deterministic(t *testing.T) {
	a := NewSeededSequence("Projects")
	b := NewSeededSequence("Projects")
	for i := 0; i < 100; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("step %d: %v != %v", i, x, y)
		}
	}
}

func TestSeededSequence_Range(t *testing.T) {
	for _, seed := range []string{"", "Featured", "Games", "starfield", "ünïcödé"} {
		s := NewSeededSequence(seed)
		for i := 0; i < 1000; i++ {
			v := s.Next()
			if v < 0 || v >= 1 {
				t.Fatalf("seed %q step %d: %v out of [0,1)", seed, i, v)
			}
			if !approxEqual(v*1000, math.Round(v*1000), 1e-6) {
				t.Fatalf("seed %q step %d: %v not a multiple of 1/1000", seed, i, v)
			}
		}
	}
}

func TestSeededSequence_SeedsDiffer(t *testing.T) {
	a := NewSeededSequence("Projects")
	b := NewSeededSequence("Games")
	same := 0
	for i := 0; i < 20; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same == 20 {
		t.Error("different seeds produced identical sequences")
	}
}

func TestSeededSequence_Signed(t *testing.T) {
	s := NewSeededSequence("x")
	for i := 0; i < 500; i++ {
		if v := s.Signed(); v < -1 || v >= 1 {
			t.Fatalf("Signed = %v, want [-1,1)", v)
		}
	}
}

func TestIDHash(t *testing.T) {
	tests := []struct {
		id   string
		want uint32
	}{
		{"", 0},
		{"a", 97},
		{"ab", 97*31 + 98},
		{"abc", (97*31+98)*31 + 99},
	}
	for _, tt := range tests {
		if got := idHash(tt.id); got != tt.want {
			t.Errorf("idHash(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}
