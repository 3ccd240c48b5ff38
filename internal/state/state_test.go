package state

import (
	"errors"
	"math"
	"testing"
)

func TestSameStructure(t *testing.T) {
	nested := Fields{
		"pos": Vector{1, 2},
		"vel": Vector{3, 4},
	}

	tests := []struct {
		name string
		a, b Structured
		want bool
	}{
		{"equal vectors", Vector{1, 2}, Vector{3, 4}, true},
		{"vector length mismatch", Vector{1, 2}, Vector{1, 2, 3}, false},
		{"vector vs fields", Vector{1, 2}, nested, false},
		{"equal fields", nested, Fields{"pos": Vector{0, 0}, "vel": Vector{0, 0}}, true},
		{"missing key", nested, Fields{"pos": Vector{0, 0}, "acc": Vector{0, 0}}, false},
		{"equal tuples", Tuple{Vector{1}, Vector{2, 3}}, Tuple{Vector{0}, Vector{0, 0}}, true},
		{"tuple length mismatch", Tuple{Vector{1}}, Tuple{Vector{1}, Vector{2}}, false},
		{"nested leaf mismatch", nested, Fields{"pos": Vector{0}, "vel": Vector{0, 0}}, false},
	}

	for _, tt := range tests {
		if got := tt.a.SameStructure(tt.b); got != tt.want {
			t.Errorf("%s: SameStructure = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLeavesOrderIsDeterministic(t *testing.T) {
	s := Fields{
		"b": Vector{2},
		"a": Vector{1},
		"c": Tuple{Vector{3}, Vector{4}},
	}

	leaves := Leaves(s)
	if len(leaves) != 4 {
		t.Fatalf("expected 4 leaves, got %d", len(leaves))
	}
	for i, want := range []float64{1, 2, 3, 4} {
		if leaves[i][0] != want {
			t.Errorf("leaf %d = %v, want %v", i, leaves[i][0], want)
		}
	}
}

func TestPackRoundTrip(t *testing.T) {
	s := Fields{
		"pos": Vector{1, 2},
		"vel": Tuple{Vector{3}, Vector{4}},
	}

	rebuilt, err := Pack(s, Leaves(s))
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if !rebuilt.SameStructure(s) {
		t.Error("rebuilt state lost its structure")
	}
	for i, l := range Leaves(rebuilt) {
		for j, v := range l {
			if v != Leaves(s)[i][j] {
				t.Errorf("leaf %d[%d] = %v, want %v", i, j, v, Leaves(s)[i][j])
			}
		}
	}
}

func TestPackWrongLeafCount(t *testing.T) {
	s := Tuple{Vector{1}, Vector{2}}

	if _, err := Pack(s, []Vector{{1}}); !errors.Is(err, ErrStructureMismatch) {
		t.Errorf("expected ErrStructureMismatch for short leaves, got %v", err)
	}
	if _, err := Pack(s, []Vector{{1}, {2}, {3}}); !errors.Is(err, ErrStructureMismatch) {
		t.Errorf("expected ErrStructureMismatch for leftover leaves, got %v", err)
	}
}

func TestScale(t *testing.T) {
	s := Fields{"a": Vector{1, -2}, "b": Vector{3}}

	scaled := Scale(2, s)
	want := []float64{2, -4, 6}
	i := 0
	for _, l := range Leaves(scaled) {
		for _, v := range l {
			if v != want[i] {
				t.Errorf("component %d = %v, want %v", i, v, want[i])
			}
			i++
		}
	}

	// original untouched
	if Leaves(s)[0][0] != 1 {
		t.Error("Scale mutated its input")
	}
}

func TestAddScaled(t *testing.T) {
	a := Vector{1, 2}
	b := Vector{10, 20}

	got, err := AddScaled(a, 0.5, b)
	if err != nil {
		t.Fatalf("AddScaled: %v", err)
	}
	v := got.(Vector)
	if v[0] != 6 || v[1] != 12 {
		t.Errorf("AddScaled = %v, want [6 12]", v)
	}

	if _, err := AddScaled(a, 0.5, Vector{1}); !errors.Is(err, ErrStructureMismatch) {
		t.Errorf("expected ErrStructureMismatch, got %v", err)
	}
}

func TestNorm(t *testing.T) {
	s := Tuple{Vector{3}, Vector{4}}
	if got := Norm(s); math.Abs(got-5) > 1e-12 {
		t.Errorf("Norm = %v, want 5", got)
	}
}

func TestVectorIsValid(t *testing.T) {
	if !(Vector{1, 2}).IsValid() {
		t.Error("finite vector reported invalid")
	}
	if (Vector{1, math.NaN()}).IsValid() {
		t.Error("NaN vector reported valid")
	}
	if (Vector{math.Inf(1)}).IsValid() {
		t.Error("Inf vector reported valid")
	}
}
