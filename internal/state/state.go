package state

import (
	"fmt"
	"math"
	"sort"
)

// Structured is the capability surface the solver needs from a state
// container: structural equality, flattening to ordered leaf vectors, and
// rebuilding a same-shaped value from leaves. Any container satisfying it
// can participate in weighted sums and stepping.
type Structured interface {
	// SameStructure reports whether other has the same nesting and the same
	// leaf lengths.
	SameStructure(other Structured) bool

	// AppendLeaves appends the container's leaf vectors to dst in a
	// deterministic order.
	AppendLeaves(dst []Vector) []Vector

	// Rebuild constructs a value of this shape from the front of leaves and
	// returns the unconsumed remainder.
	Rebuild(leaves []Vector) (Structured, []Vector)
}

// Vector is a flat array of float64 values, the only leaf kind.
type Vector []float64

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func (v Vector) Norm() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func (v Vector) SameStructure(other Structured) bool {
	o, ok := other.(Vector)
	return ok && len(o) == len(v)
}

func (v Vector) AppendLeaves(dst []Vector) []Vector { return append(dst, v) }

func (v Vector) Rebuild(leaves []Vector) (Structured, []Vector) {
	return leaves[0], leaves[1:]
}

// Tuple is an ordered sequence of sub-states.
type Tuple []Structured

func (t Tuple) SameStructure(other Structured) bool {
	o, ok := other.(Tuple)
	if !ok || len(o) != len(t) {
		return false
	}
	for i := range t {
		if !t[i].SameStructure(o[i]) {
			return false
		}
	}
	return true
}

func (t Tuple) AppendLeaves(dst []Vector) []Vector {
	for _, s := range t {
		dst = s.AppendLeaves(dst)
	}
	return dst
}

func (t Tuple) Rebuild(leaves []Vector) (Structured, []Vector) {
	out := make(Tuple, len(t))
	for i, s := range t {
		out[i], leaves = s.Rebuild(leaves)
	}
	return out, leaves
}

// Fields is a mapping of named sub-states. Leaf order follows sorted keys.
type Fields map[string]Structured

func (f Fields) SameStructure(other Structured) bool {
	o, ok := other.(Fields)
	if !ok || len(o) != len(f) {
		return false
	}
	for k, s := range f {
		os, present := o[k]
		if !present || !s.SameStructure(os) {
			return false
		}
	}
	return true
}

func (f Fields) keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f Fields) AppendLeaves(dst []Vector) []Vector {
	for _, k := range f.keys() {
		dst = f[k].AppendLeaves(dst)
	}
	return dst
}

func (f Fields) Rebuild(leaves []Vector) (Structured, []Vector) {
	out := make(Fields, len(f))
	for _, k := range f.keys() {
		out[k], leaves = f[k].Rebuild(leaves)
	}
	return out, leaves
}

// Leaves returns the ordered leaf vectors of s.
func Leaves(s Structured) []Vector { return s.AppendLeaves(nil) }

// Norm returns the Euclidean norm over all leaves of s.
func Norm(s Structured) float64 {
	sum := 0.0
	for _, l := range Leaves(s) {
		for _, v := range l {
			sum += v * v
		}
	}
	return math.Sqrt(sum)
}

// Pack rebuilds a state shaped like shape from the given leaves.
func Pack(shape Structured, leaves []Vector) (Structured, error) {
	if want := len(Leaves(shape)); len(leaves) != want {
		return nil, fmt.Errorf("%w: %d leaves for a shape with %d", ErrStructureMismatch, len(leaves), want)
	}
	out, _ := shape.Rebuild(leaves)
	return out, nil
}

// Scale returns c*s without mutating s.
func Scale(c float64, s Structured) Structured {
	leaves := Leaves(s)
	out := make([]Vector, len(leaves))
	for i, l := range leaves {
		o := make(Vector, len(l))
		for j, v := range l {
			o[j] = c * v
		}
		out[i] = o
	}
	packed, _ := s.Rebuild(out)
	return packed
}

// AddScaled returns a + c*b, the increment form used by stage evaluation.
func AddScaled(a Structured, c float64, b Structured) (Structured, error) {
	return WeightedSum([]Weight{Runtime(1), Runtime(c)}, []Structured{a, b})
}
