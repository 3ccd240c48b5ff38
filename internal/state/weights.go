package state

import "fmt"

// Weight is a scalar coefficient in a weighted sum. Known marks values that
// are fixed when a scheme is constructed, which lets exact zeros be skipped.
type Weight struct {
	Value float64
	Known bool
}

// Static wraps a construction-time constant.
func Static(v float64) Weight { return Weight{Value: v, Known: true} }

// Runtime wraps a value only known at call time.
func Runtime(v float64) Weight { return Weight{Value: v} }

// PossiblyNonzero reports whether the weight can be anything but zero. A
// false result licenses dropping the term from a sum entirely; treating
// every weight as possibly nonzero is always correct, just slower.
func (w Weight) PossiblyNonzero() bool { return !w.Known || w.Value != 0 }

// StaticWeights wraps a row of tableau coefficients.
func StaticWeights(vs []float64) []Weight {
	ws := make([]Weight, len(vs))
	for i, v := range vs {
		ws[i] = Static(v)
	}
	return ws
}

// WeightedSum computes sum_i weights[i]*states[i]. All states must share
// the same nested structure; the result has that structure too. Terms with
// a statically known zero weight are elided.
func WeightedSum(weights []Weight, states []Structured) (Structured, error) {
	if len(weights) == 0 || len(states) == 0 {
		return nil, fmt.Errorf("%w: weights and states must be non-empty", ErrInvalidArgument)
	}
	if len(weights) != len(states) {
		return nil, fmt.Errorf("%w: %d weights against %d states", ErrInvalidArgument, len(weights), len(states))
	}
	for _, s := range states[1:] {
		if !s.SameStructure(states[0]) {
			return nil, fmt.Errorf("%w: states disagree on nested shape", ErrStructureMismatch)
		}
	}

	ref := Leaves(states[0])
	acc := make([]Vector, len(ref))
	for i, l := range ref {
		acc[i] = make(Vector, len(l))
	}
	for si, w := range weights {
		if !w.PossiblyNonzero() {
			continue
		}
		for li, l := range Leaves(states[si]) {
			for j, v := range l {
				acc[li][j] += w.Value * v
			}
		}
	}
	return Pack(states[0], acc)
}
