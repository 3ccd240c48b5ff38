package rk

import (
	"fmt"

	"github.com/san-kum/odekit/internal/state"
)

// ButcherTableau organizes the coefficients of an explicit Runge-Kutta
// scheme: stage time fractions A, stage combination rows B, and the
// solution, midpoint and error weights over all stages. Constructed once
// per scheme and shared across steps; treat as read-only.
type ButcherTableau struct {
	A      []float64
	B      [][]float64
	CSol   []float64
	CMid   []float64
	CError []float64

	fsal bool
}

// NewTableau checks the shape invariants and caches the FSAL property.
// CMid and CError may be nil for schemes without dense output or an
// embedded error estimate. Numerical consistency of the coefficients
// (row-sum conditions) is the scheme author's responsibility.
func NewTableau(a []float64, b [][]float64, cSol, cMid, cErr []float64) (*ButcherTableau, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: len(a)=%d, len(b)=%d", state.ErrInvalidArgument, len(a), len(b))
	}
	for i, row := range b {
		if len(row) != i+1 {
			return nil, fmt.Errorf("%w: b[%d] has %d weights, want %d", state.ErrInvalidArgument, i, len(row), i+1)
		}
	}
	stages := len(a) + 1
	if len(cSol) != stages {
		return nil, fmt.Errorf("%w: c_sol has %d weights for %d stages", state.ErrInvalidArgument, len(cSol), stages)
	}
	if cMid != nil && len(cMid) != stages {
		return nil, fmt.Errorf("%w: c_mid has %d weights for %d stages", state.ErrInvalidArgument, len(cMid), stages)
	}
	if cErr != nil && len(cErr) != stages {
		return nil, fmt.Errorf("%w: c_error has %d weights for %d stages", state.ErrInvalidArgument, len(cErr), stages)
	}
	t := &ButcherTableau{A: a, B: b, CSol: cSol, CMid: cMid, CError: cErr}
	t.fsal = fsal(cSol, b)
	return t, nil
}

// fsal holds when the last stage input equals the solution combination, so
// the final stage state can be reused as y1.
func fsal(cSol []float64, b [][]float64) bool {
	if len(b) == 0 || cSol[len(cSol)-1] != 0 {
		return false
	}
	last := b[len(b)-1]
	for i, v := range last {
		if cSol[i] != v {
			return false
		}
	}
	return true
}

// Stages counts stage derivatives, the initial f0 included.
func (t *ButcherTableau) Stages() int { return len(t.A) + 1 }

// IsFSAL reports whether the last stage derivative doubles as the
// derivative at the new solution point.
func (t *ButcherTableau) IsFSAL() bool { return t.fsal }
