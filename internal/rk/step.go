package rk

import (
	"github.com/san-kum/odekit/internal/state"
)

// DerivFn evaluates dy/dt at (t, y). Implementations must return a state
// with the same structure as y and must not mutate y.
type DerivFn func(t float64, y state.Structured) state.Structured

// Result of a single explicit Runge-Kutta step.
type Result struct {
	Y1      state.Structured   // solution at t0+dt
	F1      state.Structured   // derivative at t0+dt
	Y1Error state.Structured   // local truncation error estimate; nil when the tableau has no error weights
	K       []state.Structured // stage derivatives, K[0] == f0
}

// Step advances y0 from t0 to t0+dt under the given tableau. f0 must equal
// fn(t0, y0); it is not recomputed. fn is invoked once per tableau row,
// strictly in order, since each stage input combines all earlier stage
// derivatives. A derivative returned with the wrong structure surfaces as
// state.ErrStructureMismatch.
func Step(fn DerivFn, y0, f0 state.Structured, t0, dt float64, tab *ButcherTableau) (Result, error) {
	k := make([]state.Structured, 1, tab.Stages())
	k[0] = f0

	var yi state.Structured
	for i, alpha := range tab.A {
		incr, err := state.WeightedSum(state.StaticWeights(tab.B[i]), k)
		if err != nil {
			return Result{}, err
		}
		yi, err = state.AddScaled(y0, dt, incr)
		if err != nil {
			return Result{}, err
		}
		k = append(k, fn(t0+alpha*dt, yi))
	}

	if !tab.IsFSAL() {
		// Without the FSAL property the last stage state is not the
		// solution, so combine the stages explicitly.
		incr, err := state.WeightedSum(state.StaticWeights(tab.CSol), k)
		if err != nil {
			return Result{}, err
		}
		yi, err = state.AddScaled(y0, dt, incr)
		if err != nil {
			return Result{}, err
		}
	}

	res := Result{Y1: yi, F1: k[len(k)-1], K: k}
	if tab.CError != nil {
		est, err := state.WeightedSum(state.StaticWeights(tab.CError), k)
		if err != nil {
			return Result{}, err
		}
		res.Y1Error = state.Scale(dt, est)
	}
	return res, nil
}
