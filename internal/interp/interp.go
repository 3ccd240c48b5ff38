package interp

import (
	"errors"
	"fmt"

	"github.com/san-kum/odekit/internal/rk"
	"github.com/san-kum/odekit/internal/state"
)

// ErrOutsideInterval indicates an interpolation query outside the step
// interval; a logic error in the caller, never clamped or extrapolated.
var ErrOutsideInterval = errors.New("interp: interpolation time outside step interval")

// Coefficients of a dense-output polynomial over one step, highest degree
// first. Each coefficient is itself a structured state. The fit produces
// five of them for p(x) = a*x^4 + b*x^3 + c*x^2 + d*x + e on x in [0,1].
type Coefficients []state.Structured

// FitQuartic fits the unique quartic through the endpoint values, the
// midpoint value and the endpoint derivatives:
//
//	p(0) = y0, p(1/2) = yMid, p(1) = y1, p'(0)/dt = f0, p'(1)/dt = f1
//
// The closed-form solve reduces each monomial coefficient to a fixed
// linear combination of the five inputs.
func FitQuartic(y0, y1, yMid, f0, f1 state.Structured, dt float64) (Coefficients, error) {
	states := []state.Structured{f0, f1, y0, y1, yMid}
	a, err := state.WeightedSum(state.StaticWeights([]float64{-2 * dt, 2 * dt, -8, -8, 16}), states)
	if err != nil {
		return nil, err
	}
	b, err := state.WeightedSum(state.StaticWeights([]float64{5 * dt, -3 * dt, 18, 14, -32}), states)
	if err != nil {
		return nil, err
	}
	c, err := state.WeightedSum(state.StaticWeights([]float64{-4 * dt, dt, -11, -5, 16}), states)
	if err != nil {
		return nil, err
	}
	d := state.Scale(dt, f0)
	return Coefficients{a, b, c, d, y0}, nil
}

// FromStep derives dense-output coefficients from a completed step. The
// midpoint estimate is y0 + dt*sum(CMid[i]*k[i]); the endpoint derivatives
// are the first and last stages.
func FromStep(y0, y1 state.Structured, k []state.Structured, dt float64, tab *rk.ButcherTableau) (Coefficients, error) {
	if tab.CMid == nil {
		return nil, fmt.Errorf("%w: tableau has no midpoint weights", state.ErrInvalidArgument)
	}
	incr, err := state.WeightedSum(state.StaticWeights(tab.CMid), k)
	if err != nil {
		return nil, err
	}
	yMid, err := state.AddScaled(y0, dt, incr)
	if err != nil {
		return nil, err
	}
	return FitQuartic(y0, y1, yMid, k[0], k[len(k)-1], dt)
}

// Evaluate computes the polynomial value at t, normalized to
// x = (t-t0)/(t1-t0). t must lie inside [t0, t1].
func Evaluate(coeffs Coefficients, t0, t1, t float64) (state.Structured, error) {
	if len(coeffs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 coefficients, got %d", state.ErrInvalidArgument, len(coeffs))
	}
	if t < t0 || t > t1 {
		return nil, fmt.Errorf("%w: t=%g not in [%g, %g]", ErrOutsideInterval, t, t0, t1)
	}
	x := (t - t0) / (t1 - t0)

	// Powers [1, x, x^2, ...] paired against the coefficients in reversed
	// order, so the highest power meets the highest-degree coefficient.
	xs := make([]float64, len(coeffs))
	xs[0] = 1
	for i := 1; i < len(xs); i++ {
		xs[i] = xs[i-1] * x
	}
	weights := make([]state.Weight, len(xs))
	for i, p := range xs {
		weights[len(xs)-1-i] = state.Runtime(p)
	}
	return state.WeightedSum(weights, coeffs)
}
