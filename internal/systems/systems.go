// Package systems collects small ODE right-hand sides used by tests and
// the CLI, each exposing a DerivFn-shaped Derive method.
package systems

import (
	"math"

	"github.com/san-kum/odekit/internal/state"
)

// Exponential models dy/dt = Lambda*y, solved exactly by
// y(t) = y(0)*exp(Lambda*t).
type Exponential struct{ Lambda float64 }

func (e Exponential) Derive(_ float64, y state.Structured) state.Structured {
	return state.Scale(e.Lambda, y)
}

func (e Exponential) Exact(y0 state.Structured, t float64) state.Structured {
	return state.Scale(math.Exp(e.Lambda*t), y0)
}

// HarmonicOscillator is the undamped oscillator over [position, velocity].
type HarmonicOscillator struct{ Omega float64 }

func (h HarmonicOscillator) Derive(_ float64, y state.Structured) state.Structured {
	v := y.(state.Vector)
	return state.Vector{v[1], -h.Omega * h.Omega * v[0]}
}

func (h HarmonicOscillator) Energy(y state.Structured) float64 {
	v := y.(state.Vector)
	return 0.5 * (v[1]*v[1] + h.Omega*h.Omega*v[0]*v[0])
}

// Lorenz is the classic attractor.
type Lorenz struct{ Sigma, Rho, Beta float64 }

func NewLorenz() Lorenz { return Lorenz{Sigma: 10, Rho: 28, Beta: 8.0 / 3} }

func (l Lorenz) Derive(_ float64, y state.Structured) state.Structured {
	s := y.(state.Vector)
	return state.Vector{
		l.Sigma * (s[1] - s[0]),
		s[0]*(l.Rho-s[2]) - s[1],
		s[0]*s[1] - l.Beta*s[2],
	}
}

func (l Lorenz) DefaultState() state.Vector { return state.Vector{1, 1, 1} }

// LotkaVolterra couples prey and predator populations as named sub-states,
// exercising structured (non-flat) state shapes.
type LotkaVolterra struct{ Alpha, Beta, Gamma, Delta float64 }

func NewLotkaVolterra() LotkaVolterra {
	return LotkaVolterra{Alpha: 1.1, Beta: 0.4, Gamma: 0.4, Delta: 0.1}
}

func (lv LotkaVolterra) Derive(_ float64, y state.Structured) state.Structured {
	f := y.(state.Fields)
	prey := f["prey"].(state.Vector)[0]
	pred := f["predator"].(state.Vector)[0]
	return state.Fields{
		"prey":     state.Vector{lv.Alpha*prey - lv.Beta*prey*pred},
		"predator": state.Vector{lv.Delta*prey*pred - lv.Gamma*pred},
	}
}

func (lv LotkaVolterra) DefaultState() state.Fields {
	return state.Fields{
		"prey":     state.Vector{10},
		"predator": state.Vector{5},
	}
}
