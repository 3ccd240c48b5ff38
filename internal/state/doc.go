// Package state provides linear arithmetic over structured ODE states.
//
// A state is an arbitrarily nested container of numeric vectors:
//
//   - [Vector]: flat array of float64, the leaf kind
//   - [Tuple]: ordered sequence of sub-states
//   - [Fields]: named sub-states, flattened in sorted key order
//
// All of them satisfy [Structured], the minimal capability surface
// (structure check, flatten, rebuild) that [WeightedSum] is written
// against. Shapes are checked, never inferred: summing states of
// different structure fails with [ErrStructureMismatch] rather than
// broadcasting.
package state
