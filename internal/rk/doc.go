// Package rk implements a single explicit Runge-Kutta step with embedded
// error estimation, driven by a [ButcherTableau].
//
// [Step] evaluates the stage derivatives sequentially, forms the advanced
// state, and (when the tableau carries error weights) an estimate of the
// local truncation error for an external step-size controller. Accepting,
// rejecting and resizing steps is that controller's job, not this
// package's.
//
// Schemes are data: [DormandPrince] and [ClassicalRK4] are provided, and
// any explicit scheme can be expressed through [NewTableau].
package rk
