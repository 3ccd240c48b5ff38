package interp_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odekit/internal/interp"
	"github.com/san-kum/odekit/internal/rk"
	"github.com/san-kum/odekit/internal/state"
)

func TestInterp(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Interp Suite")
}

func scalarAt(g Gomega, coeffs interp.Coefficients, t0, t1, t float64) float64 {
	v, err := interp.Evaluate(coeffs, t0, t1, t)
	g.Expect(err).NotTo(HaveOccurred())
	return v.(state.Vector)[0]
}

var _ = Describe("FitQuartic", func() {
	// Fit against y(t) = sin(t) on [0, 0.5].
	const t0, t1 = 0.0, 0.5
	const dt = t1 - t0

	var coeffs interp.Coefficients
	var y0, y1, yMid float64

	BeforeEach(func() {
		y0, y1, yMid = math.Sin(t0), math.Sin(t1), math.Sin((t0+t1)/2)
		f0, f1 := math.Cos(t0), math.Cos(t1)

		var err error
		coeffs, err = interp.FitQuartic(
			state.Vector{y0}, state.Vector{y1}, state.Vector{yMid},
			state.Vector{f0}, state.Vector{f1}, dt,
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(coeffs).To(HaveLen(5))
	})

	It("reproduces the endpoints", func() {
		Expect(scalarAt(Default, coeffs, t0, t1, t0)).To(BeNumerically("~", y0, 1e-12))
		Expect(scalarAt(Default, coeffs, t0, t1, t1)).To(BeNumerically("~", y1, 1e-12))
	})

	It("reproduces the midpoint", func() {
		Expect(scalarAt(Default, coeffs, t0, t1, (t0+t1)/2)).To(BeNumerically("~", yMid, 1e-12))
	})

	It("recovers the endpoint derivatives by finite differences", func() {
		const h = 1e-7
		fdStart := (scalarAt(Default, coeffs, t0, t1, t0+h) - scalarAt(Default, coeffs, t0, t1, t0)) / h
		fdEnd := (scalarAt(Default, coeffs, t0, t1, t1) - scalarAt(Default, coeffs, t0, t1, t1-h)) / h

		Expect(fdStart).To(BeNumerically("~", math.Cos(t0), 1e-5))
		Expect(fdEnd).To(BeNumerically("~", math.Cos(t1), 1e-5))
	})

	It("tracks the underlying function between the fit points", func() {
		for _, t := range []float64{0.1, 0.2, 0.3, 0.4} {
			Expect(scalarAt(Default, coeffs, t0, t1, t)).To(BeNumerically("~", math.Sin(t), 1e-5))
		}
	})

	It("propagates structure mismatches", func() {
		_, err := interp.FitQuartic(
			state.Vector{y0}, state.Vector{y1, 0}, state.Vector{yMid},
			state.Vector{1}, state.Vector{1}, dt,
		)
		Expect(err).To(MatchError(state.ErrStructureMismatch))
	})
})

var _ = Describe("Evaluate", func() {
	line := interp.Coefficients{state.Vector{2}, state.Vector{1}} // p(x) = 2x + 1

	It("rejects fewer than two coefficients", func() {
		_, err := interp.Evaluate(interp.Coefficients{state.Vector{1}}, 0, 1, 0.5)
		Expect(err).To(MatchError(state.ErrInvalidArgument))
	})

	It("rejects queries outside the interval", func() {
		_, err := interp.Evaluate(line, 0, 1, 1.5)
		Expect(err).To(MatchError(interp.ErrOutsideInterval))

		_, err = interp.Evaluate(line, 0, 1, -0.1)
		Expect(err).To(MatchError(interp.ErrOutsideInterval))
	})

	It("normalizes the query time over the interval", func() {
		Expect(scalarAt(Default, line, 2, 4, 3)).To(BeNumerically("~", 2.0, 1e-12))
		Expect(scalarAt(Default, line, 2, 4, 4)).To(BeNumerically("~", 3.0, 1e-12))
	})
})

var _ = Describe("FromStep", func() {
	decay := func(_ float64, y state.Structured) state.Structured {
		return state.Scale(-1, y)
	}

	It("yields dense output matching the exact solution", func() {
		y0 := state.Vector{1}
		const dt = 0.1

		res, err := rk.Step(decay, y0, decay(0, y0), 0, dt, rk.DormandPrince())
		Expect(err).NotTo(HaveOccurred())

		coeffs, err := interp.FromStep(y0, res.Y1, res.K, dt, rk.DormandPrince())
		Expect(err).NotTo(HaveOccurred())

		for _, t := range []float64{0, 0.025, 0.05, 0.075, dt} {
			Expect(scalarAt(Default, coeffs, 0, dt, t)).To(BeNumerically("~", math.Exp(-t), 1e-7))
		}
	})

	It("refuses tableaus without midpoint weights", func() {
		y0 := state.Vector{1}
		res, err := rk.Step(decay, y0, decay(0, y0), 0, 0.1, rk.ClassicalRK4())
		Expect(err).NotTo(HaveOccurred())

		_, err = interp.FromStep(y0, res.Y1, res.K, 0.1, rk.ClassicalRK4())
		Expect(err).To(MatchError(state.ErrInvalidArgument))
	})
})
