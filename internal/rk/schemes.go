package rk

// Dormand-Prince 5(4) coefficients. The last row of B equals CSol with a
// trailing zero, so the scheme is FSAL; CMid supplies the midpoint weights
// for quartic dense output.
var dormandPrince = mustTableau(
	[]float64{1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1.0, 1.0},
	[][]float64{
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	},
	[]float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0},
	[]float64{
		6025192743.0 / 30085553152 / 2,
		0,
		51252292925.0 / 65400821598 / 2,
		-2691868925.0 / 45128329728 / 2,
		187940372067.0 / 1594534317056 / 2,
		-1776094331.0 / 19743644256 / 2,
		11237099.0 / 235043384 / 2,
	},
	[]float64{
		1951.0/21600 - 35.0/384,
		0,
		22642.0/50085 - 500.0/1113,
		451.0/720 - 125.0/192,
		-12231.0/42400 + 2187.0/6784,
		649.0/6300 - 11.0/84,
		1.0 / 60,
	},
)

// Classical fourth-order scheme. No embedded error estimate and no
// midpoint weights, so steps report a nil error estimate and cannot feed
// dense output.
var classicalRK4 = mustTableau(
	[]float64{1.0 / 2, 1.0 / 2, 1.0},
	[][]float64{
		{1.0 / 2},
		{0, 1.0 / 2},
		{0, 0, 1.0},
	},
	[]float64{1.0 / 6, 1.0 / 3, 1.0 / 3, 1.0 / 6},
	nil,
	nil,
)

// DormandPrince returns the shared 5(4) tableau.
func DormandPrince() *ButcherTableau { return dormandPrince }

// ClassicalRK4 returns the shared classical fourth-order tableau.
func ClassicalRK4() *ButcherTableau { return classicalRK4 }

func mustTableau(a []float64, b [][]float64, cSol, cMid, cErr []float64) *ButcherTableau {
	t, err := NewTableau(a, b, cSol, cMid, cErr)
	if err != nil {
		panic(err)
	}
	return t
}
