package sgp4

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveKeplerSatisfiesEquation(t *testing.T) {
	cases := []struct{ u, axn, ayn float64 }{
		{0.5, 0.01, 0.02},
		{3.0, 0.3, -0.2},
		{0.001, 0.0001, 0.0001},
		{6.0, 0.05, 0.05},
	}
	for _, c := range cases {
		e := solveKepler(c.u, c.axn, c.ayn)
		reconstructed := e + c.ayn*math.Cos(e) - c.axn*math.Sin(e)
		assert.InDelta(t, c.u, reconstructed, 1e-8)
	}
}

func TestSolveKeplerHighEccentricityConverges(t *testing.T) {
	e := solveKepler(0.1, 0.98, 0.0)
	assert.False(t, math.IsNaN(e))
	assert.False(t, math.IsInf(e, 0))
	assert.InDelta(t, 0.1, e-0.98*math.Sin(e), 1e-8)
}

func TestWrapAngleRange(t *testing.T) {
	w := wrapAngle(-0.5)
	assert.True(t, w >= 0 && w < 2*math.Pi)
}
