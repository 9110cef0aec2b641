package sgp4

import (
	"math"

	"github.com/anupshinde/sgp4/scalar"
)

const (
	keplerMaxIterations = 10
	keplerTolerance      = 1e-12
	keplerStepClamp      = 0.95
)

// solveKepler solves the Lyddane-modified Kepler equation
// U = E + a_yn*cos(E) - a_xn*sin(E) for E, given U and the axial
// eccentricity components a_xn, a_yn, by Newton-Raphson.
//
// The |ΔE| <= 0.95 step clamp is a deliberate design choice (not a
// numerical-stability afterthought): near e -> 1 or near a_xn, a_yn ~= 0,
// an unclamped Newton step can overshoot and diverge. Non-convergence
// after keplerMaxIterations is not an error; the last iterate is returned.
func solveKepler(u, axn, ayn float64) float64 {
	e := u
	for i := 0; i < keplerMaxIterations; i++ {
		sinE, cosE := math.Sin(e), math.Cos(e)
		denom := 1 - cosE*axn - sinE*ayn
		delta := (u - ayn*cosE + axn*sinE - e) / denom
		if delta > keplerStepClamp {
			delta = keplerStepClamp
		} else if delta < -keplerStepClamp {
			delta = -keplerStepClamp
		}
		e += delta
		if math.Abs(delta) < keplerTolerance {
			break
		}
	}
	return e
}

// wrapAngle is an alias kept local to this package for readability at call
// sites that normalize accumulated angles.
func wrapAngle(x float64) float64 {
	return scalar.NormalizeTwoPi(x)
}
