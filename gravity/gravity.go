// Package gravity holds the frozen gravitational constant tables SGP4/SDP4
// are defined against. SGP4 is a WGS-72 model; substituting WGS-84 constants
// produces km-scale position errors against the Vallado reference data.
package gravity

import "math"

// Model is a frozen set of Earth gravity constants consumed by the
// propagator initializer. Values are immutable after construction by one
// of the package-level constructors below.
type Model struct {
	// EarthRadiusKm is the equatorial radius of the reference ellipsoid, km.
	EarthRadiusKm float64

	// Mu is the geocentric gravitational parameter, km^3/s^2.
	Mu float64

	// J2, J3, J4 are the zonal harmonics of the geopotential.
	J2, J3, J4 float64

	// J3OverJ2 is J3/J2, used throughout the long-period coefficients.
	J3OverJ2 float64

	// XKE is the reciprocal of the time unit: 60 / sqrt(Re^3/mu) (min^-1),
	// i.e. minutes-to-SGP4-time-unit conversion factor.
	XKE float64

	// S is the atmospheric shell radius (earth radii), nominally
	// 1 + 78/Re, adjusted per-satellite when perigee is low.
	S float64

	// QOMS2T is ((120-78)/Re)^4, the base drag reference term before any
	// per-satellite s adjustment.
	QOMS2T float64
}

const (
	sRefKm    = 78.0
	qoBoundKm = 120.0
)

// WGS72 returns the WGS-72 gravity model used by the original Spacetrack
// Report #3 / Vallado SGP4 reference implementation. TLEs are defined
// against this model; it is the model to pass to NewPropagator.
func WGS72() Model {
	return newModel(6378.135, 398600.8, 0.001082616, -0.00000253881, -0.00000165597)
}

// WGS84 returns the WGS-84 gravity model. Several legacy SGP4 ports
// (including NORAD's own test harness) expose it as an option even though
// the TLE mean elements themselves were fit against WGS-72; propagating
// with WGS-84 constants will not reproduce the Vallado 2006 reference
// vectors bit-for-bit.
func WGS84() Model {
	return newModel(6378.137, 398600.5, 0.00108262998905, -0.00000253215306, -0.00000161098761)
}

func newModel(earthRadiusKm, mu, j2, j3, j4 float64) Model {
	// xke is the reciprocal SGP4 time unit, in (earth radii)^1.5 per minute:
	// 60 (seconds/minute) / sqrt(Re^3 / mu), with mu in km^3/s^2.
	xke := 60.0 / math.Sqrt(earthRadiusKm*earthRadiusKm*earthRadiusKm/mu)

	s := 1.0 + sRefKm/earthRadiusKm
	qoms2t := math.Pow((qoBoundKm-sRefKm)/earthRadiusKm, 4)

	return Model{
		EarthRadiusKm: earthRadiusKm,
		Mu:            mu,
		J2:            j2,
		J3:            j3,
		J4:            j4,
		J3OverJ2:      j3 / j2,
		XKE:           xke,
		S:             s,
		QOMS2T:        qoms2t,
	}
}
