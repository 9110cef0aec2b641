package rotation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anupshinde/sgp4/vector3"
)

func vec(x, y, z float64) vector3.Vector3 { return vector3.New(x, y, z) }

// referenceUnitVector reproduces the reference SGP4 code's inline trig
// assembly of the TEME unit vector at argument of latitude su, inclination incl, and
// node raan (argp folded into su already, as the propagator does). It is
// kept independent of the sgp4 package so this test exercises two distinct
// expressions of the same rotation rather than calling back into the
// implementation it is meant to cross-check.
func referenceUnitVector(raan, incl, su float64) (float64, float64, float64) {
	snod, cnod := math.Sin(raan), math.Cos(raan)
	sini, cosi := math.Sin(incl), math.Cos(incl)
	sinsu, cossu := math.Sin(su), math.Cos(su)

	xmx := -snod * cosi
	xmy := cnod * cosi

	ux := xmx*sinsu + cnod*cossu
	uy := xmy*sinsu + snod*cossu
	uz := sini * sinsu
	return ux, uy, uz
}

func TestPerifocalToTEMEMatchesReferenceAssembly(t *testing.T) {
	cases := []struct{ raan, incl, su float64 }{
		{0, 0, 0},
		{0.3, 0.5, 1.2},
		{math.Pi / 2, math.Pi / 4, -0.7},
		{5.0, 1.9, 3.4},
		{-1.1, 0.05, 6.0},
	}
	for _, c := range cases {
		m := PerifocalToTEME(c.raan, c.incl, 0)
		gotX, gotY, gotZ := Rotate(m, vec(math.Cos(c.su), math.Sin(c.su), 0)).X,
			Rotate(m, vec(math.Cos(c.su), math.Sin(c.su), 0)).Y,
			Rotate(m, vec(math.Cos(c.su), math.Sin(c.su), 0)).Z

		wantX, wantY, wantZ := referenceUnitVector(c.raan, c.incl, c.su)

		assert.InDelta(t, wantX, gotX, 1e-10)
		assert.InDelta(t, wantY, gotY, 1e-10)
		assert.InDelta(t, wantZ, gotZ, 1e-10)
	}
}

func TestPerifocalToTEMEIsOrthonormal(t *testing.T) {
	m := PerifocalToTEME(1.1, 0.9, 0.4)
	x := Rotate(m, vec(1, 0, 0))
	y := Rotate(m, vec(0, 1, 0))
	z := Rotate(m, vec(0, 0, 1))

	assert.InDelta(t, 1.0, x.Magnitude(), 1e-12)
	assert.InDelta(t, 1.0, y.Magnitude(), 1e-12)
	assert.InDelta(t, 1.0, z.Magnitude(), 1e-12)
	assert.InDelta(t, 0.0, x.Dot(y), 1e-12)
	assert.InDelta(t, 0.0, y.Dot(z), 1e-12)
}
