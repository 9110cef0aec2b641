// Package rotation builds the TEME orientation matrix from the classical
// node/inclination/argument-of-perigee triad, using gonum's dense matrix
// type. The propagator's short-period step uses it to carry the orbit-plane
// radial and transverse unit vectors into TEME.
package rotation

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/anupshinde/sgp4/vector3"
)

// PerifocalToTEME returns the 3x3 direction-cosine matrix that rotates a
// vector expressed in the orbit's perifocal frame (x toward perigee, z along
// the angular momentum vector) into the TEME frame, given the node (raan),
// inclination (incl), and argument of perigee (argp), all radians.
//
// It is the product Rz(raan) * Rx(incl) * Rz(argp), composed in the order
// argument of perigee, then inclination, then node, matching the classical
// 3-1-3 Euler sequence for the orbital elements. These are active rotations
// of the basis vectors themselves, not of the frame, so the angles carry
// their natural sign. The inverse (TEME to perifocal) matrix is the
// transpose of the returned one.
func PerifocalToTEME(raan, incl, argp float64) *mat.Dense {
	rz1 := rotZ(argp)
	rx := rotX(incl)
	rz2 := rotZ(raan)

	var tmp, r mat.Dense
	tmp.Mul(rx, rz1)
	r.Mul(rz2, &tmp)
	return &r
}

// Rotate applies m to v and returns the rotated vector.
func Rotate(m *mat.Dense, v vector3.Vector3) vector3.Vector3 {
	in := mat.NewVecDense(3, []float64{v.X, v.Y, v.Z})
	var out mat.VecDense
	out.MulVec(m, in)
	return vector3.New(out.AtVec(0), out.AtVec(1), out.AtVec(2))
}

func rotZ(theta float64) *mat.Dense {
	s, c := math.Sin(theta), math.Cos(theta)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

func rotX(theta float64) *mat.Dense {
	s, c := math.Sin(theta), math.Cos(theta)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}
