package sgp4

import (
	"math"

	"github.com/pkg/errors"

	"github.com/anupshinde/sgp4/gravity"
	"github.com/anupshinde/sgp4/tle"
)

const (
	deg2rad = math.Pi / 180.0

	// minPerigeeAltitudeKm is the physical floor below which a recovered
	// orbit is considered decayed at initialization time.
	minPerigeeAltitudeKm = 90.0

	// simplifiedPerigeeAltitudeKm is the threshold below which the
	// simplified (linear-drag) near-earth branch is selected.
	simplifiedPerigeeAltitudeKm = 220.0

	// lowPerigeeAltitudeKm is the threshold below which the atmospheric
	// shell parameter s is recomputed from perigee instead of the nominal
	// 78 km shell.
	lowPerigeeAltitudeKm = 156.0

	// deepSpacePeriodMinutes is the orbital-period threshold (minutes)
	// above which the deep-space (SDP4) extension applies.
	deepSpacePeriodMinutes = 225.0
)

// NewPropagator builds an immutable PropagatorState from a decoded TLE and
// a gravity model (initl + sgp4init in Vallado's naming). It fails with
// BadEccentricityError or DecayedError; Propagate itself never returns
// BadEccentricityError.
func NewPropagator(t *tle.TLE, grav gravity.Model) (*PropagatorState, error) {
	if t.Eccentricity < 0 || t.Eccentricity >= 1 {
		return nil, errors.WithStack(&BadEccentricityError{Value: t.Eccentricity})
	}

	incl := t.InclinationDeg * deg2rad
	raan := t.RAANDeg * deg2rad
	argp := t.ArgumentOfPerigeeDeg * deg2rad
	m0 := t.MeanAnomalyDeg * deg2rad
	ecc := t.Eccentricity
	bstar := t.Bstar

	// Step 1: mean motion in rad/min.
	n0 := t.MeanMotion * 2 * math.Pi / 1440.0

	cosio := math.Cos(incl)
	sinio := math.Sin(incl)
	theta2 := cosio * cosio
	con41 := 3*theta2 - 1
	x1mth2 := 1 - theta2
	x7thm1 := 7*theta2 - 1

	eccsq := ecc * ecc
	betao2 := 1 - eccsq
	betao := math.Sqrt(betao2)

	j2 := grav.J2
	xke := grav.XKE

	// Step 2: recover Brouwer mean motion and semi-major axis from Kozai
	// mean motion by the standard iterative deflation.
	a1 := math.Pow(xke/n0, 2.0/3.0)
	d1 := 0.75 * j2 * con41 / (betao * betao2)
	del0 := d1 / (a1 * a1)
	ao := a1 * (1 - del0*del0 - del0*(1.0/3.0+134.0*del0*del0/81.0))
	delPrime := d1 / (ao * ao)
	n0dp := n0 / (1 + delPrime)
	a0dp := math.Pow(xke/n0dp, 2.0/3.0)

	// Step 3: perigee altitude; Decayed if below the physical floor.
	rp := a0dp*(1-ecc) - 1
	perigeeAltitudeKm := rp * grav.EarthRadiusKm
	if perigeeAltitudeKm < minPerigeeAltitudeKm {
		return nil, errors.WithStack(&DecayedError{Reason: "perigee altitude below floor at init", Detail: perigeeAltitudeKm})
	}

	isSimplified := perigeeAltitudeKm < simplifiedPerigeeAltitudeKm

	// Step 5: atmospheric shell parameter s, adjusted for low perigee.
	s4 := grav.S
	qoms24 := grav.QOMS2T
	if perigeeAltitudeKm < lowPerigeeAltitudeKm {
		s4km := perigeeAltitudeKm - 78.0
		if perigeeAltitudeKm < 98.0 {
			s4km = 20.0
		}
		qoms24 = math.Pow((120.0-s4km)/grav.EarthRadiusKm, 4)
		s4 = s4km/grav.EarthRadiusKm + 1.0
	}

	// Step 6: drag coefficients c1..c5.
	ck2 := 0.5 * j2
	ck4 := -0.375 * grav.J4
	pinvsq := 1.0 / (a0dp * a0dp * betao2 * betao2)
	tsi := 1.0 / (a0dp - s4)
	eta := a0dp * ecc * tsi
	etasq := eta * eta
	eeta := ecc * eta
	psisq := math.Abs(1 - etasq)
	coef := qoms24 * math.Pow(tsi, 4)
	coef1 := coef / math.Pow(psisq, 3.5)

	c2 := coef1 * n0dp * (a0dp*(1+1.5*etasq+eeta*(4+etasq)) +
		0.75*ck2*tsi/psisq*con41*(8+3*etasq*(8+etasq)))
	c1 := bstar * c2

	c3 := 0.0
	if ecc > 1e-4 {
		a3ovk2 := -2 * grav.J3OverJ2
		c3 = coef * tsi * a3ovk2 * n0dp * sinio / ecc
	}

	c4 := 2 * n0dp * coef1 * a0dp * betao2 * (eta*(2+0.5*etasq) + ecc*(0.5+2*etasq) -
		2*ck2*tsi/(a0dp*psisq)*(-3*con41*(1-2*eeta+etasq*(1.5-0.5*eeta))+
			0.75*x1mth2*(2*etasq-eeta*(1+etasq))*math.Cos(2*argp)))
	c5 := 2 * coef1 * a0dp * betao2 * (1 + 2.75*(etasq+eeta) + eeta*etasq)

	// Step 8: secular rates and long-period shape coefficients.
	theta4 := theta2 * theta2
	temp1 := 3 * ck2 * pinvsq * n0dp
	temp2 := temp1 * ck2 * pinvsq
	temp3 := 1.25 * ck4 * pinvsq * pinvsq * n0dp

	mdot := n0dp + 0.5*temp1*betao*con41 + 0.0625*temp2*betao*(13-78*theta2+137*theta4)
	x1m5th := 1 - 5*theta2
	argpdot := -0.5*temp1*x1m5th + 0.0625*temp2*(7-114*theta2+395*theta4) +
		temp3*(3-36*theta2+49*theta4)
	xhdot1 := -temp1 * cosio
	nodedot := xhdot1 + (0.5*temp2*(4-19*theta2)+2*temp3*(3-7*theta2))*cosio
	nodecf := 3.5 * betao2 * xhdot1 * c1

	var xlcof float64
	if math.Abs(cosio+1) > 1.5e-12 {
		xlcof = -0.25 * grav.J3OverJ2 * sinio * (3 + 5*cosio) / (1 + cosio)
	} else {
		// Critical-inclination guard: cos(i) ~= -1 would divide by zero.
		xlcof = -0.25 * grav.J3OverJ2 * sinio * (3 + 5*cosio) / 1.5e-12
	}
	aycof := -0.5 * grav.J3OverJ2 * sinio

	delmo := math.Pow(1+eta*math.Cos(m0), 3)
	sinmao := math.Sin(m0)

	state := &PropagatorState{
		Gravity:        grav,
		IsSimplified:   isSimplified,
		N0DP:           n0dp,
		A0DP:           a0dp,
		InclinationRad: incl,
		RAANRad:        raan,
		Eccentricity:   ecc,
		ArgPerigeeRad:  argp,
		MeanAnomalyRad: m0,
		Bstar:          bstar,
		CosIO:          cosio,
		SinIO:          sinio,
		Con41:          con41,
		X1mth2:         x1mth2,
		X7thm1:         x7thm1,
		Aycof:          aycof,
		Xlcof:          xlcof,
		C1:             c1,
		C2:             c2,
		C3:             c3,
		C4:             c4,
		C5:             c5,
		Mdot:           mdot,
		Argpdot:        argpdot,
		Nodedot:        nodedot,
		Nodecf:         nodecf,
		Omgcof:         bstar * c3 * math.Cos(argp),
		Xmcof:          0,
		Delmo:          delmo,
		Sinmao:         sinmao,
		Eta:            eta,
	}
	if ecc > 1e-4 {
		state.Xmcof = -2.0 / 3.0 * coef * bstar / eeta
	}

	if !isSimplified {
		c1sq := c1 * c1
		d2 := 4 * a0dp * tsi * c1sq
		temp := d2 * tsi * c1 / 3.0
		d3 := (17*a0dp + s4) * temp
		d4 := 0.5 * temp * a0dp * tsi * (221*a0dp + 31*s4) * c1
		state.D2 = d2
		state.D3 = d3
		state.D4 = d4
		state.T2cof = 1.5 * c1
		state.T3cof = d2 + 2*c1sq
		state.T4cof = 0.25 * (3*d3 + c1*(12*d2+10*c1sq))
		state.T5cof = 0.2 * (3*d4 + 12*c1*d3 + 6*d2*d2 + 15*c1sq*(2*d2+c1sq))
	}

	periodMinutes := 2 * math.Pi / n0dp
	if periodMinutes >= deepSpacePeriodMinutes {
		state.Regime = DeepSpace
		ds, err := initDeepSpace(state, t)
		if err != nil {
			return nil, err
		}
		state.DeepSpace = ds
	} else {
		state.Regime = NearEarth
	}

	return state, nil
}
