package sgp4

import (
	"math"

	"github.com/anupshinde/sgp4/scalar"
	"github.com/anupshinde/sgp4/tle"
)

// Deep-space constants, shared between initialization (dscom/dsinit) and
// the per-step secular/resonance update (dpper/dspace).
const (
	zes    = 0.01675
	zel    = 0.05490
	c1ss   = 2.9864797e-6
	c1l    = 4.7968065e-7
	zsinis = 0.39785416
	zcosis = 0.91744867
	zcosgs = 0.1945905
	zsings = -0.98088458

	zns = 1.19459e-5
	znl = 1.5835218e-4

	q22    = 1.7891679e-6
	q31    = 2.1460748e-6
	q33    = 2.2123015e-7
	root22 = 1.7891679e-6
	root32 = 3.7393792e-7
	root44 = 7.3636953e-9
	root52 = 1.1428639e-7
	root54 = 2.1765803e-9

	// rptim is the earth's inertial rotation rate, radians per minute.
	rptim = 4.37526908801129966e-3

	// julianEpoch1950 is the Julian date of 1950 Jan 0.0 (1949 Dec 31, 0h UT), the day-count
	// origin used throughout the lunisolar argument formulas below.
	julianEpoch1950 = 2433281.5

	x2o3 = 2.0 / 3.0
)

// gstime returns Greenwich sidereal time, radians, at a Julian date.
func gstime(jdut1 float64) float64 {
	tut1 := (jdut1 - 2451545.0) / 36525.0
	temp := -6.2e-6*tut1*tut1*tut1 + 0.093104*tut1*tut1 +
		(876600.0*3600.0+8640184.812866)*tut1 + 67310.54841
	temp = scalar.NormalizeTwoPi(temp * deg2rad / 240.0)
	return temp
}

// initDeepSpace runs the lunisolar long-period setup (dscom) and the
// resonance classification and one-time integrator seed (dsinit) for a
// state already classified as deep-space by period. It mutates nothing on
// state; the caller assigns the returned block to state.DeepSpace.
func initDeepSpace(state *PropagatorState, t *tle.TLE) (*DeepSpaceElements, error) {
	jd := scalar.JulianDate(t.Epoch)
	epoch := jd - julianEpoch1950

	inclm := state.InclinationRad
	ecc := state.Eccentricity
	emsq := ecc * ecc
	betasq := 1 - emsq

	snodm, cnodm := math.Sin(state.RAANRad), math.Cos(state.RAANRad)
	sinomm, cosomm := math.Sin(state.ArgPerigeeRad), math.Cos(state.ArgPerigeeRad)
	sinim, cosim := math.Sin(inclm), math.Cos(inclm)
	rtemsq := math.Sqrt(betasq)

	day := epoch + 18261.5
	xnodce := scalar.NormalizeTwoPi(4.5236020 - 9.2422029e-4*day)
	stem, ctem := math.Sin(xnodce), math.Cos(xnodce)
	zcosil := 0.91375164 - 0.03568096*ctem
	zsinil := math.Sqrt(1 - zcosil*zcosil)
	zsinhl := 0.089683511 * stem / zsinil
	zcoshl := math.Sqrt(1 - zsinhl*zsinhl)
	gam := 5.8351514 + 0.0019443680*day
	zx := 0.39785416 * stem / zsinil
	zy := zcoshl*ctem + 0.91744867*zsinhl*stem
	zx = math.Atan2(zx, zy)
	zx = gam + zx - xnodce
	zcosgl, zsingl := math.Cos(zx), math.Sin(zx)

	zmol := scalar.NormalizeTwoPi(4.7199672 + 0.22997150*day - gam)
	zmos := scalar.NormalizeTwoPi(6.2565837 + 0.017201977*day)

	// Two passes: lsflg 1 for the sun, lsflg 2 for the moon, sharing the
	// same recurrence with different constants substituted in place.
	zcosg, zsing, zcosi, zsini := zcosgs, zsings, zcosis, zsinis
	zcosh, zsinh := cnodm, snodm
	cc := c1ss
	xnoi := 1.0 / state.N0DP

	var ss1, ss2, ss3, ss4, ss5, ss6, ss7 float64
	var sz1, sz3, sz11, sz13, sz21, sz23, sz31, sz33 float64
	var s1, s2, s3, s4, s5, s6, s7 float64
	var z1, z3, z11, z13, z21, z23, z31, z33 float64

	for pass := 1; pass <= 2; pass++ {
		a1 := zcosg*zcosh + zsing*zcosi*zsinh
		a3 := -zsing*zcosh + zcosg*zcosi*zsinh
		a7 := -zcosg*zsinh + zsing*zcosi*zcosh
		a8 := zsing * zsini
		a9 := zsing*zsinh + zcosg*zcosi*zcosh
		a10 := zcosg * zsini
		a2 := cosim*a7 + sinim*a8
		a4 := cosim*a9 + sinim*a10
		a5 := -sinim*a7 + cosim*a8
		a6 := -sinim*a9 + cosim*a10

		x1 := a1*cosomm + a2*sinomm
		x2 := a3*cosomm + a4*sinomm
		x3 := -a1*sinomm + a2*cosomm
		x4 := -a3*sinomm + a4*cosomm
		x5 := a5 * sinomm
		x6 := a6 * sinomm
		x7 := a5 * cosomm
		x8 := a6 * cosomm

		z31c := 12*x1*x1 - 3*x3*x3
		z32c := 24*x1*x2 - 6*x3*x4
		z33c := 12*x2*x2 - 3*x4*x4
		z1c := 3*(a1*a1+a2*a2) + z31c*emsq
		z2c := 6*(a1*a3+a2*a4) + z32c*emsq
		z3c := 3*(a3*a3+a4*a4) + z33c*emsq
		z11c := -6*a1*a5 + emsq*(-24*x1*x7-6*x3*x5)
		z13c := -6*a3*a6 + emsq*(-24*x2*x8-6*x4*x6)
		z21c := 6*a2*a5 + emsq*(24*x1*x5-6*x3*x7)
		z23c := 6*a4*a6 + emsq*(24*x2*x6-6*x4*x8)
		z1c = z1c + z1c + betasq*z31c
		z2c = z2c + z2c + betasq*z32c
		z3c = z3c + z3c + betasq*z33c

		s3c := cc * xnoi
		s2c := -0.5 * s3c / rtemsq
		s4c := s3c * rtemsq
		s1c := -15.0 * ecc * s4c
		s5c := x1*x3 + x2*x4
		s6c := x2*x3 + x1*x4
		s7c := x2*x4 - x1*x3

		if pass == 1 {
			ss1, ss2, ss3, ss4, ss5, ss6, ss7 = s1c, s2c, s3c, s4c, s5c, s6c, s7c
			sz1, sz3 = z1c, z3c
			sz11, sz13 = z11c, z13c
			sz21, sz23 = z21c, z23c
			sz31, sz33 = z31c, z33c

			zcosg, zsing, zcosi, zsini = zcosgl, zsingl, zcosil, zsinil
			zcosh = zcoshl*cnodm + zsinhl*snodm
			zsinh = snodm*zcoshl - cnodm*zsinhl
			cc = c1l
		} else {
			s1, s2, s3, s4, s5, s6, s7 = s1c, s2c, s3c, s4c, s5c, s6c, s7c
			z1, z3 = z1c, z3c
			z11, z13 = z11c, z13c
			z21, z23 = z21c, z23c
			z31, z33 = z31c, z33c
		}
	}

	ds := &DeepSpaceElements{
		Gsto: gstime(jd),
		Zmol: zmol,
		Zmos: zmos,

		Se2: 2 * ss1 * ss6,
		Se3: 2 * ss1 * ss7,
		Si2: 2 * ss2 * ss7,
		Si3: 2 * ss2 * ss6,
		Sl2: -2 * ss3 * ss7,
		Sl3: -2 * ss3 * ss6,
		Sl4: -2 * ss3 * ss7 * zmos,

		Sgh2: 2 * ss4 * ss7,
		Sgh3: 2 * ss4 * ss6,
		Sgh4: -18 * ss4 * ss2,
		Sh2:  -2 * ss2 * ss7,
		Sh3:  -2 * ss2 * ss6,

		Ee2: 2 * s1 * s6,
		E3:  2 * s1 * s7,
		Xi2: 2 * s2 * s7,
		Xi3: 2 * s2 * s6,
		Xl2: -2 * s3 * s7,
		Xl3: -2 * s3 * s6,
		Xl4: -2 * s3 * s7 * zmol,

		Xgh2: 2 * s4 * s7,
		Xgh3: 2 * s4 * s6,
		Xgh4: -18 * s4 * s2,
		Xh2:  -2 * s2 * s7,
		Xh3:  -2 * s2 * s6,
	}

	dsinit(state, ds, sinim, cosim, emsq, ss1, ss2, ss3, ss4, ss5, sz1, sz3,
		sz11, sz13, sz21, sz23, sz31, sz33, s1, s2, s3, s4, s5, z1, z3, z11, z13, z21, z23, z31, z33)

	return ds, nil
}

// dsinit classifies geopotential resonance and seeds the resonance
// integrator's initial libration variables, plus the mean-element secular
// rates applied at every propagation step (ds.Dedt etc). The ss* values
// are the solar dscom pass; the unprefixed s1..s5 are the lunar pass.
func dsinit(state *PropagatorState, ds *DeepSpaceElements,
	sinim, cosim, emsq,
	ss1, ss2, ss3, ss4, ss5,
	sz1, sz3, sz11, sz13, sz21, sz23, sz31, sz33,
	s1, s2, s3, s4, s5,
	z1, z3, z11, z13, z21, z23, z31, z33 float64) {

	ecc := state.Eccentricity
	inclm := state.InclinationRad
	argpo := state.ArgPerigeeRad
	mo := state.MeanAnomalyRad
	nodeo := state.RAANRad
	no := state.N0DP
	mdot := state.Mdot
	nodedot := state.Nodedot
	xpidot := state.Argpdot + state.Nodedot

	ds.ResonanceKind = ResonanceNone
	if no > 0.0034906585 && no < 0.0052359877 {
		ds.ResonanceKind = ResonanceSynchronous
	}
	if no >= 8.26e-3 && no <= 9.24e-3 && ecc >= 0.5 {
		ds.ResonanceKind = ResonanceSemiSynchronous
	}

	ses := ss1 * zns * ss5
	sis := ss2 * zns * (sz11 + sz13)
	sls := -zns * ss3 * (sz1 + sz3 - 14.0 - 6.0*emsq)
	sghs := ss4 * zns * (sz11 + sz13 - 6.0)
	shs := -zns * ss2 * (sz21 + sz23)
	if inclm < 5.2359877e-2 || inclm > math.Pi-5.2359877e-2 {
		shs = 0.0
	}
	if sinim != 0.0 {
		shs /= sinim
	}
	sgs := sghs - cosim*shs

	dedt := ses + s1*znl*s5
	didt := sis + s2*znl*(z11+z13)
	dmdt := sls - znl*s3*(z1+z3-14.0-6.0*emsq)
	sghl := s4 * znl * (z11 + z13 - 6.0)
	shll := -znl * s2 * (z21 + z23)
	if inclm < 5.2359877e-2 || inclm > math.Pi-5.2359877e-2 {
		shll = 0.0
	}
	domdt := sgs + sghl
	dnodt := shs
	if sinim != 0.0 {
		domdt -= cosim / sinim * shll
		dnodt += shll / sinim
	}

	ds.Dedt = dedt
	ds.Didt = didt
	ds.Dmdt = dmdt
	ds.Dnodt = dnodt
	ds.Domdt = domdt
	ds.Dndt = 0.0

	theta := scalar.NormalizeTwoPi(ds.Gsto)

	if ds.ResonanceKind == ResonanceNone {
		ds.Xli0 = 0
		ds.Xni0 = no
		ds.Xnq = no
		return
	}

	aonv := math.Pow(no/state.Gravity.XKE, x2o3)

	if ds.ResonanceKind == ResonanceSemiSynchronous {
		cosisq := cosim * cosim
		eoc := ecc * emsq
		g201 := -0.306 - (ecc-0.64)*0.440

		var g211, g310, g322, g410, g422, g520 float64
		if ecc <= 0.65 {
			g211 = 3.616 - 13.2470*ecc + 16.2900*emsq
			g310 = -19.302 + 117.3900*ecc - 228.4190*emsq + 156.5910*eoc
			g322 = -18.9068 + 109.7927*ecc - 214.6334*emsq + 146.5816*eoc
			g410 = -41.122 + 242.6940*ecc - 471.0940*emsq + 313.9530*eoc
			g422 = -146.407 + 841.8800*ecc - 1629.014*emsq + 1083.4350*eoc
			g520 = -532.114 + 3017.977*ecc - 5740.032*emsq + 3708.2760*eoc
		} else {
			g211 = -72.099 + 331.819*ecc - 508.738*emsq + 266.724*eoc
			g310 = -346.844 + 1582.851*ecc - 2415.925*emsq + 1246.113*eoc
			g322 = -342.585 + 1554.908*ecc - 2366.899*emsq + 1215.972*eoc
			g410 = -1052.797 + 4758.686*ecc - 7193.992*emsq + 3651.957*eoc
			g422 = -3581.690 + 16178.110*ecc - 24462.770*emsq + 12422.520*eoc
			if ecc > 0.715 {
				g520 = -5149.66 + 29936.92*ecc - 54087.36*emsq + 31324.56*eoc
			} else {
				g520 = 1464.74 - 4664.75*ecc + 3763.64*emsq
			}
		}

		var g533, g521, g532 float64
		if ecc < 0.7 {
			g533 = -919.22770 + 4988.6100*ecc - 9064.7700*emsq + 5542.21*eoc
			g521 = -822.71072 + 4568.6173*ecc - 8491.4146*emsq + 5337.524*eoc
			g532 = -853.66600 + 4690.2500*ecc - 8624.7700*emsq + 5341.4*eoc
		} else {
			g533 = -37995.780 + 161616.52*ecc - 229838.20*emsq + 109377.94*eoc
			g521 = -51752.104 + 218913.95*ecc - 309468.16*emsq + 146349.42*eoc
			g532 = -40023.880 + 170470.89*ecc - 242699.48*emsq + 115605.82*eoc
		}

		sini2 := sinim * sinim
		f220 := 0.75 * (1 + 2*cosim + cosisq)
		f221 := 1.5 * sini2
		f321 := 1.875 * sinim * (1 - 2*cosim - 3*cosisq)
		f322 := -1.875 * sinim * (1 + 2*cosim - 3*cosisq)
		f441 := 35.0 * sini2 * f220
		f442 := 39.3750 * sini2 * sini2
		f522 := 9.84375 * sinim * (sini2*(1-2*cosim-5*cosisq) + 0.33333333*(-2+4*cosim+6*cosisq))
		f523 := sinim * (4.92187512*sini2*(-2-4*cosim+10*cosisq) + 6.56250012*(1+2*cosim-3*cosisq))
		f542 := 29.53125 * sinim * (2 - 8*cosim + cosisq*(-12+8*cosim+10*cosisq))
		f543 := 29.53125 * sinim * (-2 - 8*cosim + cosisq*(12+8*cosim-10*cosisq))

		xno2 := no * no
		ainv2 := aonv * aonv
		temp1 := 3 * xno2 * ainv2
		temp := temp1 * root22
		ds.D2201 = temp * f220 * g201
		ds.D2211 = temp * f221 * g211
		temp1 *= aonv
		temp = temp1 * root32
		ds.D3210 = temp * f321 * g310
		ds.D3222 = temp * f322 * g322
		temp1 *= aonv
		temp = temp1 * root44
		ds.D4410 = temp * f441 * g410
		ds.D4422 = temp * f442 * g422
		temp1 *= aonv
		temp = temp1 * root52
		ds.D5220 = temp * f522 * g520
		ds.D5232 = temp * f523 * g532
		temp = 2 * temp1 * root54
		ds.D5421 = temp * f542 * g521
		ds.D5433 = temp * f543 * g533

		ds.Xlamo = scalar.NormalizeTwoPi(mo + nodeo + nodeo - theta - theta)
		ds.Xfact = mdot + dmdt + 2*(nodedot+dnodt-rptim) - no
	} else {
		g200 := 1 + emsq*(-2.5+0.8125*emsq)
		g310 := 1 + 2*emsq
		g300 := 1 + emsq*(-6.0+6.60937*emsq)
		f220 := 0.75 * (1 + cosim) * (1 + cosim)
		f311 := 0.9375*sinim*sinim*(1+3*cosim) - 0.75*(1+cosim)
		f330 := 1 + cosim
		f330 = 1.875 * f330 * f330 * f330

		del1 := 3 * no * no * aonv * aonv
		del2 := 2 * del1 * f220 * g200 * q22
		del3 := 3 * del1 * f330 * g300 * q33 * aonv
		del1 = del1 * f311 * g310 * q31 * aonv

		ds.Del1 = del1
		ds.Del2 = del2
		ds.Del3 = del3
		ds.Xlamo = scalar.NormalizeTwoPi(mo + nodeo + argpo - theta)
		ds.Xfact = mdot + xpidot - rptim + dmdt + domdt + dnodt - no
	}

	ds.Xli0 = ds.Xlamo
	ds.Xni0 = no
	ds.Xnq = no
}
