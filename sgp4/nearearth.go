package sgp4

import (
	"math"

	"github.com/pkg/errors"

	"github.com/anupshinde/sgp4/internal/rotation"
	"github.com/anupshinde/sgp4/vector3"
)

// propagateCore implements steps A-F of the near-earth update, shared by
// both regimes: secular gravity and drag, long-period Lyddane periodics,
// Kepler's equation, and the short-period/orientation assembly. Deep-space
// states additionally route through dspace (resonance integration) and
// dpper (lunisolar periodics) in the Regime == DeepSpace branches below; cache is nil
// for near-earth states and must be non-nil for deep-space ones.
func propagateCore(state *PropagatorState, cache *ResonanceCache, tsince float64) (SatelliteState, error) {
	t := tsince

	xmdf := state.MeanAnomalyRad + state.Mdot*t
	argpdf := state.ArgPerigeeRad + state.Argpdot*t
	nodedf := state.RAANRad + state.Nodedot*t
	argpm := argpdf
	mm := xmdf
	t2 := t * t
	nodem := nodedf + state.Nodecf*t2
	tempa := 1 - state.C1*t
	tempe := state.Bstar * state.C4 * t
	templ := state.T2cof * t2

	if !state.IsSimplified {
		delomg := state.Omgcof * t
		delmtemp := 1 + state.Eta*math.Cos(xmdf)
		delm := state.Xmcof * (delmtemp*delmtemp*delmtemp - state.Delmo)
		temp := delomg + delm
		mm = xmdf + temp
		argpm = argpdf - temp
		t3 := t2 * t
		t4 := t3 * t
		tempa = tempa - state.D2*t2 - state.D3*t3 - state.D4*t4
		tempe = tempe + state.Bstar*state.C5*(math.Sin(mm)-state.Sinmao)
		templ = templ + state.T3cof*t3 + t4*(state.T4cof+t*state.T5cof)
	}

	nm := state.N0DP
	em := state.Eccentricity
	inclm := state.InclinationRad

	if state.Regime == DeepSpace {
		if cache == nil {
			return SatelliteState{}, errors.New("sgp4: deep-space propagation requires a ResonanceCache")
		}
		em, inclm, argpm, nodem, mm, nm = dspace(state, cache, t, em, inclm, argpm, nodem, mm, nm)
	}

	if nm <= 0 {
		return SatelliteState{}, errors.WithStack(&DecayedError{Reason: "non-positive mean motion", Detail: nm})
	}

	am := math.Pow(state.Gravity.XKE/nm, x2o3) * tempa * tempa
	nm = state.Gravity.XKE / math.Pow(am, 1.5)
	em = em - tempe

	if em > 0.999 || em < 0 {
		return SatelliteState{}, errors.WithStack(&DecayedError{Reason: "eccentricity out of range during propagation", Detail: em})
	}
	if am < 0.95 {
		return SatelliteState{}, errors.WithStack(&DecayedError{Reason: "semi-major axis below 0.95 earth radii", Detail: am})
	}
	if em < 1e-6 {
		em = 1e-6
	}

	mm = mm + state.N0DP*templ
	xlm := mm + argpm + nodem

	nodem = wrapAngle(nodem)
	argpm = wrapAngle(argpm)
	xlm = wrapAngle(xlm)
	mm = wrapAngle(xlm - argpm - nodem)

	sinim := math.Sin(inclm)
	cosim := math.Cos(inclm)

	ep := em
	xincp := inclm
	argpp := argpm
	nodep := nodem
	mp := mm
	sinip := sinim
	cosip := cosim

	if state.Regime == DeepSpace {
		ep, xincp, nodep, argpp, mp = dpper(state, t, ep, xincp, nodep, argpp, mp)
		if xincp < 0 {
			xincp = -xincp
			nodep += math.Pi
			argpp -= math.Pi
		}
		sinip = math.Sin(xincp)
		cosip = math.Cos(xincp)
	}

	if ep < 0 || ep > 1 {
		return SatelliteState{}, errors.WithStack(&DecayedError{Reason: "eccentricity out of range after periodics", Detail: ep})
	}

	aycof := state.Aycof
	xlcof := state.Xlcof
	if state.Regime == DeepSpace {
		aycof = -0.5 * state.Gravity.J3OverJ2 * sinip
		if math.Abs(cosip+1) > 1.5e-12 {
			xlcof = -0.25 * state.Gravity.J3OverJ2 * sinip * (3 + 5*cosip) / (1 + cosip)
		} else {
			xlcof = -0.25 * state.Gravity.J3OverJ2 * sinip * (3 + 5*cosip) / 1.5e-12
		}
	}

	axnl := ep * math.Cos(argpp)
	temp := 1.0 / (am * (1 - ep*ep))
	aynl := ep*math.Sin(argpp) + temp*aycof
	xl := mp + argpp + nodep + temp*xlcof*axnl

	u := wrapAngle(xl - nodep)
	eo1 := solveKepler(u, axnl, aynl)

	coseo1, sineo1 := math.Cos(eo1), math.Sin(eo1)
	ecose := axnl*coseo1 + aynl*sineo1
	esine := axnl*sineo1 - aynl*coseo1
	el2 := axnl*axnl + aynl*aynl
	pl := am * (1 - el2)
	if pl < 0 {
		return SatelliteState{}, errors.WithStack(&DecayedError{Reason: "negative semi-latus rectum", Detail: pl})
	}

	rl := am * (1 - ecose)
	rdotl := math.Sqrt(am) * esine / rl
	rvdotl := math.Sqrt(pl) / rl
	betal := math.Sqrt(1 - el2)
	temp = esine / (1 + betal)
	sinu := am / rl * (sineo1 - aynl - axnl*temp)
	cosu := am / rl * (coseo1 - axnl + aynl*temp)
	su := math.Atan2(sinu, cosu)
	sin2u := (cosu + cosu) * sinu
	cos2u := 1 - 2*sinu*sinu
	temp = 1.0 / pl
	temp1 := 0.5 * state.Gravity.J2 * temp
	temp2 := temp1 * temp

	con41 := state.Con41
	x1mth2 := state.X1mth2
	x7thm1 := state.X7thm1
	if state.Regime == DeepSpace {
		cosisq := cosip * cosip
		con41 = 3*cosisq - 1
		x1mth2 = 1 - cosisq
		x7thm1 = 7*cosisq - 1
	}

	mrt := rl*(1-1.5*temp2*betal*con41) + 0.5*temp1*x1mth2*cos2u
	su = su - 0.25*temp2*x7thm1*sin2u
	xnode := nodep + 1.5*temp2*cosip*sin2u
	xinc := xincp + 1.5*temp2*cosip*sinip*cos2u
	mvt := rdotl - nm*temp1*x1mth2*sin2u/state.Gravity.XKE
	rvdot := rvdotl + nm*temp1*(x1mth2*cos2u+1.5*con41)/state.Gravity.XKE

	sinsu, cossu := math.Sin(su), math.Cos(su)

	// The radial (u) and transverse (v) unit vectors live in the orbit
	// plane at argument of latitude su; su already folds in argpp, so the
	// rotation below carries only node and inclination.
	orient := rotation.PerifocalToTEME(xnode, xinc, 0)
	uVec := rotation.Rotate(orient, vector3.New(cossu, sinsu, 0))
	vVec := rotation.Rotate(orient, vector3.New(-sinsu, cossu, 0))

	re := state.Gravity.EarthRadiusKm
	vkmpersec := re * state.Gravity.XKE / 60.0

	pos := uVec.Scale(mrt * re)
	vel := uVec.Scale(mvt * vkmpersec).Add(vVec.Scale(rvdot * vkmpersec))

	if !pos.Finite() || !vel.Finite() {
		return SatelliteState{}, errors.WithStack(&DecayedError{Reason: "non-finite propagated state", Detail: mrt})
	}

	return SatelliteState{Position: pos, Velocity: vel, MinutesSinceEpoch: tsince}, nil
}
