package sgp4

import "math"

const (
	stepp = 720.0
	stepn = -720.0
)

// dpper applies the lunisolar long-period periodic corrections to the mean
// elements at time t (minutes since epoch), returning the corrected
// (ep, xincp, nodep, argpp, mp). It is invoked once per propagation call on
// deep-space states, after dspace's secular/resonance update.
func dpper(state *PropagatorState, t, ep, xincp, nodep, argpp, mp float64) (float64, float64, float64, float64, float64) {
	ds := state.DeepSpace

	zm := ds.Zmos + zns*t
	zf := zm + 2*zes*math.Sin(zm)
	sinzf := math.Sin(zf)
	f2 := 0.5*sinzf*sinzf - 0.25
	f3 := -0.5 * sinzf * math.Cos(zf)
	ses := ds.Se2*f2 + ds.Se3*f3
	sis := ds.Si2*f2 + ds.Si3*f3
	sls := ds.Sl2*f2 + ds.Sl3*f3 + ds.Sl4*sinzf
	sghs := ds.Sgh2*f2 + ds.Sgh3*f3 + ds.Sgh4*sinzf
	shs := ds.Sh2*f2 + ds.Sh3*f3

	zm = ds.Zmol + znl*t
	zf = zm + 2*zel*math.Sin(zm)
	sinzf = math.Sin(zf)
	f2 = 0.5*sinzf*sinzf - 0.25
	f3 = -0.5 * sinzf * math.Cos(zf)
	sel := ds.Ee2*f2 + ds.E3*f3
	sil := ds.Xi2*f2 + ds.Xi3*f3
	sll := ds.Xl2*f2 + ds.Xl3*f3 + ds.Xl4*sinzf
	sghl := ds.Xgh2*f2 + ds.Xgh3*f3 + ds.Xgh4*sinzf
	shll := ds.Xh2*f2 + ds.Xh3*f3

	pe := ses + sel
	pinc := sis + sil
	pl := sls + sll
	pgh := sghs + sghl
	ph := shs + shll

	xincp = xincp + pinc
	ep = ep + pe
	sinip := math.Sin(xincp)
	cosip := math.Cos(xincp)

	if xincp >= 0.2 {
		ph /= sinip
		pgh -= cosip * ph
		argpp += pgh
		nodep += ph
		mp += pl
		return ep, xincp, nodep, argpp, mp
	}

	sinop := math.Sin(nodep)
	cosop := math.Cos(nodep)
	alfdp := sinip*sinop + ph*cosop + pinc*cosip*sinop
	betdp := sinip*cosop - ph*sinop + pinc*cosip*cosop
	nodep = wrapAngle(nodep)

	xls := mp + argpp + cosip*nodep
	dls := pl + pgh - pinc*nodep*sinip
	xls += dls
	xnoh := nodep
	nodep = math.Atan2(alfdp, betdp)
	if math.Abs(xnoh-nodep) > math.Pi {
		if nodep < xnoh {
			nodep += 2 * math.Pi
		} else {
			nodep -= 2 * math.Pi
		}
	}
	mp += pl
	argpp = xls - mp - cosip*nodep

	return ep, xincp, nodep, argpp, mp
}

// dspace applies the secular lunisolar rates and, for resonant orbits, the
// Vallado/Hoots geopotential resonance integrator, using and updating the
// per-sequence cache's libration variables. Direction reversal (a request
// for t closer to epoch than the cache's last integrated time, or a sign flip)
// resets the integrator to its epoch seed rather than attempting to
// integrate backward, per this package's isolation contract for
// ResonanceCache.
func dspace(state *PropagatorState, cache *ResonanceCache, t, em, inclm, argpm, nodem, mm, nm float64) (float64, float64, float64, float64, float64, float64) {
	ds := state.DeepSpace
	theta := wrapAngle(ds.Gsto + t*rptim)

	em += ds.Dedt * t
	inclm += ds.Didt * t
	argpm += ds.Domdt * t
	nodem += ds.Dnodt * t
	mm += ds.Dmdt * t

	if ds.ResonanceKind == ResonanceNone {
		return em, inclm, argpm, nodem, mm, nm
	}

	if !cache.started || t*cache.tlast <= 0 || math.Abs(t) < math.Abs(cache.tlast) {
		cache.tlast = 0
		cache.xni = state.N0DP
		cache.xli = ds.Xlamo
		cache.started = true
	}

	delt := stepn
	if t > 0 {
		delt = stepp
	}

	const (
		fasx2 = 0.13130908
		fasx4 = 2.8843198
		fasx6 = 0.37448087
		g22   = 5.7686396
		g32   = 0.95240898
		g44   = 1.8014998
		g52   = 1.0508330
		g54   = 4.4108898
		step2 = 259200.0
	)

	atime := cache.tlast
	xli := cache.xli
	xni := cache.xni

	for {
		var xndt, xnddt, xldot float64
		if ds.ResonanceKind == ResonanceSemiSynchronous {
			xomi := state.ArgPerigeeRad + state.Argpdot*atime
			x2omi := xomi + xomi
			x2li := xli + xli
			xndt = ds.D2201*math.Sin(x2omi+xli-g22) + ds.D2211*math.Sin(xli-g22) +
				ds.D3210*math.Sin(xomi+xli-g32) + ds.D3222*math.Sin(-xomi+xli-g32) +
				ds.D4410*math.Sin(x2omi+x2li-g44) + ds.D4422*math.Sin(x2li-g44) +
				ds.D5220*math.Sin(xomi+xli-g52) + ds.D5232*math.Sin(-xomi+xli-g52) +
				ds.D5421*math.Sin(xomi+x2li-g54) + ds.D5433*math.Sin(-xomi+x2li-g54)
			xldot = xni + ds.Xfact
			xnddt = ds.D2201*math.Cos(x2omi+xli-g22) + ds.D2211*math.Cos(xli-g22) +
				ds.D3210*math.Cos(xomi+xli-g32) + ds.D3222*math.Cos(-xomi+xli-g32) +
				ds.D5220*math.Cos(xomi+xli-g52) + ds.D5232*math.Cos(-xomi+xli-g52) +
				2.0*(ds.D4410*math.Cos(x2omi+x2li-g44)+ds.D4422*math.Cos(x2li-g44)+
					ds.D5421*math.Cos(xomi+x2li-g54)+ds.D5433*math.Cos(-xomi+x2li-g54))
			xnddt *= xldot
		} else {
			xndt = ds.Del1*math.Sin(xli-fasx2) + ds.Del2*math.Sin(2*(xli-fasx4)) + ds.Del3*math.Sin(3*(xli-fasx6))
			xldot = xni + ds.Xfact
			xnddt = ds.Del1*math.Cos(xli-fasx2) + 2*ds.Del2*math.Cos(2*(xli-fasx4)) + 3*ds.Del3*math.Cos(3*(xli-fasx6))
			xnddt *= xldot
		}

		if math.Abs(t-atime) >= stepp {
			xli += xldot*delt + xndt*step2
			xni += xndt*delt + xnddt*step2
			atime += delt
			continue
		}

		ft := t - atime
		nmOut := xni + xndt*ft + xnddt*0.5*ft*ft
		xl := xli + xldot*ft + xndt*0.5*ft*ft
		if ds.ResonanceKind == ResonanceSynchronous {
			mm = xl - nodem - argpm + theta
		} else {
			mm = xl - 2*nodem + 2*theta
		}
		dndt := nmOut - state.N0DP
		nm = state.N0DP + dndt

		cache.tlast = atime
		cache.xli = xli
		cache.xni = xni
		break
	}

	return em, inclm, argpm, nodem, mm, nm
}
