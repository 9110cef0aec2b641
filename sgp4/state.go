package sgp4

import (
	"github.com/anupshinde/sgp4/gravity"
	"github.com/anupshinde/sgp4/vector3"
)

// Regime classifies a PropagatorState as near-earth (SGP4) or deep-space
// (SGP4 + SDP4 corrections), per orbital period against the 225-minute
// threshold.
type Regime int

const (
	NearEarth Regime = iota
	DeepSpace
)

func (r Regime) String() string {
	if r == DeepSpace {
		return "deep-space"
	}
	return "near-earth"
}

// ResonanceKind classifies a deep-space orbit's geopotential resonance.
type ResonanceKind int

const (
	ResonanceNone ResonanceKind = iota
	ResonanceSemiSynchronous
	ResonanceSynchronous
)

func (k ResonanceKind) String() string {
	switch k {
	case ResonanceSemiSynchronous:
		return "semi_synchronous"
	case ResonanceSynchronous:
		return "synchronous"
	default:
		return "none"
	}
}

// DeepSpaceElements holds the lunisolar periodic and resonance
// pre-integration block computed by dscom/dsinit when a PropagatorState's
// orbital period is >= 225 minutes. It is nil on near-earth states.
type DeepSpaceElements struct {
	// Gsto is Greenwich sidereal time at the TLE epoch, radians.
	Gsto float64

	// Epoch lunar/solar mean longitudes, used to extrapolate sun/moon
	// arguments at arbitrary Δt in dpper.
	Zmol, Zmos float64

	// Solar long-period coefficients.
	Se2, Se3, Si2, Si3, Sl2, Sl3, Sl4, Sgh2, Sgh3, Sgh4, Sh2, Sh3 float64

	// Lunar long-period coefficients.
	Ee2, E3, Xi2, Xi3, Xl2, Xl3, Xl4, Xgh2, Xgh3, Xgh4, Xh2, Xh3 float64

	ResonanceKind ResonanceKind

	// 12-hour (semi-synchronous) resonance coefficients, scaled by 1e-5.
	D2201, D2211, D3210, D3222, D4410, D4422, D5220, D5232, D5421, D5433 float64

	// 24-hour (synchronous) resonance coefficients.
	Del1, Del2, Del3, Xfact float64

	// Initial resonance integration variables.
	Xli0, Xni0, Xlamo float64

	// Recovered mean motion at epoch (equal to N0DP). dspace does not read
	// it; the resonance integrator seeds from PropagatorState.N0DP.
	Xnq float64

	// Lunisolar secular rates applied to the mean elements at every Δt,
	// computed once at initialization by dsinit.
	Dedt, Didt, Dmdt, Dnodt, Domdt, Dndt float64
}

// PropagatorState is the immutable result of initializing a TLE against a
// gravity model. It owns no mutable data; a deep-space propagation
// sequence additionally carries a *ResonanceCache, constructed separately
// per the isolation contract documented on ResonanceCache.
type PropagatorState struct {
	Gravity gravity.Model
	Regime  Regime

	// IsSimplified is true when recovered perigee altitude < 220 km: the
	// drag model drops d2..d4/t3cof../omgcof/xmcof terms.
	IsSimplified bool

	// Recovered Brouwer mean elements.
	N0DP          float64 // recovered mean motion, rad/min
	A0DP          float64 // recovered semi-major axis, earth radii
	InclinationRad float64
	RAANRad        float64
	Eccentricity   float64
	ArgPerigeeRad  float64
	MeanAnomalyRad float64
	Bstar          float64

	// Trigonometrics of inclination.
	CosIO, SinIO float64

	// J2/J3 shape coefficients.
	Con41   float64 // 3cos^2(i) - 1
	X1mth2  float64 // 1 - cos^2(i)
	X7thm1  float64 // 7cos^2(i) - 1
	Aycof   float64
	Xlcof   float64

	// Drag coefficients.
	C1, C2, C3, C4, C5 float64
	D2, D3, D4         float64
	T2cof, T3cof, T4cof, T5cof float64

	// Secular rates, per minute.
	Mdot    float64
	Argpdot float64
	Nodedot float64
	Nodecf  float64

	// Drag bookkeeping.
	Omgcof float64
	Xmcof  float64
	Delmo  float64
	Sinmao float64

	// Eta is the drag shape parameter a0dp*e/(a0dp - s); retained because
	// the full (non-simplified) drag branch in Step A reuses it.
	Eta float64

	DeepSpace *DeepSpaceElements
}

// ResonanceCache holds the mutable integration variables for a deep-space
// resonance propagation sequence. It must never be shared across concurrent
// propagation sequences for the same satellite; each consumer constructs its
// own via NewResonanceCache.
type ResonanceCache struct {
	xli, xni float64
	tlast    float64
	lastStep float64
	started  bool
}

// SatelliteState is a propagated TEME position/velocity pair.
type SatelliteState struct {
	Position          vector3.Vector3 // km
	Velocity          vector3.Vector3 // km/s
	MinutesSinceEpoch float64
}
