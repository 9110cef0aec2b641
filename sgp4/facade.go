package sgp4

import "github.com/pkg/errors"

// NewResonanceCache constructs a fresh resonance integrator cache for a
// deep-space propagation sequence. Each logical sequence of calls against
// the same satellite (e.g. stepping forward through a pass) should use one
// cache; concurrent sequences must each construct their own.
func NewResonanceCache() *ResonanceCache {
	return &ResonanceCache{}
}

// Propagate computes TEME position (km) and velocity (km/s) at
// minutesSinceEpoch minutes after the TLE epoch. It is a pure function of
// its arguments for near-earth states. Deep-space states carry resonance
// integration state across calls and must use PropagateWithCache instead.
func (state *PropagatorState) Propagate(minutesSinceEpoch float64) (SatelliteState, error) {
	if state.Regime == DeepSpace {
		return SatelliteState{}, errors.New("sgp4: deep-space state requires PropagateWithCache")
	}
	return propagateCore(state, nil, minutesSinceEpoch)
}

// PropagateWithCache computes TEME position and velocity for a deep-space
// state, threading the resonance integrator's libration variables through
// cache. A request for a minutesSinceEpoch closer to epoch than, or on the
// opposite side of epoch from, the cache's last integrated time resets the
// integrator to its epoch seed instead of integrating backward.
func (state *PropagatorState) PropagateWithCache(cache *ResonanceCache, minutesSinceEpoch float64) (SatelliteState, error) {
	return propagateCore(state, cache, minutesSinceEpoch)
}
