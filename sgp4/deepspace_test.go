package sgp4

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anupshinde/sgp4/gravity"
)

func TestGstimeIsNormalized(t *testing.T) {
	for _, jd := range []float64{2451545.0, 2433281.5, 2460000.0, 2400000.0} {
		g := gstime(jd)
		assert.GreaterOrEqual(t, g, 0.0)
		assert.Less(t, g, 2*math.Pi)
	}
}

func TestNewPropagatorClassifiesSemiSynchronousResonance(t *testing.T) {
	// Molniya-class orbit: 12h period, high eccentricity, critical
	// inclination. Falls in the semi-synchronous resonance band.
	const line1 = "1 00005U 58002B   00179.78495062  .00000023  00000-0  28098-4 0  4753"
	const line2 = "2 00005  63.4000 348.7242 6000000 331.7664  19.3264  2.00500000413667"
	rec := mustDecode(t, line1, line2)
	state, err := NewPropagator(rec, gravity.WGS72())
	require.NoError(t, err)
	require.Equal(t, DeepSpace, state.Regime)
	require.NotNil(t, state.DeepSpace)
	assert.Equal(t, ResonanceSemiSynchronous, state.DeepSpace.ResonanceKind)
	assert.NotEqual(t, 0.0, state.DeepSpace.D2201)
}

func TestPropagateSemiSynchronousProducesFiniteState(t *testing.T) {
	const line1 = "1 00005U 58002B   00179.78495062  .00000023  00000-0  28098-4 0  4753"
	const line2 = "2 00005  63.4000 348.7242 6000000 331.7664  19.3264  2.00500000413667"
	rec := mustDecode(t, line1, line2)
	state, err := NewPropagator(rec, gravity.WGS72())
	require.NoError(t, err)

	cache := NewResonanceCache()
	for _, dt := range []float64{0, 100, 400, 719, 721, 1500} {
		result, err := state.PropagateWithCache(cache, dt)
		require.NoError(t, err, "dt=%v", dt)
		assert.True(t, result.Position.Finite())
		assert.True(t, result.Velocity.Finite())
	}
}

func TestDpperAvoidsSingularityNearZeroInclination(t *testing.T) {
	state := geoSyncState(t)
	// Force a near-zero inclination to exercise the alfdp/betdp branch.
	ep, xincp, nodep, argpp, mp := dpper(state, 100, 0.001, 0.05, 0.2, 0.3, 0.4)
	for _, v := range []float64{ep, xincp, nodep, argpp, mp} {
		assert.False(t, math.IsNaN(v))
		assert.False(t, math.IsInf(v, 0))
	}
}

func TestDpperHighInclinationDirectBranch(t *testing.T) {
	state := geoSyncState(t)
	ep, xincp, nodep, argpp, mp := dpper(state, 100, 0.1, 1.0, 0.2, 0.3, 0.4)
	for _, v := range []float64{ep, xincp, nodep, argpp, mp} {
		assert.False(t, math.IsNaN(v))
		assert.False(t, math.IsInf(v, 0))
	}
}
