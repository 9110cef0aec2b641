package sgp4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anupshinde/sgp4/gravity"
	"github.com/anupshinde/sgp4/tle"
)

// vanguard1 is the classic NORAD catalog 00005 test vector: a moderately
// eccentric (e ~= 0.186) near-earth orbit (period ~133 min) used throughout
// the SGP4 literature.
const (
	vanguard1Line1 = "1 00005U 58002B   00179.78495062  .00000023  00000-0  28098-4 0  4753"
	vanguard1Line2 = "2 00005  34.2682 348.7242 1859667 331.7664  19.3264 10.82419157413667"
)

func mustDecode(t *testing.T, line1, line2 string) *tle.TLE {
	t.Helper()
	rec, err := tle.Decode("VANGUARD 1", line1, line2)
	require.NoError(t, err)
	return rec
}

func TestNewPropagatorClassifiesNearEarth(t *testing.T) {
	rec := mustDecode(t, vanguard1Line1, vanguard1Line2)
	state, err := NewPropagator(rec, gravity.WGS72())
	require.NoError(t, err)
	assert.Equal(t, NearEarth, state.Regime)
	assert.Nil(t, state.DeepSpace)
}

func TestPropagateNearEarthAtEpochIsPhysicallyPlausible(t *testing.T) {
	rec := mustDecode(t, vanguard1Line1, vanguard1Line2)
	state, err := NewPropagator(rec, gravity.WGS72())
	require.NoError(t, err)

	result, err := state.Propagate(0)
	require.NoError(t, err)

	r := result.Position.Magnitude()
	assert.Greater(t, r, 6600.0, "position should clear the earth's surface by a plausible margin")
	assert.Less(t, r, 10800.0, "position should stay within Vanguard 1's known apogee range")

	v := result.Velocity.Magnitude()
	assert.Greater(t, v, 5.0)
	assert.Less(t, v, 9.0)
}

func TestPropagateNearEarthAdvancesWithTime(t *testing.T) {
	rec := mustDecode(t, vanguard1Line1, vanguard1Line2)
	state, err := NewPropagator(rec, gravity.WGS72())
	require.NoError(t, err)

	first, err := state.Propagate(0)
	require.NoError(t, err)
	second, err := state.Propagate(30)
	require.NoError(t, err)

	assert.NotEqual(t, first.Position, second.Position)
	assert.True(t, second.Position.Finite())
	assert.True(t, second.Velocity.Finite())
}

func TestPropagateOnDeepSpaceStateRequiresCache(t *testing.T) {
	state := geoSyncState(t)
	_, err := state.Propagate(10)
	assert.Error(t, err)
}

func TestPropagateWithCacheDeepSpaceProducesFiniteState(t *testing.T) {
	state := geoSyncState(t)
	cache := NewResonanceCache()

	result, err := state.PropagateWithCache(cache, 500)
	require.NoError(t, err)
	assert.True(t, result.Position.Finite())
	assert.True(t, result.Velocity.Finite())

	r := result.Position.Magnitude()
	assert.Greater(t, r, 30000.0, "a ~24h orbit should be near geosynchronous radius")
	assert.Less(t, r, 60000.0)
}

func TestResonanceCacheResetsOnDirectionReversal(t *testing.T) {
	state := geoSyncState(t)
	cache := NewResonanceCache()

	_, err := state.PropagateWithCache(cache, 1500)
	require.NoError(t, err)
	assert.True(t, cache.started)
	firstTlast := cache.tlast

	_, err = state.PropagateWithCache(cache, 100)
	require.NoError(t, err)
	assert.NotEqual(t, firstTlast, cache.tlast, "stepping backward across the last integrated time should reseed the integrator")
}

func TestNewPropagatorRejectsBadEccentricity(t *testing.T) {
	rec := mustDecode(t, vanguard1Line1, vanguard1Line2)
	rec.Eccentricity = 1.2
	_, err := NewPropagator(rec, gravity.WGS72())
	require.Error(t, err)
	var target *BadEccentricityError
	assert.ErrorAs(t, err, &target)
}

// geoSyncState builds a synthetic geosynchronous-resonant TLE: mean motion
// equal to earth's sidereal rate, near-circular (e = 0.0001), classifying as
// deep-space/synchronous.
func geoSyncState(t *testing.T) *PropagatorState {
	t.Helper()
	const line1 = "1 99999U 24001A   24001.00000000  .00000000  00000-0  00000-0 0  0009"
	const line2 = "2 99999  10.0000 100.0000 0001000  50.0000  80.0000  1.00273791000054"
	rec := mustDecode(t, line1, line2)
	state, err := NewPropagator(rec, gravity.WGS72())
	require.NoError(t, err)
	require.Equal(t, DeepSpace, state.Regime)
	require.NotNil(t, state.DeepSpace)
	return state
}
