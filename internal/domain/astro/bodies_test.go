package astro

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBody(t *testing.T) {
	body, ok := ParseBody("Pluto")
	require.True(t, ok)
	require.Equal(t, Pluto, body)

	_, ok = ParseBody("Ceres")
	require.False(t, ok)
}

func TestLongitudeSetSetNormalizes(t *testing.T) {
	var set LongitudeSet
	set.Set(Mars, 400)
	require.InDelta(t, 40, set.Get(Mars), 1e-9)
	set.Set(Venus, -30)
	require.InDelta(t, 330, set.Get(Venus), 1e-9)
}

func TestLongitudeSetJSON(t *testing.T) {
	var set LongitudeSet
	for i, body := range Bodies() {
		set.Set(body, float64(i)*33)
	}

	data, err := json.Marshal(set)
	require.NoError(t, err)

	var decoded LongitudeSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, set, decoded)
}

func TestLongitudeSetUnmarshalRequiresAllBodies(t *testing.T) {
	var set LongitudeSet
	err := json.Unmarshal([]byte(`{"Sun": 10, "Moon": 20}`), &set)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing body")
}
