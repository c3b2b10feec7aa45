package astro

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignFromLongitude(t *testing.T) {
	cases := []struct {
		deg  float64
		want Sign
	}{
		{0, Aries},
		{29.99, Aries},
		{30, Taurus},
		{119.3, Cancer},
		{330, Pisces},
		{359.99, Pisces},
		{-1, Pisces},
		{360, Aries},
		{390, Taurus},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, SignFromLongitude(tc.deg), "longitude %f", tc.deg)
	}
}

func TestParseSign(t *testing.T) {
	sign, ok := ParseSign("Leo")
	require.True(t, ok)
	require.Equal(t, Leo, sign)

	sign, ok = ParseSign("  scorpio ")
	require.True(t, ok)
	require.Equal(t, Scorpio, sign)

	_, ok = ParseSign("Ophiuchus")
	require.False(t, ok)

	_, ok = ParseSign("")
	require.False(t, ok)
}

func TestRuler(t *testing.T) {
	require.Equal(t, Sun, Ruler(Leo))
	require.Equal(t, Moon, Ruler(Cancer))
	require.Equal(t, Mars, Ruler(Aries))
	require.Equal(t, Mars, Ruler(Scorpio))
	require.Equal(t, Saturn, Ruler(Capricorn))
	require.Equal(t, Neptune, Ruler(Pisces))
	require.Equal(t, Sun, Ruler(Sign(99)))
}

func TestSignJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Sagittarius)
	require.NoError(t, err)
	require.Equal(t, `"Sagittarius"`, string(data))

	var sign Sign
	require.NoError(t, json.Unmarshal(data, &sign))
	require.Equal(t, Sagittarius, sign)

	require.Error(t, json.Unmarshal([]byte(`"Nope"`), &sign))
}
