package astro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrbForPair(t *testing.T) {
	require.Equal(t, 5.0, OrbForPair(Sun, Mars, "Sextile"))
	require.Equal(t, 5.0, OrbForPair(Mars, Moon, "Sextile"))
	require.Equal(t, 4.0, OrbForPair(Mars, Venus, "Sextile"))
	require.Equal(t, 8.0, OrbForPair(Sun, Mars, "Trine"))
	require.Equal(t, 8.0, OrbForPair(Venus, Moon, "Conjunction"))
	require.Equal(t, 6.0, OrbForPair(Mars, Venus, "Opposition"))
}

func uniformSet(deg float64) LongitudeSet {
	var set LongitudeSet
	for _, body := range Bodies() {
		set.Set(body, deg)
	}
	return set
}

func TestDetectExactTrine(t *testing.T) {
	found := Detect(uniformSet(0), uniformSet(120))
	require.Len(t, found, NumBodies*NumBodies)
	for _, a := range found {
		require.Equal(t, "Trine", a.Aspect)
		require.InDelta(t, 1.0, a.Strength, 1e-9)
		require.InDelta(t, 0, a.DistFromExact, 1e-9)
		require.Equal(t, 8, a.BaseWeight)
		require.Equal(t, 1.0, a.Polarity)
	}
}

func TestDetectConjunctionPolarityByPair(t *testing.T) {
	// 40 degrees apart matches nothing; only the pinned natal Saturn hits.
	natal := uniformSet(40)
	natal.Set(Saturn, 0)

	found := Detect(uniformSet(0), natal)
	require.Len(t, found, NumBodies)

	byTransit := make(map[Body]DetectedAspect, len(found))
	for _, a := range found {
		require.Equal(t, "Conjunction", a.Aspect)
		require.Equal(t, Saturn, a.NatalBody)
		byTransit[a.TransitBody] = a
	}

	require.Equal(t, 1.0, byTransit[Venus].Polarity)
	require.Equal(t, 1.0, byTransit[Jupiter].Polarity)
	require.Equal(t, -1.0, byTransit[Sun].Polarity)
	require.Equal(t, -1.0, byTransit[Mars].Polarity)
	require.Equal(t, -1.0, byTransit[Saturn].Polarity)
}

func TestDetectStrengthScalesWithOrb(t *testing.T) {
	// Natal Mars sits 4 degrees off an exact square to every transit body.
	natal := uniformSet(44)
	natal.Set(Mars, 86)

	found := Detect(uniformSet(0), natal)
	require.Len(t, found, NumBodies)

	for _, a := range found {
		require.Equal(t, "Square", a.Aspect)
		require.Equal(t, Mars, a.NatalBody)
		require.InDelta(t, 4, a.DistFromExact, 1e-9)
		if a.TransitBody == Sun || a.TransitBody == Moon {
			require.InDelta(t, 8, a.Orb, 1e-9)
			require.InDelta(t, 0.5, a.Strength, 1e-9)
		} else {
			require.InDelta(t, 6, a.Orb, 1e-9)
			require.InDelta(t, 1.0/3.0, a.Strength, 1e-9)
		}
	}

	// The Moon aspect outranks equal-strength hits.
	require.Equal(t, Moon, found[0].TransitBody)
	require.True(t, found[0].IsMoonAspect)
	require.Equal(t, Sun, found[1].TransitBody)

	for i := 1; i < len(found); i++ {
		require.GreaterOrEqual(t, rankStrength(found[i-1]), rankStrength(found[i]))
	}
}

func TestDetectIncludesExactOrbBoundary(t *testing.T) {
	natal := uniformSet(40)
	natal.Set(Pluto, 96)

	found := Detect(uniformSet(0), natal)

	var hit *DetectedAspect
	for i := range found {
		if found[i].TransitBody == Mercury && found[i].NatalBody == Pluto {
			hit = &found[i]
			break
		}
	}
	require.NotNil(t, hit)
	require.Equal(t, "Square", hit.Aspect)
	require.InDelta(t, 6, hit.Orb, 1e-9)
	require.InDelta(t, 0, hit.Strength, 1e-9)
}

func TestHumanText(t *testing.T) {
	a := DetectedAspect{TransitBody: Moon, NatalBody: Sun, Aspect: "Trine", Strength: 0.8, Polarity: 1}
	require.Equal(t, "Moon Trine natal Sun (strong, supportive)", HumanText(a))

	a = DetectedAspect{TransitBody: Saturn, NatalBody: Venus, Aspect: "Square", Strength: 0.3, Polarity: -0.55}
	require.Equal(t, "Saturn Square natal Venus (mild, challenging)", HumanText(a))

	a = DetectedAspect{TransitBody: Mars, NatalBody: Mercury, Aspect: "Conjunction", Strength: 0.5, Polarity: 0}
	require.Equal(t, "Mars Conjunction natal Mercury (moderate, mixed)", HumanText(a))
}
