package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// GMST at the J2000 epoch is 280.46061837 degrees, so an observer at
// longitude (theta - GMST) east sees local sidereal time theta.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

const gmstAtJ2000 = 280.46061837

func TestAscendantLongitudeAtEquator(t *testing.T) {
	// Local sidereal time 90 degrees: the ascendant of an equatorial
	// observer is 90 degrees regardless of obliquity.
	got := AscendantLongitude(j2000, 0, 90-gmstAtJ2000)
	require.InDelta(t, 90, got, 0.01)
}

func TestAscendantLongitudeKnownValue(t *testing.T) {
	// Local sidereal time 45 degrees at the equator with mean obliquity
	// 23.439291 degrees gives atan2(sin45*cos(eps), cos45) = 42.53 degrees.
	got := AscendantLongitude(j2000, 0, 45-gmstAtJ2000)
	require.InDelta(t, 42.53, got, 0.1)
}

func TestAscendantLongitudeDependsOnLatitude(t *testing.T) {
	lon := 45 - gmstAtJ2000
	atEquator := AscendantLongitude(j2000, 0, lon)
	atMidLat := AscendantLongitude(j2000, 50, lon)
	// tan(50)*sin(eps) pulls the ascendant toward the equinox point.
	require.InDelta(t, 13.88, atMidLat, 0.1)
	require.Greater(t, atEquator, atMidLat)
}

func TestAscendantLongitudeBoundedAndDeterministic(t *testing.T) {
	instants := []time.Time{
		time.Date(1987, time.June, 21, 4, 30, 0, 0, time.UTC),
		time.Date(2026, time.February, 10, 23, 59, 0, 0, time.UTC),
		time.Date(1969, time.July, 20, 20, 17, 0, 0, time.UTC),
	}
	for _, at := range instants {
		for _, lat := range []float64{-60, -33.5, 0, 35.7, 64.1} {
			for _, lon := range []float64{-122.4, 0, 139.7} {
				got := AscendantLongitude(at, lat, lon)
				require.GreaterOrEqual(t, got, 0.0)
				require.Less(t, got, 360.0)
				require.Equal(t, got, AscendantLongitude(at, lat, lon))
			}
		}
	}
}
