package astro

import (
	"math"
	"time"
)

// AscendantLongitude computes the tropical ecliptic longitude of the
// ascendant for an observer at latDeg/lonDeg (degrees, +north/+east) at the
// given instant. It uses a Meeus-style GMST approximation and the mean
// obliquity of the ecliptic; minute-level accuracy, which is enough for
// rising-sign resolution.
func AscendantLongitude(t time.Time, latDeg, lonDeg float64) float64 {
	theta := deg2rad(NormalizeDegrees(gmstDegrees(t) + lonDeg)) // local sidereal time
	eps := deg2rad(meanObliquityDegrees(t))
	phi := deg2rad(latDeg)

	y := math.Sin(theta)*math.Cos(eps) - math.Tan(phi)*math.Sin(eps)
	x := math.Cos(theta)
	return NormalizeDegrees(rad2deg(math.Atan2(y, x)))
}

func julianDate(t time.Time) float64 {
	millis := float64(t.UnixMilli())
	return millis/86400000.0 + 2440587.5
}

func gmstDegrees(t time.Time) float64 {
	jd := julianDate(t)
	tc := (jd - 2451545.0) / 36525.0
	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*tc*tc -
		tc*tc*tc/38710000.0
	return NormalizeDegrees(gmst)
}

func meanObliquityDegrees(t time.Time) float64 {
	jd := julianDate(t)
	tc := (jd - 2451545.0) / 36525.0
	return 23.439291 - 0.0130042*tc - 1.64e-7*tc*tc + 5.04e-7*tc*tc*tc
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

func rad2deg(r float64) float64 { return r * 180 / math.Pi }
