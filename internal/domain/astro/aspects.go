package astro

import (
	"fmt"
	"math"
	"sort"
)

// Aspect is one of the five canonical angular relationships.
type Aspect struct {
	Name            string
	Angle           float64
	BaseWeight      int
	DefaultPolarity float64
}

// Aspects in detection order. Conjunction polarity is pair-dependent and
// resolved in Detect, not taken from the table.
var Aspects = [5]Aspect{
	{Name: "Conjunction", Angle: 0, BaseWeight: 10, DefaultPolarity: 0},
	{Name: "Sextile", Angle: 60, BaseWeight: 6, DefaultPolarity: 1},
	{Name: "Square", Angle: 90, BaseWeight: 8, DefaultPolarity: -0.55},
	{Name: "Trine", Angle: 120, BaseWeight: 8, DefaultPolarity: 1},
	{Name: "Opposition", Angle: 180, BaseWeight: 10, DefaultPolarity: -0.65},
}

// DetectedAspect is a transit-to-natal hit within orb.
type DetectedAspect struct {
	TransitBody   Body    `json:"transitBody"`
	NatalBody     Body    `json:"natalBody"`
	Aspect        string  `json:"aspect"`
	Angle         float64 `json:"angle"`
	Separation    float64 `json:"separation_deg"`
	Orb           float64 `json:"orb_deg"`
	DistFromExact float64 `json:"distance_from_exact_deg"`
	Strength      float64 `json:"strength"`
	BaseWeight    int     `json:"baseWeight"`
	Polarity      float64 `json:"polarity"`
	IsMoonAspect  bool    `json:"isMoonAspect"`
}

// OrbForPair returns the tolerance window for a body pair and aspect.
// Luminaries widen the orb: Sextile 5 instead of 4, everything else 8
// instead of 6.
func OrbForPair(a, b Body, aspectName string) float64 {
	hasLuminary := a == Sun || a == Moon || b == Sun || b == Moon
	if aspectName == "Sextile" {
		if hasLuminary {
			return 5
		}
		return 4
	}
	if hasLuminary {
		return 8
	}
	return 6
}

func conjunctionPolarity(a, b Body) float64 {
	has := func(body Body) bool { return a == body || b == body }
	switch {
	case has(Venus) || has(Jupiter):
		return 1
	case has(Saturn):
		return -1
	case has(Mars):
		return 0
	default:
		return 0
	}
}

// Detect compares every transit body against every natal body and returns all
// hits within orb, strongest first. Moon aspects get a 0.05 ranking bonus
// that does not alter their stored strength. No truncation is applied here;
// callers wanting a subset slice the result.
func Detect(transit, natal LongitudeSet) []DetectedAspect {
	var found []DetectedAspect

	for t := 0; t < NumBodies; t++ {
		for n := 0; n < NumBodies; n++ {
			tb, nb := Body(t), Body(n)
			sep := AngularSeparation(transit[t], natal[n])

			for _, asp := range Aspects {
				orb := OrbForPair(tb, nb, asp.Name)
				dist := math.Abs(sep - asp.Angle)
				if dist > orb {
					continue
				}

				polarity := asp.DefaultPolarity
				if asp.Name == "Conjunction" {
					polarity = conjunctionPolarity(tb, nb)
				}

				found = append(found, DetectedAspect{
					TransitBody:   tb,
					NatalBody:     nb,
					Aspect:        asp.Name,
					Angle:         asp.Angle,
					Separation:    sep,
					Orb:           orb,
					DistFromExact: dist,
					Strength:      1 - dist/orb,
					BaseWeight:    asp.BaseWeight,
					Polarity:      polarity,
					IsMoonAspect:  tb == Moon || nb == Moon,
				})
			}
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return rankStrength(found[i]) > rankStrength(found[j])
	})
	return found
}

func rankStrength(a DetectedAspect) float64 {
	if a.IsMoonAspect {
		return a.Strength + 0.05
	}
	return a.Strength
}

// HumanText renders a detected aspect as a short explanation sentence.
func HumanText(a DetectedAspect) string {
	intensity := "mild"
	switch {
	case a.Strength >= 0.75:
		intensity = "strong"
	case a.Strength >= 0.45:
		intensity = "moderate"
	}

	tone := "mixed"
	switch {
	case a.Polarity > 0:
		tone = "supportive"
	case a.Polarity < 0:
		tone = "challenging"
	}

	return fmt.Sprintf("%s %s natal %s (%s, %s)", a.TransitBody, a.Aspect, a.NatalBody, intensity, tone)
}
