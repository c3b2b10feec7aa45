package horoscope

import (
	"math"
	"sort"

	"github.com/astriva/astroday/internal/domain/astro"
)

// Domain indexes the five scored life areas.
type Domain int

const (
	Career Domain = iota
	Fortune
	Love
	Social
	Study

	numDomains = 5
)

// How strongly each body's aspects matter per domain. Rows are domains,
// columns follow astro.Body order (Sun..Pluto).
var domainRelevance = [numDomains][astro.NumBodies]float64{
	Career:  {0.6, 0.2, 0.4, 0.1, 0.7, 0.4, 0.8, 0.3, 0.1, 0.3},
	Fortune: {0.2, 0.1, 0.3, 0.6, 0.2, 0.8, 0.4, 0.3, 0.1, 0.2},
	Love:    {0.2, 0.7, 0.2, 0.9, 0.5, 0.2, 0.1, 0.2, 0.5, 0.3},
	Social:  {0.2, 0.5, 0.7, 0.5, 0.2, 0.5, 0.1, 0.3, 0.2, 0.1},
	Study:   {0.2, 0.2, 0.9, 0.1, 0.2, 0.4, 0.6, 0.3, 0.1, 0.1},
}

// Small per-sign flavor added to each domain's base. Rows follow astro.Sign
// order, columns follow Domain order.
var signFlavor = [astro.NumSigns][numDomains]int{
	astro.Aries:       {2, 0, 0, 1, -1},
	astro.Taurus:      {0, 2, 1, 0, 0},
	astro.Gemini:      {1, 0, 0, 2, 2},
	astro.Cancer:      {0, 0, 2, 0, 0},
	astro.Leo:         {2, 0, 1, 1, -1},
	astro.Virgo:       {1, 1, 0, 0, 2},
	astro.Libra:       {0, 0, 2, 1, 0},
	astro.Scorpio:     {1, 0, 1, -1, 0},
	astro.Sagittarius: {1, 0, 0, 1, 0},
	astro.Capricorn:   {2, 1, -1, -1, 2},
	astro.Aquarius:    {1, 0, 0, 1, 1},
	astro.Pisces:      {0, 0, 1, 0, 0},
}

var negCaps = [numDomains]float64{-20, -20, -20, -18, -20}
var posCaps = [numDomains]float64{24, 24, 24, 22, 24}

var overallWeights = [numDomains]float64{0.22, 0.18, 0.22, 0.18, 0.20}

const (
	baseScore        = 50
	optimismBaseline = 10
	maxScoredAspects = 25
	maxExplanations  = 8
	moonBoost        = 1.12
	rulerBoost       = 1.12
)

// DayScore bundles the domain scores with the ranked explanatory aspects.
type DayScore struct {
	Scores     Scores
	TopAspects []astro.DetectedAspect
}

// ScorePersonalDay converts detected aspects plus the user's Sun sign into
// the five domain scores and overall. An unrecognized sign degrades to zero
// flavor with the Sun as ruler rather than failing.
func ScorePersonalDay(sunSign string, aspects []astro.DetectedAspect) DayScore {
	sign, known := astro.ParseSign(sunSign)
	ruler := astro.Sun
	var flavor [numDomains]int
	if known {
		ruler = astro.Ruler(sign)
		flavor = signFlavor[sign]
	}

	var accum [numDomains]float64

	top := aspects
	if len(top) > maxScoredAspects {
		top = top[:maxScoredAspects]
	}

	for _, asp := range top {
		polarity := asp.Polarity
		if asp.Aspect == "Conjunction" && polarity == 0 {
			polarity = conjunctionPolarityFallback(asp.TransitBody, asp.NatalBody)
		}

		boost := 1.0
		if asp.IsMoonAspect {
			boost = moonBoost
		}
		if asp.TransitBody == ruler || asp.NatalBody == ruler {
			boost *= rulerBoost
		}

		for d := Domain(0); d < numDomains; d++ {
			rel := pairRelevance(d, asp.TransitBody, asp.NatalBody)
			if rel <= 0 {
				continue
			}
			accum[d] += asp.Strength * float64(asp.BaseWeight) * polarity * rel * boost
		}
	}

	var scores [numDomains]int
	for d := Domain(0); d < numDomains; d++ {
		contrib := clampFloat(accum[d], negCaps[d], posCaps[d])
		raw := float64(baseScore+flavor[d]+optimismBaseline) + contrib
		scores[d] = clampInt(int(math.Round(raw)), 0, 100)
	}

	weighted := 0.0
	for d := Domain(0); d < numDomains; d++ {
		weighted += overallWeights[d] * float64(scores[d])
	}
	overall := clampInt(int(math.Round(weighted)), 0, 100)

	return DayScore{
		Scores: Scores{
			Overall: overall,
			Career:  scores[Career],
			Fortune: scores[Fortune],
			Love:    scores[Love],
			Social:  scores[Social],
			Study:   scores[Study],
		},
		TopAspects: pickTopExplanations(aspects, maxExplanations),
	}
}

// pairRelevance averages the two bodies' weights with a 1.5 divisor so a
// single highly relevant body can nearly saturate the pair.
func pairRelevance(d Domain, transit, natal astro.Body) float64 {
	return clampFloat((domainRelevance[d][transit]+domainRelevance[d][natal])/1.5, 0, 1)
}

// Secondary polarity heuristic for conjunctions whose pair rule resolved to
// neutral.
func conjunctionPolarityFallback(a, b astro.Body) float64 {
	has := func(body astro.Body) bool { return a == body || b == body }
	switch {
	case has(astro.Venus) || has(astro.Moon):
		return 0.6
	case has(astro.Mercury):
		return 0.5
	case has(astro.Jupiter):
		return 0.5
	case has(astro.Mars) || has(astro.Sun):
		return 0.3
	case has(astro.Saturn):
		return -0.4
	default:
		return 0
	}
}

// pickTopExplanations re-ranks the full aspect list Moon-first then by
// strength, dedupes on (transit, aspect, natal) and keeps at most n.
func pickTopExplanations(aspects []astro.DetectedAspect, n int) []astro.DetectedAspect {
	sorted := append([]astro.DetectedAspect(nil), aspects...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsMoonAspect != sorted[j].IsMoonAspect {
			return sorted[i].IsMoonAspect
		}
		return sorted[i].Strength > sorted[j].Strength
	})

	type key struct {
		transit astro.Body
		aspect  string
		natal   astro.Body
	}
	seen := make(map[key]struct{}, n)
	out := make([]astro.DetectedAspect, 0, n)
	for _, a := range sorted {
		k := key{a.TransitBody, a.Aspect, a.NatalBody}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, a)
		if len(out) >= n {
			break
		}
	}
	return out
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
