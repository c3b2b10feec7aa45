package astro

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Sign identifies one of the twelve tropical zodiac signs.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces

	NumSigns = 12
)

var signNames = [NumSigns]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Each sign's ruling body, in sign order.
var rulers = [NumSigns]Body{
	Mars,    // Aries
	Venus,   // Taurus
	Mercury, // Gemini
	Moon,    // Cancer
	Sun,     // Leo
	Mercury, // Virgo
	Venus,   // Libra
	Mars,    // Scorpio
	Jupiter, // Sagittarius
	Saturn,  // Capricorn
	Uranus,  // Aquarius
	Neptune, // Pisces
}

func (s Sign) String() string {
	if s < 0 || int(s) >= NumSigns {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// ParseSign matches a sign name case-insensitively. The second return reports
// whether the input named a canonical sign; callers treat false as a
// validation failure for user-supplied strings.
func ParseSign(input string) (Sign, bool) {
	trimmed := strings.TrimSpace(input)
	for i, name := range signNames {
		if strings.EqualFold(name, trimmed) {
			return Sign(i), true
		}
	}
	return 0, false
}

// SignFromLongitude maps an ecliptic longitude to its 30-degree sign bucket.
func SignFromLongitude(deg float64) Sign {
	idx := int(NormalizeDegrees(deg) / 30)
	if idx >= NumSigns {
		idx = NumSigns - 1
	}
	return Sign(idx)
}

// Ruler returns the body ruling a sign. Out-of-range input falls back to the
// Sun; normalized signs never hit that path.
func Ruler(s Sign) Body {
	if s < 0 || int(s) >= NumSigns {
		return Sun
	}
	return rulers[s]
}

func (s Sign) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Sign) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := ParseSign(name)
	if !ok {
		return fmt.Errorf("unknown sign %q", name)
	}
	*s = parsed
	return nil
}
