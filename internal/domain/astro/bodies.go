package astro

import (
	"encoding/json"
	"fmt"
)

// Body identifies one of the ten celestial bodies tracked by the engine.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto

	NumBodies = 10
)

var bodyNames = [NumBodies]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

// Bodies lists every tracked body in canonical order.
func Bodies() [NumBodies]Body {
	var out [NumBodies]Body
	for i := range out {
		out[i] = Body(i)
	}
	return out
}

func (b Body) String() string {
	if b < 0 || int(b) >= NumBodies {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// ParseBody resolves a canonical body name. The second return reports success.
func ParseBody(name string) (Body, bool) {
	for i, n := range bodyNames {
		if n == name {
			return Body(i), true
		}
	}
	return 0, false
}

func (b Body) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Body) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := ParseBody(name)
	if !ok {
		return fmt.Errorf("unknown body %q", name)
	}
	*b = parsed
	return nil
}

// LongitudeSet holds one ecliptic longitude per body, normalized to [0,360).
type LongitudeSet [NumBodies]float64

// Get returns the longitude stored for a body.
func (s LongitudeSet) Get(b Body) float64 {
	return s[b]
}

// Set stores a normalized longitude for a body.
func (s *LongitudeSet) Set(b Body, deg float64) {
	s[b] = NormalizeDegrees(deg)
}

// MarshalJSON encodes the set as an object keyed by body name.
func (s LongitudeSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]float64, NumBodies)
	for i, deg := range s {
		out[bodyNames[i]] = deg
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the body-keyed object, requiring exactly one value
// per tracked body.
func (s *LongitudeSet) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out LongitudeSet
	for i, name := range bodyNames {
		deg, ok := raw[name]
		if !ok {
			return fmt.Errorf("longitude set missing body %q", name)
		}
		out[i] = NormalizeDegrees(deg)
	}
	*s = out
	return nil
}
