package fortune

import (
	"crypto/sha256"
	"encoding/binary"
)

// seedFor hashes a composite seed string into the 32-bit PRNG seed: first
// four bytes of the SHA-256 digest, little-endian. Part of the versioned v1
// derivation; changing it invalidates every cached daily result.
func seedFor(seed string) uint32 {
	digest := sha256.Sum256([]byte(seed))
	return binary.LittleEndian.Uint32(digest[:4])
}

// mulberry32 is a tiny deterministic PRNG. Each content category gets its own
// instance so one category's draw count never perturbs another's sequence.
type mulberry32 struct {
	state uint32
}

func newMulberry32(seed uint32) *mulberry32 {
	return &mulberry32{state: seed}
}

// Float64 returns the next value in [0,1).
func (m *mulberry32) Float64() float64 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t = (t + (t^(t>>7))*(t|61)) ^ t
	return float64(t^(t>>14)) / 4294967296.0
}

// Intn returns a uniform index in [0,n).
func (m *mulberry32) Intn(n int) int {
	return int(m.Float64() * float64(n))
}
