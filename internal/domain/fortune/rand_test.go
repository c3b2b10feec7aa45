package fortune

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedForDeterministic(t *testing.T) {
	a := seedFor("user-1|2026-03-02|Asia/Tokyo|advice")
	b := seedFor("user-1|2026-03-02|Asia/Tokyo|advice")
	require.Equal(t, a, b)

	c := seedFor("user-1|2026-03-02|Asia/Tokyo|food")
	require.NotEqual(t, a, c)
}

func TestMulberry32SequenceStable(t *testing.T) {
	a := newMulberry32(12345)
	b := newMulberry32(12345)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}
}

func TestMulberry32Range(t *testing.T) {
	rng := newMulberry32(seedFor("range-check"))
	for i := 0; i < 1000; i++ {
		v := rng.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestMulberry32IntnBounds(t *testing.T) {
	rng := newMulberry32(seedFor("intn-check"))
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		n := rng.Intn(7)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 7)
		seen[n] = true
	}
	require.Len(t, seen, 7)
}
