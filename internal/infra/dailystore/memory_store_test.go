package dailystore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/astriva/astroday/internal/domain/horoscope"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	key := horoscope.CacheKey{UserID: "u-1", LocalDate: "2026-03-02", Tz: "Asia/Tokyo"}

	_, found, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	require.False(t, found)

	record := horoscope.Record{
		Key:       key,
		Payload:   horoscope.PersonalResult{Scores: horoscope.Scores{Overall: 61}},
		CreatedAt: time.Date(2026, time.March, 2, 3, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Upsert(context.Background(), record))

	got, found, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, record, got)
}

func TestMemoryStoreUpsertReplaces(t *testing.T) {
	store := NewMemoryStore()
	key := horoscope.CacheKey{UserID: "u-1", LocalDate: "2026-03-02", Tz: "Asia/Tokyo"}

	first := horoscope.Record{Key: key, Payload: horoscope.PersonalResult{Scores: horoscope.Scores{Overall: 55}}}
	second := horoscope.Record{Key: key, Payload: horoscope.PersonalResult{Scores: horoscope.Scores{Overall: 72}}}
	require.NoError(t, store.Upsert(context.Background(), first))
	require.NoError(t, store.Upsert(context.Background(), second))

	got, found, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 72, got.Payload.Scores.Overall)
}
