package horoscope

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadLocation(t *testing.T) {
	loc, err := loadLocation("Asia/Tokyo")
	require.NoError(t, err)
	require.Equal(t, "Asia/Tokyo", loc.String())

	_, err = loadLocation("Not/AZone")
	require.Error(t, err)

	_, err = loadLocation("")
	require.Error(t, err)
}

func TestLocalDateKeyExplicitDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	key, err := LocalDateKey(loc, "2026-03-02", time.Now())
	require.NoError(t, err)
	require.Equal(t, "2026-03-02", key)

	_, err = LocalDateKey(loc, "02/03/2026", time.Now())
	require.Error(t, err)

	_, err = LocalDateKey(loc, "2026-13-40", time.Now())
	require.Error(t, err)
}

func TestLocalDateKeyDefaultsToTodayInZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 20:00 UTC is already the next calendar day in Tokyo.
	now := time.Date(2026, time.March, 1, 20, 0, 0, 0, time.UTC)
	key, err := LocalDateKey(tokyo, "", now)
	require.NoError(t, err)
	require.Equal(t, "2026-03-02", key)

	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	key, err = LocalDateKey(newYork, "", now)
	require.NoError(t, err)
	require.Equal(t, "2026-03-01", key)
}

func TestAnchorInstantLocalNoon(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	localNoon, utc, err := AnchorInstant(tokyo, "2026-03-02")
	require.NoError(t, err)
	require.Equal(t, 12, localNoon.Hour())
	require.Equal(t, "2026-03-02T12:00:00+09:00", localNoon.Format(time.RFC3339))
	require.Equal(t, "2026-03-02T03:00:00Z", utc.Format(time.RFC3339))

	_, _, err = AnchorInstant(tokyo, "garbage")
	require.Error(t, err)
}
