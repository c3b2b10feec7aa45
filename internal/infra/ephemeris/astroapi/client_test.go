package astroapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/astriva/astroday/internal/domain/astro"
)

func positionsPayload() map[string]any {
	return map[string]any{
		"positions": map[string]float64{
			"Sun": 125.2, "Moon": 400, "Mercury": 110.1, "Venus": -30,
			"Mars": 80.5, "Jupiter": 95.0, "Saturn": 290.4, "Uranus": 275.9,
			"Neptune": 283.3, "Pluto": 227.8,
		},
	}
}

func TestLongitudesAt(t *testing.T) {
	at := time.Date(2026, time.March, 2, 3, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/positions", r.URL.Path)
		require.Equal(t, "2026-03-02T03:00:00Z", r.URL.Query().Get("at"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "app-id", user)
		require.Equal(t, "secret", pass)

		require.NoError(t, json.NewEncoder(w).Encode(positionsPayload()))
	}))
	defer server.Close()

	client := NewClient(Config{AppID: "app-id", Secret: "secret", BaseURL: server.URL + "/"})
	set, err := client.LongitudesAt(context.Background(), at)
	require.NoError(t, err)

	require.InDelta(t, 125.2, set.Get(astro.Sun), 1e-9)
	// Out-of-range inputs are normalized into [0,360).
	require.InDelta(t, 40, set.Get(astro.Moon), 1e-9)
	require.InDelta(t, 330, set.Get(astro.Venus), 1e-9)
}

func TestLongitudesAtMissingBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		payload := positionsPayload()
		delete(payload["positions"].(map[string]float64), "Pluto")
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, err := client.LongitudesAt(context.Background(), time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "Pluto")
}

func TestLongitudesAtUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, err := client.LongitudesAt(context.Background(), time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=502")
}

func TestAscendantAt(t *testing.T) {
	client := NewClient(Config{})

	got, err := client.AscendantAt(context.Background(), time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC), 35.68, 139.69)
	require.NoError(t, err)
	require.GreaterOrEqual(t, got, 0.0)
	require.Less(t, got, 360.0)

	_, err = client.AscendantAt(context.Background(), time.Now(), 95, 0)
	require.Error(t, err)
}
