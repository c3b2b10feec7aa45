package astroapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/astriva/astroday/internal/domain/astro"
)

// Config carries the ephemeris API credentials and endpoint.
type Config struct {
	AppID   string
	Secret  string
	BaseURL string
}

// Client fetches ecliptic longitudes from a basic-auth ephemeris API and
// computes the ascendant locally.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient builds the ephemeris client.
func NewClient(cfg Config) *Client {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// LongitudesAt retrieves the ten body longitudes for an instant, normalized
// into [0,360).
func (c *Client) LongitudesAt(ctx context.Context, at time.Time) (astro.LongitudeSet, error) {
	params := url.Values{}
	params.Set("at", at.UTC().Format(time.RFC3339))
	endpoint := fmt.Sprintf("%s/positions?%s", c.cfg.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return astro.LongitudeSet{}, fmt.Errorf("build positions request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return astro.LongitudeSet{}, fmt.Errorf("positions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return astro.LongitudeSet{}, fmt.Errorf("ephemeris api error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw positionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return astro.LongitudeSet{}, fmt.Errorf("decode positions response: %w", err)
	}

	var set astro.LongitudeSet
	for _, body := range astro.Bodies() {
		deg, ok := raw.Positions[body.String()]
		if !ok {
			return astro.LongitudeSet{}, fmt.Errorf("ephemeris response missing body %q", body)
		}
		set.Set(body, deg)
	}
	return set, nil
}

// AscendantAt computes the ascendant from sidereal time, obliquity and
// latitude. No network call is needed; the math is local.
func (c *Client) AscendantAt(_ context.Context, at time.Time, latDeg, lonDeg float64) (float64, error) {
	if latDeg < -90 || latDeg > 90 {
		return 0, fmt.Errorf("latitude %f out of range", latDeg)
	}
	return astro.AscendantLongitude(at, latDeg, lonDeg), nil
}

func (c *Client) authorize(req *http.Request) {
	auth := base64.StdEncoding.EncodeToString([]byte(c.cfg.AppID + ":" + c.cfg.Secret))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "astroday/1.0")
}

type positionsResponse struct {
	Positions map[string]float64 `json:"positions"`
}
