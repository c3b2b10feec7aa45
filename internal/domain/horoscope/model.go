package horoscope

import (
	"time"

	"github.com/astriva/astroday/internal/domain/astro"
	"github.com/astriva/astroday/internal/domain/fortune"
)

// CacheKey is the daily-result primary key.
type CacheKey struct {
	UserID    string `json:"userId"`
	LocalDate string `json:"localDate"`
	Tz        string `json:"tz"`
}

// Meta describes how and when a result was anchored.
type Meta struct {
	UserID            string    `json:"userId,omitempty"`
	Tz                string    `json:"tz"`
	LocalDate         string    `json:"local_date"`
	AnchoredLocalNoon string    `json:"anchored_local_noon"`
	AnchoredUTC       string    `json:"anchored_utc"`
	Cached            bool      `json:"cached"`
	CacheKey          *CacheKey `json:"cache_key,omitempty"`
}

// NatalSummary echoes the registered chart's headline signs.
type NatalSummary struct {
	SunSign    astro.Sign `json:"sunSign"`
	MoonSign   astro.Sign `json:"moonSign"`
	RisingSign astro.Sign `json:"risingSign"`
}

// Scores are the five domain scores plus the weighted overall, all 0-100.
type Scores struct {
	Overall int `json:"overall"`
	Career  int `json:"career"`
	Fortune int `json:"fortune"`
	Love    int `json:"love"`
	Social  int `json:"social"`
	Study   int `json:"study"`
}

// PersonalResult is the full daily forecast payload.
type PersonalResult struct {
	Meta         Meta           `json:"meta"`
	NatalSummary NatalSummary   `json:"natalSummary"`
	Scores       Scores         `json:"scores"`
	Explanations []string       `json:"explanations"`
	DailyContent fortune.Bundle `json:"daily_content"`
}

// Sky is the per-timezone transit snapshot served without personalization.
type Sky struct {
	SunSign    astro.Sign         `json:"sunSign"`
	MoonSign   astro.Sign         `json:"moonSign"`
	Longitudes astro.LongitudeSet `json:"longitudes_deg"`
}

// PublicResult is the uncached public snapshot payload.
type PublicResult struct {
	Meta Meta `json:"meta"`
	Sky  Sky  `json:"sky"`
}

// PersonalRequest carries the query parameters of a daily-personal lookup.
type PersonalRequest struct {
	UserID  string
	Tz      string
	Date    string
	Refresh bool
}

// Record is the cached daily row. Recomputation replaces the whole record
// under the same key.
type Record struct {
	Key       CacheKey       `json:"key"`
	Payload   PersonalResult `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}
