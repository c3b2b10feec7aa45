package chart

import (
	"time"

	"github.com/astriva/astroday/internal/domain/astro"
)

// BirthInfo records the registered birth moment and place.
type BirthInfo struct {
	Date     string    `json:"birthDate"`
	Time     string    `json:"birthTime"`
	Timezone string    `json:"birthTz"`
	UTC      time.Time `json:"birth_utc"`
	Lat      float64   `json:"lat"`
	Lon      float64   `json:"lon"`
}

// Ascendant holds the rising point of the chart.
type Ascendant struct {
	Longitude  float64    `json:"longitude_deg"`
	RisingSign astro.Sign `json:"risingSign"`
}

// Houses tags the house system. Only whole-sign houses are supported, so the
// first house is the whole rising sign.
type Houses struct {
	System         string     `json:"system"`
	FirstHouseSign astro.Sign `json:"firstHouseSign"`
}

// NatalChart is computed once at registration and immutable afterward.
type NatalChart struct {
	Birth      BirthInfo          `json:"birth"`
	Longitudes astro.LongitudeSet `json:"longitudes_deg"`
	SunSign    astro.Sign         `json:"sunSign"`
	MoonSign   astro.Sign         `json:"moonSign"`
	Ascendant  Ascendant          `json:"ascendant"`
	Houses     Houses             `json:"houses"`
}

// User owns a natal chart. Read-only after registration.
type User struct {
	ID        string     `json:"userId"`
	CreatedAt time.Time  `json:"createdAt"`
	Natal     NatalChart `json:"natal"`
}

// RegisterRequest is the payload accepted by user registration.
type RegisterRequest struct {
	BirthDate string   `json:"birthDate" binding:"required"`
	BirthTime string   `json:"birthTime" binding:"required"`
	BirthTz   string   `json:"birthTz" binding:"required"`
	Lat       *float64 `json:"lat" binding:"required"`
	Lon       *float64 `json:"lon" binding:"required"`
}
