package chart

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/astriva/astroday/internal/domain/astro"
	apperrors "github.com/astriva/astroday/pkg/errors"
)

// Ephemeris supplies ecliptic longitudes and the ascendant for an instant.
// Implementations must return values normalized into [0,360).
type Ephemeris interface {
	LongitudesAt(ctx context.Context, at time.Time) (astro.LongitudeSet, error)
	AscendantAt(ctx context.Context, at time.Time, latDeg, lonDeg float64) (float64, error)
}

// Repository stores user records keyed by opaque identifier.
type Repository interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, id string) (User, bool, error)
}

// Service exposes user registration and lookup.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (User, error)
	Get(ctx context.Context, id string) (User, error)
}

type service struct {
	ephemeris Ephemeris
	repo      Repository
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires up the chart domain.
func NewService(ephemeris Ephemeris, repo Repository, logger *slog.Logger) Service {
	return &service{
		ephemeris: ephemeris,
		repo:      repo,
		logger:    logger.With("component", "chart.service"),
		now:       time.Now,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (User, error) {
	if req.Lat == nil || req.Lon == nil {
		return User{}, apperrors.Wrap("invalid_input", "lat and lon are required", nil)
	}
	lat, lon := *req.Lat, *req.Lon
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return User{}, apperrors.Wrap("invalid_input", "lat/lon out of range", nil)
	}

	birthUTC, err := resolveBirthInstant(req.BirthDate, req.BirthTime, req.BirthTz)
	if err != nil {
		return User{}, apperrors.Wrap("invalid_input", "invalid birthDate/birthTime/birthTz", err)
	}

	longitudes, err := s.ephemeris.LongitudesAt(ctx, birthUTC)
	if err != nil {
		return User{}, apperrors.Wrap("ephemeris_error", "failed to compute natal longitudes", err)
	}
	ascLon, err := s.ephemeris.AscendantAt(ctx, birthUTC, lat, lon)
	if err != nil {
		return User{}, apperrors.Wrap("ephemeris_error", "failed to compute ascendant", err)
	}

	rising := astro.SignFromLongitude(ascLon)
	user := User{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Natal: NatalChart{
			Birth: BirthInfo{
				Date:     req.BirthDate,
				Time:     req.BirthTime,
				Timezone: req.BirthTz,
				UTC:      birthUTC,
				Lat:      lat,
				Lon:      lon,
			},
			Longitudes: longitudes,
			SunSign:    astro.SignFromLongitude(longitudes.Get(astro.Sun)),
			MoonSign:   astro.SignFromLongitude(longitudes.Get(astro.Moon)),
			Ascendant:  Ascendant{Longitude: ascLon, RisingSign: rising},
			Houses:     Houses{System: "Whole Sign", FirstHouseSign: rising},
		},
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, apperrors.Wrap("store_error", "failed to persist user", err)
	}
	s.logger.Info("user registered", "userId", user.ID, "sunSign", user.Natal.SunSign.String())
	return user, nil
}

func (s *service) Get(ctx context.Context, id string) (User, error) {
	user, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, apperrors.Wrap("store_error", "user lookup failed", err)
	}
	if !found {
		return User{}, apperrors.Wrap("not_found", "user not found", nil)
	}
	return user, nil
}

// resolveBirthInstant converts a local birth date/time in an IANA timezone to
// the UTC instant used for natal positions.
func resolveBirthInstant(date, clock, tz string) (time.Time, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	local, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse birth moment: %w", err)
	}
	return local.UTC(), nil
}
