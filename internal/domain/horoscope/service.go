package horoscope

import (
	"context"
	"log/slog"
	"time"

	"github.com/astriva/astroday/internal/domain/astro"
	"github.com/astriva/astroday/internal/domain/chart"
	"github.com/astriva/astroday/internal/domain/fortune"
	apperrors "github.com/astriva/astroday/pkg/errors"
)

// TransitSource supplies transit longitudes for the anchor instant.
type TransitSource interface {
	LongitudesAt(ctx context.Context, at time.Time) (astro.LongitudeSet, error)
}

// UserSource looks up registered users with their natal charts.
type UserSource interface {
	GetByID(ctx context.Context, id string) (chart.User, bool, error)
}

// DailyStore persists one record per (user, date, timezone). Upsert is an
// idempotent insert-or-replace, so concurrent computations of the same key
// resolve last-writer-wins.
type DailyStore interface {
	Get(ctx context.Context, key CacheKey) (Record, bool, error)
	Upsert(ctx context.Context, record Record) error
}

// Service computes daily forecasts.
type Service interface {
	Personal(ctx context.Context, req PersonalRequest) (PersonalResult, error)
	Public(ctx context.Context, tz, date string) (PublicResult, error)
}

type service struct {
	users    UserSource
	store    DailyStore
	transits TransitSource
	lists    fortune.ListProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires up the horoscope domain.
func NewService(users UserSource, store DailyStore, transits TransitSource, lists fortune.ListProvider, logger *slog.Logger) Service {
	return &service{
		users:    users,
		store:    store,
		transits: transits,
		lists:    lists,
		logger:   logger.With("component", "horoscope.service"),
		now:      time.Now,
	}
}

func (s *service) Personal(ctx context.Context, req PersonalRequest) (PersonalResult, error) {
	if req.UserID == "" {
		return PersonalResult{}, apperrors.Wrap("invalid_input", "userId is required", nil)
	}
	loc, err := loadLocation(req.Tz)
	if err != nil {
		return PersonalResult{}, apperrors.Wrap("invalid_input", "invalid timezone (IANA), e.g. Asia/Tokyo", err)
	}
	dateKey, err := LocalDateKey(loc, req.Date, s.now())
	if err != nil {
		return PersonalResult{}, apperrors.Wrap("invalid_input", "invalid date, use YYYY-MM-DD", err)
	}

	key := CacheKey{UserID: req.UserID, LocalDate: dateKey, Tz: req.Tz}

	if !req.Refresh {
		record, found, err := s.store.Get(ctx, key)
		if err != nil {
			return PersonalResult{}, apperrors.Wrap("store_error", "daily cache lookup failed", err)
		}
		if found {
			payload := record.Payload
			payload.Meta.Cached = true
			payload.Meta.CacheKey = &key
			return payload, nil
		}
	}

	user, found, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return PersonalResult{}, apperrors.Wrap("store_error", "user lookup failed", err)
	}
	if !found {
		return PersonalResult{}, apperrors.Wrap("not_found", "user not found", nil)
	}

	localNoon, anchorUTC, err := AnchorInstant(loc, dateKey)
	if err != nil {
		return PersonalResult{}, apperrors.Wrap("invalid_input", "invalid date, use YYYY-MM-DD", err)
	}

	transit, err := s.transits.LongitudesAt(ctx, anchorUTC)
	if err != nil {
		return PersonalResult{}, apperrors.Wrap("ephemeris_error", "failed to fetch transit longitudes", err)
	}

	aspects := astro.Detect(transit, user.Natal.Longitudes)
	scored := ScorePersonalDay(user.Natal.SunSign.String(), aspects)

	explanations := make([]string, 0, len(scored.TopAspects))
	for _, a := range scored.TopAspects {
		explanations = append(explanations, astro.HumanText(a))
	}

	lists, err := s.lists.Lists(ctx)
	if err != nil {
		return PersonalResult{}, apperrors.Wrap("config_error", "content lists unavailable", err)
	}
	content, err := fortune.Derive(req.UserID, dateKey, req.Tz, lists)
	if err != nil {
		return PersonalResult{}, err
	}

	payload := PersonalResult{
		Meta: Meta{
			UserID:            req.UserID,
			Tz:                req.Tz,
			LocalDate:         dateKey,
			AnchoredLocalNoon: localNoon.Format(time.RFC3339),
			AnchoredUTC:       anchorUTC.Format(time.RFC3339),
			Cached:            false,
		},
		NatalSummary: NatalSummary{
			SunSign:    user.Natal.SunSign,
			MoonSign:   user.Natal.MoonSign,
			RisingSign: user.Natal.Ascendant.RisingSign,
		},
		Scores:       scored.Scores,
		Explanations: explanations,
		DailyContent: content,
	}

	record := Record{Key: key, Payload: payload, CreatedAt: s.now().UTC()}
	if err := s.store.Upsert(ctx, record); err != nil {
		return PersonalResult{}, apperrors.Wrap("store_error", "failed to cache daily result", err)
	}
	s.logger.Info("daily forecast computed",
		"userId", req.UserID, "localDate", dateKey, "tz", req.Tz,
		"overall", payload.Scores.Overall, "aspects", len(aspects))

	return payload, nil
}

func (s *service) Public(ctx context.Context, tz, date string) (PublicResult, error) {
	loc, err := loadLocation(tz)
	if err != nil {
		return PublicResult{}, apperrors.Wrap("invalid_input", "invalid timezone (IANA), e.g. Asia/Tokyo", err)
	}
	dateKey, err := LocalDateKey(loc, date, s.now())
	if err != nil {
		return PublicResult{}, apperrors.Wrap("invalid_input", "invalid date, use YYYY-MM-DD", err)
	}
	localNoon, anchorUTC, err := AnchorInstant(loc, dateKey)
	if err != nil {
		return PublicResult{}, apperrors.Wrap("invalid_input", "invalid date, use YYYY-MM-DD", err)
	}

	transit, err := s.transits.LongitudesAt(ctx, anchorUTC)
	if err != nil {
		return PublicResult{}, apperrors.Wrap("ephemeris_error", "failed to fetch transit longitudes", err)
	}

	return PublicResult{
		Meta: Meta{
			Tz:                tz,
			LocalDate:         dateKey,
			AnchoredLocalNoon: localNoon.Format(time.RFC3339),
			AnchoredUTC:       anchorUTC.Format(time.RFC3339),
		},
		Sky: Sky{
			SunSign:    astro.SignFromLongitude(transit.Get(astro.Sun)),
			MoonSign:   astro.SignFromLongitude(transit.Get(astro.Moon)),
			Longitudes: transit,
		},
	}, nil
}
