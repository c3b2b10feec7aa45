package horoscope

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// loadLocation resolves an IANA timezone name.
func loadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return nil, fmt.Errorf("timezone is required")
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return loc, nil
}

// LocalDateKey returns the YYYY-MM-DD the forecast is for. An explicit date
// string is validated and reformatted; otherwise "now" in the timezone.
func LocalDateKey(loc *time.Location, dateStr string, now time.Time) (string, error) {
	if dateStr != "" {
		parsed, err := time.ParseInLocation(dateLayout, dateStr, loc)
		if err != nil {
			return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", dateStr, err)
		}
		return parsed.Format(dateLayout), nil
	}
	return now.In(loc).Format(dateLayout), nil
}

// AnchorInstant returns local noon of the given calendar day plus its UTC
// equivalent. Noon, not midnight, keeps the snapshot clear of day-boundary
// transit changes.
func AnchorInstant(loc *time.Location, localDateKey string) (localNoon, utc time.Time, err error) {
	day, err := time.ParseInLocation(dateLayout, localDateKey, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date key %q: %w", localDateKey, err)
	}
	localNoon = time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, loc)
	return localNoon, localNoon.UTC(), nil
}
