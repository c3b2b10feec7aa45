package fortune

import (
	"fmt"

	apperrors "github.com/astriva/astroday/pkg/errors"
)

// LuckyColors is the fixed palette lucky colors are drawn from.
var LuckyColors = []string{
	"Red", "Orange", "Yellow", "Green", "Blue", "Indigo", "Violet",
	"Pink", "Purple", "Teal", "Cyan", "Magenta",
	"Black", "White", "Gray", "Brown",
	"Gold", "Silver", "Navy", "Maroon",
}

const (
	startHourMin = 8
	startHourMax = 21
)

// Bundle is the deterministic daily content for one (user, date, timezone).
type Bundle struct {
	LifeAdvice   string   `json:"life_advice"`
	SuggestToDo  []string `json:"suggest_to_do"`
	AvoidToDo    []string `json:"avoid_to_do"`
	LuckyFood    string   `json:"lucky_food"`
	DailyTasks   []string `json:"daily_tasks"`
	LuckyColor   string   `json:"lucky_color"`
	LuckyNumbers []int    `json:"lucky_numbers"`
	LuckyTime    string   `json:"lucky_time"`
}

// Derive produces the content bundle for a user and local day. Identical
// inputs always yield an identical bundle; each category draws from an
// independent seeded stream.
func Derive(userID, localDate, tz string, lists Lists) (Bundle, error) {
	if err := lists.validate(); err != nil {
		return Bundle{}, err
	}

	seedBase := userID + "|" + localDate + "|" + tz

	rngAdvice := newMulberry32(seedFor(seedBase + "|advice"))
	rngSuggest := newMulberry32(seedFor(seedBase + "|suggest"))
	rngAvoid := newMulberry32(seedFor(seedBase + "|avoid"))
	rngFood := newMulberry32(seedFor(seedBase + "|food"))
	rngTasks := newMulberry32(seedFor(seedBase + "|tasks"))
	rngColor := newMulberry32(seedFor(seedBase + "|color"))
	rngNumbers := newMulberry32(seedFor(seedBase + "|numbers"))
	rngTime := newMulberry32(seedFor(seedBase + "|time"))

	numbers := make([]int, 99)
	for i := range numbers {
		numbers[i] = i + 1
	}

	startHour := startHourMin + rngTime.Intn(startHourMax-startHourMin+1)

	return Bundle{
		LifeAdvice:   pickOne(rngAdvice, lists.LifeAdvices),
		SuggestToDo:  pickNUnique(rngSuggest, lists.SuggestToDo, 2),
		AvoidToDo:    pickNUnique(rngAvoid, lists.AvoidToDo, 2),
		LuckyFood:    pickOne(rngFood, lists.Foods),
		DailyTasks:   pickNUnique(rngTasks, lists.DailyTasks, 3),
		LuckyColor:   pickOne(rngColor, LuckyColors),
		LuckyNumbers: pickNUniqueInts(rngNumbers, numbers, 2),
		LuckyTime:    formatHourRange(startHour),
	}, nil
}

func pickOne(rng *mulberry32, items []string) string {
	return items[rng.Intn(len(items))]
}

// pickNUnique draws n distinct items by index removal. Short lists return
// everything.
func pickNUnique(rng *mulberry32, items []string, n int) []string {
	pool := append([]string(nil), items...)
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx := rng.Intn(len(pool))
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}

func pickNUniqueInts(rng *mulberry32, items []int, n int) []int {
	pool := append([]int(nil), items...)
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		idx := rng.Intn(len(pool))
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}

// formatHourRange renders a 2-hour window like "5PM-7PM".
func formatHourRange(startHour24 int) string {
	endHour24 := (startHour24 + 2) % 24
	return fmt.Sprintf("%s-%s", formatHour(startHour24), formatHour(endHour24))
}

func formatHour(h24 int) string {
	ampm := "AM"
	if h24 >= 12 {
		ampm = "PM"
	}
	h := h24 % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d%s", h, ampm)
}

func errEmptyList(name string) error {
	return apperrors.Wrap("config_error", fmt.Sprintf("%s list is empty", name), nil)
}
