package fortune

import "context"

// Lists holds the five externally supplied content sequences. Order matters:
// the picker samples by index.
type Lists struct {
	LifeAdvices []string
	SuggestToDo []string
	AvoidToDo   []string
	Foods       []string
	DailyTasks  []string
}

// ListProvider supplies the current content lists. Implementations own their
// reload-if-changed behavior; callers get a consistent snapshot per call.
type ListProvider interface {
	Lists(ctx context.Context) (Lists, error)
}

// validate reports the first empty required list. An empty list is a
// deployment defect, not a user error.
func (l Lists) validate() error {
	switch {
	case len(l.LifeAdvices) == 0:
		return errEmptyList("life advices")
	case len(l.SuggestToDo) == 0:
		return errEmptyList("suggest-to-do")
	case len(l.AvoidToDo) == 0:
		return errEmptyList("avoid-to-do")
	case len(l.Foods) == 0:
		return errEmptyList("foods")
	case len(l.DailyTasks) == 0:
		return errEmptyList("daily tasks")
	}
	return nil
}
