package content

import (
	"context"

	"github.com/astriva/astroday/internal/domain/fortune"
)

// StaticProvider serves a fixed set of lists. Used in tests and as the dev
// fallback when no list directory is configured.
type StaticProvider struct {
	lists fortune.Lists
}

// NewStaticProvider constructs the provider.
func NewStaticProvider(lists fortune.Lists) *StaticProvider {
	return &StaticProvider{lists: lists}
}

// Lists implements fortune.ListProvider.
func (p *StaticProvider) Lists(_ context.Context) (fortune.Lists, error) {
	return p.lists, nil
}

// DefaultLists is the built-in dev fallback content.
func DefaultLists() fortune.Lists {
	return fortune.Lists{
		LifeAdvices: []string{
			"Say what you mean, kindly.",
			"Finish one thing before starting two.",
			"Ask the question you are avoiding.",
			"Rest is part of the work.",
		},
		SuggestToDo: []string{
			"Take a short walk outside",
			"Write down three priorities",
			"Call someone you miss",
			"Declutter one small corner",
		},
		AvoidToDo: []string{
			"Signing contracts in a hurry",
			"Arguing over small change",
			"Doomscrolling before bed",
			"Skipping lunch",
		},
		Foods: []string{
			"Miso soup", "Citrus salad", "Grilled salmon", "Dark chocolate",
		},
		DailyTasks: []string{
			"Drink a full glass of water first thing",
			"Stretch for five minutes",
			"Send the message you drafted",
			"Tidy your desk before finishing",
			"Note one thing that went well",
		},
	}
}

var _ fortune.ListProvider = (*StaticProvider)(nil)
