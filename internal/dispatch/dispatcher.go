package dispatch

import (
	"fmt"

	"github.com/nixinlabs/nixin/internal/reasoning"
)

// Store is the subset of the memory store the dispatcher mutates.
type Store interface {
	SetPreference(key, value string) error
	AddTask(task, when string) error
	AppendHistory(text string) error
}

// Dispatcher executes action plans against the store and renders the
// user-facing reply.
type Dispatcher struct {
	store Store
}

func NewDispatcher(store Store) *Dispatcher {
	return &Dispatcher{store: store}
}

// Dispatch records the utterance in history and then performs at most
// one store mutation for the plan. The utterance is recorded for every
// plan kind, including clarify and unknown, so the next turn's recall
// can see it.
func (d *Dispatcher) Dispatch(plan reasoning.ActionPlan, input string) (string, error) {
	if err := d.store.AppendHistory(input); err != nil {
		return "", fmt.Errorf("append history: %w", err)
	}

	switch plan.Action {
	case reasoning.ActionStorePreference:
		if err := d.store.SetPreference(plan.Key, plan.Value); err != nil {
			return "", fmt.Errorf("store preference: %w", err)
		}
		return "Preference saved.", nil

	case reasoning.ActionScheduleWithPreference:
		return fmt.Sprintf("Meeting scheduled based on your preference: %s", plan.Value), nil

	case reasoning.ActionScheduleDefault:
		return "Meeting scheduled at default time.", nil

	case reasoning.ActionStoreTask:
		if err := d.store.AddTask(plan.Task, plan.Time); err != nil {
			return "", fmt.Errorf("store task: %w", err)
		}
		return fmt.Sprintf("Task saved for %s", plan.Time), nil

	case reasoning.ActionSemanticRecall:
		if plan.Recall == nil {
			return "No relevant memory found.", nil
		}
		return fmt.Sprintf("I remember you said: %s\nRelevance Score: %.2f",
			plan.Recall.Match, plan.Recall.Score), nil

	case reasoning.ActionClarify:
		return "Could you clarify your request?", nil
	}

	return "I didn't understand that.", nil
}
