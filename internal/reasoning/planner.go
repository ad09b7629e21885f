package reasoning

import (
	"context"

	"github.com/nixinlabs/nixin/internal/nlp"
	"github.com/nixinlabs/nixin/internal/recall"
)

// ConfidenceThreshold is the minimum intent confidence required to act.
// Below it the planner asks for clarification instead of mutating state.
const ConfidenceThreshold = 0.75

// MeetingTimeKey is the preference key consulted when scheduling meetings.
const MeetingTimeKey = "meeting_time"

// NoTimeDetected marks a task whose utterance carried no recognizable time.
const NoTimeDetected = "No time detected"

// ActionKind identifies the single action a plan commits to.
type ActionKind string

const (
	ActionStorePreference        ActionKind = "store_preference"
	ActionScheduleWithPreference ActionKind = "schedule_with_preference"
	ActionScheduleDefault        ActionKind = "schedule_default"
	ActionStoreTask              ActionKind = "store_task"
	ActionSemanticRecall         ActionKind = "semantic_recall"
	ActionClarify                ActionKind = "clarify"
	ActionUnknown                ActionKind = "unknown"
)

// ActionPlan is the planner's decision for one utterance. At most one
// state mutation follows from a plan.
type ActionPlan struct {
	Action ActionKind

	// Key and Value are set for store_preference and
	// schedule_with_preference plans.
	Key   string
	Value string

	// Task and Time are set for store_task plans.
	Task string
	Time string

	Person string

	// Recall holds the best match for semantic_recall plans.
	// Nil means no relevant memory was found.
	Recall *recall.Result
}

// PreferenceReader reads a stored preference by key.
type PreferenceReader interface {
	GetPreference(key string) (string, bool, error)
}

// Planner turns an analysis result into an action plan, consulting
// stored preferences and the recall engine as needed.
type Planner struct {
	prefs  PreferenceReader
	recall *recall.Engine
}

func NewPlanner(prefs PreferenceReader, recallEngine *recall.Engine) *Planner {
	return &Planner{prefs: prefs, recall: recallEngine}
}

// Plan maps the analyzed utterance to exactly one action. It never
// fails: preference read errors fall back to default scheduling and
// recall errors yield an empty recall result.
func (p *Planner) Plan(ctx context.Context, res nlp.AnalysisResult, input string) ActionPlan {
	if res.Confidence < ConfidenceThreshold {
		return ActionPlan{Action: ActionClarify}
	}

	switch res.Intent {
	case nlp.IntentSetPreference:
		return ActionPlan{
			Action: ActionStorePreference,
			Key:    MeetingTimeKey,
			Value:  input,
		}

	case nlp.IntentScheduleMeeting:
		if p.prefs != nil {
			value, ok, err := p.prefs.GetPreference(MeetingTimeKey)
			if err == nil && ok {
				return ActionPlan{
					Action: ActionScheduleWithPreference,
					Key:    MeetingTimeKey,
					Value:  value,
					Person: res.Person,
				}
			}
		}
		return ActionPlan{Action: ActionScheduleDefault, Person: res.Person}

	case nlp.IntentSetReminder, nlp.IntentCreateTask:
		t := res.Time
		if t == "" {
			t = NoTimeDetected
		}
		return ActionPlan{
			Action: ActionStoreTask,
			Task:   input,
			Time:   t,
			Person: res.Person,
		}

	case nlp.IntentRetrieveTask:
		plan := ActionPlan{Action: ActionSemanticRecall}
		if p.recall != nil {
			match, err := p.recall.Search(ctx, input)
			if err == nil {
				plan.Recall = match
			}
		}
		return plan
	}

	return ActionPlan{Action: ActionUnknown}
}
