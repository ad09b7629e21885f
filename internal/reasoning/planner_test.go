package reasoning

import (
	"context"
	"errors"
	"testing"

	"github.com/nixinlabs/nixin/internal/nlp"
	"github.com/nixinlabs/nixin/internal/recall"
)

type fakePrefs struct {
	values map[string]string
	err    error
}

func (f *fakePrefs) GetPreference(key string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	v, ok := f.values[key]
	return v, ok, nil
}

type fakeHistory struct {
	items []string
}

func (f *fakeHistory) GetHistory() ([]string, error) {
	return f.items, nil
}

func newTestPlanner(prefs *fakePrefs, history []string) *Planner {
	engine := recall.NewEngine(&fakeHistory{items: history}, recall.NewLexicalSimilarity())
	return NewPlanner(prefs, engine)
}

func TestPlanClarifyBelowThreshold(t *testing.T) {
	p := newTestPlanner(&fakePrefs{}, nil)
	res := nlp.AnalysisResult{Intent: nlp.IntentUnknown, Confidence: 0.30}
	plan := p.Plan(context.Background(), res, "gibberish")
	if plan.Action != ActionClarify {
		t.Fatalf("Action = %q, want %q", plan.Action, ActionClarify)
	}
}

func TestPlanStorePreference(t *testing.T) {
	p := newTestPlanner(&fakePrefs{}, nil)
	input := "i prefer meetings in the morning"
	res := nlp.AnalysisResult{Intent: nlp.IntentSetPreference, Confidence: 0.90}
	plan := p.Plan(context.Background(), res, input)
	if plan.Action != ActionStorePreference {
		t.Fatalf("Action = %q, want %q", plan.Action, ActionStorePreference)
	}
	if plan.Key != MeetingTimeKey {
		t.Errorf("Key = %q, want %q", plan.Key, MeetingTimeKey)
	}
	if plan.Value != input {
		t.Errorf("Value = %q, want the raw utterance", plan.Value)
	}
}

func TestPlanScheduleUsesStoredPreference(t *testing.T) {
	p := newTestPlanner(&fakePrefs{values: map[string]string{
		MeetingTimeKey: "i prefer meetings in the morning",
	}}, nil)
	res := nlp.AnalysisResult{Intent: nlp.IntentScheduleMeeting, Confidence: 0.90, Person: "alice"}
	plan := p.Plan(context.Background(), res, "schedule a meeting with alice")
	if plan.Action != ActionScheduleWithPreference {
		t.Fatalf("Action = %q, want %q", plan.Action, ActionScheduleWithPreference)
	}
	if plan.Value != "i prefer meetings in the morning" {
		t.Errorf("Value = %q, want stored preference", plan.Value)
	}
	if plan.Person != "alice" {
		t.Errorf("Person = %q, want alice", plan.Person)
	}
}

func TestPlanScheduleDefaultWithoutPreference(t *testing.T) {
	p := newTestPlanner(&fakePrefs{}, nil)
	res := nlp.AnalysisResult{Intent: nlp.IntentScheduleMeeting, Confidence: 0.90}
	plan := p.Plan(context.Background(), res, "schedule a meeting")
	if plan.Action != ActionScheduleDefault {
		t.Fatalf("Action = %q, want %q", plan.Action, ActionScheduleDefault)
	}
}

func TestPlanScheduleDefaultOnPreferenceError(t *testing.T) {
	p := newTestPlanner(&fakePrefs{err: errors.New("db closed")}, nil)
	res := nlp.AnalysisResult{Intent: nlp.IntentScheduleMeeting, Confidence: 0.90}
	plan := p.Plan(context.Background(), res, "schedule a meeting")
	if plan.Action != ActionScheduleDefault {
		t.Fatalf("Action = %q, want %q", plan.Action, ActionScheduleDefault)
	}
}

func TestPlanStoreTaskKeepsTimeSentinel(t *testing.T) {
	p := newTestPlanner(&fakePrefs{}, nil)

	tests := []struct {
		name     string
		intent   nlp.Intent
		conf     float64
		input    string
		time     string
		wantTime string
	}{
		{"reminder with time", nlp.IntentSetReminder, 0.90, "remind me to call mom at 5 pm", "5 pm", "5 pm"},
		{"task without time", nlp.IntentCreateTask, 0.85, "send the invoice", "", NoTimeDetected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := nlp.AnalysisResult{Intent: tt.intent, Confidence: tt.conf, Time: tt.time}
			plan := p.Plan(context.Background(), res, tt.input)
			if plan.Action != ActionStoreTask {
				t.Fatalf("Action = %q, want %q", plan.Action, ActionStoreTask)
			}
			if plan.Task != tt.input {
				t.Errorf("Task = %q, want raw utterance", plan.Task)
			}
			if plan.Time != tt.wantTime {
				t.Errorf("Time = %q, want %q", plan.Time, tt.wantTime)
			}
		})
	}
}

func TestPlanSemanticRecall(t *testing.T) {
	history := []string{
		"i prefer meetings in the morning",
		"remind me to submit the report tomorrow",
	}
	p := newTestPlanner(&fakePrefs{}, history)
	res := nlp.AnalysisResult{Intent: nlp.IntentRetrieveTask, Confidence: 0.80}
	plan := p.Plan(context.Background(), res, "did i ask to submit the report")
	if plan.Action != ActionSemanticRecall {
		t.Fatalf("Action = %q, want %q", plan.Action, ActionSemanticRecall)
	}
	if plan.Recall == nil {
		t.Fatal("Recall = nil, want a match")
	}
	if plan.Recall.Match != history[1] {
		t.Errorf("Recall.Match = %q, want %q", plan.Recall.Match, history[1])
	}
}

func TestPlanSemanticRecallEmptyHistory(t *testing.T) {
	p := newTestPlanner(&fakePrefs{}, nil)
	res := nlp.AnalysisResult{Intent: nlp.IntentRetrieveTask, Confidence: 0.80}
	plan := p.Plan(context.Background(), res, "what have i told you")
	if plan.Action != ActionSemanticRecall {
		t.Fatalf("Action = %q, want %q", plan.Action, ActionSemanticRecall)
	}
	if plan.Recall != nil {
		t.Errorf("Recall = %+v, want nil for empty history", plan.Recall)
	}
}
