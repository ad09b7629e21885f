package nlp

import (
	"regexp"
	"strings"
)

// Intent is the speaker's high-level goal category for an utterance.
type Intent string

const (
	IntentSetReminder     Intent = "set_reminder"
	IntentScheduleMeeting Intent = "schedule_meeting"
	IntentSetPreference   Intent = "set_preference"
	IntentCreateTask      Intent = "create_task"
	IntentRetrieveTask    Intent = "retrieve_task"
	IntentUnknown         Intent = "unknown"
)

// Static confidence per rule. Confidence is a property of the matched
// rule, not computed from the text.
const (
	confidenceHigh    = 0.90 // set_preference, set_reminder, schedule_meeting
	confidenceTask    = 0.85 // create_task
	confidenceRecall  = 0.80 // retrieve_task
	confidenceUnknown = 0.30
)

var (
	taskVerbRe = regexp.MustCompile(`\b(send|submit|call|finish|prepare|pay|buy|email|write|complete)\b`)
	recallRe   = regexp.MustCompile(`\bwhat have i\b|\bdid i\b|\bremember\b|\brecall\b|\btold you\b`)
)

// DetectIntent classifies lower-cased text with ordered keyword rules.
// The first matching rule wins; the order is a compatibility contract:
// an utterance containing both "remind" and "schedule" is a reminder.
func DetectIntent(text string) (Intent, float64) {
	text = strings.ToLower(text)

	if strings.Contains(text, "prefer") {
		return IntentSetPreference, confidenceHigh
	}
	if strings.Contains(text, "remind") || strings.Contains(text, "alert") {
		return IntentSetReminder, confidenceHigh
	}
	if strings.Contains(text, "schedule") || strings.Contains(text, "book") ||
		strings.Contains(text, "appointment") || strings.Contains(text, "meeting") {
		return IntentScheduleMeeting, confidenceHigh
	}
	if taskVerbRe.MatchString(text) {
		return IntentCreateTask, confidenceTask
	}
	if recallRe.MatchString(text) {
		return IntentRetrieveTask, confidenceRecall
	}
	return IntentUnknown, confidenceUnknown
}
