package nlp

import "testing"

func TestDetectIntent(t *testing.T) {
	cases := []struct {
		input      string
		want       Intent
		confidence float64
	}{
		{"I prefer coffee over tea", IntentSetPreference, 0.90},
		{"set preference for morning time", IntentSetPreference, 0.90},
		{"prefer meetings in the afternoon", IntentSetPreference, 0.90},
		{"remind me to pay the electric bill on 20 feb 2026", IntentSetReminder, 0.90},
		{"alert me at 3 pm", IntentSetReminder, 0.90},
		{"remind me about the meeting tomorrow", IntentSetReminder, 0.90},
		{"schedule meeting tomorrow with alice", IntentScheduleMeeting, 0.90},
		{"book an appointment with dr. smith on monday", IntentScheduleMeeting, 0.90},
		{"send an email to john sir by 5 pm", IntentCreateTask, 0.85},
		{"buy coffee beans", IntentCreateTask, 0.85},
		{"finish the report", IntentCreateTask, 0.85},
		{"what have I told you about the project", IntentRetrieveTask, 0.80},
		{"did I mention the presentation", IntentRetrieveTask, 0.80},
		{"recall my notes", IntentRetrieveTask, 0.80},
		{"xyz qwerty asdf", IntentUnknown, 0.30},
		{"hello there", IntentUnknown, 0.30},
	}

	for _, c := range cases {
		intent, confidence := DetectIntent(c.input)
		if intent != c.want {
			t.Errorf("DetectIntent(%q) = %s, want %s", c.input, intent, c.want)
		}
		if confidence != c.confidence {
			t.Errorf("DetectIntent(%q) confidence = %.2f, want %.2f", c.input, confidence, c.confidence)
		}
	}
}

// Rule priority, not position in the text, decides multi-trigger inputs.
func TestDetectIntent_Priority(t *testing.T) {
	cases := []struct {
		input string
		want  Intent
	}{
		// "remind" outranks "schedule" regardless of order
		{"remind me to schedule a meeting", IntentSetReminder},
		{"schedule a meeting and remind me", IntentSetReminder},
		// "prefer" outranks everything
		{"remind me that I prefer morning meetings", IntentSetPreference},
		// "meeting" alone without "remind" is a schedule
		{"meeting with the team", IntentScheduleMeeting},
		// task verb outranks recall triggers
		{"remember to pay the rent", IntentCreateTask},
	}

	for _, c := range cases {
		if intent, _ := DetectIntent(c.input); intent != c.want {
			t.Errorf("DetectIntent(%q) = %s, want %s", c.input, intent, c.want)
		}
	}
}

func TestDetectIntent_ConfidenceRange(t *testing.T) {
	inputs := []string{
		"I prefer tea", "remind me later", "schedule it", "pay the bill",
		"did I say that", "complete gibberish input", "",
	}
	for _, input := range inputs {
		if _, confidence := DetectIntent(input); confidence < 0 || confidence > 1 {
			t.Errorf("DetectIntent(%q) confidence %.2f out of [0,1]", input, confidence)
		}
	}
}
