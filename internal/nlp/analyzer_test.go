package nlp

import "testing"

// End-to-end analysis scenarios pinning intent, time and person together.
func TestAnalyze_Scenarios(t *testing.T) {
	cases := []struct {
		input  string
		intent Intent
		time   string
		person string
	}{
		{"remind me to pay the electric bill on 20 feb 2026", IntentSetReminder, "20 feb 2026", ""},
		{"remind me to submit undertaking form to kavita mam on 17 feb 2026", IntentSetReminder, "17 feb 2026", "kavita mam"},
		{"schedule meeting tomorrow with alice", IntentScheduleMeeting, "tomorrow", "alice"},
		{"send an email to john sir by 5 pm", IntentCreateTask, "5 pm", "john sir"},
		{"what have I told you about the project", IntentRetrieveTask, "", ""},
		{"set preference for morning time", IntentSetPreference, "", ""},
		{"alert me at 3 pm", IntentSetReminder, "3 pm", ""},
		{"xyz qwerty asdf", IntentUnknown, "", ""},
	}

	for _, c := range cases {
		res := Analyze(c.input)
		if res.Intent != c.intent {
			t.Errorf("Analyze(%q).Intent = %s, want %s", c.input, res.Intent, c.intent)
		}
		if res.Time != c.time {
			t.Errorf("Analyze(%q).Time = %q, want %q", c.input, res.Time, c.time)
		}
		if res.Person != c.person {
			t.Errorf("Analyze(%q).Person = %q, want %q", c.input, res.Person, c.person)
		}
		if res.Confidence < 0 || res.Confidence > 1 {
			t.Errorf("Analyze(%q).Confidence = %.2f out of [0,1]", c.input, res.Confidence)
		}
	}
}

// Analyze must mirror the extractor's selections without touching them.
func TestAnalyze_MirrorsExtractor(t *testing.T) {
	input := "schedule meeting tomorrow with alice"
	res := Analyze(input)

	if res.Time != BestTime(input) {
		t.Errorf("Time %q does not mirror BestTime %q", res.Time, BestTime(input))
	}
	if res.Person != BestPerson(input) {
		t.Errorf("Person %q does not mirror BestPerson %q", res.Person, BestPerson(input))
	}

	ents := ExtractEntities(input)
	if len(res.Entities) != len(ents) {
		t.Fatalf("entity count %d does not mirror extractor %d", len(res.Entities), len(ents))
	}
	for i := range ents {
		if res.Entities[i] != ents[i] {
			t.Errorf("entity %d = %+v, want %+v", i, res.Entities[i], ents[i])
		}
	}
}
