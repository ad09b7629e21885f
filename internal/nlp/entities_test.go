package nlp

import "testing"

func TestBestTime(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"remind me to pay the electric bill on 20 feb 2026", "20 feb 2026"},
		{"remind me to submit undertaking form to kavita mam on 17 feb 2026", "17 feb 2026"},
		{"the deadline is 17 february 2026", "17 february 2026"},
		{"schedule meeting tomorrow with alice", "tomorrow"},
		{"send an email to john sir by 5 pm", "5 pm"},
		{"alert me at 3 pm", "3 pm"},
		{"alert me at 3pm", "3pm"},
		{"call me at 10:30 am", "10:30 am"},
		{"book an appointment with dr. smith on monday", "monday"},
		{"see you yesterday or today", "yesterday"},
		{"what have I told you about the project", ""},
		{"xyz qwerty asdf", ""},
	}

	for _, c := range cases {
		if got := BestTime(c.input); got != c.want {
			t.Errorf("BestTime(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

// A calendar date is more specific than a weekday and must win even when
// the weekday comes first in the text.
func TestBestTime_CalendarDateBeatsWeekday(t *testing.T) {
	got := BestTime("move the friday meeting to 20 feb 2026")
	if got != "20 feb 2026" {
		t.Errorf("got %q, want calendar date to win over weekday", got)
	}
}

func TestBestTime_FirstByPosition(t *testing.T) {
	got := BestTime("remind me tomorrow and again on friday")
	if got != "tomorrow" {
		t.Errorf("got %q, want first time expression by position", got)
	}
}

func TestBestPerson(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"remind me to submit undertaking form to kavita mam on 17 feb 2026", "kavita mam"},
		{"send an email to john sir by 5 pm", "john sir"},
		{"schedule meeting tomorrow with alice", "alice"},
		{"book an appointment with dr. smith on monday", "dr. smith"},
		{"remind me to call alice", "alice"},
		{"remind me to pay the electric bill on 20 feb 2026", ""},
		{"what have I told you about the project", ""},
		{"alert me at 3 pm", ""},
		{"xyz qwerty asdf", ""},
	}

	for _, c := range cases {
		if got := BestPerson(c.input); got != c.want {
			t.Errorf("BestPerson(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

// Time-denoting words must never be extracted as a person, even when
// they are capitalized or appear after a preposition.
func TestBestPerson_ExcludesTimeWords(t *testing.T) {
	inputs := []string{
		"schedule meeting with Monday",
		"meet me on friday",
		"schedule a call for tomorrow",
		"remind me about the date",
		"book time with the team on wed",
	}

	for _, input := range inputs {
		if got := BestPerson(input); got != "" {
			t.Errorf("BestPerson(%q) = %q, want no person", input, got)
		}
	}
}

func TestExtractEntities_Order(t *testing.T) {
	ents := ExtractEntities("schedule meeting tomorrow with alice")
	if len(ents) != 2 {
		t.Fatalf("expected 2 entities, got %d: %v", len(ents), ents)
	}
	if ents[0].Text != "tomorrow" || ents[0].Label != LabelDate {
		t.Errorf("first entity = %+v, want tomorrow/DATE", ents[0])
	}
	if ents[1].Text != "alice" || ents[1].Label != LabelPerson {
		t.Errorf("second entity = %+v, want alice/PERSON", ents[1])
	}
	if ents[0].Start > ents[1].Start {
		t.Error("entities not in left-to-right order")
	}
}

func TestExtractEntities_Labels(t *testing.T) {
	ents := ExtractEntities("send an email to john sir by 5 pm")

	var gotPerson, gotTime bool
	for _, e := range ents {
		switch e.Label {
		case LabelPerson:
			gotPerson = true
			if e.Text != "john sir" {
				t.Errorf("person entity = %q, want %q", e.Text, "john sir")
			}
		case LabelTime:
			gotTime = true
			if e.Text != "5 pm" {
				t.Errorf("time entity = %q, want %q", e.Text, "5 pm")
			}
		}
	}
	if !gotPerson || !gotTime {
		t.Errorf("expected PERSON and TIME entities, got %v", ents)
	}
}

func TestExtractEntities_Empty(t *testing.T) {
	if ents := ExtractEntities("xyz qwerty asdf"); len(ents) != 0 {
		t.Errorf("expected no entities, got %v", ents)
	}
}
