package recall

import (
	"context"
	"testing"
)

// fakeHistory implements HistoryReader with a fixed slice.
type fakeHistory []string

func (f fakeHistory) GetHistory() ([]string, error) { return f, nil }

func TestEngine_SelfMatch(t *testing.T) {
	query := "what have I told you about the project"
	engine := NewEngine(fakeHistory{query}, NewLexicalSimilarity())

	res, err := engine.Search(context.Background(), query)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res == nil {
		t.Fatal("expected a match")
	}
	if res.Match != query {
		t.Errorf("match = %q, want the query itself", res.Match)
	}
	if res.Score != 1.0 {
		t.Errorf("self-match score = %.4f, want 1.0", res.Score)
	}
}

func TestEngine_EmptyHistory(t *testing.T) {
	engine := NewEngine(fakeHistory{}, NewLexicalSimilarity())

	res, err := engine.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res != nil {
		t.Errorf("expected no match for empty history, got %+v", res)
	}
}

func TestEngine_BestMatch(t *testing.T) {
	history := fakeHistory{
		"pick up groceries after work",
		"told you about the project deadline",
		"schedule meeting tomorrow with alice",
	}
	engine := NewEngine(history, NewLexicalSimilarity())

	res, err := engine.Search(context.Background(), "what have I told you about the project")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res == nil {
		t.Fatal("expected a match")
	}
	if res.Match != "told you about the project deadline" {
		t.Errorf("match = %q", res.Match)
	}
	if res.Score <= 0 || res.Score > 1 {
		t.Errorf("score %.4f out of (0,1]", res.Score)
	}
}

// Equal scores resolve to the earliest history entry.
func TestEngine_TieBreaksEarliest(t *testing.T) {
	history := fakeHistory{"abcd", "abcd", "abcd"}
	engine := NewEngine(history, NewLexicalSimilarity())

	res, err := engine.Search(context.Background(), "abcd")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res == nil || res.Match != "abcd" || res.Score != 1.0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRatio_Properties(t *testing.T) {
	pairs := [][2]string{
		{"remind me to call alice", "remind me to call bob"},
		{"schedule meeting", "what did I say"},
		{"", "nonempty"},
		{"same", "same"},
	}

	for _, p := range pairs {
		ab := Ratio(p[0], p[1])
		ba := Ratio(p[1], p[0])
		if ab != ba {
			t.Errorf("Ratio(%q,%q)=%.4f not symmetric with %.4f", p[0], p[1], ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Errorf("Ratio(%q,%q)=%.4f out of [0,1]", p[0], p[1], ab)
		}
	}

	if Ratio("identical", "identical") != 1.0 {
		t.Error("identical strings must score 1.0")
	}
	if Ratio("", "") != 1.0 {
		t.Error("two empty strings must score 1.0")
	}
	if got := Ratio("abc", "xyz"); got != 0 {
		t.Errorf("disjoint strings = %.4f, want 0", got)
	}
}
