package nlp

// AnalysisResult is the structured view of a single utterance.
// It is created once per utterance and never mutated afterwards.
type AnalysisResult struct {
	Intent     Intent   `json:"intent"`
	Confidence float64  `json:"confidence"`
	Entities   []Entity `json:"entities"`
	Time       string   `json:"time,omitempty"`
	Person     string   `json:"person,omitempty"`
}

// Analyze runs entity extraction and intent classification over the same
// input and merges the results. It adds no logic of its own: entities are
// passed through in order and Time/Person mirror the extractor's picks.
func Analyze(text string) AnalysisResult {
	intent, confidence := DetectIntent(text)

	return AnalysisResult{
		Intent:     intent,
		Confidence: confidence,
		Entities:   ExtractEntities(text),
		Time:       BestTime(text),
		Person:     BestPerson(text),
	}
}
