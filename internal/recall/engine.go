package recall

import (
	"context"
	"fmt"
)

// HistoryReader provides read access to the conversation history.
type HistoryReader interface {
	GetHistory() ([]string, error)
}

// Result is the best-matching history entry for a query.
type Result struct {
	Match string  `json:"match"`
	Score float64 `json:"score"`
}

// Engine finds the most similar prior utterance to a query.
type Engine struct {
	history HistoryReader
	sim     Similarity
}

// NewEngine creates a recall engine over the given history using the
// given similarity strategy.
func NewEngine(history HistoryReader, sim Similarity) *Engine {
	return &Engine{history: history, sim: sim}
}

// Strategy returns the name of the active similarity strategy.
func (e *Engine) Strategy() string {
	return e.sim.Name()
}

// Search returns the best match over history with its score, or nil
// when the history is empty. Ties break toward the earliest entry.
func (e *Engine) Search(ctx context.Context, query string) (*Result, error) {
	history, err := e.history.GetHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	if len(history) == 0 {
		return nil, nil
	}

	scores, err := e.sim.Score(ctx, query, history)
	if err != nil {
		return nil, err
	}
	if len(scores) != len(history) {
		return nil, fmt.Errorf("similarity returned %d scores for %d entries", len(scores), len(history))
	}

	// Strictly greater keeps the earliest entry on ties.
	best := 0
	for i, score := range scores {
		if score > scores[best] {
			best = i
		}
	}

	return &Result{Match: history[best], Score: scores[best]}, nil
}
