package memory

import "time"

// PreferenceItem is a stored user preference.
type PreferenceItem struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskItem is a stored task or reminder.
type TaskItem struct {
	ID        string    `json:"id"`
	Task      string    `json:"task"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryItem is one conversation turn stored in history.
type HistoryItem struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// HistorySearchResult is a history full-text search hit.
type HistorySearchResult struct {
	Item    HistoryItem `json:"item"`
	Snippet string      `json:"snippet"` // matched snippet with context
	Rank    float64     `json:"rank"`    // FTS rank score (lower is better)
}
