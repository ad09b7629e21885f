package memory

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/nixinlabs/nixin/internal/consts"
)

// Store manages preference, task and conversation history persistence
// in SQLite. All pipeline mutations go through the dispatcher; the
// planner and recall engine only read.
type Store struct {
	db *sql.DB
}

// NewStore opens the store at the default per-user location,
// initializing the database if needed.
func NewStore() (*Store, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(dbPath)
}

// NewStoreAt opens the store at an explicit database path. Tests use
// this with a temp directory.
func NewStoreAt(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open memory database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// getDBPath returns the path to the memory database file.
func getDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	nixinDir := filepath.Join(homeDir, consts.NixinDir)
	if err := os.MkdirAll(nixinDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create nixin directory: %w", err)
	}

	return filepath.Join(nixinDir, consts.MemoryDBName), nil
}

// initSchema creates the database tables if they don't exist.
func (s *Store) initSchema() error {
	preferencesSchema := `
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`

	if _, err := s.db.Exec(preferencesSchema); err != nil {
		return fmt.Errorf("failed to create preferences table: %w", err)
	}

	tasksSchema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		task TEXT NOT NULL,
		time TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at);
	`

	if _, err := s.db.Exec(tasksSchema); err != nil {
		return fmt.Errorf("failed to create tasks table: %w", err)
	}

	historySchema := `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at);
	`

	if _, err := s.db.Exec(historySchema); err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}

	// FTS5 virtual table for full-text search on history
	historyFTSSchema := `
	CREATE VIRTUAL TABLE IF NOT EXISTS history_fts USING fts5(
		content,
		content='history',
		content_rowid='rowid'
	);

	-- Triggers to keep FTS index in sync with the history table
	CREATE TRIGGER IF NOT EXISTS history_ai AFTER INSERT ON history BEGIN
		INSERT INTO history_fts(rowid, content) VALUES (NEW.rowid, NEW.content);
	END;

	CREATE TRIGGER IF NOT EXISTS history_ad AFTER DELETE ON history BEGIN
		INSERT INTO history_fts(history_fts, rowid, content) VALUES('delete', OLD.rowid, OLD.content);
	END;

	CREATE TRIGGER IF NOT EXISTS history_au AFTER UPDATE ON history BEGIN
		INSERT INTO history_fts(history_fts, rowid, content) VALUES('delete', OLD.rowid, OLD.content);
		INSERT INTO history_fts(rowid, content) VALUES (NEW.rowid, NEW.content);
	END;
	`

	if _, err := s.db.Exec(historyFTSSchema); err != nil {
		return fmt.Errorf("failed to create history FTS index: %w", err)
	}

	return nil
}

// SetPreference stores a preference, overwriting any existing value
// under the same key.
func (s *Store) SetPreference(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().Unix())

	if err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}

	return nil
}

// GetPreference returns the value stored under key. The boolean reports
// whether the key exists.
func (s *Store) GetPreference(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query preference: %w", err)
	}
	return value, true, nil
}

// GetPreferences returns all stored preferences ordered by key.
func (s *Store) GetPreferences() ([]PreferenceItem, error) {
	rows, err := s.db.Query("SELECT key, value, updated_at FROM preferences ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer rows.Close()

	var prefs []PreferenceItem
	for rows.Next() {
		var item PreferenceItem
		var updatedAtUnix int64

		if err := rows.Scan(&item.Key, &item.Value, &updatedAtUnix); err != nil {
			return nil, fmt.Errorf("failed to scan preference row: %w", err)
		}

		item.UpdatedAt = time.Unix(updatedAtUnix, 0)
		prefs = append(prefs, item)
	}

	return prefs, rows.Err()
}

// DeletePreference deletes a preference by key.
func (s *Store) DeletePreference(key string) error {
	_, err := s.db.Exec("DELETE FROM preferences WHERE key = ?", key)
	return err
}

// AddTask saves a new task. A task whose text exactly matches an
// existing task is silently skipped.
func (s *Store) AddTask(task, when string) error {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM tasks WHERE task = ?)", task).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for duplicate task: %w", err)
	}
	if exists {
		return nil
	}

	_, err = s.db.Exec(`
		INSERT INTO tasks (id, task, time, created_at) VALUES (?, ?, ?, ?)
	`, uuid.New().String(), task, when, time.Now().Unix())

	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	return nil
}

// GetTasks returns all tasks in insertion order.
func (s *Store) GetTasks() ([]TaskItem, error) {
	rows, err := s.db.Query(`
		SELECT id, task, time, created_at FROM tasks ORDER BY created_at, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []TaskItem
	for rows.Next() {
		var item TaskItem
		var createdAtUnix int64

		if err := rows.Scan(&item.ID, &item.Task, &item.Time, &createdAtUnix); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}

		item.CreatedAt = time.Unix(createdAtUnix, 0)
		tasks = append(tasks, item)
	}

	return tasks, rows.Err()
}

// DeleteTask deletes a task by ID.
func (s *Store) DeleteTask(id string) error {
	_, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	return err
}

// AppendHistory appends one utterance to the conversation history.
func (s *Store) AppendHistory(text string) error {
	_, err := s.db.Exec(`
		INSERT INTO history (id, content, created_at) VALUES (?, ?, ?)
	`, uuid.New().String(), text, time.Now().Unix())

	if err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}

	return nil
}

// GetHistory returns all history contents in insertion order. The rowid
// tie-break keeps the order deterministic for same-second appends.
func (s *Store) GetHistory() ([]string, error) {
	rows, err := s.db.Query("SELECT content FROM history ORDER BY created_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var history []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		history = append(history, content)
	}

	return history, rows.Err()
}

// GetRecentHistory returns the most recent history items, newest first.
func (s *Store) GetRecentHistory(limit int) ([]HistoryItem, error) {
	rows, err := s.db.Query(`
		SELECT id, content, created_at FROM history
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent history: %w", err)
	}
	defer rows.Close()

	var items []HistoryItem
	for rows.Next() {
		var item HistoryItem
		var createdAtUnix int64

		if err := rows.Scan(&item.ID, &item.Content, &createdAtUnix); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}

		item.CreatedAt = time.Unix(createdAtUnix, 0)
		items = append(items, item)
	}

	return items, rows.Err()
}

// SearchHistory performs full-text search on history content.
// Returns top K results ordered by FTS rank.
func (s *Store) SearchHistory(query string, topK int) ([]HistorySearchResult, error) {
	ftsQuery := tokenizeForFTS(query)
	if ftsQuery == "" {
		return nil, nil
	}

	rows, err := s.db.Query(`
		SELECT h.id, h.content, h.created_at,
		       snippet(history_fts, 0, '>>>', '<<<', '...', 32) as snippet,
		       rank
		FROM history h
		JOIN history_fts fts ON h.rowid = fts.rowid
		WHERE history_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, ftsQuery, topK)
	if err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}
	defer rows.Close()

	var results []HistorySearchResult
	for rows.Next() {
		var item HistoryItem
		var result HistorySearchResult
		var createdAtUnix int64

		err := rows.Scan(&item.ID, &item.Content, &createdAtUnix, &result.Snippet, &result.Rank)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history search row: %w", err)
		}

		item.CreatedAt = time.Unix(createdAtUnix, 0)
		result.Item = item
		results = append(results, result)
	}

	return results, rows.Err()
}

// ClearHistory deletes all history items.
func (s *Store) ClearHistory() error {
	_, err := s.db.Exec("DELETE FROM history")
	return err
}

// ClearTasks deletes all tasks.
func (s *Store) ClearTasks() error {
	_, err := s.db.Exec("DELETE FROM tasks")
	return err
}
