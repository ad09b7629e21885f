package memory

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStoreAt(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_Preferences(t *testing.T) {
	store := newTestStore(t)

	if _, ok, err := store.GetPreference("meeting_time"); err != nil || ok {
		t.Fatalf("expected missing preference, got ok=%v err=%v", ok, err)
	}

	if err := store.SetPreference("meeting_time", "I prefer morning meetings"); err != nil {
		t.Fatalf("set preference: %v", err)
	}

	value, ok, err := store.GetPreference("meeting_time")
	if err != nil || !ok {
		t.Fatalf("get preference: ok=%v err=%v", ok, err)
	}
	if value != "I prefer morning meetings" {
		t.Errorf("value = %q", value)
	}

	// Overwrite is unconditional
	if err := store.SetPreference("meeting_time", "I prefer afternoons"); err != nil {
		t.Fatalf("overwrite preference: %v", err)
	}
	value, _, _ = store.GetPreference("meeting_time")
	if value != "I prefer afternoons" {
		t.Errorf("value after overwrite = %q", value)
	}

	prefs, err := store.GetPreferences()
	if err != nil {
		t.Fatalf("get preferences: %v", err)
	}
	if len(prefs) != 1 {
		t.Errorf("expected 1 preference, got %d", len(prefs))
	}
}

func TestStore_AddTask_Deduplicates(t *testing.T) {
	store := newTestStore(t)

	if err := store.AddTask("pay the electric bill", "20 feb 2026"); err != nil {
		t.Fatalf("add task: %v", err)
	}
	// Same text again: silently skipped, no error
	if err := store.AddTask("pay the electric bill", "21 feb 2026"); err != nil {
		t.Fatalf("duplicate add task: %v", err)
	}

	tasks, err := store.GetTasks()
	if err != nil {
		t.Fatalf("get tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task after duplicate add, got %d", len(tasks))
	}
	if tasks[0].Time != "20 feb 2026" {
		t.Errorf("first write wins, got time %q", tasks[0].Time)
	}
}

func TestStore_TasksOrderAndDelete(t *testing.T) {
	store := newTestStore(t)

	for _, task := range []string{"first", "second", "third"} {
		if err := store.AddTask(task, "No time detected"); err != nil {
			t.Fatalf("add task: %v", err)
		}
	}

	tasks, err := store.GetTasks()
	if err != nil {
		t.Fatalf("get tasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i, want := range []string{"first", "second", "third"} {
		if tasks[i].Task != want {
			t.Errorf("task %d = %q, want %q", i, tasks[i].Task, want)
		}
	}

	if err := store.DeleteTask(tasks[1].ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	tasks, _ = store.GetTasks()
	if len(tasks) != 2 {
		t.Errorf("expected 2 tasks after delete, got %d", len(tasks))
	}
}

func TestStore_HistoryOrder(t *testing.T) {
	store := newTestStore(t)

	utterances := []string{
		"remind me to call alice",
		"schedule meeting tomorrow",
		"I prefer morning meetings",
	}
	for _, u := range utterances {
		if err := store.AppendHistory(u); err != nil {
			t.Fatalf("append history: %v", err)
		}
	}

	history, err := store.GetHistory()
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(history) != len(utterances) {
		t.Fatalf("expected %d entries, got %d", len(utterances), len(history))
	}
	for i, want := range utterances {
		if history[i] != want {
			t.Errorf("history[%d] = %q, want %q", i, history[i], want)
		}
	}
}

func TestStore_SearchHistory(t *testing.T) {
	store := newTestStore(t)

	entries := []string{
		"the quarterly project report is due friday",
		"pick up groceries after work",
		"discussed the project roadmap with the team",
	}
	for _, e := range entries {
		if err := store.AppendHistory(e); err != nil {
			t.Fatalf("append history: %v", err)
		}
	}

	results, err := store.SearchHistory("project", 10)
	if err != nil {
		t.Fatalf("search history: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(results))
	}
	for _, r := range results {
		if r.Item.Content == "pick up groceries after work" {
			t.Errorf("unexpected match: %q", r.Item.Content)
		}
	}

	// Empty or operator-only queries are not an error
	if results, err := store.SearchHistory("  ", 10); err != nil || results != nil {
		t.Errorf("blank query: results=%v err=%v", results, err)
	}
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)

	_ = store.AddTask("a task", "today")
	_ = store.AppendHistory("an utterance")

	if err := store.ClearTasks(); err != nil {
		t.Fatalf("clear tasks: %v", err)
	}
	if err := store.ClearHistory(); err != nil {
		t.Fatalf("clear history: %v", err)
	}

	tasks, _ := store.GetTasks()
	history, _ := store.GetHistory()
	if len(tasks) != 0 || len(history) != 0 {
		t.Errorf("expected empty store, got %d tasks %d history", len(tasks), len(history))
	}
}
