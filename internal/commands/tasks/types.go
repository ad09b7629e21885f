package tasks

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"

	memstore "github.com/nixinlabs/nixin/internal/memory"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenTaskList Screen = iota
	ScreenTaskDetail
	ScreenTaskAdd
	ScreenConfirmDelete
)

// TaskListItem implements list.Item interface for task display
type TaskListItem struct {
	Task memstore.TaskItem
}

func (i TaskListItem) Title() string       { return i.Task.Task }
func (i TaskListItem) Description() string { return i.Task.Time }
func (i TaskListItem) FilterValue() string { return i.Task.Task }

// Model is the Bubble Tea model for the tasks command
type Model struct {
	Screen       Screen
	List         list.Model
	TextInputs   []textinput.Model
	FocusedInput int
	SelectedTask *memstore.TaskItem
	Tasks        []memstore.TaskItem
	Err          error
	StatusMsg    string
	Quitting     bool
	Width        int
	Height       int
}

// TasksLoadedMsg is sent when tasks are loaded from the store
type TasksLoadedMsg struct {
	Tasks []memstore.TaskItem
	Err   error
}

// TaskSavedMsg is sent when a task is saved
type TaskSavedMsg struct {
	Err error
}

// TaskDeletedMsg is sent when a task is deleted
type TaskDeletedMsg struct {
	Err error
}
