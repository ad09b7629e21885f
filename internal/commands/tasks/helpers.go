package tasks

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	memstore "github.com/nixinlabs/nixin/internal/memory"
	"github.com/nixinlabs/nixin/internal/reasoning"
)

func createTaskList(items []memstore.TaskItem, width, height int) list.Model {
	listItems := make([]list.Item, len(items))
	for i, task := range items {
		listItems[i] = TaskListItem{Task: task}
	}

	delegate := list.NewDefaultDelegate()
	w := min(width-4, 80)
	h := min(height-6, 20)
	if w < 40 {
		w = 40
	}
	if h < 10 {
		h = 10
	}

	l := list.New(listItems, delegate, w, h)
	l.Title = "Tasks"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
			key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		}
	}
	return l
}

func createAddInputs() []textinput.Model {
	inputs := make([]textinput.Model, 2)

	// Task input
	inputs[0] = textinput.New()
	inputs[0].Placeholder = "Enter task or reminder..."
	inputs[0].CharLimit = 500
	inputs[0].Width = 60

	// Time input
	inputs[1] = textinput.New()
	inputs[1].Placeholder = "tomorrow, 5 pm, monday (optional)"
	inputs[1].CharLimit = 100
	inputs[1].Width = 60

	return inputs
}

func loadTasks() tea.Cmd {
	return func() tea.Msg {
		store, err := memstore.NewStore()
		if err != nil {
			return TasksLoadedMsg{Err: err}
		}
		defer store.Close()

		items, err := store.GetTasks()
		return TasksLoadedMsg{Tasks: items, Err: err}
	}
}

func saveNewTask(task, when string) tea.Cmd {
	return func() tea.Msg {
		if when == "" {
			when = reasoning.NoTimeDetected
		}

		store, err := memstore.NewStore()
		if err != nil {
			return TaskSavedMsg{Err: err}
		}
		defer store.Close()

		err = store.AddTask(task, when)
		return TaskSavedMsg{Err: err}
	}
}

func deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		store, err := memstore.NewStore()
		if err != nil {
			return TaskDeletedMsg{Err: err}
		}
		defer store.Close()

		err = store.DeleteTask(id)
		return TaskDeletedMsg{Err: err}
	}
}
