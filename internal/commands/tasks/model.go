package tasks

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func initialModel() Model {
	// Create an empty list initially, will be populated after load
	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, 60, 14)
	l.Title = "Tasks"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return Model{
		Screen:    ScreenTaskList,
		List:      l,
		StatusMsg: "Loading tasks...",
	}
}

func (m Model) Init() tea.Cmd {
	return loadTasks()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.List.SetSize(min(msg.Width-4, 80), min(msg.Height-6, 20))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.Screen == ScreenTaskList {
				m.Quitting = true
				return m, tea.Quit
			}
			// Go back to list
			m.Screen = ScreenTaskList
			m.SelectedTask = nil
			m.Err = nil
			m.StatusMsg = ""
			return m, nil

		case "esc":
			if m.Screen != ScreenTaskList {
				m.Screen = ScreenTaskList
				m.SelectedTask = nil
				m.Err = nil
				m.StatusMsg = ""
				return m, nil
			}
		}

	case TasksLoadedMsg:
		m.StatusMsg = ""
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Tasks = msg.Tasks
		m.List = createTaskList(m.Tasks, m.Width, m.Height)
		return m, nil

	case TaskSavedMsg:
		m.StatusMsg = ""
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		// Reload tasks and go back to list
		m.Screen = ScreenTaskList
		m.SelectedTask = nil
		m.Err = nil
		m.StatusMsg = "Task saved!"
		return m, loadTasks()

	case TaskDeletedMsg:
		m.StatusMsg = ""
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		// Reload tasks and go back to list
		m.Screen = ScreenTaskList
		m.SelectedTask = nil
		m.Err = nil
		m.StatusMsg = "Task deleted!"
		return m, loadTasks()
	}

	switch m.Screen {
	case ScreenTaskList:
		return m.updateTaskList(msg)
	case ScreenTaskDetail:
		return m.updateTaskDetail(msg)
	case ScreenTaskAdd:
		return m.updateTaskAdd(msg)
	case ScreenConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m, nil
}

func (m Model) View() string {
	return m.renderView()
}
