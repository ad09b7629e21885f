package tasks

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateTaskList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if len(m.Tasks) == 0 {
				return *m, nil
			}
			selected := m.List.SelectedItem().(TaskListItem)
			m.SelectedTask = &selected.Task
			m.Screen = ScreenTaskDetail
			return *m, nil

		case "a":
			// Add new task
			m.TextInputs = createAddInputs()
			m.FocusedInput = 0
			m.Screen = ScreenTaskAdd
			return *m, m.TextInputs[0].Focus()

		case "d":
			// Delete selected task
			if len(m.Tasks) == 0 {
				return *m, nil
			}
			selected := m.List.SelectedItem().(TaskListItem)
			m.SelectedTask = &selected.Task
			m.Screen = ScreenConfirmDelete
			return *m, nil
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return *m, cmd
}

func (m *Model) updateTaskDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "d":
			// Delete this task
			m.Screen = ScreenConfirmDelete
			return *m, nil
		}
	}

	return *m, nil
}

func (m *Model) updateTaskAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.TextInputs[m.FocusedInput].Blur()
			m.FocusedInput = (m.FocusedInput + 1) % len(m.TextInputs)
			return *m, m.TextInputs[m.FocusedInput].Focus()

		case "shift+tab", "up":
			m.TextInputs[m.FocusedInput].Blur()
			m.FocusedInput = (m.FocusedInput - 1 + len(m.TextInputs)) % len(m.TextInputs)
			return *m, m.TextInputs[m.FocusedInput].Focus()

		case "enter":
			task := strings.TrimSpace(m.TextInputs[0].Value())
			if task == "" {
				m.Err = fmt.Errorf("task text is required")
				return *m, nil
			}

			when := strings.TrimSpace(m.TextInputs[1].Value())
			m.StatusMsg = "Saving..."
			return *m, saveNewTask(task, when)
		}
	}

	// Update focused text input
	var cmd tea.Cmd
	m.TextInputs[m.FocusedInput], cmd = m.TextInputs[m.FocusedInput].Update(msg)
	return *m, cmd
}

func (m *Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.StatusMsg = "Deleting..."
			return *m, deleteTask(m.SelectedTask.ID)

		case "n", "N", "esc":
			m.Screen = ScreenTaskList
			m.SelectedTask = nil
			return *m, nil
		}
	}

	return *m, nil
}

func (m *Model) renderView() string {
	if m.Quitting {
		return "Goodbye!\n"
	}

	var s strings.Builder

	switch m.Screen {
	case ScreenTaskList:
		if len(m.Tasks) == 0 {
			s.WriteString(TitleStyle.Render("Tasks"))
			s.WriteString("\n\n")
			s.WriteString(SubtitleStyle.Render("No tasks stored yet."))
			s.WriteString("\n\n")
			s.WriteString(HelpStyle.Render("Press 'a' to add a new task, 'q' to quit"))
		} else {
			s.WriteString(m.List.View())
		}

	case ScreenTaskDetail:
		if m.SelectedTask != nil {
			s.WriteString(TitleStyle.Render("Task Detail"))
			s.WriteString("\n\n")

			s.WriteString(DetailLabelStyle.Render("Task:"))
			s.WriteString("\n")
			s.WriteString(DetailValueStyle.Render(m.SelectedTask.Task))
			s.WriteString("\n\n")

			s.WriteString(DetailLabelStyle.Render("Time:"))
			s.WriteString(" ")
			s.WriteString(DetailValueStyle.Render(m.SelectedTask.Time))
			s.WriteString("\n\n")

			s.WriteString(DetailLabelStyle.Render("ID:"))
			s.WriteString(" ")
			s.WriteString(DetailValueStyle.Render(m.SelectedTask.ID))
			s.WriteString("\n\n")

			s.WriteString(DetailLabelStyle.Render("Created:"))
			s.WriteString(" ")
			s.WriteString(DetailValueStyle.Render(m.SelectedTask.CreatedAt.Format("2006-01-02 15:04:05")))
			s.WriteString("\n\n")

			s.WriteString(HelpStyle.Render("Press 'd' to delete, Esc to go back"))
		}

	case ScreenTaskAdd:
		s.WriteString(TitleStyle.Render("Add New Task"))
		s.WriteString("\n\n")
		s.WriteString(InputLabelStyle.Render("Task (required)"))
		s.WriteString("\n")
		s.WriteString(m.TextInputs[0].View())
		s.WriteString("\n\n")
		s.WriteString(InputLabelStyle.Render("Time (optional)"))
		s.WriteString("\n")
		s.WriteString(m.TextInputs[1].View())
		s.WriteString("\n\n")
		s.WriteString(HelpStyle.Render("Press Enter to save, Esc to cancel, Tab to navigate"))

	case ScreenConfirmDelete:
		s.WriteString(WarningStyle.Render("Confirm Delete"))
		s.WriteString("\n\n")
		s.WriteString("Are you sure you want to delete this task?\n\n")
		if m.SelectedTask != nil {
			s.WriteString(DetailValueStyle.Render(m.SelectedTask.Task))
			s.WriteString("\n\n")
		}
		s.WriteString(HelpStyle.Render("Press 'y' to confirm, 'n' or Esc to cancel"))
	}

	if m.StatusMsg != "" {
		s.WriteString("\n\n")
		s.WriteString(SubtitleStyle.Render(m.StatusMsg))
	}

	if m.Err != nil {
		s.WriteString("\n\n")
		s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.Err)))
	}

	return s.String()
}
