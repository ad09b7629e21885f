package set

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nixinlabs/nixin/internal/consts"
	"github.com/nixinlabs/nixin/internal/types"
)

func (m *Model) updateMainMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			selected := m.List.SelectedItem().(MenuItem)
			switch selected.Title() {
			case MenuItemProvider:
				m.List = createProviderList()
				m.Screen = ScreenProviderSelect
			case MenuItemEmbeddingModel:
				m.List = createProviderList()
				m.Screen = ScreenEmbeddingProviderSelect
			case MenuItemRecall:
				m.List = createRecallList(m.Config.Recall.Strategy)
				m.Screen = ScreenRecallSelect
			case MenuItemExit:
				m.Quitting = true
				return *m, tea.Quit
			}
			return *m, nil
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return *m, cmd
}

func (m *Model) updateProviderSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			selected := m.List.SelectedItem().(MenuItem)
			m.SelectedProvider = selected.Title()
			m.TextInputs = createProviderConfigInputs(m.Config, m.SelectedProvider)
			m.FocusedInput = 0
			m.Screen = ScreenProviderConfig
			return *m, m.TextInputs[0].Focus()
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return *m, cmd
}

func (m *Model) updateProviderConfig(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			apiKey := m.TextInputs[0].Value()
			if apiKey == "" {
				m.Err = fmt.Errorf("API key is required")
				return *m, nil
			}

			switch m.SelectedProvider {
			case consts.ProviderOpenAI:
				m.Config.Providers.OpenAI.APIKey = apiKey
				m.Config.Providers.OpenAI.BaseURL = m.TextInputs[1].Value()
			case consts.ProviderGoogle:
				m.Config.Providers.Google.APIKey = apiKey
			}

			return *m, saveConfig(m.Config)
		}
	}

	// Update focused text input
	var cmd tea.Cmd
	m.TextInputs[m.FocusedInput], cmd = m.TextInputs[m.FocusedInput].Update(msg)
	return *m, cmd
}

func (m *Model) updateEmbeddingProviderSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			selected := m.List.SelectedItem().(MenuItem)
			m.SelectedProvider = selected.Title()
			m.TextInputs = createEmbeddingModelInput(m.Config, m.SelectedProvider)
			m.FocusedInput = 0
			m.Screen = ScreenEmbeddingModelInput
			return *m, m.TextInputs[0].Focus()
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return *m, cmd
}

func (m *Model) updateEmbeddingModelInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			modelID := strings.TrimSpace(m.TextInputs[0].Value())
			if modelID == "" {
				modelID = m.TextInputs[0].Placeholder
			}

			m.Config.Model.EmbeddingModel = &types.Model{
				Provider: m.SelectedProvider,
				ModelID:  modelID,
			}
			return *m, saveConfig(m.Config)
		}
	}

	var cmd tea.Cmd
	m.TextInputs[m.FocusedInput], cmd = m.TextInputs[m.FocusedInput].Update(msg)
	return *m, cmd
}

func (m *Model) updateRecallSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			selected := m.List.SelectedItem().(MenuItem)
			m.Config.Recall.Strategy = selected.Title()
			return *m, saveConfig(m.Config)
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return *m, cmd
}

func (m *Model) renderView() string {
	if m.Quitting {
		return "Goodbye!\n"
	}

	var s strings.Builder

	switch m.Screen {
	case ScreenMainMenu:
		s.WriteString(m.List.View())

	case ScreenProviderSelect, ScreenEmbeddingProviderSelect, ScreenRecallSelect:
		s.WriteString(m.List.View())

	case ScreenProviderConfig:
		s.WriteString(TitleStyle.Render(fmt.Sprintf("Configure %s Provider", m.SelectedProvider)))
		s.WriteString("\n\n")
		for i, input := range m.TextInputs {
			label := "API Key (required)"
			if i == 1 {
				label = "Base URL (optional)"
			}
			s.WriteString(InputLabelStyle.Render(label))
			s.WriteString("\n")
			s.WriteString(input.View())
			s.WriteString("\n\n")
		}
		s.WriteString(HelpStyle.Render("Press Enter to save, Esc to cancel, Tab/Shift+Tab to navigate"))

	case ScreenEmbeddingModelInput:
		s.WriteString(TitleStyle.Render(fmt.Sprintf("Embedding Model (%s)", m.SelectedProvider)))
		s.WriteString("\n\n")
		s.WriteString(InputLabelStyle.Render("Model ID"))
		s.WriteString("\n")
		s.WriteString(m.TextInputs[0].View())
		s.WriteString("\n\n")
		s.WriteString(HelpStyle.Render("Press Enter to save, Esc to cancel"))
	}

	if m.Err != nil {
		s.WriteString("\n\n")
		s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.Err)))
	}

	return s.String()
}
