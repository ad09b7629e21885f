package set

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nixinlabs/nixin/internal/consts"
	"github.com/nixinlabs/nixin/internal/utils"
)

func createMainMenu() list.Model {
	items := []list.Item{
		MenuItem{title: MenuItemProvider, desc: "Configure provider credentials (API key, base URL)"},
		MenuItem{title: MenuItemEmbeddingModel, desc: "Set the model used for recall embeddings"},
		MenuItem{title: MenuItemRecall, desc: "Select the recall similarity strategy"},
		MenuItem{title: MenuItemExit, desc: "Exit settings"},
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 60, 30)
	l.Title = "Nixin Settings"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	return l
}

func createProviderList() list.Model {
	items := []list.Item{
		MenuItem{title: consts.ProviderOpenAI, desc: "OpenAI API (text-embedding models)"},
		MenuItem{title: consts.ProviderGoogle, desc: "Google Gemini API (text-embedding models)"},
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 60, 10)
	l.Title = "Select Provider"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	return l
}

func createRecallList(current string) list.Model {
	items := []list.Item{
		MenuItem{title: utils.RecallStrategyLexical, desc: "Edit-distance ratio, works offline"},
		MenuItem{title: utils.RecallStrategyEmbedding, desc: "Cosine similarity over provider embeddings"},
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 60, 10)
	l.Title = "Recall Strategy (current: " + current + ")"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	return l
}

func createProviderConfigInputs(config *utils.Config, provider string) []textinput.Model {
	// Google has no base URL override, so it gets a single input.
	n := 2
	if provider == consts.ProviderGoogle {
		n = 1
	}
	inputs := make([]textinput.Model, n)

	// API Key input
	inputs[0] = textinput.New()
	inputs[0].Placeholder = "sk-..."
	inputs[0].EchoMode = textinput.EchoPassword
	inputs[0].EchoCharacter = '*'
	inputs[0].CharLimit = 256
	inputs[0].Width = 50

	switch provider {
	case consts.ProviderOpenAI:
		if config.Providers.OpenAI.APIKey != "" {
			inputs[0].SetValue(config.Providers.OpenAI.APIKey)
		}

		// Base URL input
		inputs[1] = textinput.New()
		inputs[1].Placeholder = consts.DefaultBaseURL
		inputs[1].CharLimit = 256
		inputs[1].Width = 50
		if config.Providers.OpenAI.BaseURL != "" {
			inputs[1].SetValue(config.Providers.OpenAI.BaseURL)
		}

	case consts.ProviderGoogle:
		inputs[0].Placeholder = "AIza..."
		if config.Providers.Google.APIKey != "" {
			inputs[0].SetValue(config.Providers.Google.APIKey)
		}
	}

	return inputs
}

func createEmbeddingModelInput(config *utils.Config, provider string) []textinput.Model {
	inputs := make([]textinput.Model, 1)

	inputs[0] = textinput.New()
	switch provider {
	case consts.ProviderGoogle:
		inputs[0].Placeholder = "text-embedding-004"
	default:
		inputs[0].Placeholder = "text-embedding-3-small"
	}
	inputs[0].CharLimit = 100
	inputs[0].Width = 50
	if config.Model.EmbeddingModel != nil && config.Model.EmbeddingModel.Provider == provider {
		inputs[0].SetValue(config.Model.EmbeddingModel.ModelID)
	}

	return inputs
}

func saveConfig(config *utils.Config) tea.Cmd {
	return func() tea.Msg {
		err := utils.SaveConfig(config)
		return ConfigSavedMsg{Err: err}
	}
}
