package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openai/openai-go/v3"

	"github.com/nixinlabs/nixin/internal/consts"
	"github.com/nixinlabs/nixin/internal/types"
)

// OpenAIProviderConfig represents the OpenAI provider configuration
type OpenAIProviderConfig struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url,omitempty"`
}

// GoogleProviderConfig represents the Google provider configuration
type GoogleProviderConfig struct {
	APIKey string `json:"api_key"`
}

// ProviderConfigs holds all provider configurations
type ProviderConfigs struct {
	OpenAI OpenAIProviderConfig `json:"openai"`
	Google GoogleProviderConfig `json:"google"`
}

// ModelConfig represents the model section in config
type ModelConfig struct {
	EmbeddingModel *types.Model `json:"embedding_model,omitempty"`
}

// Recall strategy constants
const (
	RecallStrategyLexical   = "lexical"   // Normalized edit-distance ratio, no network
	RecallStrategyEmbedding = "embedding" // Cosine similarity over provider embeddings
)

// RecallConfig represents the semantic recall configuration
type RecallConfig struct {
	Strategy string `json:"strategy"`
}

// Config represents the application configuration
type Config struct {
	Providers ProviderConfigs `json:"providers"`
	Model     ModelConfig     `json:"model"`
	Recall    RecallConfig    `json:"recall"`
	Debug     bool            `json:"debug,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Providers: ProviderConfigs{
			OpenAI: OpenAIProviderConfig{},
			Google: GoogleProviderConfig{},
		},
		Model: ModelConfig{
			EmbeddingModel: &types.Model{
				Provider: consts.ProviderOpenAI,
				ModelID:  string(openai.EmbeddingModelTextEmbedding3Small),
			},
		},
		Recall: RecallConfig{
			Strategy: RecallStrategyLexical,
		},
		Debug: false,
	}
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %v", err)
	}
	nixinDir := filepath.Join(homeDir, consts.NixinDir)
	if err := os.MkdirAll(nixinDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create nixin directory: %v", err)
	}
	return filepath.Join(nixinDir, consts.ConfigFileName), nil
}

// LoadConfig loads the configuration from file
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	// If config file doesn't exist, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	// Apply defaults for missing fields
	applyDefaults(&config)

	return &config, nil
}

// applyDefaults fills in default values for missing config fields
func applyDefaults(config *Config) {
	defaultConfig := DefaultConfig()

	if config.Model.EmbeddingModel == nil {
		config.Model.EmbeddingModel = defaultConfig.Model.EmbeddingModel
	}
	if config.Recall.Strategy == "" {
		config.Recall.Strategy = defaultConfig.Recall.Strategy
	}
}

// SaveConfig saves the configuration to file
func SaveConfig(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}
