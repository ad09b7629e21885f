package provider

import (
	"fmt"

	"github.com/nixinlabs/nixin/internal/client"
	"github.com/nixinlabs/nixin/internal/consts"
	googleprov "github.com/nixinlabs/nixin/internal/provider/google"
	openaiprov "github.com/nixinlabs/nixin/internal/provider/openai"
	"github.com/nixinlabs/nixin/internal/utils"
)

// NewEmbeddingClient creates an embedding client for the specified provider.
func NewEmbeddingClient(cfg *utils.Config, providerName string) (client.EmbeddingClient, error) {
	switch providerName {
	case consts.ProviderOpenAI:
		openaiCfg := cfg.Providers.OpenAI
		if openaiCfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key not configured. Please configure provider first")
		}
		baseURL := openaiCfg.BaseURL
		if baseURL == "" {
			baseURL = consts.DefaultBaseURL
		}
		return openaiprov.NewEmbeddingClient(openaiCfg.APIKey, baseURL), nil

	case consts.ProviderGoogle:
		googleCfg := cfg.Providers.Google
		if googleCfg.APIKey == "" {
			return nil, fmt.Errorf("Google API key not configured. Please configure provider first")
		}
		return googleprov.NewEmbeddingClient(googleCfg.APIKey), nil

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", providerName)
	}
}
