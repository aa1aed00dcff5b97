package llmHandlers

import (
	"fmt"
)

type Provider string

const (
	ProviderGroq            Provider = "groq" // OpenAI-compatible endpoint
	ProviderOpenAI          Provider = "openai"
	ProviderVertexAnthropic Provider = "vertex_anthropic"
)

type Config struct {
	Provider Provider

	Model   string
	BaseURL string // for Groq or other OpenAI-compatible APIs
	APIKey  string // falls back to env when empty
}

func New(cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderGroq, ProviderOpenAI:
		return NewLangChainClient(LangChainConfig{
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
		})
	case ProviderVertexAnthropic:
		return NewVertexAnthropicClient(VertexConfig{Model: cfg.Model}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
