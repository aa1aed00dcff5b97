package llmHandlers

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

type LangChainClient struct {
	llm llms.Model
}

type LangChainConfig struct {
	Model   string // e.g. "llama-3.1-8b-instant"
	BaseURL string // optional: for Groq or other OpenAI-compatible APIs
	APIKey  string // if not set, falls back to env
}

func NewLangChainClient(cfg LangChainConfig) (*LangChainClient, error) {
	opts := []openai.Option{
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, openai.WithToken(cfg.APIKey))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create langchain openai client: %w", err)
	}

	return &LangChainClient{llm: llm}, nil
}

func (c *LangChainClient) ChatStream(ctx context.Context, prompt string, onChunk ChunkFunc) error {
	msgs := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	_, err := c.llm.GenerateContent(ctx, msgs,
		llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			if len(chunk) == 0 {
				return nil
			}
			return onChunk(ctx, string(chunk))
		}),
	)
	return err
}
