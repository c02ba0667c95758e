package factory

import (
	"fmt"

	"reqforge-ai-be/pkg/llm"
	"reqforge-ai-be/pkg/llm/anthropic"
	"reqforge-ai-be/pkg/llm/gemini"
	"reqforge-ai-be/pkg/llm/ollama"
)

// ProviderConfig carries everything any backend might need.
type ProviderConfig struct {
	Provider      string
	Model         string
	AnthropicKey  string
	GeminiKey     string
	OllamaBaseURL string
}

// NewLLMProvider builds the configured backend. A missing key is an error
// here so the process fails at startup instead of per request.
func NewLLMProvider(cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "anthropic", "claude":
		return anthropic.NewAnthropicProvider(cfg.AnthropicKey, cfg.Model)
	case "gemini":
		return gemini.NewGeminiProvider(cfg.GeminiKey, cfg.Model)
	case "ollama":
		return ollama.NewOllamaProvider(cfg.OllamaBaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
