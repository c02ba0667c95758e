package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      ProviderConfig
		wantName string
		wantErr  bool
	}{
		{name: "anthropic", cfg: ProviderConfig{Provider: "anthropic", AnthropicKey: "k"}, wantName: "anthropic"},
		{name: "claude alias", cfg: ProviderConfig{Provider: "claude", AnthropicKey: "k"}, wantName: "anthropic"},
		{name: "gemini", cfg: ProviderConfig{Provider: "gemini", GeminiKey: "k"}, wantName: "gemini"},
		{name: "ollama needs no key", cfg: ProviderConfig{Provider: "ollama"}, wantName: "ollama"},
		{name: "anthropic missing key", cfg: ProviderConfig{Provider: "anthropic"}, wantErr: true},
		{name: "gemini missing key", cfg: ProviderConfig{Provider: "gemini", AnthropicKey: "k"}, wantErr: true},
		{name: "unknown", cfg: ProviderConfig{Provider: "openai"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLLMProvider(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
		})
	}
}
