package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"reqforge-ai-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiProvider_Generate(t *testing.T) {
	var got GeminiChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"ok\":true}"}],"role":"model"},"finishReason":"STOP"}]}`))
	}))
	defer server.Close()

	p, err := NewGeminiProvider("key", "")
	require.NoError(t, err)
	p.BaseURL = server.URL

	text, err := p.Generate(context.Background(), "prompt", llm.WithMaxTokens(4000), llm.WithTemperature(0.2))

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, text)
	require.Len(t, got.Contents, 1)
	assert.Equal(t, ChatMessageRoleUser, got.Contents[0].Role)
	assert.Equal(t, 4000, got.GenerationConfig.MaxOutputTokens)
	assert.InDelta(t, 0.2, got.GenerationConfig.Temperature, 0.0001)
}

func TestGeminiProvider_ServerErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p, err := NewGeminiProvider("key", "gemini-pro")
	require.NoError(t, err)
	p.BaseURL = server.URL

	_, err = p.Generate(context.Background(), "prompt")

	var statusErr *llm.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.True(t, statusErr.Transient())
}

func TestGeminiProvider_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	p, err := NewGeminiProvider("key", "")
	require.NoError(t, err)
	p.BaseURL = server.URL

	_, err = p.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}
