package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"reqforge-ai-be/internal/bootstrap"
	"reqforge-ai-be/internal/config"
	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/internal/server"
	"reqforge-ai-be/pkg/demodata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs the full HTTP stack against a local Ollama server.
// Set OLLAMA_BASE_URL (and optionally LLM_MODEL) to enable.
func ollamaServer(t *testing.T) *server.Server {
	t.Helper()

	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		t.Skip("Skipping integration test: OLLAMA_BASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Skipf("Ollama not running at %s: %v", baseURL, err)
	}
	res.Body.Close()

	cfg := &config.Config{
		App: config.AppConfig{
			CorsAllowedOrigins: "http://localhost:3000",
			BodyLimitMB:        10,
			TemplateDir:        "../../templates",
		},
		Ai: config.AIConfig{
			LLMProvider:   "ollama",
			LLMModel:      os.Getenv("LLM_MODEL"),
			OllamaBaseURL: baseURL,
			Timeout:       3 * time.Minute,
			MaxRetries:    1,
			RetryDelay:    time.Second,
		},
		Scraper: config.ScraperConfig{Timeout: 10 * time.Second, MaxBytes: 1 << 20},
		Events:  config.EventsConfig{Topic: "activity"},
	}

	container, err := bootstrap.NewContainer(cfg, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(container.Close)

	return server.New(cfg, container)
}

func post(t *testing.T, srv *server.Server, path string, body []byte) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.GetApp().Test(req, int((4 * time.Minute).Milliseconds()))
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestOllamaGenerateFromDemoData(t *testing.T) {
	srv := ollamaServer(t)

	dir := t.TempDir()
	_, err := demodata.Generate(dir)
	require.NoError(t, err)

	body, err := os.ReadFile(filepath.Join(dir, "processed", "generate_request.json"))
	require.NoError(t, err)

	status, out := post(t, srv, "/api/ai/generate", body)
	require.Equal(t, http.StatusOK, status, string(out))

	var resp dto.GenerateBRDResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.NotEmpty(t, resp.Message)
	assert.Greater(t, resp.Confidence, 0.0)
	t.Logf("confidence=%.2f message=%q", resp.Confidence, resp.Message)
}

func TestOllamaChat(t *testing.T) {
	srv := ollamaServer(t)

	body, err := json.Marshal(dto.ChatRequest{
		ProjectID: demodata.DemoProjectID,
		Message:   "What should a business requirements document contain?",
	})
	require.NoError(t, err)

	status, out := post(t, srv, "/api/ai/chat", body)
	require.Equal(t, http.StatusOK, status, string(out))

	var resp dto.ChatResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.NotEmpty(t, resp.Message)
}
