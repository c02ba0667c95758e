package anthropic

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"reqforge-ai-be/pkg/llm"

	"github.com/rotisserie/eris"
)

const (
	DefaultBaseURL = "https://api.anthropic.com"
	DefaultModel   = "claude-sonnet-4-20250514"
	apiVersion     = "2023-06-01"
)

var ErrMissingAPIKey = errors.New("ANTHROPIC_API_KEY environment variable not set")

type AnthropicProvider struct {
	BaseURL   string
	APIKey    string
	ModelName string
	Client    *http.Client
}

var _ llm.LLMProvider = &AnthropicProvider{}

func NewAnthropicProvider(apiKey, modelName string) (*AnthropicProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	return &AnthropicProvider{
		BaseURL:   DefaultBaseURL,
		APIKey:    apiKey,
		ModelName: modelName,
		Client:    &http.Client{Timeout: 120 * time.Second},
	}, nil
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
}

func (a *AnthropicProvider) Name() string {
	return "anthropic"
}

func (a *AnthropicProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(opts...)

	model := a.ModelName
	if options.Model != "" {
		model = options.Model
	}

	// The Messages API takes system text out of band.
	var system []string
	messages := make([]message, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case "system":
			system = append(system, msg.Content)
		case "model", "assistant":
			messages = append(messages, message{Role: "assistant", Content: msg.Content})
		default:
			messages = append(messages, message{Role: "user", Content: msg.Content})
		}
	}

	payload := messagesRequest{
		Model:       model,
		MaxTokens:   options.MaxTokens,
		System:      strings.Join(system, "\n\n"),
		Messages:    messages,
		Temperature: options.Temperature,
	}
	headers := map[string]string{
		"x-api-key":         a.APIKey,
		"anthropic-version": apiVersion,
	}

	var resp messagesResponse
	if err := llm.PostJSON(ctx, a.Client, a.Name(), strings.TrimRight(a.BaseURL, "/")+"/v1/messages", headers, payload, &resp); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", eris.New("anthropic: response contained no text blocks")
	}
	return sb.String(), nil
}

func (a *AnthropicProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return a.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
