package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"reqforge-ai-be/pkg/llm"

	"github.com/rotisserie/eris"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-1.5-flash"
)

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable not set")

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"
)

type GeminiChatParts struct {
	Text string `json:"text"`
}

type GeminiChatContent struct {
	Parts []*GeminiChatParts `json:"parts"`
	Role  string             `json:"role,omitempty"`
}

type GeminiGenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature"`
}

type GeminiChatRequest struct {
	Contents          []*GeminiChatContent    `json:"contents"`
	SystemInstruction *GeminiChatContent      `json:"systemInstruction,omitempty"`
	GenerationConfig  *GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiChatCandidate struct {
	Content      *GeminiChatContent `json:"content"`
	FinishReason string             `json:"finishReason"`
}

type GeminiChatResponse struct {
	Candidates []*GeminiChatCandidate `json:"candidates"`
}

type GeminiProvider struct {
	BaseURL   string
	APIKey    string
	ModelName string
	Client    *http.Client
}

var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(apiKey, modelName string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	return &GeminiProvider{
		BaseURL:   DefaultBaseURL,
		APIKey:    apiKey,
		ModelName: modelName,
		Client:    &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(opts...)

	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}

	payload := GeminiChatRequest{
		Contents: make([]*GeminiChatContent, 0, len(history)),
		GenerationConfig: &GeminiGenerationConfig{
			MaxOutputTokens: options.MaxTokens,
			Temperature:     options.Temperature,
		},
	}
	for _, msg := range history {
		part := []*GeminiChatParts{{Text: msg.Content}}
		switch msg.Role {
		case "system":
			payload.SystemInstruction = &GeminiChatContent{Parts: part}
		case "assistant", ChatMessageRoleModel:
			payload.Contents = append(payload.Contents, &GeminiChatContent{Parts: part, Role: ChatMessageRoleModel})
		default:
			payload.Contents = append(payload.Contents, &GeminiChatContent{Parts: part, Role: ChatMessageRoleUser})
		}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(g.BaseURL, "/"), model)
	headers := map[string]string{"x-goog-api-key": g.APIKey}

	var geminiRes GeminiChatResponse
	if err := llm.PostJSON(ctx, g.Client, g.Name(), url, headers, payload, &geminiRes); err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil {
		return "", eris.New("gemini: response contained no candidates")
	}

	var sb strings.Builder
	for _, part := range geminiRes.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: ChatMessageRoleUser, Content: prompt}}, opts...)
}
