package service

import (
	"context"

	"reqforge-ai-be/pkg/llm"
)

// ILLMClient is the part of *llm.Client the services depend on.
type ILLMClient interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
	GenerateJSON(ctx context.Context, prompt string, maxTokens int) (*llm.JSONReply, error)
}

var _ ILLMClient = (*llm.Client)(nil)
