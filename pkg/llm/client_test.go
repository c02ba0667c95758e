package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"reqforge-ai-be/internal/pkg/apperror"
	"reqforge-ai-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider replays errs in order, then answers with reply.
type scriptedProvider struct {
	mu         sync.Mutex
	errs       []error
	reply      string
	calls      int
	lastPrompt string
	lastOpts   *Options
	block      bool
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Chat(ctx context.Context, history []Message, opts ...Option) (string, error) {
	return p.Generate(ctx, history[len(history)-1].Content, opts...)
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	p.mu.Lock()
	p.calls++
	p.lastPrompt = prompt
	p.lastOpts = ApplyOptions(opts...)
	idx := p.calls - 1
	p.mu.Unlock()

	if p.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if idx < len(p.errs) {
		return "", p.errs[idx]
	}
	return p.reply, nil
}

func newTestClient(p LLMProvider, retries int) *Client {
	return NewClient(p, ClientConfig{
		Timeout:    time.Second,
		MaxRetries: retries,
		RetryDelay: time.Millisecond,
	}, logger.NewNopLogger())
}

func TestClientGenerate_RetriesServerErrors(t *testing.T) {
	p := &scriptedProvider{
		errs: []error{
			&StatusError{Provider: "scripted", StatusCode: 503},
			errors.New("connection reset"),
		},
		reply: "ok",
	}

	text, err := newTestClient(p, 2).Generate(context.Background(), "hi", 150)

	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 3, p.calls)
	assert.Equal(t, 150, p.lastOpts.MaxTokens)
}

func TestClientGenerate_PermanentStatusNotRetried(t *testing.T) {
	for _, code := range []int{400, 401, 403, 404, 429} {
		p := &scriptedProvider{errs: []error{&StatusError{Provider: "scripted", StatusCode: code}}}

		_, err := newTestClient(p, 2).Generate(context.Background(), "hi", 100)

		require.Error(t, err)
		assert.Equal(t, 1, p.calls, "status %d", code)
		assert.Equal(t, apperror.KindGeneration, apperror.KindOf(err))
		var statusErr *StatusError
		assert.True(t, errors.As(err, &statusErr))
	}
}

func TestClientGenerate_ExhaustedRetries(t *testing.T) {
	serverErr := &StatusError{Provider: "scripted", StatusCode: 500}
	p := &scriptedProvider{errs: []error{serverErr, serverErr, serverErr, serverErr}}

	_, err := newTestClient(p, 2).Generate(context.Background(), "hi", 100)

	require.Error(t, err)
	assert.Equal(t, 3, p.calls)
	assert.Equal(t, apperror.KindGeneration, apperror.KindOf(err))
}

func TestClientGenerate_Timeout(t *testing.T) {
	p := &scriptedProvider{block: true}
	c := NewClient(p, ClientConfig{Timeout: 20 * time.Millisecond, MaxRetries: 2, RetryDelay: time.Millisecond}, nil)

	_, err := c.Generate(context.Background(), "hi", 100)

	require.Error(t, err)
	assert.Equal(t, apperror.KindTimeout, apperror.KindOf(err))
	assert.Equal(t, 1, p.calls)
}

func TestClientGenerate_CallerCancellation(t *testing.T) {
	p := &scriptedProvider{block: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(p, 2).Generate(ctx, "hi", 100)

	require.Error(t, err)
	assert.Equal(t, apperror.KindGeneration, apperror.KindOf(err))
}

func TestClientGenerateJSON(t *testing.T) {
	t.Run("parses fenced json", func(t *testing.T) {
		p := &scriptedProvider{reply: "```json\n{\"a\": 1}\n```"}

		reply, err := newTestClient(p, 0).GenerateJSON(context.Background(), "give json", 4000)

		require.NoError(t, err)
		assert.True(t, reply.Valid)
		assert.Equal(t, map[string]interface{}{"a": float64(1)}, reply.Object())
		assert.True(t, strings.HasPrefix(p.lastPrompt, "give json"))
		assert.True(t, strings.HasSuffix(p.lastPrompt, JSONInstruction))
	})

	t.Run("malformed never errors", func(t *testing.T) {
		p := &scriptedProvider{reply: "not json at all"}

		reply, err := newTestClient(p, 0).GenerateJSON(context.Background(), "give json", 4000)

		require.NoError(t, err)
		assert.False(t, reply.Valid)
		assert.Equal(t, map[string]interface{}{"content": "not json at all"}, reply.Object())
	})
}
