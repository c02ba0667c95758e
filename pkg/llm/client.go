package llm

import (
	"context"
	"errors"
	"time"

	"reqforge-ai-be/internal/pkg/apperror"
	"reqforge-ai-be/internal/pkg/logger"

	"github.com/cenkalti/backoff/v5"
)

const moduleName = "llm"

type ClientConfig struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// Client wraps a provider with a per-call deadline and bounded retries.
type Client struct {
	provider LLMProvider
	cfg      ClientConfig
	logger   logger.ILogger
}

func NewClient(provider LLMProvider, cfg ClientConfig, log logger.ILogger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Client{provider: provider, cfg: cfg, logger: log}
}

func (c *Client) ProviderName() string {
	return c.provider.Name()
}

// linearBackOff waits delay, 2*delay, 3*delay...
type linearBackOff struct {
	delay   time.Duration
	attempt int
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++
	return b.delay * time.Duration(b.attempt)
}

func (b *linearBackOff) Reset() {
	b.attempt = 0
}

// Generate sends prompt to the provider. Transport failures and 5xx answers
// are retried; anything else fails on the first attempt.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	c.logger.Debug(moduleName, "Sending prompt", map[string]interface{}{
		"provider":         c.provider.Name(),
		"max_tokens":       maxTokens,
		"estimated_tokens": EstimateTokens(prompt),
	})

	attempt := 0
	operation := func() (string, error) {
		attempt++
		text, err := c.provider.Generate(ctx, prompt, WithMaxTokens(maxTokens))
		if err == nil {
			return text, nil
		}
		if ctx.Err() != nil {
			return "", backoff.Permanent(err)
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Transient() {
			return "", backoff.Permanent(err)
		}
		c.logger.Warn(moduleName, "Transient provider failure", map[string]interface{}{
			"provider": c.provider.Name(),
			"attempt":  attempt,
			"error":    err.Error(),
		})
		return "", err
	}

	text, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(&linearBackOff{delay: c.cfg.RetryDelay}),
		backoff.WithMaxTries(uint(c.cfg.MaxRetries+1)),
		backoff.WithMaxElapsedTime(0),
	)
	if err != nil {
		c.logger.Error(moduleName, "Generation failed", map[string]interface{}{
			"provider": c.provider.Name(),
			"attempts": attempt,
			"error":    err.Error(),
		})
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", apperror.Timeout(err, "llm call timed out")
		}
		return "", apperror.Generation(err, "llm generation failed")
	}
	return text, nil
}

// GenerateJSON asks for a pure JSON answer. Malformed output is not an error;
// it comes back as an invalid JSONReply carrying the cleaned text.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, maxTokens int) (*JSONReply, error) {
	text, err := c.Generate(ctx, prompt+JSONInstruction, maxTokens)
	if err != nil {
		return nil, err
	}
	reply := ParseJSONReply(text)
	if !reply.Valid {
		c.logger.Warn(moduleName, "Reply was not valid JSON, using raw text", map[string]interface{}{
			"provider": c.provider.Name(),
			"length":   len(reply.Raw),
		})
	}
	return reply, nil
}
