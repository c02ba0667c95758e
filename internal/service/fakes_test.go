package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/pkg/events"
	"reqforge-ai-be/pkg/llm"
	"reqforge-ai-be/pkg/scraper"
)

// fakeProvider answers prompts from a queue of replies.
type fakeProvider struct {
	mu        sync.Mutex
	replies   []string
	err       error
	prompts   []string
	maxTokens []int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return f.Generate(ctx, history[len(history)-1].Content, opts...)
}

func (f *fakeProvider) Generate(_ context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, prompt)
	f.maxTokens = append(f.maxTokens, llm.ApplyOptions(opts...).MaxTokens)
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", nil
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

func (f *fakeProvider) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func newFakeClient(p *fakeProvider) *llm.Client {
	return llm.NewClient(p, llm.ClientConfig{
		Timeout:    time.Second,
		MaxRetries: 0,
		RetryDelay: time.Millisecond,
	}, logger.NewNopLogger())
}

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingPublisher) Publish(_ context.Context, event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingPublisher) PublishBRDGenerated(ctx context.Context, projectID, template string, raw bool, confidence float64) {
	r.Publish(ctx, events.New(events.TypeBRDGenerated, map[string]interface{}{"project_id": projectID, "template": template, "raw": raw}))
}

func (r *recordingPublisher) PublishChatReplied(ctx context.Context, projectID, intent string) {
	r.Publish(ctx, events.New(events.TypeChatReplied, map[string]interface{}{"project_id": projectID, "intent": intent}))
}

func (r *recordingPublisher) PublishSiteScraped(ctx context.Context, projectID, url, title string) {
	r.Publish(ctx, events.New(events.TypeSiteScraped, map[string]interface{}{"project_id": projectID, "url": url}))
}

func (r *recordingPublisher) PublishConflictsDetected(ctx context.Context, projectID, strategy string, count int) {
	r.Publish(ctx, events.New(events.TypeConflictsDetected, map[string]interface{}{"project_id": projectID, "strategy": strategy, "count": count}))
}

func (r *recordingPublisher) PublishBRDExported(ctx context.Context, filename string, sections int) {
	r.Publish(ctx, events.New(events.TypeBRDExported, map[string]interface{}{"filename": filename}))
}

func (r *recordingPublisher) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.EventType())
	}
	return out
}

func (r *recordingPublisher) last(t *testing.T) events.Event {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		t.Fatal("no events published")
	}
	return r.events[len(r.events)-1]
}

type fakeScraper struct {
	result *scraper.Result
	err    error
	urls   []string
}

func (f *fakeScraper) Scrape(_ context.Context, rawURL string) (*scraper.Result, error) {
	f.urls = append(f.urls, rawURL)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
