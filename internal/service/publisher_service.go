package service

import (
	"context"
	"encoding/json"

	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// IPublisherService emits activity events. Publishing never fails the caller;
// errors are logged.
type IPublisherService interface {
	Publish(ctx context.Context, event events.Event)
	PublishBRDGenerated(ctx context.Context, projectID, template string, raw bool, confidence float64)
	PublishChatReplied(ctx context.Context, projectID, intent string)
	PublishSiteScraped(ctx context.Context, projectID, url, title string)
	PublishConflictsDetected(ctx context.Context, projectID, strategy string, count int)
	PublishBRDExported(ctx context.Context, filename string, sections int)
}

type publisherService struct {
	pubSub    message.Publisher
	topicName string
	logger    logger.ILogger
}

// NewPublisherService publishes onto topicName. A nil pubSub turns every
// call into a no-op.
func NewPublisherService(pubSub message.Publisher, topicName string, log logger.ILogger) IPublisherService {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

func (p *publisherService) Publish(ctx context.Context, event events.Event) {
	if p.pubSub == nil {
		return
	}

	data := event.Payload()
	projectID, _ := data["project_id"].(string)
	payload := dto.ActivityMessage{
		ID:         uuid.NewString(),
		Type:       event.EventType(),
		ProjectID:  projectID,
		Data:       data,
		OccurredAt: event.Timestamp(),
	}

	msgJson, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("PublisherService", "Failed to marshal activity event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(payload.ID, msgJson)
	msg.SetContext(context.WithoutCancel(ctx))
	if err := p.pubSub.Publish(p.topicName, msg); err != nil {
		p.logger.Error("PublisherService", "Failed to publish activity event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}

func (p *publisherService) PublishBRDGenerated(ctx context.Context, projectID, template string, raw bool, confidence float64) {
	p.Publish(ctx, events.New(events.TypeBRDGenerated, map[string]interface{}{
		"project_id": projectID,
		"template":   template,
		"raw":        raw,
		"confidence": confidence,
	}))
}

func (p *publisherService) PublishChatReplied(ctx context.Context, projectID, intent string) {
	p.Publish(ctx, events.New(events.TypeChatReplied, map[string]interface{}{
		"project_id": projectID,
		"intent":     intent,
	}))
}

func (p *publisherService) PublishSiteScraped(ctx context.Context, projectID, url, title string) {
	p.Publish(ctx, events.New(events.TypeSiteScraped, map[string]interface{}{
		"project_id": projectID,
		"url":        url,
		"title":      title,
	}))
}

func (p *publisherService) PublishConflictsDetected(ctx context.Context, projectID, strategy string, count int) {
	p.Publish(ctx, events.New(events.TypeConflictsDetected, map[string]interface{}{
		"project_id": projectID,
		"strategy":   strategy,
		"count":      count,
	}))
}

func (p *publisherService) PublishBRDExported(ctx context.Context, filename string, sections int) {
	p.Publish(ctx, events.New(events.TypeBRDExported, map[string]interface{}{
		"filename": filename,
		"sections": sections,
	}))
}
