package service

import (
	"context"
	"encoding/json"

	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventRelay forwards activity beyond the process. *nats.Publisher implements it.
type EventRelay interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber     message.Subscriber
	topicName      string
	relay          EventRelay
	activityLogger logger.ILogger
	logger         logger.ILogger
}

// NewConsumerService drains the activity topic into the activity log and,
// when relay is non-nil, into the relay.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	relay EventRelay,
	activityLogger logger.ILogger,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:     subscriber,
		topicName:      topicName,
		relay:          relay,
		activityLogger: activityLogger,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Malformed payloads are acked so they are not redelivered forever.
	defer msg.Ack()

	var payload dto.ActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal activity event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	cs.activityLogger.Info("Activity", payload.Type, map[string]interface{}{
		"id":         payload.ID,
		"project_id": payload.ProjectID,
		"data":       payload.Data,
	})

	if cs.relay == nil {
		return
	}

	data := make(map[string]interface{}, len(payload.Data)+1)
	for k, v := range payload.Data {
		data[k] = v
	}
	data["id"] = payload.ID

	event := events.BaseEvent{Type: payload.Type, Data: data, OccurredAt: payload.OccurredAt}
	if err := cs.relay.Publish(ctx, event); err != nil {
		cs.logger.Warn("ConsumerService", "Failed to relay activity event", map[string]interface{}{
			"type":  payload.Type,
			"error": err.Error(),
		})
	}
}
