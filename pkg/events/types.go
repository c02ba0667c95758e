package events

import "time"

// Activity event types.
const (
	TypeBRDGenerated      = "BRD_GENERATED"
	TypeChatReplied       = "CHAT_REPLIED"
	TypeSiteScraped       = "SITE_SCRAPED"
	TypeConflictsDetected = "CONFLICTS_DETECTED"
	TypeBRDExported       = "BRD_EXPORTED"
)

func New(eventType string, data map[string]interface{}) BaseEvent {
	if data == nil {
		data = map[string]interface{}{}
	}
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now().UTC()}
}
