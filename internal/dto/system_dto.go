package dto

import "time"

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type RootResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
}

// ActivityMessage is the payload carried on the in-process event bus.
type ActivityMessage struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	ProjectID  string                 `json:"project_id,omitempty"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
