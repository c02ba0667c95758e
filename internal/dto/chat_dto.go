package dto

type ChatRequest struct {
	ProjectID string                 `json:"project_id" validate:"required"`
	Message   string                 `json:"message" validate:"required"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

type Suggestion struct {
	Type   string                 `json:"type"`
	Text   string                 `json:"text"`
	Action string                 `json:"action"`
	Data   map[string]interface{} `json:"data"`
}

type ChatResponse struct {
	Message     string       `json:"message"`
	Suggestions []Suggestion `json:"suggestions"`
	BrdUpdate   interface{}  `json:"brd_update,omitempty"`
}

// --- WebSocket frames ---

const (
	WsEventAIResponse = "ai-response"
	WsEventError      = "error"
)

type WsChatReply struct {
	Event string `json:"event"`
	ChatResponse
}

type WsErrorReply struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}
