package dto

const (
	ConflictStrategyLLM       = "llm"
	ConflictStrategyHeuristic = "heuristic"
)

type ConflictRequest struct {
	ProjectID  string                 `json:"project_id" validate:"required"`
	BrdContent map[string]interface{} `json:"brd_content" validate:"required"`
	Strategy   string                 `json:"strategy,omitempty" validate:"omitempty,oneof=llm heuristic"`
}

type Conflict struct {
	ID                string                   `json:"id"`
	Type              string                   `json:"type"`
	Description       string                   `json:"description"`
	Sources           []string                 `json:"sources"`
	ResolutionOptions []map[string]interface{} `json:"resolution_options"`
}

type ConflictResponse struct {
	Conflicts []Conflict `json:"conflicts"`
}
