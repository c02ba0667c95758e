package dto

import "reqforge-ai-be/pkg/utils"

type AnalyzeRequest struct {
	Text      string `json:"text" validate:"required"`
	ChunkSize int    `json:"chunk_size,omitempty" validate:"omitempty,min=1"`
	Overlap   *int   `json:"overlap,omitempty" validate:"omitempty,min=0"`
}

type AnalyzeResponse struct {
	Requirements    []utils.Requirement `json:"requirements"`
	Stakeholders    []utils.Stakeholder `json:"stakeholders"`
	SmartObjectives map[string][]string `json:"smart_objectives"`
	Chunks          []string            `json:"chunks"`
}

type ExportRequest struct {
	Title      string                 `json:"title,omitempty"`
	Template   string                 `json:"template,omitempty"`
	BrdContent map[string]interface{} `json:"brd_content" validate:"required"`
}

type ExportResponse struct {
	Filename string `json:"filename"`
	Markdown string `json:"markdown"`
}

// ExportFile is a rendered binary export.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
