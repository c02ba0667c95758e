package dto

import (
	"encoding/json"

	"reqforge-ai-be/pkg/utils"
)

// DataSources groups the raw communications a BRD is generated from.
// A nil slice means the kind was not sent; an empty slice means it was sent
// with no records. Only sent kinds are included in prompts.
type DataSources struct {
	Emails    []EmailRecord    `json:"emails,omitempty"`
	Meetings  []MeetingRecord  `json:"meetings,omitempty"`
	Slack     []SlackMessage   `json:"slack,omitempty"`
	Documents []DocumentRecord `json:"documents,omitempty"`
}

type EmailRecord struct {
	ID      string `json:"id,omitempty"`
	From    string `json:"from"`
	To      string `json:"to,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Date    string `json:"date,omitempty"`
}

type MeetingRecord struct {
	MeetingID    string   `json:"meeting_id"`
	Title        string   `json:"title,omitempty"`
	Date         string   `json:"date,omitempty"`
	Participants []string `json:"participants,omitempty"`
	Transcript   string   `json:"transcript"`
}

type SlackMessage struct {
	User      string `json:"user"`
	Text      string `json:"text"`
	Channel   string `json:"channel,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

type DocumentRecord struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// SourceTypes lists one type entry per record, for confidence scoring.
func (d *DataSources) SourceTypes() []string {
	types := make([]string, 0, len(d.Emails)+len(d.Meetings)+len(d.Slack)+len(d.Documents))
	for range d.Emails {
		types = append(types, "email")
	}
	for range d.Meetings {
		types = append(types, "meeting")
	}
	for range d.Slack {
		types = append(types, "slack")
	}
	for range d.Documents {
		types = append(types, "document")
	}
	return types
}

type GenerateBRDRequest struct {
	ProjectID   string       `json:"project_id" validate:"required"`
	DataSources *DataSources `json:"data_sources" validate:"required"`
	Template    string       `json:"template,omitempty"`
}

type GenerateBRDResponse struct {
	BrdContent   BrdContent          `json:"brd_content"`
	Message      string              `json:"message"`
	Completeness *utils.Completeness `json:"completeness,omitempty"`
	Confidence   float64             `json:"confidence"`
}

const rawSummaryRunes = 500

// RawBrd is what a BRD becomes when the model reply was not a JSON object.
type RawBrd struct {
	ExecutiveSummary string `json:"executive_summary"`
	RawContent       string `json:"raw_content"`
}

// BrdContent is either structured sections or a raw-text fallback.
// Exactly one of Sections and Raw is set.
type BrdContent struct {
	Sections map[string]interface{}
	Raw      *RawBrd
}

func StructuredBrd(sections map[string]interface{}) BrdContent {
	if sections == nil {
		sections = map[string]interface{}{}
	}
	return BrdContent{Sections: sections}
}

func RawBrdContent(text string) BrdContent {
	summary := text
	if r := []rune(text); len(r) > rawSummaryRunes {
		summary = string(r[:rawSummaryRunes])
	}
	return BrdContent{Raw: &RawBrd{ExecutiveSummary: summary, RawContent: text}}
}

func (b BrdContent) IsRaw() bool {
	return b.Raw != nil
}

func (b BrdContent) MarshalJSON() ([]byte, error) {
	if b.Raw != nil {
		return json.Marshal(b.Raw)
	}
	if b.Sections == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(b.Sections)
}
