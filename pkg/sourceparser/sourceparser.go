// Package sourceparser loads exported project communications and enriches
// each record with the requirements and stakeholders found in its text.
package sourceparser

import (
	"encoding/json"
	"os"
	"path/filepath"

	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/pkg/utils"

	"github.com/rotisserie/eris"
)

const (
	// Texts longer than this are also returned in chunks.
	ChunkThreshold = 2000
	// DefaultChannel is used for slack messages without a channel.
	DefaultChannel = "general"
)

// Enrichment is attached to every parsed record.
type Enrichment struct {
	ExtractedRequirements []string            `json:"extracted_requirements"`
	MentionedStakeholders []utils.Stakeholder `json:"mentioned_stakeholders"`
}

func enrich(text string) Enrichment {
	return Enrichment{
		ExtractedRequirements: utils.ExtractRequirements(text),
		MentionedStakeholders: utils.ExtractStakeholders(text),
	}
}

type Email struct {
	From    string `json:"from"`
	To      string `json:"to,omitempty"`
	CC      string `json:"cc,omitempty"`
	Date    string `json:"date,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body"`

	*Enrichment
}

type Meeting struct {
	MeetingID       string   `json:"meeting_id"`
	Date            string   `json:"date,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	Participants    []string `json:"participants,omitempty"`
	Transcript      string   `json:"transcript"`
	Summary         string   `json:"summary,omitempty"`
	ActionItems     []string `json:"action_items,omitempty"`
	Decisions       []string `json:"decisions,omitempty"`

	*Enrichment
	TranscriptChunks []string `json:"transcript_chunks,omitempty"`
}

type Reaction struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

type SlackMessage struct {
	User      string     `json:"user"`
	Text      string     `json:"text"`
	Timestamp string     `json:"timestamp,omitempty"`
	Channel   string     `json:"channel,omitempty"`
	Reactions []Reaction `json:"reactions,omitempty"`

	ThreadContext *ThreadContext `json:"thread_context,omitempty"`
}

type ThreadContext struct {
	Channel                string `json:"channel"`
	TotalMessagesInChannel int    `json:"total_messages_in_channel"`
}

type Document struct {
	Filename string   `json:"filename"`
	Content  string   `json:"content"`
	Chunks   []string `json:"chunks"`

	Enrichment
}

// Bundle is every parsed source of one project.
type Bundle struct {
	Emails    []Email        `json:"emails"`
	Meetings  []Meeting      `json:"meetings"`
	Slack     []SlackMessage `json:"slack"`
	Documents []Document     `json:"documents"`
}

// Paths names the files to parse. Empty paths are skipped.
type Paths struct {
	Emails    string
	Meetings  string
	Slack     string
	Documents []string
}

// ParseAll parses every configured source. The first failure aborts.
func ParseAll(paths Paths) (*Bundle, error) {
	bundle := &Bundle{
		Emails:    []Email{},
		Meetings:  []Meeting{},
		Slack:     []SlackMessage{},
		Documents: []Document{},
	}

	var err error
	if paths.Emails != "" {
		if bundle.Emails, err = ParseEmails(paths.Emails); err != nil {
			return nil, err
		}
	}
	if paths.Meetings != "" {
		if bundle.Meetings, err = ParseMeetings(paths.Meetings); err != nil {
			return nil, err
		}
	}
	if paths.Slack != "" {
		if bundle.Slack, err = ParseSlack(paths.Slack); err != nil {
			return nil, err
		}
	}
	for _, path := range paths.Documents {
		if filepath.Ext(path) != ".txt" {
			continue
		}
		doc, err := ParseTextFile(path)
		if err != nil {
			return nil, err
		}
		bundle.Documents = append(bundle.Documents, *doc)
	}
	return bundle, nil
}

func ParseEmails(path string) ([]Email, error) {
	emails, err := loadRecords[Email](path)
	if err != nil {
		return nil, err
	}
	return EnrichEmails(emails), nil
}

func EnrichEmails(emails []Email) []Email {
	for i := range emails {
		e := enrich(emails[i].Body)
		emails[i].Enrichment = &e
	}
	return emails
}

func ParseMeetings(path string) ([]Meeting, error) {
	meetings, err := loadRecords[Meeting](path)
	if err != nil {
		return nil, err
	}
	return EnrichMeetings(meetings), nil
}

// EnrichMeetings adds requirements and stakeholders, and chunks transcripts
// longer than ChunkThreshold.
func EnrichMeetings(meetings []Meeting) []Meeting {
	for i := range meetings {
		transcript := meetings[i].Transcript
		e := enrich(transcript)
		meetings[i].Enrichment = &e
		if len([]rune(transcript)) > ChunkThreshold {
			meetings[i].TranscriptChunks = utils.ChunkText(transcript, utils.DefaultChunkSize, utils.DefaultChunkOverlap)
		}
	}
	return meetings
}

func ParseSlack(path string) ([]SlackMessage, error) {
	messages, err := loadRecords[SlackMessage](path)
	if err != nil {
		return nil, err
	}
	return EnrichSlack(messages), nil
}

// EnrichSlack attaches per-channel thread context to every message.
func EnrichSlack(messages []SlackMessage) []SlackMessage {
	perChannel := make(map[string]int)
	for _, msg := range messages {
		perChannel[channelOf(msg)]++
	}
	for i := range messages {
		channel := channelOf(messages[i])
		messages[i].ThreadContext = &ThreadContext{
			Channel:                channel,
			TotalMessagesInChannel: perChannel[channel],
		}
	}
	return messages
}

func channelOf(msg SlackMessage) string {
	if msg.Channel == "" {
		return DefaultChannel
	}
	return msg.Channel
}

func ParseTextFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read %s", path)
	}
	return ParseText(filepath.Base(path), string(content)), nil
}

func ParseText(filename, content string) *Document {
	chunks := []string{content}
	if len([]rune(content)) > ChunkThreshold {
		chunks = utils.ChunkText(content, utils.DefaultChunkSize, utils.DefaultChunkOverlap)
	}
	return &Document{
		Filename:   filename,
		Content:    content,
		Chunks:     chunks,
		Enrichment: enrich(content),
	}
}

// loadRecords accepts either a JSON array or a single JSON object.
func loadRecords[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read %s", path)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var single T
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, eris.Wrapf(err, "unexpected data format in %s", path)
	}
	return []T{single}, nil
}

// DataSources converts the bundle into a generation request payload.
func (b *Bundle) DataSources() *dto.DataSources {
	ds := &dto.DataSources{
		Emails:    make([]dto.EmailRecord, 0, len(b.Emails)),
		Meetings:  make([]dto.MeetingRecord, 0, len(b.Meetings)),
		Slack:     make([]dto.SlackMessage, 0, len(b.Slack)),
		Documents: make([]dto.DocumentRecord, 0, len(b.Documents)),
	}
	for _, e := range b.Emails {
		ds.Emails = append(ds.Emails, dto.EmailRecord{From: e.From, To: e.To, Subject: e.Subject, Body: e.Body, Date: e.Date})
	}
	for _, m := range b.Meetings {
		ds.Meetings = append(ds.Meetings, dto.MeetingRecord{MeetingID: m.MeetingID, Date: m.Date, Participants: m.Participants, Transcript: m.Transcript})
	}
	for _, s := range b.Slack {
		ds.Slack = append(ds.Slack, dto.SlackMessage{User: s.User, Text: s.Text, Channel: s.Channel, Timestamp: s.Timestamp})
	}
	for _, d := range b.Documents {
		ds.Documents = append(ds.Documents, dto.DocumentRecord{Filename: d.Filename, Content: d.Content})
	}
	return ds
}
