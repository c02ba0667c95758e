package service

import (
	"fmt"
	"strings"

	"reqforge-ai-be/internal/dto"
)

const (
	maxEmails          = 20
	maxEmailBodyRunes  = 300
	maxMeetings        = 10
	maxTranscriptRunes = 500
	maxSlackMessages   = 30
	maxDocuments       = 10
	maxDocumentRunes   = 1000
)

// FormatDataSources renders the bundle as the plain-text block embedded in
// generation prompts. Kinds that were not sent are skipped entirely.
func FormatDataSources(ds *dto.DataSources) string {
	if ds == nil {
		return ""
	}
	var lines []string

	if ds.Emails != nil {
		lines = append(lines, "=== EMAILS ===")
		for _, email := range head(ds.Emails, maxEmails) {
			lines = append(lines,
				"From: "+orDefault(email.From, "Unknown"),
				"Subject: "+orDefault(email.Subject, "No subject"),
				"Body: "+truncate(email.Body, maxEmailBodyRunes),
				"---",
			)
		}
	}

	if ds.Meetings != nil {
		lines = append(lines, "\n=== MEETING TRANSCRIPTS ===")
		for _, meeting := range head(ds.Meetings, maxMeetings) {
			lines = append(lines,
				"Meeting: "+orDefault(meeting.MeetingID, "Unknown"),
				"Transcript: "+truncate(meeting.Transcript, maxTranscriptRunes),
				"---",
			)
		}
	}

	if ds.Slack != nil {
		lines = append(lines, "\n=== SLACK MESSAGES ===")
		for _, msg := range head(ds.Slack, maxSlackMessages) {
			lines = append(lines, fmt.Sprintf("[%s]: %s", orDefault(msg.User, "Unknown"), msg.Text))
		}
	}

	if ds.Documents != nil {
		lines = append(lines, "\n=== DOCUMENTS ===")
		for _, doc := range head(ds.Documents, maxDocuments) {
			lines = append(lines,
				"Document: "+orDefault(doc.Filename, "Untitled"),
				"Content: "+truncate(doc.Content, maxDocumentRunes),
				"---",
			)
		}
	}

	return strings.Join(lines, "\n")
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
