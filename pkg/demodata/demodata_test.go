package demodata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/pkg/sourceparser"
	"reqforge-ai-be/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestGenerate(t *testing.T) {
	out := t.TempDir()

	summary, err := Generate(out)
	require.NoError(t, err)

	for _, dir := range []string{"raw", "processed", "sample-uploads"} {
		info, err := os.Stat(filepath.Join(out, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
	for _, step := range summary.Steps {
		if step.Name == "directory" {
			assert.DirExists(t, step.Path)
			continue
		}
		assert.FileExists(t, step.Path)
	}

	var raw []map[string]interface{}
	readJSON(t, filepath.Join(out, "processed", "emails.json"), &raw)
	require.Len(t, raw, len(Emails()))
	assert.NotContains(t, raw[0], "extracted_requirements")

	var emails []sourceparser.Email
	readJSON(t, filepath.Join(out, "processed", "emails_enriched.json"), &emails)
	require.Len(t, emails, len(Emails()))
	assert.Contains(t, emails[3].MentionedStakeholders, utils.Stakeholder{Name: "Emma Wilson", Role: "Product Manager"})

	var slack []sourceparser.SlackMessage
	readJSON(t, filepath.Join(out, "processed", "slack_enriched.json"), &slack)
	require.NotNil(t, slack[0].ThreadContext)
	assert.Equal(t, len(SlackMessages()), slack[0].ThreadContext.TotalMessagesInChannel)

	var meetings []sourceparser.Meeting
	readJSON(t, filepath.Join(out, "processed", "meetings_enriched.json"), &meetings)
	require.NotNil(t, meetings[0].Enrichment)
	assert.Empty(t, meetings[0].TranscriptChunks)

	var req dto.GenerateBRDRequest
	readJSON(t, filepath.Join(out, "processed", "generate_request.json"), &req)
	assert.Equal(t, DemoProjectID, req.ProjectID)
	require.NotNil(t, req.DataSources)
	assert.Len(t, req.DataSources.Emails, len(Emails()))
	assert.Len(t, req.DataSources.Meetings, len(Meetings()))
	assert.Len(t, req.DataSources.Slack, len(SlackMessages()))
	assert.Len(t, req.DataSources.Documents, 1)
}
