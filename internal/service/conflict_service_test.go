package service

import (
	"context"
	"testing"

	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/pkg/events"
	"reqforge-ai-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConflicts(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		wantKind  ConflictParseKind
		wantItems int
	}{
		{name: "array", reply: `[{"id":"c1"},{"id":"c2"}]`, wantKind: ConflictParseArray, wantItems: 2},
		{name: "object", reply: `{"conflicts":[{"id":"c1"}]}`, wantKind: ConflictParseObjectWithConflicts, wantItems: 1},
		{name: "object without list", reply: `{"summary":"none"}`, wantKind: ConflictParseUnparseable},
		{name: "conflicts not a list", reply: `{"conflicts":"none"}`, wantKind: ConflictParseUnparseable},
		{name: "prose", reply: `No conflicts found.`, wantKind: ConflictParseUnparseable},
		{name: "scalar", reply: `"text"`, wantKind: ConflictParseUnparseable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseConflicts(llm.ParseJSONReply(tt.reply))
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Len(t, got.Items, tt.wantItems)
		})
	}

	assert.Equal(t, ConflictParseUnparseable, ParseConflicts(nil).Kind)
}

func TestConflictParse_Normalises(t *testing.T) {
	parsed := ParseConflicts(llm.ParseJSONReply(`[
		{"description":"d"},
		"junk",
		{"id":"c9","type":"budget","sources":"Scope","resolution_options":["Cut scope",{"option":"Raise budget"}]}
	]`))

	got := parsed.Conflicts()

	require.Len(t, got, 2)
	assert.Equal(t, dto.Conflict{
		ID:                "conflict_1",
		Type:              "other",
		Description:       "d",
		Sources:           []string{},
		ResolutionOptions: []map[string]interface{}{},
	}, got[0])
	assert.Equal(t, "c9", got[1].ID)
	assert.Equal(t, []string{"Scope"}, got[1].Sources)
	assert.Equal(t, []map[string]interface{}{
		{"option": "Cut scope"},
		{"option": "Raise budget"},
	}, got[1].ResolutionOptions)
}

func TestConflictService_LLM(t *testing.T) {
	provider := &fakeProvider{replies: []string{
		`{"conflicts":[{"id":"c1","type":"timeline","description":"Q2 vs Q4","sources":["timeline","scope"]}]}`,
	}}
	pub := &recordingPublisher{}
	svc := NewConflictService(newFakeClient(provider), pub, logger.NewNopLogger())

	res, err := svc.Detect(context.Background(), &dto.ConflictRequest{
		ProjectID:  "p1",
		BrdContent: map[string]interface{}{"timeline": "Launch in Q2"},
	})

	require.NoError(t, err)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "timeline", res.Conflicts[0].Type)
	assert.Contains(t, provider.prompts[0], `"timeline": "Launch in Q2"`)
	assert.Equal(t, []string{events.TypeConflictsDetected}, pub.types())
	assert.Equal(t, dto.ConflictStrategyLLM, pub.last(t).Payload()["strategy"])
}

func TestConflictService_UnparseableIsEmpty(t *testing.T) {
	provider := &fakeProvider{replies: []string{"I could not find anything."}}
	svc := NewConflictService(newFakeClient(provider), &recordingPublisher{}, logger.NewNopLogger())

	res, err := svc.Detect(context.Background(), &dto.ConflictRequest{
		ProjectID:  "p1",
		BrdContent: map[string]interface{}{},
	})

	require.NoError(t, err)
	assert.NotNil(t, res.Conflicts)
	assert.Empty(t, res.Conflicts)
}

func TestConflictService_Heuristic(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewConflictService(newFakeClient(provider), &recordingPublisher{}, logger.NewNopLogger())

	res, err := svc.Detect(context.Background(), &dto.ConflictRequest{
		ProjectID: "p1",
		Strategy:  dto.ConflictStrategyHeuristic,
		BrdContent: map[string]interface{}{
			"timeline": map[string]interface{}{
				"title":     "Timeline",
				"content":   "The launch must be completed in Q2 for all regions. Marketing expects the launch must be completed in Q4 for all regions.",
				"completed": true,
			},
		},
	})

	require.NoError(t, err)
	assert.Zero(t, provider.calls())
	require.Len(t, res.Conflicts, 1)
	c := res.Conflicts[0]
	assert.Equal(t, "quarter", c.Type)
	assert.Equal(t, "conflict_1", c.ID)
	assert.Equal(t, []string{"REQ-TLM-001", "REQ-MET-002"}, c.Sources)
	assert.Len(t, c.ResolutionOptions, 3)
}

func TestDetectHeuristicConflicts_NoRequirements(t *testing.T) {
	got := DetectHeuristicConflicts(map[string]interface{}{"scope": []interface{}{"web", 3.0}})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestConflictService_HeuristicShortSentences(t *testing.T) {
	svc := NewConflictService(newFakeClient(&fakeProvider{}), &recordingPublisher{}, logger.NewNopLogger())

	res, err := svc.Detect(context.Background(), &dto.ConflictRequest{
		ProjectID: "p1",
		Strategy:  dto.ConflictStrategyHeuristic,
		BrdContent: map[string]interface{}{
			"timeline": map[string]interface{}{"content": "Must launch by Q2 2024. Must launch by Q4 2024."},
		},
	})

	require.NoError(t, err)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "quarter", res.Conflicts[0].Type)
	assert.Equal(t, "Potential conflict: 'q2' vs 'q4'", res.Conflicts[0].Description)
}
