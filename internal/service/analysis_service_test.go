package service

import (
	"strings"
	"testing"

	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/apperror"
	"reqforge-ai-be/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisService_Analyze(t *testing.T) {
	text := "The portal must support single sign-on for staff, says Sarah Johnson (Product Manager). " +
		"We want to increase sales by 20% within 6 months. The weather was nice."

	res, err := NewAnalysisService().Analyze(&dto.AnalyzeRequest{Text: text})

	require.NoError(t, err)
	require.Len(t, res.Requirements, 1)
	assert.Equal(t, "REQ-TPM-001", res.Requirements[0].ID)
	assert.Equal(t, []utils.Stakeholder{{Name: "Sarah Johnson", Role: "Product Manager"}}, res.Stakeholders)
	assert.Equal(t, []string{"We want to increase sales by 20% within 6 months"}, res.SmartObjectives[utils.SmartMeasurable])
	assert.Equal(t, []string{"We want to increase sales by 20% within 6 months"}, res.SmartObjectives[utils.SmartTimeBound])
	assert.Equal(t, []string{text}, res.Chunks)
}

func TestAnalysisService_Chunking(t *testing.T) {
	text := strings.Repeat("word ", 100)
	zero := 0

	res, err := NewAnalysisService().Analyze(&dto.AnalyzeRequest{Text: text, ChunkSize: 100, Overlap: &zero})

	require.NoError(t, err)
	assert.Len(t, res.Chunks, 5)
	assert.Equal(t, text, strings.Join(res.Chunks, ""))
}

func TestAnalysisService_OverlapTooLarge(t *testing.T) {
	_, err := NewAnalysisService().Analyze(&dto.AnalyzeRequest{Text: "x", ChunkSize: 50})

	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
