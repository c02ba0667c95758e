package service

import (
	"regexp"
	"strings"

	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/apperror"
	"reqforge-ai-be/pkg/utils"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

type IAnalysisService interface {
	Analyze(req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error)
}

type analysisService struct{}

func NewAnalysisService() IAnalysisService {
	return &analysisService{}
}

func (s *analysisService) Analyze(req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	chunkSize := req.ChunkSize
	if chunkSize == 0 {
		chunkSize = utils.DefaultChunkSize
	}
	overlap := utils.DefaultChunkOverlap
	if req.Overlap != nil {
		overlap = *req.Overlap
	}
	if overlap >= chunkSize {
		return nil, apperror.Validation("overlap must be smaller than chunk_size")
	}

	return &dto.AnalyzeResponse{
		Requirements:    utils.IdentifyRequirements(req.Text),
		Stakeholders:    utils.ExtractStakeholders(req.Text),
		SmartObjectives: smartObjectives(req.Text),
		Chunks:          utils.ChunkText(req.Text, chunkSize, overlap),
	}, nil
}

// smartObjectives buckets each sentence separately so one metric does not
// pull the whole text into a bucket.
func smartObjectives(text string) map[string][]string {
	merged := utils.ParseSmartObjectives("")
	for _, sentence := range sentenceBoundary.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		for bucket, items := range utils.ParseSmartObjectives(sentence) {
			merged[bucket] = append(merged[bucket], items...)
		}
	}
	return merged
}
