package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"reqforge-ai-be/internal/constant"
	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/pkg/llm"
	"reqforge-ai-be/pkg/utils"
)

type IConflictService interface {
	Detect(ctx context.Context, req *dto.ConflictRequest) (*dto.ConflictResponse, error)
}

type conflictService struct {
	llmClient ILLMClient
	publisher IPublisherService
	logger    logger.ILogger
}

func NewConflictService(llmClient ILLMClient, publisher IPublisherService, log logger.ILogger) IConflictService {
	return &conflictService{
		llmClient: llmClient,
		publisher: publisher,
		logger:    log,
	}
}

func (s *conflictService) Detect(ctx context.Context, req *dto.ConflictRequest) (*dto.ConflictResponse, error) {
	strategy := req.Strategy
	if strategy == "" {
		strategy = dto.ConflictStrategyLLM
	}

	var conflicts []dto.Conflict
	switch strategy {
	case dto.ConflictStrategyHeuristic:
		conflicts = DetectHeuristicConflicts(req.BrdContent)
	default:
		var err error
		conflicts, err = s.detectWithLLM(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	s.publisher.PublishConflictsDetected(ctx, req.ProjectID, strategy, len(conflicts))

	return &dto.ConflictResponse{Conflicts: conflicts}, nil
}

func (s *conflictService) detectWithLLM(ctx context.Context, req *dto.ConflictRequest) ([]dto.Conflict, error) {
	content, err := json.MarshalIndent(req.BrdContent, "", "  ")
	if err != nil {
		return nil, err
	}

	reply, err := s.llmClient.GenerateJSON(ctx, fmt.Sprintf(constant.ConflictDetectionPrompt, content), constant.ConflictMaxTokens)
	if err != nil {
		return nil, err
	}

	parsed := ParseConflicts(reply)
	if parsed.Kind == ConflictParseUnparseable {
		s.logger.Warn("ConflictService", "Conflict reply was not usable, returning none", map[string]interface{}{
			"project_id": req.ProjectID,
		})
	}
	return parsed.Conflicts(), nil
}

type ConflictParseKind string

const (
	ConflictParseArray               ConflictParseKind = "array"
	ConflictParseObjectWithConflicts ConflictParseKind = "object_with_conflicts"
	ConflictParseUnparseable         ConflictParseKind = "unparseable"
)

// ConflictParse is how a model reply to the conflict prompt was understood.
// Items is empty when Kind is unparseable.
type ConflictParse struct {
	Kind  ConflictParseKind
	Items []interface{}
}

// ParseConflicts accepts a bare array or an object with a "conflicts" array.
func ParseConflicts(reply *llm.JSONReply) ConflictParse {
	if reply == nil || !reply.Valid {
		return ConflictParse{Kind: ConflictParseUnparseable}
	}
	switch v := reply.Value.(type) {
	case []interface{}:
		return ConflictParse{Kind: ConflictParseArray, Items: v}
	case map[string]interface{}:
		if items, ok := v["conflicts"].([]interface{}); ok {
			return ConflictParse{Kind: ConflictParseObjectWithConflicts, Items: items}
		}
	}
	return ConflictParse{Kind: ConflictParseUnparseable}
}

// Conflicts normalises the parsed items. Non-object items are skipped,
// missing ids become conflict_N and missing types become "other".
func (p ConflictParse) Conflicts() []dto.Conflict {
	conflicts := []dto.Conflict{}
	for _, item := range p.Items {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		c := dto.Conflict{
			ID:                stringField(m, "id"),
			Type:              stringField(m, "type"),
			Description:       stringField(m, "description"),
			Sources:           stringList(m["sources"]),
			ResolutionOptions: optionList(m["resolution_options"]),
		}
		if c.ID == "" {
			c.ID = fmt.Sprintf("conflict_%d", len(conflicts)+1)
		}
		if c.Type == "" {
			c.Type = "other"
		}
		conflicts = append(conflicts, c)
	}
	return conflicts
}

func stringField(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func stringList(v interface{}) []string {
	out := []string{}
	switch val := v.(type) {
	case string:
		if val != "" {
			out = append(out, val)
		}
	case []interface{}:
		for _, item := range val {
			if item == nil {
				continue
			}
			if s, ok := item.(string); ok {
				out = append(out, s)
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
	}
	return out
}

func optionList(v interface{}) []map[string]interface{} {
	out := []map[string]interface{}{}
	items, ok := v.([]interface{})
	if !ok {
		return out
	}
	for _, item := range items {
		switch opt := item.(type) {
		case map[string]interface{}:
			out = append(out, opt)
		case string:
			out = append(out, map[string]interface{}{"option": opt})
		}
	}
	return out
}

// DetectHeuristicConflicts collects candidate sentences from every string in
// the BRD and reports pairwise value mismatches between them.
func DetectHeuristicConflicts(brd map[string]interface{}) []dto.Conflict {
	var requirements []utils.Requirement
	for _, text := range collectStrings(brd) {
		for _, sentence := range utils.ConflictCandidates(text) {
			requirements = append(requirements, utils.Requirement{
				ID:   utils.CreateRequirementID(sentence, len(requirements)+1),
				Text: sentence,
			})
		}
	}

	found := utils.DetectRequirementConflicts(requirements)
	conflicts := make([]dto.Conflict, 0, len(found))
	for _, f := range found {
		conflicts = append(conflicts, dto.Conflict{
			ID:          f.ID,
			Type:        f.Category,
			Description: f.Description,
			Sources:     []string{f.Requirement1.ID, f.Requirement2.ID},
			ResolutionOptions: []map[string]interface{}{
				{"option": fmt.Sprintf("Keep %s", f.Requirement1.ID), "text": f.Requirement1.Text},
				{"option": fmt.Sprintf("Keep %s", f.Requirement2.ID), "text": f.Requirement2.Text},
				{"option": "Clarify with stakeholders"},
			},
		})
	}
	return conflicts
}

// collectStrings walks v depth-first, visiting object keys in sorted order.
func collectStrings(v interface{}) []string {
	var out []string
	switch val := v.(type) {
	case string:
		if val != "" {
			out = append(out, val)
		}
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, collectStrings(val[k])...)
		}
	case []interface{}:
		for _, item := range val {
			out = append(out, collectStrings(item)...)
		}
	}
	return out
}
