package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"reqforge-ai-be/internal/constant"
	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/pkg/intent"
	"reqforge-ai-be/pkg/utils"
)

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	llmClient       ILLMClient
	conflictService IConflictService
	publisher       IPublisherService
	logger          logger.ILogger
}

func NewChatService(
	llmClient ILLMClient,
	conflictService IConflictService,
	publisher IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		llmClient:       llmClient,
		conflictService: conflictService,
		publisher:       publisher,
		logger:          log,
	}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	detected := intent.Classify(req.Message)

	var (
		res *dto.ChatResponse
		err error
	)
	switch detected {
	case intent.Generate:
		res = s.handleGenerate()
	case intent.WebScraping:
		res = s.handleScraping(req)
	case intent.ConflictCheck:
		res, err = s.handleConflictCheck(ctx, req)
	case intent.Edit:
		res, err = s.handleEdit(ctx, req)
	default:
		res, err = s.handleGeneral(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	s.publisher.PublishChatReplied(ctx, req.ProjectID, string(detected))
	return res, nil
}

func (s *chatService) handleGenerate() *dto.ChatResponse {
	return &dto.ChatResponse{
		Message: constant.ChatGenerateMessage,
		Suggestions: []dto.Suggestion{{
			Type:   "action",
			Text:   constant.ChatGenerateSuggestion,
			Action: "upload",
			Data:   map[string]interface{}{},
		}},
	}
}

func (s *chatService) handleScraping(req *dto.ChatRequest) *dto.ChatResponse {
	urls := utils.ExtractURLs(req.Message)
	if len(urls) == 0 {
		return &dto.ChatResponse{
			Message:     constant.ChatScrapeMissingURL,
			Suggestions: []dto.Suggestion{},
		}
	}

	return &dto.ChatResponse{
		Message: fmt.Sprintf(constant.ChatScrapeMessageFormat, urls[0]),
		Suggestions: []dto.Suggestion{{
			Type:   string(intent.WebScraping),
			Text:   constant.ChatScrapeSuggestion,
			Action: "scrape",
			Data:   map[string]interface{}{"url": urls[0]},
		}},
	}
}

func (s *chatService) handleConflictCheck(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	noConflicts := &dto.ChatResponse{
		Message: constant.ChatConflictMessage,
		Suggestions: []dto.Suggestion{{
			Type:   string(intent.ConflictCheck),
			Text:   constant.ChatNoConflictsSuggestion,
			Action: "none",
			Data:   map[string]interface{}{},
		}},
	}

	content, ok := req.Context["content"].(map[string]interface{})
	if !ok || len(content) == 0 {
		return noConflicts, nil
	}

	found, err := s.conflictService.Detect(ctx, &dto.ConflictRequest{
		ProjectID:  req.ProjectID,
		BrdContent: content,
		Strategy:   dto.ConflictStrategyLLM,
	})
	if err != nil {
		return nil, err
	}
	if len(found.Conflicts) == 0 {
		return noConflicts, nil
	}

	suggestions := make([]dto.Suggestion, 0, len(found.Conflicts))
	for _, c := range found.Conflicts {
		suggestions = append(suggestions, dto.Suggestion{
			Type:   "conflict",
			Text:   c.Description,
			Action: "resolve",
			Data: map[string]interface{}{
				"id":                 c.ID,
				"type":               c.Type,
				"sources":            c.Sources,
				"resolution_options": c.ResolutionOptions,
			},
		})
	}
	return &dto.ChatResponse{
		Message:     fmt.Sprintf(constant.ChatConflictsFoundFormat, len(found.Conflicts)),
		Suggestions: suggestions,
	}, nil
}

func (s *chatService) handleEdit(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	var current interface{} = map[string]interface{}{}
	if req.Context != nil {
		current = req.Context
		if content, ok := req.Context["content"]; ok && content != nil {
			current = content
		}
	}

	contextJSON, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return nil, err
	}

	reply, err := s.llmClient.GenerateJSON(ctx, fmt.Sprintf(constant.EditBRDPrompt, req.Message, contextJSON), constant.EditBRDMaxTokens)
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		Message:     constant.ChatEditMessage,
		Suggestions: []dto.Suggestion{},
		BrdUpdate:   reply.Object(),
	}, nil
}

func (s *chatService) handleGeneral(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	text, err := s.llmClient.Generate(ctx, fmt.Sprintf(constant.GeneralChatPrompt, req.Message), constant.GeneralChatMaxTokens)
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		Message:     strings.TrimSpace(text),
		Suggestions: []dto.Suggestion{},
	}, nil
}
