package service

import (
	"context"
	"fmt"

	"reqforge-ai-be/internal/constant"
	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/pkg/scraper"
)

const scrapePreviewRunes = 1000

type IScrapeService interface {
	Scrape(ctx context.Context, req *dto.ScrapeRequest) (*dto.ScrapeResponse, error)
}

type scrapeService struct {
	scraper   scraper.IScraper
	llmClient ILLMClient
	publisher IPublisherService
	logger    logger.ILogger
}

func NewScrapeService(
	pageScraper scraper.IScraper,
	llmClient ILLMClient,
	publisher IPublisherService,
	log logger.ILogger,
) IScrapeService {
	return &scrapeService{
		scraper:   pageScraper,
		llmClient: llmClient,
		publisher: publisher,
		logger:    log,
	}
}

func (s *scrapeService) Scrape(ctx context.Context, req *dto.ScrapeRequest) (*dto.ScrapeResponse, error) {
	page, err := s.scraper.Scrape(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ScrapeService", "Page scraped", map[string]interface{}{
		"project_id": req.ProjectID,
		"url":        page.URL,
		"headings":   len(page.Headings),
		"text_runes": len([]rune(page.Text)),
	})

	prompt := fmt.Sprintf(constant.ScrapeAnalysisPrompt,
		req.URL,
		orDefault(page.Title, "Unknown"),
		truncate(page.Text, scrapePreviewRunes),
	)

	reply, err := s.llmClient.GenerateJSON(ctx, prompt, constant.ScrapeMaxTokens)
	if err != nil {
		return nil, err
	}

	res := &dto.ScrapeResponse{
		Insights:    map[string]interface{}{"raw": reply.Raw},
		Suggestions: []interface{}{},
	}
	if m, ok := reply.Map(); ok {
		if insights, ok := m["insights"].(map[string]interface{}); ok {
			res.Insights = insights
		}
		if suggestions, ok := m["suggestions"].([]interface{}); ok {
			res.Suggestions = suggestions
		}
	}

	s.publisher.PublishSiteScraped(ctx, req.ProjectID, page.URL, page.Title)

	return res, nil
}
