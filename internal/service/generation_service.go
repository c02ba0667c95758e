package service

import (
	"context"
	"encoding/json"
	"fmt"

	"reqforge-ai-be/internal/constant"
	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/pkg/template"
	"reqforge-ai-be/pkg/utils"
)

type IGenerationService interface {
	Generate(ctx context.Context, req *dto.GenerateBRDRequest) (*dto.GenerateBRDResponse, error)
}

type generationService struct {
	llmClient ILLMClient
	templates template.IStore
	publisher IPublisherService
	logger    logger.ILogger
}

func NewGenerationService(
	llmClient ILLMClient,
	templates template.IStore,
	publisher IPublisherService,
	log logger.ILogger,
) IGenerationService {
	return &generationService{
		llmClient: llmClient,
		templates: templates,
		publisher: publisher,
		logger:    log,
	}
}

func (s *generationService) Generate(ctx context.Context, req *dto.GenerateBRDRequest) (*dto.GenerateBRDResponse, error) {
	templateName := req.Template
	if templateName == "" {
		templateName = template.DefaultName
	}
	tmpl := s.templates.Load(templateName)

	structure, err := json.MarshalIndent(map[string]interface{}{"sections": tmpl.Sections}, "", "  ")
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(constant.GenerateBRDPrompt, FormatDataSources(req.DataSources), structure)

	reply, err := s.llmClient.GenerateJSON(ctx, prompt, constant.GenerateBRDMaxTokens)
	if err != nil {
		return nil, err
	}

	res := &dto.GenerateBRDResponse{
		Message:    constant.GenerateBRDSuccessMessage,
		Confidence: utils.CalculateConfidenceScore(req.DataSources.SourceTypes()),
	}

	if sections, ok := reply.Map(); ok {
		content := FillTemplateSections(sections, tmpl)
		completeness := utils.ValidateCompleteness(content, RequiredSectionIDs(tmpl))
		res.BrdContent = dto.StructuredBrd(content)
		res.Completeness = &completeness
	} else {
		s.logger.Warn("GenerationService", "Model reply was not a JSON object, returning raw BRD", map[string]interface{}{
			"project_id": req.ProjectID,
			"template":   tmpl.Name,
		})
		res.BrdContent = dto.RawBrdContent(reply.Raw)
	}

	s.publisher.PublishBRDGenerated(ctx, req.ProjectID, tmpl.Name, res.BrdContent.IsRaw(), res.Confidence)

	return res, nil
}

// FillTemplateSections merges generated sections over a skeleton holding
// every template section. Missing sections come back as
// {title, content: "", completed: false}; plain string sections are lifted
// into the same shape. Sections outside the template are kept unchanged.
func FillTemplateSections(generated map[string]interface{}, tmpl *template.Template) map[string]interface{} {
	skeleton := make(map[string]interface{}, len(tmpl.Sections))
	normalized := make(map[string]interface{}, len(generated))
	for k, v := range generated {
		normalized[k] = v
	}

	for _, sec := range tmpl.Sections {
		skeleton[sec.ID] = map[string]interface{}{
			"title":     sec.Title,
			"content":   "",
			"completed": false,
		}

		value, ok := generated[sec.ID]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			normalized[sec.ID] = map[string]interface{}{
				"title":     sec.Title,
				"content":   v,
				"completed": v != "",
			}
		case map[string]interface{}:
			if _, has := v["completed"]; !has {
				withFlag := make(map[string]interface{}, len(v)+1)
				for k, inner := range v {
					withFlag[k] = inner
				}
				filled := utils.SectionFilled(v)
				if inner, hasContent := v["content"]; hasContent {
					filled = utils.SectionFilled(inner)
				}
				withFlag["completed"] = filled
				normalized[sec.ID] = withFlag
			}
		}
	}

	return utils.MergeMaps(skeleton, normalized)
}

// RequiredSectionIDs lists sections flagged required, or every section when
// the template flags none.
func RequiredSectionIDs(tmpl *template.Template) []string {
	var ids []string
	for _, sec := range tmpl.Sections {
		if sec.Required {
			ids = append(ids, sec.ID)
		}
	}
	if len(ids) == 0 {
		return tmpl.SectionIDs()
	}
	return ids
}
