package controller

import (
	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/serverutils"
	"reqforge-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IDocumentController serves the LLM-free helpers: text analysis plus
// markdown and workbook export.
type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	ExportXLSX(ctx *fiber.Ctx) error
}

type documentController struct {
	analysisService service.IAnalysisService
	exportService   service.IExportService
}

func NewDocumentController(analysisService service.IAnalysisService, exportService service.IExportService) IDocumentController {
	return &documentController{
		analysisService: analysisService,
		exportService:   exportService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	r.Post("/analyze", c.Analyze)
	r.Post("/export", c.Export)
	r.Post("/export/xlsx", c.ExportXLSX)
}

func (c *documentController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.analysisService.Analyze(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *documentController) Export(ctx *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.exportService.Export(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *documentController) ExportXLSX(ctx *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	file, err := c.exportService.ExportXLSX(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	ctx.Attachment(file.Filename)
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	return ctx.Send(file.Data)
}
