package controller

import (
	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/apperror"
	"reqforge-ai-be/internal/pkg/serverutils"
	"reqforge-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGenerationController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type generationController struct {
	generationService service.IGenerationService
}

func NewGenerationController(generationService service.IGenerationService) IGenerationController {
	return &generationController{
		generationService: generationService,
	}
}

func (c *generationController) RegisterRoutes(r fiber.Router) {
	r.Post("/generate", c.Generate)
}

func (c *generationController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateBRDRequest
	if err := ctx.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.generationService.Generate(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func invalidBody(err error) error {
	return apperror.Validation("invalid request body: " + err.Error())
}
