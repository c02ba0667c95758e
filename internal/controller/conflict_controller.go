package controller

import (
	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/serverutils"
	"reqforge-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConflictController interface {
	RegisterRoutes(r fiber.Router)
	Detect(ctx *fiber.Ctx) error
}

type conflictController struct {
	conflictService service.IConflictService
}

func NewConflictController(conflictService service.IConflictService) IConflictController {
	return &conflictController{
		conflictService: conflictService,
	}
}

func (c *conflictController) RegisterRoutes(r fiber.Router) {
	r.Post("/conflicts", c.Detect)
}

func (c *conflictController) Detect(ctx *fiber.Ctx) error {
	var req dto.ConflictRequest
	if err := ctx.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conflictService.Detect(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
