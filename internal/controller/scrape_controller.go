package controller

import (
	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/serverutils"
	"reqforge-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IScrapeController interface {
	RegisterRoutes(r fiber.Router)
	Scrape(ctx *fiber.Ctx) error
}

type scrapeController struct {
	scrapeService service.IScrapeService
}

func NewScrapeController(scrapeService service.IScrapeService) IScrapeController {
	return &scrapeController{
		scrapeService: scrapeService,
	}
}

func (c *scrapeController) RegisterRoutes(r fiber.Router) {
	r.Post("/scrape", c.Scrape)
}

func (c *scrapeController) Scrape(ctx *fiber.Ctx) error {
	var req dto.ScrapeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scrapeService.Scrape(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
