package server

import (
	"fmt"

	"reqforge-ai-be/internal/bootstrap"
	"reqforge-ai-be/internal/config"
	"reqforge-ai-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName:      config.ServiceName,
		BodyLimit:    cfg.App.BodyLimitMB * 1024 * 1024,
		ErrorHandler: serverutils.ErrorHandler(container.Logger),
	})

	// Middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(recover.New())
	app.Use(serverutils.AccessLog(container.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	// Routes
	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("Server", fmt.Sprintf("Server is running on http://localhost:%s", s.cfg.App.Port), nil)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	c.HealthController.RegisterRoutes(app)

	ws := app.Group("/ws")
	api := app.Group("/api/ai")
	if cfg.App.JwtSecret != "" {
		ws.Use(serverutils.JwtMiddleware(cfg.App.JwtSecret))
		api.Use(serverutils.JwtMiddleware(cfg.App.JwtSecret))
	}

	c.ChatHandler.RegisterRoutes(ws)

	c.GenerationController.RegisterRoutes(api)
	c.ChatController.RegisterRoutes(api)
	c.ScrapeController.RegisterRoutes(api)
	c.ConflictController.RegisterRoutes(api)
	c.DocumentController.RegisterRoutes(api)
}
