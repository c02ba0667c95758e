package bootstrap

import (
	"reqforge-ai-be/internal/config"
	"reqforge-ai-be/internal/controller"
	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/internal/service"
	"reqforge-ai-be/internal/websocket"
	"reqforge-ai-be/pkg/llm"
	"reqforge-ai-be/pkg/llm/factory"
	pktNats "reqforge-ai-be/pkg/nats"
	"reqforge-ai-be/pkg/scraper"
	"reqforge-ai-be/pkg/template"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	HealthController     controller.IHealthController
	GenerationController controller.IGenerationController
	ChatController       controller.IChatController
	ScrapeController     controller.IScrapeController
	ConflictController   controller.IConflictController
	DocumentController   controller.IDocumentController

	// WebSockets
	ChatHandler *websocket.ChatHandler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

// NewContainer builds the LLM provider named in cfg and wires everything
// around it. An unknown provider or a missing API key is returned as an error.
func NewContainer(cfg *config.Config, log logger.ILogger) (*Container, error) {
	provider, err := factory.NewLLMProvider(factory.ProviderConfig{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		AnthropicKey:  cfg.Keys.Anthropic,
		GeminiKey:     cfg.Keys.GoogleGemini,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		return nil, err
	}
	log.Info("Bootstrap", "LLM provider ready", map[string]interface{}{
		"provider": provider.Name(),
		"model":    cfg.Ai.LLMModel,
	})

	return NewContainerWithProvider(cfg, provider, log), nil
}

func NewContainerWithProvider(cfg *config.Config, provider llm.LLMProvider, log logger.ILogger) *Container {
	c := &Container{Logger: log}

	// 1. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { pubSub.Close() })

	var relay service.EventRelay
	if cfg.Events.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL, log)
		if err != nil {
			log.Warn("Bootstrap", "NATS relay disabled", map[string]interface{}{"error": err.Error()})
		} else {
			relay = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	var activityLogger logger.ILogger = logger.NewNopLogger()
	if cfg.Events.LogPath != "" {
		activityLogger = logger.NewIsolatedLogger(cfg.Events.LogPath)
	}

	publisherService := service.NewPublisherService(pubSub, cfg.Events.Topic, log)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Events.Topic, relay, activityLogger, log)

	// 2. Clients
	llmClient := llm.NewClient(provider, llm.ClientConfig{
		Timeout:    cfg.Ai.Timeout,
		MaxRetries: cfg.Ai.MaxRetries,
		RetryDelay: cfg.Ai.RetryDelay,
	}, log)
	templates := template.NewStore(cfg.App.TemplateDir, log)
	pageScraper := scraper.NewScraper(cfg.Scraper.Timeout, cfg.Scraper.MaxBytes)

	// 3. Services
	generationService := service.NewGenerationService(llmClient, templates, publisherService, log)
	conflictService := service.NewConflictService(llmClient, publisherService, log)
	chatService := service.NewChatService(llmClient, conflictService, publisherService, log)
	scrapeService := service.NewScrapeService(pageScraper, llmClient, publisherService, log)
	analysisService := service.NewAnalysisService()
	exportService := service.NewExportService(templates, publisherService, log)

	// 4. Controllers
	c.HealthController = controller.NewHealthController()
	c.GenerationController = controller.NewGenerationController(generationService)
	c.ChatController = controller.NewChatController(chatService)
	c.ScrapeController = controller.NewScrapeController(scrapeService)
	c.ConflictController = controller.NewConflictController(conflictService)
	c.DocumentController = controller.NewDocumentController(analysisService, exportService)
	c.ChatHandler = websocket.NewChatHandler(chatService, log)

	return c
}

// Close releases the event bus and the NATS connection.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
