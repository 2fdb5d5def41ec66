package bootstrap

import (
	"io"
	"log"
	"time"

	"neoyngpt-be/internal/config"
	"neoyngpt-be/internal/controller"
	"neoyngpt-be/internal/pkg/logger"
	"neoyngpt-be/internal/repository/memory"
	"neoyngpt-be/internal/service"
	"neoyngpt-be/pkg/llm"
	"neoyngpt-be/pkg/llm/breaker"
	"neoyngpt-be/pkg/llm/factory"
	pktNats "neoyngpt-be/pkg/nats"
	"neoyngpt-be/pkg/visual"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	QueryController   controller.IQueryController
	HistoryController controller.IHistoryController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for tools and tests
	QueryService service.IQueryService
	Logger       logger.ILogger

	pubSub    *gochannel.GoChannel
	natsPub   *pktNats.Publisher
	eventLog  logger.ILogger
	llmCloser io.Closer
}

// NewContainer builds the LLM provider from configuration and wires everything.
func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.APIKey(),
		cfg.Ai.Timeout,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	model := cfg.Ai.LLMModel
	if model == "" {
		model = factory.DefaultModel(cfg.Ai.LLMProvider)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, model)

	if factory.RequiresCredential(cfg.Ai.LLMProvider) && cfg.APIKey() == "" {
		sysLogger.Warn("Bootstrap", "API key for LLM provider is not set; queries will fail until it is configured", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
		})
	}

	// The breaker hides Close, so keep a handle on SDK-backed providers.
	closer, _ := llmProvider.(io.Closer)

	if cfg.Ai.BreakerEnabled {
		llmProvider = breaker.New(llmProvider, breaker.DefaultConfig("llm-"+cfg.Ai.LLMProvider))
		log.Printf("[INFO] LLM circuit breaker enabled")
	}

	eventLogger := logger.NewIsolatedLogger(cfg.App.EventLogFilePath)

	// NATS is optional; events stay in-process without it.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	c := NewContainerWithProvider(cfg, llmProvider, sysLogger, eventLogger, natsPub)
	c.llmCloser = closer
	return c
}

// NewContainerWithProvider wires the graph around an already built provider.
// natsPub may be nil.
func NewContainerWithProvider(
	cfg *config.Config,
	llmProvider llm.LLMProvider,
	sysLogger logger.ILogger,
	eventLogger logger.ILogger,
	natsPub *pktNats.Publisher,
) *Container {
	// Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)

	var forwarder service.EventForwarder
	if natsPub != nil {
		forwarder = natsPub
	}

	publisherService := service.NewPublisherService(cfg.App.QueryEventsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.QueryEventsTopic, forwarder, eventLogger)

	analyzer := visual.NewVisualizer(
		visual.WithComparisonPairing(visual.ParseComparisonPairing(cfg.Visual.ComparisonPairing)),
	)

	var visualGen visual.Generator = analyzer
	if cfg.Visual.Mode == config.VisualModeLLM {
		visualGen = visual.NewLLMVisualizer(llmProvider, cfg.Ai.MaxTokens)
		log.Printf("[INFO] Using LLM visualizer")
	}

	textService := service.NewTextService(llmProvider, cfg.Ai.MaxTokens, sysLogger)
	queryService := service.NewQueryService(textService, visualGen, analyzer, publisherService, sysLogger)

	historyRepo := memory.NewHistoryRepository(memory.SampleHistory(time.Now()))
	historyService := service.NewHistoryService(historyRepo, time.Now)

	return &Container{
		QueryController:   controller.NewQueryController(queryService),
		HistoryController: controller.NewHistoryController(historyService),
		ConsumerService:   consumerService,
		QueryService:      queryService,
		Logger:            sysLogger,
		pubSub:            pubSub,
		natsPub:           natsPub,
		eventLog:          eventLogger,
	}
}

// Close releases the event bus and external connections.
func (c *Container) Close() {
	if c.pubSub != nil {
		if err := c.pubSub.Close(); err != nil {
			log.Printf("[WARN] Failed to close event bus: %v", err)
		}
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.llmCloser != nil {
		if err := c.llmCloser.Close(); err != nil {
			log.Printf("[WARN] Failed to close LLM client: %v", err)
		}
	}
	_ = c.eventLog.Sync()
	_ = c.Logger.Sync()
}
