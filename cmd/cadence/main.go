package main

import (
	cadenceconfig "cadence/internal/config"
	"cadence/internal/enrich"
	"cadence/internal/generate"
	"cadence/internal/metering"
	"cadence/internal/outreach"
	"cadence/pkg/config"
	"cadence/pkg/database"
	"cadence/pkg/llm"
	"cadence/pkg/logging"
	"cadence/pkg/monitoring"
	"cadence/pkg/server"
	"cadence/pkg/version"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("cadence")

	// Load environment variables
	config.LoadEnv(logger)

	logger.Info("Starting Cadence (outreach sequence generation API)")

	cfg := cadenceconfig.LoadConfig()

	// Connect to database
	dbConfig := database.DefaultConfig()
	dbConfig.URL = cfg.DatabaseURL
	db := database.MustConnect(dbConfig, logger)
	defer func() { _ = db.Close() }()

	// Setup monitoring
	healthChecker := monitoring.NewHealthChecker("cadence", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("cadence", version.Version, version.GitCommit)

	healthChecker.AddCheck("database", monitoring.DatabaseHealthCheck(db))
	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"DATABASE_URL": cfg.DatabaseURL,
		"LLM_PROVIDER": cfg.LLMProvider,
	}))

	var usagePublisher *metering.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := metering.NewPublisher(metering.PublisherConfig{
			Brokers:   cfg.KafkaBrokers,
			ClusterID: cfg.KafkaClusterID,
			Topic:     cfg.UsageKafkaTopic,
			Source:    "cadence",
			Logger:    logger,
		})
		if err != nil {
			logger.WithError(err).Warn("Failed to create usage Kafka publisher - usage events disabled")
		} else {
			usagePublisher = publisher
			defer func() { _ = usagePublisher.Close() }()
			healthChecker.AddCheck("kafka", monitoring.KafkaProducerHealthCheck(usagePublisher.GetProducer().GetClient()))
		}
	} else {
		logger.Warn("KAFKA_BROKERS not set - usage events disabled")
	}

	var enricher enrich.Provider
	if cfg.EnrichmentURL != "" {
		enricher = enrich.NewHTTPProvider(enrich.HTTPConfig{
			BaseURL: cfg.EnrichmentURL,
			APIKey:  cfg.EnrichmentAPIKey,
			Logger:  logger,
		})
		logger.WithField("url", cfg.EnrichmentURL).Info("Enrichment provider configured")
	} else {
		logger.Warn("ENRICHMENT_API_URL not set - requests must supply a full prospect profile")
	}

	llmProvider, err := llm.NewProvider(llm.Config{
		Provider:  cfg.LLMProvider,
		Model:     cfg.LLMModel,
		APIKey:    cfg.LLMAPIKey,
		APIURL:    cfg.LLMAPIURL,
		MaxTokens: cfg.LLMMaxTokens,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create LLM provider")
	}

	pipeline := generate.NewPipeline(generate.PipelineConfig{
		LLM:     llmProvider,
		Logger:  logger,
		Timeout: cfg.GenerateTimeout,
	})

	store := outreach.NewSequenceStore(db, logger)

	router := server.SetupServiceRouter(logger, "cadence", healthChecker, metricsCollector)

	handler := outreach.NewHandler(outreach.HandlerConfig{
		Generator: pipeline,
		Store:     store,
		Enricher:  enricher,
		Usage:     usagePublisher,
		Logger:    logger,
	})
	handler.RegisterRoutes(router)

	serverConfig := server.DefaultConfig("cadence", cfg.Port)
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}
}
