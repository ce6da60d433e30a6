package config

import (
	"strings"
	"time"

	"cadence/pkg/config"
)

// Config stores environment configuration for the cadence service.
type Config struct {
	Port             string
	DatabaseURL      string
	LLMProvider      string
	LLMModel         string
	LLMAPIKey        string
	LLMAPIURL        string
	LLMMaxTokens     int
	GenerateTimeout  time.Duration
	EnrichmentURL    string
	EnrichmentAPIKey string
	KafkaBrokers     []string
	KafkaClusterID   string
	UsageKafkaTopic  string
}

// LoadConfig loads the cadence configuration from environment
// variables. DATABASE_URL is the only hard requirement.
func LoadConfig() Config {
	brokersEnv := strings.TrimSpace(config.GetEnv("KAFKA_BROKERS", ""))
	var brokers []string
	if brokersEnv != "" {
		for _, broker := range strings.Split(brokersEnv, ",") {
			broker = strings.TrimSpace(broker)
			if broker != "" {
				brokers = append(brokers, broker)
			}
		}
	}
	return Config{
		Port:             config.GetEnv("PORT", "18040"),
		DatabaseURL:      config.RequireEnv("DATABASE_URL"),
		LLMProvider:      config.GetEnv("LLM_PROVIDER", "openai"),
		LLMModel:         config.GetEnv("LLM_MODEL", ""),
		LLMAPIKey:        config.GetEnv("LLM_API_KEY", ""),
		LLMAPIURL:        config.GetEnv("LLM_API_URL", ""),
		LLMMaxTokens:     config.GetEnvInt("LLM_MAX_TOKENS", 4096),
		GenerateTimeout:  parseDuration(config.GetEnv("GENERATE_TIMEOUT", "60s"), 60*time.Second),
		EnrichmentURL:    config.GetEnv("ENRICHMENT_API_URL", ""),
		EnrichmentAPIKey: config.GetEnv("ENRICHMENT_API_KEY", ""),
		KafkaBrokers:     brokers,
		KafkaClusterID:   config.GetEnv("KAFKA_CLUSTER_ID", "local"),
		UsageKafkaTopic:  config.GetEnv("USAGE_KAFKA_TOPIC", "cadence.usage_events"),
	}
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
