package metering

import (
	"encoding/json"
	"fmt"
	"time"

	"cadence/pkg/kafka"
	"cadence/pkg/logging"
)

// UsageEvent summarizes one generation for downstream billing and
// analytics consumers.
type UsageEvent struct {
	ProspectID     string    `json:"prospect_id"`
	Source         string    `json:"source"`
	Outcome        string    `json:"outcome"`
	AlignmentScore float64   `json:"alignment_score"`
	IssueCount     int       `json:"issue_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type PublisherConfig struct {
	Brokers   []string
	ClusterID string
	Topic     string
	Source    string
	Logger    logging.Logger
}

type Publisher struct {
	producer *kafka.KafkaProducer
	topic    string
	source   string
	logger   logging.Logger
}

func NewPublisher(cfg PublisherConfig) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers required for usage publisher")
	}
	topic := cfg.Topic
	if topic == "" {
		topic = "cadence.usage_events"
	}
	source := cfg.Source
	if source == "" {
		source = "cadence"
	}
	clusterID := cfg.ClusterID
	if clusterID == "" {
		clusterID = "local"
	}
	producer, err := kafka.NewKafkaProducer(cfg.Brokers, clusterID, cfg.Logger)
	if err != nil {
		return nil, err
	}
	return &Publisher{
		producer: producer,
		topic:    topic,
		source:   source,
		logger:   cfg.Logger,
	}, nil
}

func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}

// PublishGeneration emits one usage event. Safe on a nil publisher so
// callers can treat usage reporting as optional.
func (p *Publisher) PublishGeneration(prospectID string, alignmentScore float64, issueCount int, outcome string) error {
	if p == nil || p.producer == nil {
		return nil
	}
	event := UsageEvent{
		ProspectID:     prospectID,
		Source:         p.source,
		Outcome:        outcome,
		AlignmentScore: alignmentScore,
		IssueCount:     issueCount,
		CreatedAt:      time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal usage event: %w", err)
	}
	err = p.producer.ProduceMessage(
		p.topic,
		[]byte(prospectID),
		payload,
		map[string]string{
			"source": p.source,
			"type":   "generation_usage",
		},
	)
	if err != nil {
		return err
	}
	if p.logger != nil {
		p.logger.WithFields(logging.Fields{
			"prospect_id": prospectID,
			"outcome":     outcome,
			"topic":       p.topic,
		}).Debug("Published generation usage event")
	}
	return nil
}

// GetProducer exposes the underlying producer for health checks.
func (p *Publisher) GetProducer() *kafka.KafkaProducer {
	if p == nil {
		return nil
	}
	return p.producer
}
