package metering

import (
	"testing"

	"cadence/pkg/logging"
)

func TestNewPublisher_RequiresBrokers(t *testing.T) {
	if _, err := NewPublisher(PublisherConfig{Logger: logging.NewLogger()}); err == nil {
		t.Fatal("expected error without brokers")
	}
}

func TestPublisher_NilSafe(t *testing.T) {
	var p *Publisher
	if err := p.PublishGeneration("p-1", 1.0, 0, "ok"); err != nil {
		t.Fatalf("nil publisher must be a no-op, got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("nil close must be a no-op, got %v", err)
	}
	if p.GetProducer() != nil {
		t.Fatal("nil publisher has no producer")
	}
}
