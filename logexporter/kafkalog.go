package logexporter

import (
	"context"
	"fmt"
	"time"

	"github.com/otelpartial/partialspan"
	"github.com/otelpartial/partialspan/kafka"
)

// KafkaConfig configures the Kafka-backed log exporter adapter, for
// collector topologies that ingest partial-span records off a Kafka topic
// rather than receiving OTLP directly.
type KafkaConfig struct {
	// Brokers is the Kafka broker address list. Required.
	Brokers []string

	// Topic is the topic partial-span records are published to. Required.
	Topic string
}

// kafkaMessage is the JSON shape published to Kafka; kafka.Client's default
// serializer encodes it as JSON, matching the wire body produced by
// envelope.JSONSerializer's use elsewhere in this record.
type kafkaMessage struct {
	Timestamp  time.Time         `json:"timestamp"`
	TraceID    string            `json:"trace_id"`
	SpanID     string            `json:"span_id"`
	Resource   map[string]string `json:"resource,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Body       string            `json:"body"`
}

// Kafka publishes each record as a JSON message keyed by trace id, via the
// kafka package's Client, as a partialspan.LogExporter.
type Kafka struct {
	client kafka.Client
}

// NewKafka constructs a Kafka-backed log exporter adapter.
func NewKafka(cfg KafkaConfig) (*Kafka, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("logexporter: KafkaConfig.Brokers must not be empty")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("logexporter: KafkaConfig.Topic must not be empty")
	}

	client, err := kafka.NewClient(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("logexporter: construct kafka client: %w", err)
	}
	return &Kafka{client: client}, nil
}

// NewKafkaWithClient wraps an already-constructed kafka.Client; useful for
// tests and for sharing one client across multiple exporter adapters.
func NewKafkaWithClient(client kafka.Client) *Kafka {
	return &Kafka{client: client}
}

func (k *Kafka) Export(ctx context.Context, records []partialspan.Record) error {
	for _, r := range records {
		msg := kafkaMessage{
			Timestamp:  r.Timestamp,
			TraceID:    r.TraceID.String(),
			SpanID:     r.SpanID.String(),
			Resource:   r.Resource,
			Attributes: r.Attributes,
			Body:       r.Body,
		}
		if err := k.client.Publish(ctx, r.TraceID.String(), msg); err != nil {
			return fmt.Errorf("logexporter: publish to kafka: %w", err)
		}
	}
	return nil
}

func (k *Kafka) Shutdown(_ context.Context, timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		k.client.GracefulShutdown()
		close(done)
	}()

	if timeout < 0 {
		<-done
		return true
	}
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

var _ partialspan.LogExporter = (*Kafka)(nil)
