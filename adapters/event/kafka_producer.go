package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/prateek9389/prateekportfolio/internal/config"
)

const TopicContentEvents = "content.events"

type ContentEventType string

const (
	ContentEventTypeCreated         ContentEventType = "content.created"
	ContentEventTypeUpdated         ContentEventType = "content.updated"
	ContentEventTypeDeleted         ContentEventType = "content.deleted"
	ContentEventTypeMessageReceived ContentEventType = "message.received"
)

// ContentEventPayload announces a successful store write. Consumers use it
// for cache invalidation and the unread-message counter; producers treat the
// publish as fire-and-forget.
type ContentEventPayload struct {
	EventType  ContentEventType `json:"event_type"`
	Collection string           `json:"collection"`
	DocumentID string           `json:"document_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producer successfully.")

	return &KafkaProducerClient{ContentEventsWriter: contentWriter}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, payload ContentEventPayload) error {
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal content event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%s:%s", payload.Collection, payload.DocumentID)),
		Value: value,
	}
	if err := c.ContentEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish content event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producer")
}
