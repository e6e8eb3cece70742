package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/prateek9389/prateekportfolio/adapters/event"
	"github.com/prateek9389/prateekportfolio/adapters/persistence"
	"github.com/prateek9389/prateekportfolio/internal/config"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

// The worker tails content events and keeps the public cache honest: any
// write invalidates the cached payload for its collection. Received contact
// messages are surfaced in the log until a notification channel exists.
func main() {
	fmt.Println("Starting Portfolio Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	contentCache := persistence.NewContentCache(redisClient, appLogger)

	// Kafka Consumer
	contentConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "content-cache-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer contentConsumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicContentEvents))

	ctx := context.Background()
	for {
		msg, err := contentConsumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.ContentEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("Failed to unmarshal event, skipping", err,
				zap.String("key", string(msg.Key)))
			commitMessage(contentConsumer, appLogger, msg)
			continue
		}

		appLogger.Info("Processing event",
			zap.String("event_type", string(payload.EventType)),
			zap.String("collection", payload.Collection),
			zap.String("document_id", payload.DocumentID))

		if payload.EventType == event.ContentEventTypeMessageReceived {
			appLogger.Info("New contact message received",
				zap.String("message_id", payload.DocumentID))
		}

		contentCache.Invalidate(ctx, persistence.PublicCacheKey(payload.Collection))

		commitMessage(contentConsumer, appLogger, msg)
	}
}

func commitMessage(consumer *kafka.Reader, log logger.Logger, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
