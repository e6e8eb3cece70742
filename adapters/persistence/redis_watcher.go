package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

// RedisWatcher carries live document updates over Redis pub/sub. One channel
// per watched document; a subscriber joining late only sees writes made after
// it subscribed.
type RedisWatcher struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisWatcher(rdb *redis.Client, log logger.Logger) *RedisWatcher {
	return &RedisWatcher{rdb: rdb, logger: log}
}

func watchChannel(collection, id string) string {
	return fmt.Sprintf("watch:%s:%s", collection, id)
}

func (w *RedisWatcher) Watch(ctx context.Context, collection, id string) (<-chan store.Document, func(), error) {
	sub := w.rdb.Subscribe(ctx, watchChannel(collection, id))

	// Force the subscription onto the wire before returning, so a write
	// issued right after Watch returns is not missed.
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to %s/%s: %w", collection, id, err)
	}

	out := make(chan store.Document, 8)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var doc store.Document
			if err := json.Unmarshal([]byte(msg.Payload), &doc); err != nil {
				w.logger.Warn("Dropping malformed watch payload",
					zap.String("channel", msg.Channel), zap.Error(err))
				continue
			}
			select {
			case out <- doc:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() { sub.Close() }
	return out, cancel, nil
}

func (w *RedisWatcher) Notify(ctx context.Context, collection, id string, doc store.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal watch payload: %w", err)
	}
	if err := w.rdb.Publish(ctx, watchChannel(collection, id), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish watch event: %w", err)
	}
	return nil
}
