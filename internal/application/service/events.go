package service

import (
	"context"

	"github.com/prateek9389/prateekportfolio/adapters/event"
)

// ContentPublisher decouples the editor flows from the concrete Kafka
// client. Publishes are fire-and-forget: a failed publish is logged by the
// caller and never fails the request.
type ContentPublisher interface {
	PublishContentEvent(ctx context.Context, payload event.ContentEventPayload) error
}
