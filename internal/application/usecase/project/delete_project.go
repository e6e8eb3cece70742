package project

import (
	"context"

	"go.uber.org/zap"

	"github.com/prateek9389/prateekportfolio/adapters/event"
	"github.com/prateek9389/prateekportfolio/internal/application/service"
	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

type DeleteProjectUseCase struct {
	store  store.Store
	events service.ContentPublisher
	logger logger.Logger
}

func NewDeleteProjectUseCase(s store.Store, e service.ContentPublisher, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{store: s, events: e, logger: log}
}

type DeleteProjectInput struct {
	ID string
}

// Execute deletes by id. Confirmation happens in the console before the
// request is ever sent; on failure the entity stays listed.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if err := uc.store.DeleteDocument(ctx, store.CollectionProjects, input.ID); err != nil {
		return err
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  event.ContentEventTypeDeleted,
			Collection: store.CollectionProjects,
			DocumentID: input.ID,
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish 'content.deleted' event", err, zap.String("project_id", input.ID))
		}
	}()

	return nil
}
