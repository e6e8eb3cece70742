package message

import (
	"context"

	"go.uber.org/zap"

	"github.com/prateek9389/prateekportfolio/adapters/event"
	"github.com/prateek9389/prateekportfolio/internal/application/service"
	"github.com/prateek9389/prateekportfolio/internal/domain/message"
	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

// MessageUseCase covers the whole message lifecycle: anonymous submission
// from the contact form, then list / mark-read / delete from the console.
// Messages are never created or edited by the admin editor.
type MessageUseCase struct {
	store  store.Store
	events service.ContentPublisher
	logger logger.Logger
}

func NewMessageUseCase(s store.Store, e service.ContentPublisher, log logger.Logger) *MessageUseCase {
	return &MessageUseCase{store: s, events: e, logger: log}
}

type SubmitMessageInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type SubmitMessageOutput struct {
	ID string
}

func (uc *MessageUseCase) ExecuteSubmit(ctx context.Context, input SubmitMessageInput) (*SubmitMessageOutput, error) {
	draft := &message.Message{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := draft.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	id, err := uc.store.CreateDocument(ctx, store.CollectionMessages, draft.Fields())
	if err != nil {
		return nil, err
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  event.ContentEventTypeMessageReceived,
			Collection: store.CollectionMessages,
			DocumentID: id,
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish 'message.received' event", err, zap.String("message_id", id))
		}
	}()

	return &SubmitMessageOutput{ID: id}, nil
}

type ListMessagesOutput struct {
	Messages []*message.Message
}

func (uc *MessageUseCase) ExecuteList(ctx context.Context) (*ListMessagesOutput, error) {
	docs, err := uc.store.ListCollection(ctx, store.CollectionMessages, store.Query{
		OrderBy:    "createdAt",
		Descending: true,
	})
	if err != nil {
		return nil, err
	}

	messages := make([]*message.Message, len(docs))
	for i, doc := range docs {
		messages[i] = message.FromDocument(doc)
	}
	return &ListMessagesOutput{Messages: messages}, nil
}

// ExecuteMarkRead flips the read flag and nothing else. The console applies
// the flag optimistically, so a failed reconciling write is only logged here,
// never surfaced; an already-read message is a no-op. Applying it twice
// leaves the same persisted state as applying it once.
func (uc *MessageUseCase) ExecuteMarkRead(ctx context.Context, id string) error {
	doc, err := uc.store.GetDocument(ctx, store.CollectionMessages, id)
	if err != nil {
		return err
	}
	if message.FromDocument(*doc).Read {
		return nil
	}

	if err := uc.store.UpdateDocument(ctx, store.CollectionMessages, id, map[string]any{"read": true}); err != nil {
		uc.logger.Error("Failed to persist message read flag", err, zap.String("message_id", id))
	}
	return nil
}

func (uc *MessageUseCase) ExecuteDelete(ctx context.Context, id string) error {
	return uc.store.DeleteDocument(ctx, store.CollectionMessages, id)
}
