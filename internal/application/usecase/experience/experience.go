package experience

import (
	"context"

	"go.uber.org/zap"

	"github.com/prateek9389/prateekportfolio/adapters/event"
	"github.com/prateek9389/prateekportfolio/internal/application/service"
	"github.com/prateek9389/prateekportfolio/internal/domain/experience"
	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

type ExperienceUseCase struct {
	store  store.Store
	events service.ContentPublisher
	logger logger.Logger
}

func NewExperienceUseCase(s store.Store, e service.ContentPublisher, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{store: s, events: e, logger: log}
}

type ListExperiencesOutput struct {
	Experiences []*experience.Experience
}

func (uc *ExperienceUseCase) ExecuteList(ctx context.Context) (*ListExperiencesOutput, error) {
	docs, err := uc.store.ListCollection(ctx, store.CollectionExperiences, store.Query{
		OrderBy:    "createdAt",
		Descending: true,
	})
	if err != nil {
		return nil, err
	}

	experiences := make([]*experience.Experience, len(docs))
	for i, doc := range docs {
		experiences[i] = experience.FromDocument(doc)
	}
	return &ListExperiencesOutput{Experiences: experiences}, nil
}

type SaveExperienceInput struct {
	// ID empty means create.
	ID          string
	Company     string
	Role        string
	Location    string
	Duration    string
	Description string
	IsCurrent   bool
	Website     string
}

type SaveExperienceOutput struct {
	Experience *experience.Experience
}

func (uc *ExperienceUseCase) ExecuteSave(ctx context.Context, input SaveExperienceInput) (*SaveExperienceOutput, error) {
	draft := &experience.Experience{
		ID:          input.ID,
		Company:     input.Company,
		Role:        input.Role,
		Location:    input.Location,
		Duration:    input.Duration,
		Description: input.Description,
		IsCurrent:   input.IsCurrent,
		Website:     input.Website,
	}
	if err := draft.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	var err error
	id := input.ID
	eventType := event.ContentEventTypeUpdated
	if id == "" {
		id, err = uc.store.CreateDocument(ctx, store.CollectionExperiences, draft.Fields())
		eventType = event.ContentEventTypeCreated
	} else {
		err = uc.store.UpdateDocument(ctx, store.CollectionExperiences, id, draft.Fields())
	}
	if err != nil {
		return nil, err
	}

	doc, err := uc.store.GetDocument(ctx, store.CollectionExperiences, id)
	if err != nil {
		return nil, apperror.NewLoadFailed("saved experience", err)
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  eventType,
			Collection: store.CollectionExperiences,
			DocumentID: id,
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish experience event", err, zap.String("experience_id", id))
		}
	}()

	return &SaveExperienceOutput{Experience: experience.FromDocument(*doc)}, nil
}

func (uc *ExperienceUseCase) ExecuteDelete(ctx context.Context, id string) error {
	if err := uc.store.DeleteDocument(ctx, store.CollectionExperiences, id); err != nil {
		return err
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  event.ContentEventTypeDeleted,
			Collection: store.CollectionExperiences,
			DocumentID: id,
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish experience event", err, zap.String("experience_id", id))
		}
	}()

	return nil
}
