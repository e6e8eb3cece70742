package project

import (
	"context"

	"go.uber.org/zap"

	"github.com/prateek9389/prateekportfolio/adapters/event"
	"github.com/prateek9389/prateekportfolio/internal/application/service"
	"github.com/prateek9389/prateekportfolio/internal/domain/project"
	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

type UpdateProjectUseCase struct {
	store    store.Store
	uploader service.Uploader
	events   service.ContentPublisher
	logger   logger.Logger
}

func NewUpdateProjectUseCase(s store.Store, u service.Uploader, e service.ContentPublisher, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{store: s, uploader: u, events: e, logger: log}
}

type UpdateProjectInput struct {
	ID          string
	Title       string
	Description string
	TagsInput   string
	// Image holds the previously persisted URL; it is kept unless a new
	// file is staged.
	Image     string
	LiveURL   string
	GithubURL string
	NewImage  *service.StagedFile
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	ctx, span := tracer.Start(ctx, "UpdateProject")
	defer span.End()

	draft := &project.Project{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Tags:        project.ParseTags(input.TagsInput),
		Image:       input.Image,
		LiveURL:     input.LiveURL,
		GithubURL:   input.GithubURL,
	}
	if err := draft.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if input.NewImage != nil {
		url, err := uc.uploader.Upload(ctx, input.NewImage.Reader, input.NewImage.Filename, input.NewImage.MimeType, input.NewImage.Requested)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		draft.Image = url
	}

	// The draft was seeded from the full entity, so this single write
	// carries the whole document; updated_at is stamped by the store.
	if err := uc.store.UpdateDocument(ctx, store.CollectionProjects, input.ID, draft.Fields()); err != nil {
		span.RecordError(err)
		return nil, err
	}

	doc, err := uc.store.GetDocument(ctx, store.CollectionProjects, input.ID)
	if err != nil {
		return nil, apperror.NewLoadFailed("updated project", err)
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  event.ContentEventTypeUpdated,
			Collection: store.CollectionProjects,
			DocumentID: input.ID,
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish 'content.updated' event", err, zap.String("project_id", input.ID))
		}
	}()

	return &UpdateProjectOutput{Project: project.FromDocument(*doc)}, nil
}
