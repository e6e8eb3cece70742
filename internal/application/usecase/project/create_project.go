package project

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/prateek9389/prateekportfolio/adapters/event"
	"github.com/prateek9389/prateekportfolio/internal/application/service"
	"github.com/prateek9389/prateekportfolio/internal/domain/project"
	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

var tracer = otel.Tracer("project_usecase")

type CreateProjectUseCase struct {
	store    store.Store
	uploader service.Uploader
	events   service.ContentPublisher
	logger   logger.Logger
}

func NewCreateProjectUseCase(s store.Store, u service.Uploader, e service.ContentPublisher, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{store: s, uploader: u, events: e, logger: log}
}

type CreateProjectInput struct {
	Title       string
	Description string
	// TagsInput is the raw comma-separated editor value; parsing happens
	// here so every writer splits tags the same way.
	TagsInput string
	LiveURL   string
	GithubURL string
	Image     *service.StagedFile
}

type CreateProjectOutput struct {
	Project *project.Project
}

// Execute is one editor submit: upload the staged image if any, then persist
// the full draft as a single document write, then re-read the authoritative
// copy. An upload failure aborts before anything is persisted.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	ctx, span := tracer.Start(ctx, "CreateProject")
	defer span.End()

	draft := &project.Project{
		Title:       input.Title,
		Description: input.Description,
		Tags:        project.ParseTags(input.TagsInput),
		LiveURL:     input.LiveURL,
		GithubURL:   input.GithubURL,
	}
	if err := draft.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if input.Image != nil {
		url, err := uc.uploader.Upload(ctx, input.Image.Reader, input.Image.Filename, input.Image.MimeType, input.Image.Requested)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		draft.Image = url
	}

	id, err := uc.store.CreateDocument(ctx, store.CollectionProjects, draft.Fields())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	doc, err := uc.store.GetDocument(ctx, store.CollectionProjects, id)
	if err != nil {
		return nil, apperror.NewLoadFailed("created project", err)
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  event.ContentEventTypeCreated,
			Collection: store.CollectionProjects,
			DocumentID: id,
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish 'content.created' event", err, zap.String("project_id", id))
		}
	}()

	return &CreateProjectOutput{Project: project.FromDocument(*doc)}, nil
}
