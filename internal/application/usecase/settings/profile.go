package settings

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/prateek9389/prateekportfolio/adapters/event"
	"github.com/prateek9389/prateekportfolio/internal/application/service"
	"github.com/prateek9389/prateekportfolio/internal/domain/settings"
	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

var tracer = otel.Tracer("settings_usecase")

type ProfileUseCase struct {
	store    store.Store
	uploader service.Uploader
	events   service.ContentPublisher
	logger   logger.Logger
}

func NewProfileUseCase(s store.Store, u service.Uploader, e service.ContentPublisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{store: s, uploader: u, events: e, logger: log}
}

type GetProfileOutput struct {
	Profile *settings.Profile
}

// ExecuteGet loads the profile singleton. A missing document is an empty
// form for the editor, not an error.
func (uc *ProfileUseCase) ExecuteGet(ctx context.Context) (*GetProfileOutput, error) {
	doc, err := uc.store.GetDocument(ctx, store.CollectionSettings, store.SingletonProfile)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return &GetProfileOutput{Profile: &settings.Profile{}}, nil
		}
		return nil, apperror.NewLoadFailed("profile settings", err)
	}
	return &GetProfileOutput{Profile: settings.ProfileFromDocument(*doc)}, nil
}

type UpdateProfileInput struct {
	Draft settings.Profile

	// Three independent media slots. A nil slot keeps the URL already in
	// the draft; the resume slot is always a raw upload.
	Image       *service.StagedFile
	Resume      *service.StagedFile
	ResumeImage *service.StagedFile
}

type UpdateProfileOutput struct {
	Profile *settings.Profile
}

// ExecuteUpdate is the profile submit: every staged slot is uploaded first,
// and any upload failure aborts the whole submit with nothing persisted. Only
// when all slots have URLs is the singleton overwritten in one write.
func (uc *ProfileUseCase) ExecuteUpdate(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "UpdateProfile")
	defer span.End()

	draft := input.Draft

	if input.Image != nil {
		url, err := uc.uploader.Upload(ctx, input.Image.Reader, input.Image.Filename, input.Image.MimeType, input.Image.Requested)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		draft.ProfileImage = url
	}

	if input.Resume != nil {
		url, err := uc.uploader.Upload(ctx, input.Resume.Reader, input.Resume.Filename, input.Resume.MimeType, service.ClassificationRaw)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		draft.ResumeURL = url
	}

	if input.ResumeImage != nil {
		url, err := uc.uploader.Upload(ctx, input.ResumeImage.Reader, input.ResumeImage.Filename, input.ResumeImage.MimeType, input.ResumeImage.Requested)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		draft.ResumeImageURL = url
	}

	if err := uc.store.SetDocument(ctx, store.CollectionSettings, store.SingletonProfile, draft.Fields()); err != nil {
		span.RecordError(err)
		return nil, err
	}

	doc, err := uc.store.GetDocument(ctx, store.CollectionSettings, store.SingletonProfile)
	if err != nil {
		return nil, apperror.NewLoadFailed("profile settings", err)
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  event.ContentEventTypeUpdated,
			Collection: store.CollectionSettings,
			DocumentID: store.SingletonProfile,
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish profile update event", err, zap.String("singleton", store.SingletonProfile))
		}
	}()

	return &UpdateProfileOutput{Profile: settings.ProfileFromDocument(*doc)}, nil
}
