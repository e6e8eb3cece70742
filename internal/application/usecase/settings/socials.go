package settings

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/prateek9389/prateekportfolio/adapters/event"
	"github.com/prateek9389/prateekportfolio/internal/application/service"
	"github.com/prateek9389/prateekportfolio/internal/domain/settings"
	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

type SocialsUseCase struct {
	store   store.Store
	watcher store.Watcher
	notify  store.Notifier
	events  service.ContentPublisher
	logger  logger.Logger
}

func NewSocialsUseCase(s store.Store, w store.Watcher, n store.Notifier, e service.ContentPublisher, log logger.Logger) *SocialsUseCase {
	return &SocialsUseCase{store: s, watcher: w, notify: n, events: e, logger: log}
}

type GetSocialsOutput struct {
	Socials *settings.SocialProfiles
}

func (uc *SocialsUseCase) ExecuteGet(ctx context.Context) (*GetSocialsOutput, error) {
	doc, err := uc.store.GetDocument(ctx, store.CollectionSettings, store.SingletonSocials)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return &GetSocialsOutput{Socials: &settings.SocialProfiles{}}, nil
		}
		return nil, apperror.NewLoadFailed("social profiles", err)
	}
	return &GetSocialsOutput{Socials: settings.SocialsFromDocument(*doc)}, nil
}

type UpdateSocialsInput struct {
	Draft settings.SocialProfiles
}

type UpdateSocialsOutput struct {
	Socials *settings.SocialProfiles
}

// ExecuteUpdate persists URLs and visibility toggles together as one
// singleton write, then notifies live watchers so the public page reflects
// visibility changes without a reload. A failed notification only costs the
// live update, so it is logged and not surfaced.
func (uc *SocialsUseCase) ExecuteUpdate(ctx context.Context, input UpdateSocialsInput) (*UpdateSocialsOutput, error) {
	if err := uc.store.SetDocument(ctx, store.CollectionSettings, store.SingletonSocials, input.Draft.Fields()); err != nil {
		return nil, err
	}

	doc, err := uc.store.GetDocument(ctx, store.CollectionSettings, store.SingletonSocials)
	if err != nil {
		return nil, apperror.NewLoadFailed("social profiles", err)
	}

	if err := uc.notify.Notify(ctx, store.CollectionSettings, store.SingletonSocials, *doc); err != nil {
		uc.logger.Error("Failed to notify socials watchers", err)
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  event.ContentEventTypeUpdated,
			Collection: store.CollectionSettings,
			DocumentID: store.SingletonSocials,
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish socials update event", err, zap.String("singleton", store.SingletonSocials))
		}
	}()

	return &UpdateSocialsOutput{Socials: settings.SocialsFromDocument(*doc)}, nil
}

// ExecuteWatch opens the live subscription used by the public page. Each
// delivered document is the whole socials singleton after a write.
func (uc *SocialsUseCase) ExecuteWatch(ctx context.Context) (<-chan store.Document, func(), error) {
	return uc.watcher.Watch(ctx, store.CollectionSettings, store.SingletonSocials)
}
