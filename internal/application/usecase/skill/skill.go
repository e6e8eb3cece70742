package skill

import (
	"context"

	"go.uber.org/zap"

	"github.com/prateek9389/prateekportfolio/adapters/event"
	"github.com/prateek9389/prateekportfolio/internal/application/service"
	"github.com/prateek9389/prateekportfolio/internal/domain/skill"
	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

type SkillUseCase struct {
	store  store.Store
	events service.ContentPublisher
	logger logger.Logger
}

func NewSkillUseCase(s store.Store, e service.ContentPublisher, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{store: s, events: e, logger: log}
}

type ListSkillsOutput struct {
	Skills []*skill.Skill
}

func (uc *SkillUseCase) ExecuteList(ctx context.Context) (*ListSkillsOutput, error) {
	docs, err := uc.store.ListCollection(ctx, store.CollectionSkills, store.Query{OrderBy: "category"})
	if err != nil {
		return nil, err
	}

	skills := make([]*skill.Skill, len(docs))
	for i, doc := range docs {
		skills[i] = skill.FromDocument(doc)
	}
	return &ListSkillsOutput{Skills: skills}, nil
}

type SaveSkillInput struct {
	// ID empty means create.
	ID       string
	Name     string
	Category string
	Level    int
}

type SaveSkillOutput struct {
	Skill *skill.Skill
}

// ExecuteSave coerces the category to the fixed set and clamps the level the
// way the editor slider does, then persists create-or-update by ID.
func (uc *SkillUseCase) ExecuteSave(ctx context.Context, input SaveSkillInput) (*SaveSkillOutput, error) {
	category, err := skill.CanonicalCategory(input.Category)
	if err != nil {
		return nil, apperror.NewInvalidInput("category must be one of the known set", err)
	}

	draft := &skill.Skill{
		ID:       input.ID,
		Name:     input.Name,
		Category: category,
		Level:    skill.DisplayLevel(input.Level),
	}
	if err := draft.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	id := input.ID
	eventType := event.ContentEventTypeUpdated
	if id == "" {
		id, err = uc.store.CreateDocument(ctx, store.CollectionSkills, draft.Fields())
		eventType = event.ContentEventTypeCreated
	} else {
		err = uc.store.UpdateDocument(ctx, store.CollectionSkills, id, draft.Fields())
	}
	if err != nil {
		return nil, err
	}

	doc, err := uc.store.GetDocument(ctx, store.CollectionSkills, id)
	if err != nil {
		return nil, apperror.NewLoadFailed("saved skill", err)
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  eventType,
			Collection: store.CollectionSkills,
			DocumentID: id,
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish skill event", err, zap.String("skill_id", id))
		}
	}()

	return &SaveSkillOutput{Skill: skill.FromDocument(*doc)}, nil
}

func (uc *SkillUseCase) ExecuteDelete(ctx context.Context, id string) error {
	if err := uc.store.DeleteDocument(ctx, store.CollectionSkills, id); err != nil {
		return err
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  event.ContentEventTypeDeleted,
			Collection: store.CollectionSkills,
			DocumentID: id,
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish skill event", err, zap.String("skill_id", id))
		}
	}()

	return nil
}
