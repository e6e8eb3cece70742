package stats

import (
	"context"

	"github.com/prateek9389/prateekportfolio/internal/domain/message"
	"github.com/prateek9389/prateekportfolio/internal/store"
)

// OverviewUseCase backs the dashboard landing page: entity counts plus how
// many contact messages are still unread.
type OverviewUseCase struct {
	store store.Store
}

func NewOverviewUseCase(s store.Store) *OverviewUseCase {
	return &OverviewUseCase{store: s}
}

type OverviewOutput struct {
	Projects       int
	Skills         int
	Experiences    int
	Messages       int
	UnreadMessages int
}

func (uc *OverviewUseCase) Execute(ctx context.Context) (*OverviewOutput, error) {
	out := &OverviewOutput{}

	counts := []struct {
		collection string
		target     *int
	}{
		{store.CollectionProjects, &out.Projects},
		{store.CollectionSkills, &out.Skills},
		{store.CollectionExperiences, &out.Experiences},
		{store.CollectionMessages, &out.Messages},
	}
	for _, c := range counts {
		docs, err := uc.store.ListCollection(ctx, c.collection, store.Query{})
		if err != nil {
			return nil, err
		}
		*c.target = len(docs)

		if c.collection == store.CollectionMessages {
			for _, doc := range docs {
				if !message.FromDocument(doc).Read {
					out.UnreadMessages++
				}
			}
		}
	}
	return out, nil
}
