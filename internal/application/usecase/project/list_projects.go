package project

import (
	"context"

	"github.com/prateek9389/prateekportfolio/internal/domain/project"
	"github.com/prateek9389/prateekportfolio/internal/store"
)

type ListProjectsUseCase struct {
	store store.Store
}

func NewListProjectsUseCase(s store.Store) *ListProjectsUseCase {
	return &ListProjectsUseCase{store: s}
}

type ListProjectsOutput struct {
	Projects []*project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	docs, err := uc.store.ListCollection(ctx, store.CollectionProjects, store.Query{
		OrderBy:    "createdAt",
		Descending: true,
	})
	if err != nil {
		return nil, err
	}

	projects := make([]*project.Project, len(docs))
	for i, doc := range docs {
		projects[i] = project.FromDocument(doc)
	}
	return &ListProjectsOutput{Projects: projects}, nil
}
