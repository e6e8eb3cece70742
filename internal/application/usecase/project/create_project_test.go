package project

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek9389/prateekportfolio/adapters/event"
	"github.com/prateek9389/prateekportfolio/internal/application/service"
	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/internal/store/storetest"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

type fakeUploader struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, filename, mimeType string, classification service.Classification) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.calls = append(f.calls, filename)
	return "https://cdn.test/" + filename, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []event.ContentEventPayload
}

func (f *fakePublisher) PublishContentEvent(ctx context.Context, payload event.ContentEventPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, payload)
	return nil
}

func TestCreateProject_Submit(t *testing.T) {
	memStore := storetest.NewMemoryStore()
	uploader := &fakeUploader{}
	uc := NewCreateProjectUseCase(memStore, uploader, &fakePublisher{}, logger.NewNop())

	output, err := uc.Execute(context.Background(), CreateProjectInput{
		Title:       "Portfolio",
		Description: "My site",
		TagsInput:   "React, , Firebase,",
		Image: &service.StagedFile{
			Reader:   strings.NewReader("png-bytes"),
			Filename: "cover.png",
			MimeType: "image/png",
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.Project.ID)
	assert.Equal(t, []string{"React", "Firebase"}, output.Project.Tags)
	assert.Equal(t, "https://cdn.test/cover.png", output.Project.Image)
	assert.Equal(t, output.Project.CreatedAt, output.Project.UpdatedAt)
	assert.Equal(t, []string{"cover.png"}, uploader.calls)
}

func TestCreateProject_UploadFailureAbortsWrite(t *testing.T) {
	memStore := storetest.NewMemoryStore()
	uploader := &fakeUploader{err: apperror.NewUploadFailed("cloudinary unreachable", errors.New("dial tcp"))}
	uc := NewCreateProjectUseCase(memStore, uploader, &fakePublisher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateProjectInput{
		Title: "Portfolio",
		Image: &service.StagedFile{Reader: strings.NewReader("x"), Filename: "cover.png"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUpload)

	docs, listErr := memStore.ListCollection(context.Background(), store.CollectionProjects, store.Query{})
	require.NoError(t, listErr)
	assert.Empty(t, docs)
}

func TestCreateProject_TitleRequired(t *testing.T) {
	uc := NewCreateProjectUseCase(storetest.NewMemoryStore(), &fakeUploader{}, &fakePublisher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateProjectInput{Title: "   "})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdateProject_KeepsImageWithoutNewFile(t *testing.T) {
	memStore := storetest.NewMemoryStore()
	uploader := &fakeUploader{}
	createUC := NewCreateProjectUseCase(memStore, uploader, &fakePublisher{}, logger.NewNop())
	updateUC := NewUpdateProjectUseCase(memStore, uploader, &fakePublisher{}, logger.NewNop())

	created, err := createUC.Execute(context.Background(), CreateProjectInput{
		Title: "Portfolio",
		Image: &service.StagedFile{Reader: strings.NewReader("x"), Filename: "cover.png"},
	})
	require.NoError(t, err)

	updated, err := updateUC.Execute(context.Background(), UpdateProjectInput{
		ID:        created.Project.ID,
		Title:     "Portfolio v2",
		TagsInput: "Go",
		Image:     created.Project.Image,
	})

	require.NoError(t, err)
	assert.Equal(t, "Portfolio v2", updated.Project.Title)
	assert.Equal(t, created.Project.Image, updated.Project.Image)
	assert.Equal(t, created.Project.CreatedAt, updated.Project.CreatedAt)
	assert.True(t, updated.Project.UpdatedAt.After(updated.Project.CreatedAt))
	// Only the create uploaded anything.
	assert.Len(t, uploader.calls, 1)
}

func TestUpdateProject_NotFound(t *testing.T) {
	uc := NewUpdateProjectUseCase(storetest.NewMemoryStore(), &fakeUploader{}, &fakePublisher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), UpdateProjectInput{ID: "missing", Title: "X"})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteProject(t *testing.T) {
	memStore := storetest.NewMemoryStore()
	createUC := NewCreateProjectUseCase(memStore, &fakeUploader{}, &fakePublisher{}, logger.NewNop())
	deleteUC := NewDeleteProjectUseCase(memStore, &fakePublisher{}, logger.NewNop())
	listUC := NewListProjectsUseCase(memStore)

	created, err := createUC.Execute(context.Background(), CreateProjectInput{Title: "Portfolio"})
	require.NoError(t, err)

	require.NoError(t, deleteUC.Execute(context.Background(), DeleteProjectInput{ID: created.Project.ID}))

	listed, err := listUC.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed.Projects)

	assert.ErrorIs(t,
		deleteUC.Execute(context.Background(), DeleteProjectInput{ID: created.Project.ID}),
		apperror.ErrNotFound)
}

func TestListProjects_NewestFirst(t *testing.T) {
	memStore := storetest.NewMemoryStore()
	createUC := NewCreateProjectUseCase(memStore, &fakeUploader{}, &fakePublisher{}, logger.NewNop())
	listUC := NewListProjectsUseCase(memStore)

	_, err := createUC.Execute(context.Background(), CreateProjectInput{Title: "First"})
	require.NoError(t, err)
	_, err = createUC.Execute(context.Background(), CreateProjectInput{Title: "Second"})
	require.NoError(t, err)

	listed, err := listUC.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, listed.Projects, 2)
	assert.Equal(t, "Second", listed.Projects[0].Title)
	assert.Equal(t, "First", listed.Projects[1].Title)
}
