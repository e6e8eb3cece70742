package experience

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek9389/prateekportfolio/adapters/event"
	"github.com/prateek9389/prateekportfolio/internal/store/storetest"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

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

func newUC() *ExperienceUseCase {
	return NewExperienceUseCase(storetest.NewMemoryStore(), &fakePublisher{}, logger.NewNop())
}

func TestSave_CreateThenUpdate(t *testing.T) {
	uc := newUC()
	ctx := context.Background()

	created, err := uc.ExecuteSave(ctx, SaveExperienceInput{
		Company: "Acme", Role: "Engineer", IsCurrent: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.Experience.ID)

	updated, err := uc.ExecuteSave(ctx, SaveExperienceInput{
		ID: created.Experience.ID, Company: "Acme", Role: "Senior Engineer", IsCurrent: false,
	})
	require.NoError(t, err)

	assert.Equal(t, created.Experience.ID, updated.Experience.ID)
	assert.Equal(t, "Senior Engineer", updated.Experience.Role)
	assert.False(t, updated.Experience.IsCurrent)
	assert.Equal(t, created.Experience.CreatedAt, updated.Experience.CreatedAt)

	listed, err := uc.ExecuteList(ctx)
	require.NoError(t, err)
	assert.Len(t, listed.Experiences, 1)
}

func TestSave_RequiresCompanyAndRole(t *testing.T) {
	uc := newUC()

	_, err := uc.ExecuteSave(context.Background(), SaveExperienceInput{Company: "Acme"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = uc.ExecuteSave(context.Background(), SaveExperienceInput{Role: "Engineer"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestSave_UpdateMissing(t *testing.T) {
	uc := newUC()

	_, err := uc.ExecuteSave(context.Background(), SaveExperienceInput{
		ID: "missing", Company: "Acme", Role: "Engineer",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDelete(t *testing.T) {
	uc := newUC()
	ctx := context.Background()

	created, err := uc.ExecuteSave(ctx, SaveExperienceInput{Company: "Acme", Role: "Engineer"})
	require.NoError(t, err)

	require.NoError(t, uc.ExecuteDelete(ctx, created.Experience.ID))
	assert.ErrorIs(t, uc.ExecuteDelete(ctx, created.Experience.ID), apperror.ErrNotFound)
}
