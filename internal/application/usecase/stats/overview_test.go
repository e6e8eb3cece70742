package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek9389/prateekportfolio/internal/domain/message"
	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/internal/store/storetest"
)

func TestOverview(t *testing.T) {
	memStore := storetest.NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := memStore.CreateDocument(ctx, store.CollectionProjects, map[string]any{"title": "p"})
		require.NoError(t, err)
	}
	_, err := memStore.CreateDocument(ctx, store.CollectionSkills, map[string]any{"name": "Go"})
	require.NoError(t, err)

	unread := (&message.Message{Name: "a", Email: "a@b.c", Subject: "s", Message: "m"}).Fields()
	_, err = memStore.CreateDocument(ctx, store.CollectionMessages, unread)
	require.NoError(t, err)

	readID, err := memStore.CreateDocument(ctx, store.CollectionMessages, unread)
	require.NoError(t, err)
	require.NoError(t, memStore.UpdateDocument(ctx, store.CollectionMessages, readID, map[string]any{"read": true}))

	output, err := NewOverviewUseCase(memStore).Execute(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, output.Projects)
	assert.Equal(t, 1, output.Skills)
	assert.Equal(t, 0, output.Experiences)
	assert.Equal(t, 2, output.Messages)
	assert.Equal(t, 1, output.UnreadMessages)
}
