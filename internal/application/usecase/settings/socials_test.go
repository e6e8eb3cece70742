package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek9389/prateekportfolio/internal/domain/settings"
	"github.com/prateek9389/prateekportfolio/internal/store/storetest"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

func newSocialsUC() (*SocialsUseCase, *storetest.MemoryWatcher) {
	watcher := storetest.NewMemoryWatcher()
	uc := NewSocialsUseCase(storetest.NewMemoryStore(), watcher, watcher, &fakePublisher{}, logger.NewNop())
	return uc, watcher
}

func TestSocialsGet_MissingSingletonIsAllHidden(t *testing.T) {
	uc, _ := newSocialsUC()

	output, err := uc.ExecuteGet(context.Background())

	require.NoError(t, err)
	assert.Empty(t, output.Socials.VisibleLinks())
}

func TestSocialsUpdate_TogglePreservesURL(t *testing.T) {
	uc, _ := newSocialsUC()

	_, err := uc.ExecuteUpdate(context.Background(), UpdateSocialsInput{
		Draft: settings.SocialProfiles{Github: "https://github.com/x", IsGithubVisible: true},
	})
	require.NoError(t, err)

	output, err := uc.ExecuteUpdate(context.Background(), UpdateSocialsInput{
		Draft: settings.SocialProfiles{Github: "https://github.com/x", IsGithubVisible: false},
	})
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/x", output.Socials.Github)
	assert.False(t, output.Socials.IsGithubVisible)
	assert.Empty(t, output.Socials.VisibleLinks())
}

func TestSocialsUpdate_NotifiesWatchers(t *testing.T) {
	uc, _ := newSocialsUC()
	ctx := context.Background()

	updates, cancel, err := uc.ExecuteWatch(ctx)
	require.NoError(t, err)
	defer cancel()

	_, err = uc.ExecuteUpdate(ctx, UpdateSocialsInput{
		Draft: settings.SocialProfiles{Linkedin: "https://linkedin.com/in/x", IsLinkedinVisible: true},
	})
	require.NoError(t, err)

	select {
	case doc := <-updates:
		decoded := settings.SocialsFromDocument(doc)
		assert.Equal(t, "https://linkedin.com/in/x", decoded.Linkedin)
		assert.True(t, decoded.IsLinkedinVisible)
	case <-time.After(time.Second):
		t.Fatal("expected a watch event after the update")
	}
}

func TestSocialsWatch_CancelStopsDelivery(t *testing.T) {
	uc, _ := newSocialsUC()
	ctx := context.Background()

	updates, cancel, err := uc.ExecuteWatch(ctx)
	require.NoError(t, err)

	cancel()

	_, ok := <-updates
	assert.False(t, ok)
}
