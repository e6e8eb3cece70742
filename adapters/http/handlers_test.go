package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek9389/prateekportfolio/adapters/event"
	authUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/auth"
	experienceUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/experience"
	messageUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/message"
	projectUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/project"
	publicUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/public"
	settingsUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/settings"
	skillUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/skill"
	statsUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/stats"
	"github.com/prateek9389/prateekportfolio/internal/application/service"
	"github.com/prateek9389/prateekportfolio/internal/domain/settings"
	"github.com/prateek9389/prateekportfolio/internal/domain/user"
	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/internal/store/storetest"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
	"github.com/prateek9389/prateekportfolio/pkg/auth"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

type fakeUploader struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, filename, mimeType string, classification service.Classification) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
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

type fakeUserRepo struct {
	user user.User
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if email != r.user.Email {
		return nil, apperror.NewUnauthorized("user not found", nil)
	}
	u := r.user
	return &u, nil
}

type testEnv struct {
	router   *gin.Engine
	store    *storetest.MemoryStore
	watcher  *storetest.MemoryWatcher
	uploader *fakeUploader
	password string
	email    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	memStore := storetest.NewMemoryStore()
	watcher := storetest.NewMemoryWatcher()
	uploader := &fakeUploader{}
	publisher := &fakePublisher{}

	password := "handler_test_password"
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	owner := user.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: hash}

	jwtSvc := auth.NewJWTService("handler-test-secret", time.Hour)

	loginUseCase := authUC.NewLoginUseCase(&fakeUserRepo{user: owner}, jwtSvc, log)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(memStore, uploader, publisher, log)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(memStore, uploader, publisher, log)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(memStore, publisher, log)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(memStore)
	skillUseCase := skillUC.NewSkillUseCase(memStore, publisher, log)
	experienceUseCase := experienceUC.NewExperienceUseCase(memStore, publisher, log)
	messageUseCase := messageUC.NewMessageUseCase(memStore, publisher, log)
	profileUseCase := settingsUC.NewProfileUseCase(memStore, uploader, publisher, log)
	socialsUseCase := settingsUC.NewSocialsUseCase(memStore, watcher, watcher, publisher, log)
	publicContentUseCase := publicUC.NewPublicContentUseCase(memStore, nil, log)
	overviewUseCase := statsUC.NewOverviewUseCase(memStore)

	authHandler := NewAuthHandler(loginUseCase)
	projectHandler := NewProjectHandler(createProjectUseCase, updateProjectUseCase, deleteProjectUseCase, listProjectsUseCase)
	skillHandler := NewSkillHandler(skillUseCase)
	experienceHandler := NewExperienceHandler(experienceUseCase)
	messageHandler := NewMessageHandler(messageUseCase)
	settingsHandler := NewSettingsHandler(profileUseCase, socialsUseCase, overviewUseCase)
	publicHandler := NewPublicHandler(publicContentUseCase, messageUseCase, socialsUseCase)

	authMiddleware := AuthMiddleware(jwtSvc)

	router := gin.New()
	router.Use(ErrorMiddleware(log))

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				adminPrivate.GET("/auth/session", authHandler.Session)
				adminPrivate.GET("/overview", settingsHandler.Overview)
				adminPrivate.GET("/profile", settingsHandler.GetProfile)
				adminPrivate.PUT("/profile", settingsHandler.UpdateProfile)
				adminPrivate.GET("/socials", settingsHandler.GetSocials)
				adminPrivate.PUT("/socials", settingsHandler.UpdateSocials)
				adminPrivate.GET("/projects", projectHandler.List)
				adminPrivate.POST("/projects", projectHandler.Create)
				adminPrivate.PUT("/projects/:id", projectHandler.Update)
				adminPrivate.DELETE("/projects/:id", projectHandler.Delete)
				adminPrivate.POST("/skills", skillHandler.Create)
				adminPrivate.GET("/skills", skillHandler.List)
				adminPrivate.POST("/experiences", experienceHandler.Create)
				adminPrivate.GET("/messages", messageHandler.List)
				adminPrivate.PATCH("/messages/:id/read", messageHandler.MarkRead)
				adminPrivate.DELETE("/messages/:id", messageHandler.Delete)
			}
		}

		public := api.Group("/")
		{
			public.GET("/profile", publicHandler.Profile)
			public.GET("/projects", publicHandler.Projects)
			public.GET("/skills", publicHandler.Skills)
			public.GET("/experiences", publicHandler.Experiences)
			public.GET("/socials", publicHandler.Socials)
			public.GET("/socials/watch", publicHandler.WatchSocials)
			public.POST("/contact", publicHandler.SubmitContact)
		}
	}

	return &testEnv{
		router:   router,
		store:    memStore,
		watcher:  watcher,
		uploader: uploader,
		password: password,
		email:    owner.Email,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/api/admin/auth/login", "", gin.H{
		"email":    e.email,
		"password": e.password,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["access_token"])
	return resp["access_token"]
}

func TestLoginAndSession(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/admin/auth/login", "", gin.H{
		"email": env.email, "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	token := env.login(t)

	rr = env.do(t, http.MethodGet, "/api/admin/auth/session", token, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, http.MethodGet, "/api/admin/auth/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/admin/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = env.do(t, http.MethodGet, "/api/admin/messages", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestContactSubmitFlow(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/contact", "", gin.H{
		"name": "Visitor", "email": "v@example.com", "subject": "Hello", "message": "Hi there",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = env.do(t, http.MethodPost, "/api/contact", "", gin.H{"name": "Visitor"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	token := env.login(t)
	rr = env.do(t, http.MethodGet, "/api/admin/messages", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var messages []MessageDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.False(t, messages[0].Read)

	rr = env.do(t, http.MethodPatch, "/api/admin/messages/"+messages[0].ID+"/read", token, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, http.MethodDelete, "/api/admin/messages/"+messages[0].ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestProjectCreate_MultipartWithImage(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	data, _ := json.Marshal(ProjectRequest{Title: "Portfolio", Tags: "React, Firebase"})
	require.NoError(t, w.WriteField("data", string(data)))
	part, err := w.CreateFormFile("image", "cover.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var dto ProjectDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	assert.Equal(t, []string{"React", "Firebase"}, dto.Tags)
	assert.Equal(t, "https://cdn.test/cover.png", dto.Image)
	assert.Equal(t, []string{"cover.png"}, env.uploader.calls)
}

func TestProjectCreate_JSONWithoutImage(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rr := env.do(t, http.MethodPost, "/api/admin/projects", token,
		ProjectRequest{Title: "Portfolio", Tags: "Go"})

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Empty(t, env.uploader.calls)
}

func TestSkillValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rr := env.do(t, http.MethodPost, "/api/admin/skills", token,
		SkillRequest{Name: "Go", Category: "Gardening", Level: 90})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = env.do(t, http.MethodPost, "/api/admin/skills", token,
		SkillRequest{Name: "Go", Category: "backend", Level: 150})
	require.Equal(t, http.StatusCreated, rr.Code)

	var dto SkillDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	assert.Equal(t, "Backend", dto.Category)
	assert.Equal(t, 100, dto.Level)
}

func TestPublicSocials_OnlyVisibleLinks(t *testing.T) {
	env := newTestEnv(t)

	socials := settings.SocialProfiles{
		Github: "https://github.com/x", IsGithubVisible: true,
		Linkedin: "https://linkedin.com/in/x", IsLinkedinVisible: false,
	}
	require.NoError(t, env.store.SetDocument(context.Background(),
		store.CollectionSettings, store.SingletonSocials, socials.Fields()))

	rr := env.do(t, http.MethodGet, "/api/socials", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp publicSocialsDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Links, 1)
	assert.Equal(t, "github", resp.Links[0].Platform)
}

func TestPublicProfile_PlaceholderOnEmptyStore(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/profile", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "JOHN DOE")
}

// closeNotifyRecorder adds the CloseNotifier interface gin's Stream helper
// expects from the response writer.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyRecorder() *closeNotifyRecorder {
	return &closeNotifyRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (r *closeNotifyRecorder) CloseNotify() <-chan bool { return r.closed }

func TestWatchSocialsStream(t *testing.T) {
	env := newTestEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/socials/watch", nil).WithContext(ctx)
	rr := newCloseNotifyRecorder()

	go func() {
		time.Sleep(50 * time.Millisecond)
		doc := store.Document{
			ID: store.SingletonSocials,
			Fields: (&settings.SocialProfiles{
				Twitter: "https://twitter.com/x", IsTwitterVisible: true,
			}).Fields(),
		}
		_ = env.watcher.Notify(context.Background(), store.CollectionSettings, store.SingletonSocials, doc)
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	env.router.ServeHTTP(rr, req)

	body := rr.Body.String()
	assert.Contains(t, body, "event:socials")
	assert.Contains(t, body, "https://twitter.com/x")
}
