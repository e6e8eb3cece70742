package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prateek9389/prateekportfolio/adapters/event"
	httpAdapter "github.com/prateek9389/prateekportfolio/adapters/http"
	"github.com/prateek9389/prateekportfolio/adapters/media_storage"
	"github.com/prateek9389/prateekportfolio/adapters/persistence"
	authUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/auth"
	experienceUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/experience"
	messageUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/message"
	projectUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/project"
	publicUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/public"
	settingsUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/settings"
	skillUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/skill"
	statsUC "github.com/prateek9389/prateekportfolio/internal/application/usecase/stats"
	"github.com/prateek9389/prateekportfolio/internal/config"
	"github.com/prateek9389/prateekportfolio/pkg/auth"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
	"github.com/prateek9389/prateekportfolio/pkg/tracing"
)

func main() {
	fmt.Println("Start Portfolio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Tracing is optional: no endpoint configured means no exporter.
	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
		if err != nil {
			appLogger.Fatal("Cannot init tracer provider", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Persistence
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	documentStore := persistence.NewPostgresDocumentStore(dbPool, appLogger)
	watcher := persistence.NewRedisWatcher(redisClient, appLogger)
	contentCache := persistence.NewContentCache(redisClient, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader := media_storage.NewCloudinaryAdapter(cfg, appLogger)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(documentStore, uploader, kafkaClient, appLogger)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(documentStore, uploader, kafkaClient, appLogger)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(documentStore, kafkaClient, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(documentStore)
	skillUseCase := skillUC.NewSkillUseCase(documentStore, kafkaClient, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(documentStore, kafkaClient, appLogger)
	messageUseCase := messageUC.NewMessageUseCase(documentStore, kafkaClient, appLogger)
	profileUseCase := settingsUC.NewProfileUseCase(documentStore, uploader, kafkaClient, appLogger)
	socialsUseCase := settingsUC.NewSocialsUseCase(documentStore, watcher, watcher, kafkaClient, appLogger)
	publicContentUseCase := publicUC.NewPublicContentUseCase(documentStore, contentCache, appLogger)
	overviewUseCase := statsUC.NewOverviewUseCase(documentStore)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	projectHandler := httpAdapter.NewProjectHandler(
		createProjectUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		listProjectsUseCase,
	)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase)
	experienceHandler := httpAdapter.NewExperienceHandler(experienceUseCase)
	messageHandler := httpAdapter.NewMessageHandler(messageUseCase)
	settingsHandler := httpAdapter.NewSettingsHandler(profileUseCase, socialsUseCase, overviewUseCase)
	publicHandler := httpAdapter.NewPublicHandler(publicContentUseCase, messageUseCase, socialsUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	// Setup Gin router
	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{

		admin := api.Group("/admin")
		{

			adminAuth := admin.Group("/auth")
			adminAuth.POST("/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{

				adminPrivate.GET("/auth/session", authHandler.Session)

				adminPrivate.GET("/overview", settingsHandler.Overview)

				adminPrivate.GET("/profile", settingsHandler.GetProfile)
				adminPrivate.PUT("/profile", settingsHandler.UpdateProfile)
				adminPrivate.GET("/socials", settingsHandler.GetSocials)
				adminPrivate.PUT("/socials", settingsHandler.UpdateSocials)

				projects := adminPrivate.Group("/projects")
				{
					projects.GET("", projectHandler.List)
					projects.POST("", projectHandler.Create)
					projects.PUT("/:id", projectHandler.Update)
					projects.DELETE("/:id", projectHandler.Delete)
				}

				skills := adminPrivate.Group("/skills")
				{
					skills.GET("", skillHandler.List)
					skills.POST("", skillHandler.Create)
					skills.PUT("/:id", skillHandler.Update)
					skills.DELETE("/:id", skillHandler.Delete)
				}

				experiences := adminPrivate.Group("/experiences")
				{
					experiences.GET("", experienceHandler.List)
					experiences.POST("", experienceHandler.Create)
					experiences.PUT("/:id", experienceHandler.Update)
					experiences.DELETE("/:id", experienceHandler.Delete)
				}

				messages := adminPrivate.Group("/messages")
				{
					messages.GET("", messageHandler.List)
					messages.PATCH("/:id/read", messageHandler.MarkRead)
					messages.DELETE("/:id", messageHandler.Delete)
				}
			}
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/profile", publicHandler.Profile)
			public.GET("/projects", publicHandler.Projects)
			public.GET("/skills", publicHandler.Skills)
			public.GET("/experiences", publicHandler.Experiences)
			public.GET("/socials", publicHandler.Socials)
			public.GET("/socials/watch", publicHandler.WatchSocials)
			public.POST("/contact", publicHandler.SubmitContact)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
