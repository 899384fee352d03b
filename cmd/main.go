package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/runwayhq/runway-backend/internal/audit"
	"github.com/runwayhq/runway-backend/internal/db"
	"github.com/runwayhq/runway-backend/internal/handlers"
	"github.com/runwayhq/runway-backend/internal/logger"
	"github.com/runwayhq/runway-backend/internal/middleware"
	"github.com/runwayhq/runway-backend/internal/observability"
	"github.com/runwayhq/runway-backend/internal/repos"
	"github.com/runwayhq/runway-backend/internal/server"
	"github.com/runwayhq/runway-backend/internal/services"
	"github.com/runwayhq/runway-backend/internal/utils"
	"github.com/runwayhq/runway-backend/internal/validation"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	// Tracing
	ctx := context.Background()
	shutdownOTel := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "runway-backend",
		Environment: utils.GetEnv("ENVIRONMENT", "development", log),
		Version:     utils.GetEnv("SERVICE_VERSION", "dev", log),
	})
	if shutdownOTel != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOTel(shutdownCtx)
		}()
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	orgRepo := repos.NewOrganizationRepo(thePG, log)
	eventRepo := repos.NewEventRepo(thePG, log)
	phaseRepo := repos.NewEventPhaseRepo(thePG, log)
	taskRepo := repos.NewTaskRepo(thePG, log)
	taskDependencyRepo := repos.NewTaskDependencyRepo(thePG, log)
	auditLogRepo := repos.NewAuditLogRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	alertSink := audit.NewLogAlertSink(log)
	auditService := audit.NewService(log, auditLogRepo, alertSink)

	openaiClient, err := services.NewOpenAIClient(log)
	if err != nil {
		log.Error("Could not init OpenAIClient", "error", err)
		os.Exit(1)
	}

	var draftStore services.DraftStore
	draftStore, err = services.NewRedisDraftStore(log)
	if err != nil {
		log.Warn("Redis unavailable, drafts held in process memory", "error", err)
		draftStore = services.NewMemoryDraftStore()
	}

	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, orgRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	eventService := services.NewEventService(thePG, log, eventRepo, phaseRepo, auditService)
	draftService := services.NewDraftService(log, draftStore)
	plannerService := services.NewPlannerService(thePG, log, eventRepo, phaseRepo, taskRepo, taskDependencyRepo, auditService, openaiClient)

	rateLimiter := validation.NewRateLimiter(validation.NewMemoryCounterStore())

	// Handlers
	log.Info("Setting up handlers from main...")
	healthcheckHandler := handlers.NewHealthcheckHandler()
	authHandler := handlers.NewAuthHandler(authService)
	eventHandler := handlers.NewEventHandler(eventService)
	draftHandler := handlers.NewDraftHandler(draftService)
	agentHandler := handlers.NewAgentHandler(plannerService, rateLimiter)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:                log,
		AuthMiddleware:     authMiddleware,
		HealthcheckHandler: healthcheckHandler,
		AuthHandler:        authHandler,
		EventHandler:       eventHandler,
		DraftHandler:       draftHandler,
		AgentHandler:       agentHandler,
		AllowOrigins:       splitOrigins(utils.GetEnv("CORS_ALLOW_ORIGINS", "", log)),
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}

func splitOrigins(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
