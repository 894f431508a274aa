package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/quiz-session-service/internal/cache"
	"github.com/SAP-F-2025/quiz-session-service/internal/config"
	"github.com/SAP-F-2025/quiz-session-service/internal/handlers"
	"github.com/SAP-F-2025/quiz-session-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-session-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/quiz-session-service/internal/services"
	"github.com/SAP-F-2025/quiz-session-service/internal/utils"
	"github.com/SAP-F-2025/quiz-session-service/internal/validator"
	"github.com/SAP-F-2025/quiz-session-service/pkg"
	"github.com/SAP-F-2025/quiz-session-service/pkg/monitoring"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	loggers := utils.NewLoggers(utils.LogOptions{
		Production: cfg.IsProduction(),
		File:       cfg.LogFile,
	})
	defer loggers.Close()

	logger := loggers.Logger
	slogger := utils.ToSlogLogger(logger)

	// Quiz documents
	var quizRepo repositories.QuizRepository
	if cfg.DatabaseURL != "" {
		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			logger.LogError(err, "Failed to initialize database")
			os.Exit(1)
		}
		quizRepo = postgres.NewQuizPostgreSQL(db)
	} else {
		logger.Warn("DATABASE_URL not set, stored quizzes are unavailable")
	}

	// Session store
	var cacheService cache.CacheService
	switch cfg.SessionStore {
	case "memory":
		logger.Info("Using in-memory session store")
		cacheService = cache.NewMemoryCache()
	default:
		client, err := pkg.NewRedisClient(cfg)
		if err != nil {
			logger.LogError(err, "Failed to initialize redis")
			os.Exit(1)
		}
		defer client.Close()
		cacheService = cache.NewRedisCache(client, loggers.Zap)
	}
	sessionStore := cache.NewSessionStore(cacheService, cfg.SessionTTL)

	// Events
	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		logger.LogError(err, "Failed to create event publisher")
		os.Exit(1)
	}
	defer publisher.Close()

	// Services
	sessionService := services.NewSessionService(
		sessionStore,
		quizRepo,
		validator.New(),
		publisher,
		slogger,
		services.SessionServiceConfig{StrictOptions: cfg.StrictOptions},
	)
	serviceManager := services.NewServiceManager(
		sessionService,
		services.NewExportService(sessionService, slogger),
	)

	// HTTP
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	monitoring.Init()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	limiter := handlers.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Cleanup(ctx)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handlers.RequestID())
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(utils.ContextLogger(logger))
	router.Use(handlers.CORS(cfg.CORSOrigins))
	router.Use(monitoring.MetricsMiddleware())
	router.Use(limiter.Middleware())

	handlers.NewHandlerManager(serviceManager, logger).SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "environment", cfg.Environment, "session_store", cfg.SessionStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.LogError(err, "Server failed")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.LogError(err, "Server forced to shutdown")
	}

	logger.Info("Server exiting")
}
