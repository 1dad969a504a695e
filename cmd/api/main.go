package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"jobportal-backend/config"
	v1 "jobportal-backend/internal/delivery/http/v1"
	"jobportal-backend/internal/repository/postgres"
	"jobportal-backend/internal/usecase"
	"jobportal-backend/pkg/database"
	"jobportal-backend/pkg/logger"
	"jobportal-backend/pkg/redis"
	"jobportal-backend/pkg/storage"
	"jobportal-backend/pkg/token"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when absent)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
	}

	// 5. Setup Blob Storage
	blobs, err := storage.NewS3Storage(context.Background(), storage.Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
		PublicBaseURL:   cfg.S3PublicBaseURL,
	})
	if err != nil {
		logger.Log.Error("Failed to configure blob storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	dictionaryRepo := postgres.NewDictionaryRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	connectionRepo := postgres.NewConnectionRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	tokens := token.NewManager(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTokenMinutes)*time.Minute,
		time.Duration(cfg.RefreshTokenHours)*time.Hour,
	)
	authUC := usecase.NewAuthUsecase(accountRepo, tokens, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, accountRepo, applicationRepo, dictionaryRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, accountRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, accountRepo, notificationRepo)
	networkUC := usecase.NewNetworkUsecase(connectionRepo, messageRepo, accountRepo)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		ProfileUC:      profileUC,
		JobUC:          jobUC,
		ApplicationUC:  applicationUC,
		NetworkUC:      networkUC,
		NotificationUC: notificationUC,
		Blobs:          blobs,
		Tokens:         tokens,
		Config:         cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
