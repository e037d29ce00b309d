package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recruiterconnect-backend/config"
	_ "recruiterconnect-backend/docs" // Important for Swagger
	v1 "recruiterconnect-backend/internal/delivery/http/v1"
	"recruiterconnect-backend/internal/repository/postgres"
	"recruiterconnect-backend/internal/usecase"
	"recruiterconnect-backend/pkg/auth"
	"recruiterconnect-backend/pkg/database"
	"recruiterconnect-backend/pkg/logger"
	"recruiterconnect-backend/pkg/redis"
	"recruiterconnect-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           RecruiterConnect API
// @version         1.0
// @description     Backend for the RecruiterConnect job board using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting RecruiterConnect backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; the limiter falls back to memory
	// when this is absent)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		}
	}

	// 5. Setup Blob Storage
	var uploader storage.Uploader
	if cfg.S3Bucket != "" {
		s3Uploader, err := storage.NewS3Uploader(context.Background(), storage.S3Config{
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
		uploader = s3Uploader
	} else {
		logger.Log.Warn("Blob storage not configured, uploads are disabled")
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	applicantRepo := postgres.NewApplicantRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, applicantRepo, recruiterRepo, validate)
	onboardingUC := usecase.NewOnboardingUsecase(userRepo, applicantRepo, recruiterRepo)
	applicantUC := usecase.NewApplicantUsecase(applicantRepo, userRepo, uploader, validate)
	recruiterUC := usecase.NewRecruiterUsecase(recruiterRepo, userRepo, uploader, validate)
	jobUC := usecase.NewJobUsecase(jobRepo)

	// 8. Setup Session Tokens
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		OnboardingUC: onboardingUC,
		ApplicantUC:  applicantUC,
		RecruiterUC:  recruiterUC,
		JobUC:        jobUC,
		Tokens:       tokens,
		Config:       cfg,
	})

	// 10. Start Server
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
