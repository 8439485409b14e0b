package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/token"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Job Board Backend API
// @version         1.0
// @description     Backend for a job board with email activation, two-factor login, and role-based access.
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

	// 2. Setup Loggers
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)
	secLog := security.InitSecurityLogger("jobboard-backend", cfg.AppEnv)
	defer secLog.Sync()

	// 3. Register custom validators on gin's binding validator
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 4. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.SecurityLogToDB {
		secEventRepo := security.NewSecurityEventRepository(dbPool)
		secLog.SetPersistFunc(secEventRepo.PersistEvent)
	}

	// 5. Setup Redis (rate limiting; in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	jobSeekerRepo := postgres.NewJobSeekerRepository(dbPool)
	documentRepo := postgres.NewDocumentRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)

	// 7. Setup Services
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - activation and 2FA emails will not be sent")
	}
	tokens := token.NewIssuer(token.Config{
		Secret:           cfg.JWTSecret,
		SessionTTL:       cfg.SessionTokenTTL,
		ActivationTTL:    cfg.ActivationTTL,
		PasswordResetTTL: cfg.PasswordResetTTL,
	})
	hasher := security.NewHasher(cfg.BcryptCost)
	challenges := security.NewChallengeStore()
	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logger.Log.Error("Failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	// 8. Setup UseCases
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	authUC := usecase.NewAuthUsecase(userRepo, hasher, tokens, challenges, emailService, secLog, cfg.FrontendURL, !cfg.IsProduction())
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, companyRepo, documentRepo, notificationUC)
	jobSeekerUC := usecase.NewJobSeekerUsecase(jobSeekerRepo)
	documentUC := usecase.NewDocumentUsecase(documentRepo, store, cfg.UploadMaxSizeMB)
	adminUC := usecase.NewAdminUsecase(userRepo)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		CompanyUC:      companyUC,
		JobUC:          jobUC,
		ApplicationUC:  applicationUC,
		JobSeekerUC:    jobSeekerUC,
		DocumentUC:     documentUC,
		NotificationUC: notificationUC,
		AdminUC:        adminUC,
		Tokens:         tokens,
		Store:          store,
		Config:         cfg,
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
