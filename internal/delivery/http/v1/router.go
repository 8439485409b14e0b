package v1

import (
	"net/http"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	CompanyUC      domain.CompanyUsecase
	JobUC          domain.JobUsecase
	ApplicationUC  domain.ApplicationUsecase
	JobSeekerUC    domain.JobSeekerUsecase
	DocumentUC     domain.DocumentUsecase
	NotificationUC domain.NotificationUsecase
	AdminUC        domain.AdminUsecase
	Tokens         *token.Issuer
	Store          *storage.LocalStore
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	cfg := deps.Config

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, cfg.RateLimitWindowSeconds)))
	r.Use(middleware.ErrorHandler())

	loginLimit := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, cfg.RateLimitWindowSeconds))
	uploadLimit := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(cfg.RateLimitWindowSeconds))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth endpoints get the strict per-IP limit on top of the global one
	public := v1.Group("")
	publicAuth := v1.Group("")
	publicAuth.Use(loginLimit)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(publicAuth, protected, deps.AuthUC, cfg)
		NewCompanyHandler(public, protected, deps.CompanyUC)
		NewJobHandler(public, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewJobSeekerHandler(protected, deps.JobSeekerUC)
		NewDocumentHandler(protected, deps.DocumentUC, deps.Store, uploadLimit)
		NewNotificationHandler(protected, deps.NotificationUC)
		NewAdminHandler(protected, deps.AdminUC)
	}

	return r
}
