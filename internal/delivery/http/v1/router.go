package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobportal-backend/config"
	"jobportal-backend/internal/delivery/http/middleware"
	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/storage"
	"jobportal-backend/pkg/token"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	ProfileUC      domain.ProfileUsecase
	JobUC          domain.JobUsecase
	ApplicationUC  domain.ApplicationUsecase
	NetworkUC      domain.NetworkUsecase
	NotificationUC domain.NotificationUsecase
	Blobs          storage.BlobStorage
	Tokens         *token.Manager
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.GlobalRateLimitMiddleware())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Optional-auth routes: anonymous works, a valid token adds per-viewer
	// annotations (has_applied, search self-exclusion)
	optional := v1.Group("")
	optional.Use(middleware.OptionalAuthMiddleware(deps.Tokens))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))

	NewAuthHandler(v1, protected, deps.AuthUC, loginLimiter)
	NewProfileHandler(v1, protected, deps.ProfileUC, deps.Blobs)
	NewJobHandler(optional, protected, deps.JobUC, deps.ApplicationUC)
	NewSearchHandler(optional, deps.AuthUC, deps.JobUC)
	NewConnectionHandler(protected, deps.NetworkUC)
	NewMessageHandler(protected, deps.NetworkUC)
	NewNotificationHandler(protected, deps.NotificationUC)

	return r
}
