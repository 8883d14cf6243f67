package v1

import (
	"net/http"
	"time"

	"employee-profile-backend/config"
	_ "employee-profile-backend/docs" // regenerate with: swag init -g cmd/api/main.go
	"employee-profile-backend/internal/delivery/http/middleware"
	"employee-profile-backend/internal/delivery/http/response"
	"employee-profile-backend/internal/domain"
	"employee-profile-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ReferenceUC  domain.ReferenceUsecase
	SubmissionUC domain.SubmissionUsecase
	ImportUC     domain.ImportUsecase
	HealthUC     usecase.HealthUsecase
	Redis        *goredis.Client // optional, backs the rate limiter
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	// Lets handlers pass *gin.Context as context.Context and still see request-scoped values
	r.ContextWithFallback = true

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		status, healthy := deps.HealthUC.Check(c)
		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	submitLimit := middleware.RateLimitMiddleware(
		middleware.SubmitRateLimitConfig(deps.Redis, deps.Config.RateLimitSubmitThreshold, window),
	)

	NewReferenceHandler(v1, deps.ReferenceUC)
	NewSubmissionHandler(v1, deps.SubmissionUC, submitLimit)
	NewImportHandler(v1, deps.ImportUC, submitLimit)

	return r
}
