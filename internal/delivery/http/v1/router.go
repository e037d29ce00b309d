package v1

import (
	"net/http"
	"time"

	"recruiterconnect-backend/config"
	"recruiterconnect-backend/internal/delivery/http/middleware"
	"recruiterconnect-backend/internal/delivery/http/response"
	"recruiterconnect-backend/internal/domain"
	"recruiterconnect-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	OnboardingUC domain.OnboardingUsecase
	ApplicantUC  domain.ApplicantUsecase
	RecruiterUC  domain.RecruiterUsecase
	JobUC        domain.JobUsecase
	Tokens       *auth.TokenManager
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = maxUploadBytes

	// CORS must run before anything that can short-circuit the request.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Credential endpoints get throttled per client IP.
	authLimit := middleware.RateLimit(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))
	v1.Use(routeLimiter(authLimit, "/v1/auth/login", "/v1/auth/register"))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, deps.OnboardingUC, deps.Tokens, deps.Config)
		NewUserHandler(protected, deps.OnboardingUC, deps.AuthUC)
		NewApplicantHandler(protected, deps.ApplicantUC)
		NewRecruiterHandler(v1, protected, deps.RecruiterUC)
		NewJobHandler(v1, deps.JobUC)
	}

	return r
}

// routeLimiter applies a limiter to an explicit set of paths so public
// read endpoints in the same group stay unthrottled.
func routeLimiter(limit gin.HandlerFunc, paths ...string) gin.HandlerFunc {
	limited := make(map[string]bool, len(paths))
	for _, p := range paths {
		limited[p] = true
	}
	return func(c *gin.Context) {
		if limited[c.FullPath()] {
			limit(c)
			return
		}
		c.Next()
	}
}
