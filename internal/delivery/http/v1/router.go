package v1

import (
	"net/http"
	"time"

	"techfix-backend/config"
	"techfix-backend/internal/delivery/http/middleware"
	"techfix-backend/internal/delivery/http/response"
	"techfix-backend/internal/domain"
	"techfix-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	InquiryUC domain.InquiryUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	// Custom binding rules (inquiry_phone) must be registered before any
	// handler binds a request
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig()))

	// The endpoint contract promises a 405 body for any non-POST method
	// on the inquiry paths
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "Method not allowed", "")
	})

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational")
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public inquiry routes; rate limited because every accepted request
	// spends outbound mail quota
	inquiry := api.Group("")
	inquiry.Use(middleware.RateLimitMiddleware(middleware.InquiryRateLimitConfig(
		deps.Config.RateLimitInquiryThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	NewInquiryHandler(inquiry, deps.InquiryUC)

	return r
}
