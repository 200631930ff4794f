package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techfix-backend/config"
	_ "techfix-backend/docs" // Important for Swagger
	v1 "techfix-backend/internal/delivery/http/v1"
	"techfix-backend/internal/usecase"
	"techfix-backend/pkg/email"
	"techfix-backend/pkg/logger"
	"techfix-backend/pkg/redis"
)

// @title           TechFix Inquiry API
// @version         1.0
// @description     Contact and quote inquiry backend for TechFix Computer Solutions.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting inquiry backend", "port", cfg.Port)

	// 3. Setup Redis (rate limiting only; the app works without it)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 4. Setup Mail Dispatcher
	var sender email.Sender
	smtpSender := email.NewSMTPSender(cfg)
	if smtpSender.IsConfigured() {
		sender = smtpSender
	} else {
		logger.Log.Warn("SMTP not configured - inquiry emails will be logged only")
		sender = email.NewLogSender(logger.Log)
	}

	// 5. Setup UseCases
	inquiryUC := usecase.NewInquiryUsecase(sender)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		InquiryUC: inquiryUC,
		Config:    cfg,
	})

	// 7. Start Server
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
