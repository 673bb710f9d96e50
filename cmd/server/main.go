package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/api/http"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/config"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/hrclient"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/logger"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/notifier"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/referral"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/scheduler"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/security"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting xRAF referral dashboard backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("HR webhook configuration", "url", cfg.HR.WebhookURL, "timeout", cfg.HRTimeout())
	logger.Info("OTP configuration", "delivery", cfg.OTP.Delivery, "code_length", cfg.OTP.CodeLength, "expiry", cfg.OTPExpiry())

	// Initialize OTP delivery channel
	var otpNotifier notifier.Notifier
	switch cfg.OTP.Delivery {
	case "sendgrid":
		logger.Info("Using SendGrid OTP delivery", "from", cfg.OTP.FromEmail)
		otpNotifier = notifier.NewSendGridNotifier(cfg.OTP.SendGridKey, cfg.OTP.FromEmail, cfg.OTP.FromName)
	default:
		if cfg.OTP.WebhookURL == "" {
			logger.Warn("OTP webhook URL not configured, delivery is a no-op")
		}
		otpNotifier = notifier.NewWebhookNotifier(cfg.OTP.WebhookURL, cfg.HRTimeout())
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.PendingTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.SessionTokenExpiry)*time.Minute,
	)

	// Initialize Services
	otpSvc := service.NewOTPService(
		otpNotifier,
		cfg.OTP.CodeLength,
		cfg.OTPExpiry(),
		cfg.OTP.TestEmail,
		cfg.OTP.TestCode,
		nil,
	)
	hrClient := hrclient.NewClient(cfg.HR.WebhookURL, cfg.HRTimeout())
	enricher := referral.NewEnricher(cfg.Referral.SourceMarker)
	dashboardSvc := service.NewDashboardService(
		hrClient,
		enricher,
		referral.EarningsConfig{
			AssessmentAmount:       cfg.Payments.AssessmentAmount,
			ProbationAmount:        cfg.Payments.ProbationAmount,
			ProbationThresholdDays: cfg.Payments.ProbationThresholdDays,
		},
		cfg.Referral.WhatsAppPrefix,
		cfg.Referral.ReminderMessage,
		nil,
	)

	// Initialize HTTP API
	authHandler := httpapi.NewAuthHandler(otpSvc, tokenManager)
	referralHandler := httpapi.NewReferralHandler(dashboardSvc)
	guard := httpapi.NewAuthMiddleware(tokenManager)
	router := httpapi.NewRouter(authHandler, referralHandler, guard)

	// Start OTP session sweep
	sched := scheduler.NewScheduler(otpSvc, cfg.OTP.SweepSchedule)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
