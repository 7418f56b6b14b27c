package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/chamodt-botcalm/Expense-Tracker/config"
	"github.com/chamodt-botcalm/Expense-Tracker/db"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/email"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/fanout"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/handler"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/logger"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/middleware"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/notification"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/realtime"
	repo "github.com/chamodt-botcalm/Expense-Tracker/internal/repository/postgres"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/service"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/signup"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer dbPool.Close()

	userRepo := repo.NewUserRepository(dbPool)
	txRepo := repo.NewTransactionRepository(dbPool)
	tokenRepo := repo.NewDeviceTokenRepository(dbPool)

	sessionStore := signup.NewStore(cfg.OTPTTL, cfg.SignupTokenTTL, cfg.OTPResendCooldown, cfg.OTPMaxAttempts)
	sender := email.NewSMTPSender(email.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	}, log)
	issuer := signup.NewIssuer(sessionStore, userRepo, sender, log)

	hub := realtime.NewHub(log)

	registry := notification.NewRegistry(tokenRepo, log)
	dispatcher := notification.NewDispatcher(registry, notification.NewFCMClientFactory(cfg.FCMCredentialsFile), log)

	coordinator := fanout.NewCoordinator(hub, dispatcher, log)

	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	authService := service.NewAuthService(userRepo, sessionStore, tokenService, log)
	txService := service.NewTransactionService(txRepo, userRepo, coordinator, log)
	profileService := service.NewProfileService(userRepo, coordinator, log)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()
	}

	app := fiber.New()
	app.Use(middleware.RateLimit(redisClient, cfg.RateLimitPerMinute, log))

	handler.RegisterRoutes(app, handler.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Signup:       handler.NewSignupHandler(issuer, sessionStore),
		Transaction:  handler.NewTransactionHandler(txService),
		Profile:      handler.NewProfileHandler(profileService),
		Notification: handler.NewNotificationHandler(registry),
		Hub:          hub,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
	// Let in-flight push deliveries drain before the process exits.
	coordinator.Wait()
}
