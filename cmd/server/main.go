package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teenevents/config"
	_ "teenevents/docs"
	"teenevents/internal/adapters/auth"
	"teenevents/internal/adapters/email"
	httpdelivery "teenevents/internal/delivery/http"
	"teenevents/internal/delivery/http/controllers"
	"teenevents/internal/delivery/http/middleware"
	"teenevents/internal/repository/postgres"
	"teenevents/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title Teen Events API
// @version 1.0
// @description Public event listing and registration API with an admin back office.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.DBUrl)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	userRepo := postgres.NewUserRepository(db)

	hasher := auth.NewBcryptHasher(0)
	tokens := auth.NewJWTTokens(cfg.JWTSecret)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	catalogService := services.NewCatalogService(eventRepo, serviceTimeout)
	eventService := services.NewEventService(eventRepo, serviceTimeout)
	registrationService := services.NewRegistrationService(registrationRepo, eventRepo, emailService, serviceTimeout)
	authService := services.NewAuthService(userRepo, hasher, tokens, cfg.JWTExpiry, serviceTimeout)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		res, err := authService.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			logger.Error("admin bootstrap failed", "err", err)
			os.Exit(1)
		}
		if res.Created {
			logger.Info("admin account created", "email", res.User.Email)
		} else if !res.IsAdmin {
			logger.Warn("account exists but is not an admin; not promoting", "email", res.User.Email)
		}
	}

	mux := httpdelivery.NewRouter(
		db,
		tokens,
		controllers.NewCatalogController(logger, catalogService, eventService),
		controllers.NewRegistrationController(logger, registrationService),
		controllers.NewAuthController(logger, authService),
		controllers.NewAdminEventsController(logger, eventService),
		controllers.NewAdminRegistrationsController(logger, registrationService),
	)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
	logger.Info("server stopped")
}
