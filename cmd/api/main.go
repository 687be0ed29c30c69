package main

import (
	"asset-dashboard-api/internal/apiclient"
	"asset-dashboard-api/internal/backend"
	"asset-dashboard-api/internal/config"
	"asset-dashboard-api/internal/database"
	"asset-dashboard-api/internal/handler"
	"asset-dashboard-api/internal/logger"
	"asset-dashboard-api/internal/middleware"
	"asset-dashboard-api/internal/notification"
	"asset-dashboard-api/internal/repository"
	"asset-dashboard-api/internal/router"
	"asset-dashboard-api/internal/service"
	notificationadapter "asset-dashboard-api/internal/service/notification"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

const (
	serviceName = "asset-dashboard-api"
	version     = "1.0.0"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: serviceName,
		Version:     version,
	})

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), cfg.Security.RequestTimeout)
	err = database.Migrate(migrateCtx, db)
	cancelMigrate()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database schema")
	}
	log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("Database ready")

	// Remote asset backend
	client := apiclient.NewClient(apiclient.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	})
	facade := backend.NewFacade(client)

	// Warranty notices
	notifier := notification.New(notification.Config{
		URL:            cfg.NotificationService.URL,
		Timeout:        cfg.NotificationService.Timeout,
		RetryAttempts:  cfg.NotificationService.RetryAttempts,
		RetryDelay:     cfg.NotificationService.RetryDelay,
		MaxPayloadSize: cfg.NotificationService.MaxPayloadSize,
	}, log)

	// Local annotations
	repo := repository.NewAnnotationRepository(db)
	annotations := service.NewAnnotationService(repo, notificationadapter.NewServiceAdapter(notifier), log, cfg.Annotations.WarrantyNoticeWindow)

	h := handler.NewDashboardHandler(handler.Dependencies{
		Backend:           facade,
		Annotations:       annotations,
		DB:                db,
		Notifier:          notifier,
		Logger:            log,
		LegacyCompanyAuth: cfg.Backend.LegacyCompanyAuth,
	})

	// Setup router with security configuration
	r := router.NewRouter(h, cfg)

	loggingMW := middleware.NewLoggingMiddleware(log)
	finalHandler := loggingMW.LogRequests(loggingMW.Recover(r))

	// Configure server with security settings
	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        finalHandler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// Channel to listen for interrupt signal to gracefully shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().
			Int("port", cfg.Port).
			Str("backend", client.BaseURL()).
			Int("rate_limit_rps", cfg.Security.RateLimitRPS).
			Int("rate_limit_burst", cfg.Security.RateLimitBurst).
			Bool("cors", cfg.Security.EnableCORS).
			Bool("notifier", cfg.NotificationService.URL != "").
			Msg("Starting HTTP server")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-done
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Security.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return
	}
	log.Info().Msg("Server stopped")
}
