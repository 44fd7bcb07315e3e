package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"

	"diatrack.example/go-diatrack/internal/auth"
	"diatrack.example/go-diatrack/internal/config"
	"diatrack.example/go-diatrack/internal/core"
	"diatrack.example/go-diatrack/internal/fhir"
	"diatrack.example/go-diatrack/internal/models"
	"diatrack.example/go-diatrack/internal/readings"
	"diatrack.example/go-diatrack/internal/repository"
	"diatrack.example/go-diatrack/pkg/database"
	"diatrack.example/go-diatrack/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Fatal error: failed to load config: %v", err)
		}
	}

	appLog, err := logger.New(
		logger.WithLevel(cfg.Log.Level),
		logger.WithFormat(cfg.Log.Format),
	)
	if err != nil {
		log.Fatalf("Fatal error: failed to initialize logger: %v", err)
	}
	ctx := context.Background()

	db, err := database.NewConnection(cfg.Database.Path)
	if err != nil {
		appLog.Fatal(ctx, "failed to open database", "path", cfg.Database.Path, "error", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Reading{}); err != nil {
		appLog.Fatal(ctx, "failed to migrate schema", "error", err)
	}

	userRepo := repository.NewGormUserRepository(db)
	readingRepo := repository.NewGormReadingRepository(db)

	authService, err := auth.NewAuthService(userRepo, cfg.JWT.SecretKey, cfg.JWT.DefaultTTL(), cfg.JWT.LoginTTL())
	if err != nil {
		appLog.Fatal(ctx, "failed to build auth service", "error", err)
	}
	if err := authService.EnsureSeedUser(ctx); err != nil {
		appLog.Fatal(ctx, "failed to seed demo account", "error", err)
	}

	authHandler := auth.NewAuthHandler(authService, appLog)
	readingsHandler := readings.NewHandler(readingRepo, appLog)
	fhirClient := fhir.NewClient(cfg.FHIR.BaseURL, appLog)
	fhirHandler := fhir.NewHandler(fhirClient, appLog)

	handler := core.NewHandler(authService, authHandler, readingsHandler, fhirHandler, appLog)
	srv := core.NewServer(cfg.Server.Addr, handler, appLog)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal(ctx, "server failed", "error", err)
		}
	}()
	srv.GracefulShutdown()
}
