package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"condo-ops-backend/internal/api/handlers"
	"condo-ops-backend/internal/api/routes"
	"condo-ops-backend/internal/auth"
	"condo-ops-backend/internal/config"
	"condo-ops-backend/internal/database"
	"condo-ops-backend/internal/jobs"
	"condo-ops-backend/internal/repository"
	"condo-ops-backend/internal/scheduling"
	"condo-ops-backend/internal/service"
	"condo-ops-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database when the Postgres store is selected
	var db *gorm.DB
	var pinger handlers.Pinger
	if cfg.StoreDriver == "postgres" {
		db, err = database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			logrus.Fatal("Failed to initialize database:", err)
		}
		pinger = repository.NewDocumentRepository(db)
	}

	st, err := store.Open(cfg.StoreDriver, db, cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to open store:", err)
	}

	// Initialize auth
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		if cfg.IsProduction() {
			logrus.Fatal("Failed to load auth config:", err)
		}
		logrus.WithError(err).Warn("Falling back to JWT_SECRET from the application config")
		authConfig = &auth.AuthConfig{JWTSecret: cfg.JWTSecret, Issuer: "condo-ops-backend", TokenTTL: 12 * time.Hour}
	}
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		logrus.Fatal("Failed to initialize auth service:", err)
	}

	// Initialize the scheduling service and its live tenant view
	schedulingService := service.NewSchedulingService(st, validator.New(), service.SchedulingOptions{
		Location:           cfg.Location(),
		CleaningWindow:     scheduling.CleaningWindow{Start: cfg.CleaningWindowStart, End: cfg.CleaningWindowEnd},
		PreparingLookahead: cfg.PreparingLookahead,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	view, err := schedulingService.Watch(ctx, cfg.TenantID)
	if err != nil {
		logrus.Fatal("Failed to watch tenant:", err)
	}
	defer view.Close()

	// Background jobs
	scheduler := jobs.NewScheduler(cfg.Location())
	if err := jobs.RegisterAll(scheduler, cfg, schedulingService); err != nil {
		logrus.Fatal("Failed to register jobs:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(routes.Dependencies{
		Scheduling:  schedulingService,
		AuthService: authService,
		Store:       pinger,
	}, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}
	logrus.Info("Server exiting")
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
