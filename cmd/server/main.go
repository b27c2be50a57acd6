package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"church-portal/internal/api"
	"church-portal/internal/database"
	"church-portal/pkg/config"
	"church-portal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/server.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	appLogger := logger.NewLogger(logger.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	}).WithComponent("server")
	defer appLogger.Close()

	appLogger.WithField("config", cfg.SanitizeForLogging()).Debug("Configuration loaded")

	db, err := database.NewConnection(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(db); err != nil {
			appLogger.Fatal("Failed to run migrations: %v", err)
		}
		version, _, _ := database.MigrationVersion(db)
		appLogger.Info("Database schema at version %d", version)
	}

	gin.SetMode(cfg.Server.Mode)

	services := api.NewServices(db, appLogger, cfg, nil)
	router, err := api.NewRouter(services)
	if err != nil {
		appLogger.Fatal("Failed to build router: %v", err)
	}
	defer router.Close()

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server on %s", srv.Addr)
		var err error
		if cfg.Server.TLS.Enabled {
			err = srv.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown: %v", err)
	}
	appLogger.Info("Server stopped")
}
