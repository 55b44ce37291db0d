package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/hallbook/internal/config"
	"github.com/joshua-takyi/hallbook/internal/connect"
	"github.com/joshua-takyi/hallbook/internal/container"
	"github.com/joshua-takyi/hallbook/internal/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)
	logger.Info("Starting Hallbook API server",
		"environment", cfg.Environment,
		"storage", cfg.StorageDriver,
		"auth", cfg.AuthProvider,
	)

	ctx := context.Background()
	var clients container.Clients

	if cfg.HasCloudinary() {
		clients.Cloudinary, err = connect.CloudinaryCredentials(cfg)
		if err != nil {
			logger.Error("Failed to connect to Cloudinary", "error", err)
			os.Exit(1)
		}
		logger.Info("Cloudinary configured", "cloud", cfg.CloudinaryCloudName)
	}

	if cfg.AuthProvider == config.AuthSupabase {
		clients.Supabase, err = connect.InitSupabase(cfg)
		if err != nil {
			logger.Error("Failed to connect to Supabase", "error", err)
			os.Exit(1)
		}
		logger.Info("Connected to Supabase successfully")
	}

	if cfg.StorageDriver == config.StorageMongo {
		clients.MongoDB, err = connect.MongoDBConnect(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		logger.Info("Connected to MongoDB successfully", "database", cfg.MongoDBDatabase)
	}

	appContainer, err := container.NewContainer(ctx, cfg, logger, clients)
	if err != nil {
		logger.Error("Failed to build application", "error", err)
		os.Exit(1)
	}

	router := routes.SetupRoutes(appContainer)

	// WriteTimeout leaves room for the simulated card payment delay.
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15*time.Second + cfg.CardPaymentDelay,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	appContainer.Close()
	if err := connect.MongoDBDisconnect(clients.MongoDB); err != nil {
		logger.Error("Error disconnecting from MongoDB", "error", err)
	}

	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	if cfg.IsProduction() {
		// JSON logging for production
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: parseLevel(cfg.LogLevel, slog.LevelInfo),
		})
	} else {
		// Human-readable logging for development
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: parseLevel(cfg.LogLevel, slog.LevelDebug),
		})
	}

	return slog.New(handler)
}

func parseLevel(level string, fallback slog.Level) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return fallback
	}
	return l
}
