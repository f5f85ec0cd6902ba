package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"kakebo/internal/backend"
	"kakebo/internal/config"
	apphttp "kakebo/internal/http"
	"kakebo/internal/log"
)

func main() {
	// Load .env for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	factory := backend.NewFactory(logger.WithComponent(log.ComponentBackend).Logger)
	result, err := factory.CreateBackend(context.Background(), backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
		AMQPURL:      cfg.AMQPURL,
		AMQPExchange: cfg.AMQPExchange,
		AMQPQueue:    cfg.AMQPQueue,
	})
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup error", "error", err)
			}
		}()
	}

	srv := apphttp.NewServer(":"+cfg.Port, result.Backend, cfg.HistoryWindowDays)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting kakebo server",
		"port", cfg.Port,
		"backend", cfg.DataBackend,
		"history_window_days", cfg.HistoryWindowDays)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
