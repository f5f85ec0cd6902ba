package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"kakebo/internal/amqp"
	"kakebo/internal/config"
	"kakebo/internal/export/google"
	"kakebo/internal/log"
	"kakebo/internal/storage"
	"kakebo/internal/worker"
)

func main() {
	// Load .env for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfgLog := log.DefaultConfig()
	cfgLog.Component = log.ComponentWorker
	logger := log.New(cfgLog)
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.GoogleSpreadsheetID == "" {
		logger.Error("GOOGLE_SPREADSHEET_ID is required for the export worker")
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open storage", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exporter, err := google.NewFromEnv(ctx)
	if err != nil {
		logger.Error("Failed to create sheets exporter", "error", err)
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP", "error", err, "url", cfg.AMQPURL)
		os.Exit(1)
	}
	defer amqpClient.Close()

	exportWorker := worker.NewExportWorker(repo, exporter, cfg.SyncBatchSize)

	logger.Info("Starting export worker",
		"queue", cfg.AMQPQueue,
		"batch_size", cfg.SyncBatchSize,
		"sync_interval", cfg.SyncInterval.String())

	if err := exportWorker.StartupSyncCheck(ctx); err != nil {
		logger.Error("Startup sync check failed", "error", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return amqpClient.ConsumeTransactionExport(gctx, func(msg *amqp.TransactionExportMessage) error {
			return exportWorker.HandleExportMessage(gctx, msg)
		})
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.SyncInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-ticker.C:
				if err := exportWorker.ProcessPendingTransactions(gctx); err != nil {
					logger.Error("Periodic sync failed", "error", err)
				}
			}
		}
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
