package worker

import (
	"context"
	"fmt"
	"log/slog"

	"kakebo/internal/amqp"
	"kakebo/internal/core"
	"kakebo/internal/log"
	"kakebo/internal/storage"
)

// TransactionStore is the slice of the repository the worker needs.
type TransactionStore interface {
	GetTransaction(ctx context.Context, id string) (core.Transaction, error)
	GetPendingSyncTransactions(ctx context.Context, limit int) ([]storage.PendingSyncTransaction, error)
	GetUnsyncedTransactions(ctx context.Context, limit int) ([]storage.PendingSyncTransaction, error)
	MarkSynced(ctx context.Context, id string) error
	MarkSyncError(ctx context.Context, id string) error
}

// Exporter pushes a transaction to the external sink.
type Exporter interface {
	Export(ctx context.Context, t core.Transaction) error
}

// ExportWorker mirrors stored transactions out to the export sink, driven
// by AMQP messages with a database sweep as backup.
type ExportWorker struct {
	storage   TransactionStore
	exporter  Exporter
	batchSize int
}

func NewExportWorker(storage TransactionStore, exporter Exporter, batchSize int) *ExportWorker {
	return &ExportWorker{
		storage:   storage,
		exporter:  exporter,
		batchSize: batchSize,
	}
}

// HandleExportMessage processes a single export message from AMQP.
func (w *ExportWorker) HandleExportMessage(ctx context.Context, msg *amqp.TransactionExportMessage) error {
	slog.InfoContext(ctx, "Processing export message",
		log.FieldTxID, msg.ID,
		log.FieldComponent, log.ComponentWorker,
		log.FieldOperation, log.OpExport)

	t, err := w.storage.GetTransaction(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("get transaction from storage: %w", err)
	}

	return w.exportTransaction(ctx, t)
}

// ProcessPendingTransactions sweeps rows that never made it out, a backup
// in case AMQP messages were lost.
func (w *ExportWorker) ProcessPendingTransactions(ctx context.Context) error {
	pending, err := w.storage.GetPendingSyncTransactions(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending transactions: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending transactions", "count", len(pending))

	for _, p := range pending {
		t, err := w.storage.GetTransaction(ctx, p.ID)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to get transaction", "id", p.ID, "error", err)
			if err := w.storage.MarkSyncError(ctx, p.ID); err != nil {
				slog.ErrorContext(ctx, "Failed to mark sync error", "id", p.ID, "error", err)
			}
			continue
		}

		if err := w.exportTransaction(ctx, t); err != nil {
			slog.ErrorContext(ctx, "Failed to export transaction", "id", p.ID, "error", err)
			continue
		}
	}

	return nil
}

// StartupSyncCheck drains the backlog once at worker startup to recover
// from missed messages or worker downtime. It also retries rows left in
// the error state, since no queue message will come for those.
func (w *ExportWorker) StartupSyncCheck(ctx context.Context) error {
	pending, err := w.storage.GetUnsyncedTransactions(ctx, w.batchSize*5)
	if err != nil {
		return fmt.Errorf("get unsynced transactions for startup check: %w", err)
	}

	if len(pending) == 0 {
		slog.InfoContext(ctx, "No pending transactions found on startup")
		return nil
	}

	slog.InfoContext(ctx, "Found pending transactions on startup, processing...",
		"count", len(pending))

	successCount := 0
	errorCount := 0

	for _, p := range pending {
		t, err := w.storage.GetTransaction(ctx, p.ID)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to get transaction for startup sync",
				"id", p.ID, "error", err)
			if err := w.storage.MarkSyncError(ctx, p.ID); err != nil {
				slog.ErrorContext(ctx, "Failed to mark sync error", "id", p.ID, "error", err)
			}
			errorCount++
			continue
		}

		if err := w.exportTransaction(ctx, t); err != nil {
			slog.ErrorContext(ctx, "Failed to export transaction during startup",
				"id", p.ID, "error", err)
			errorCount++
			continue
		}

		successCount++
	}

	slog.InfoContext(ctx, "Startup sync completed",
		"total", len(pending),
		"synced", successCount,
		"errors", errorCount)

	return nil
}

func (w *ExportWorker) exportTransaction(ctx context.Context, t core.Transaction) error {
	if err := w.exporter.Export(ctx, t); err != nil {
		if markErr := w.storage.MarkSyncError(ctx, t.ID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark sync error", "id", t.ID, "error", markErr)
		}
		return fmt.Errorf("export transaction: %w", err)
	}

	if err := w.storage.MarkSynced(ctx, t.ID); err != nil {
		return fmt.Errorf("mark transaction synced: %w", err)
	}

	return nil
}
