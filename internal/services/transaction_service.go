package services

import (
	"context"
	"fmt"
	"log/slog"

	"kakebo/internal/amqp"
	"kakebo/internal/core"
	"kakebo/internal/log"
	"kakebo/internal/storage"
)

// TransactionService orchestrates transaction writes across SQLite and AMQP.
type TransactionService struct {
	storage    *storage.SQLiteRepository
	amqpClient *amqp.Client
}

func NewTransactionService(storage *storage.SQLiteRepository, amqpClient *amqp.Client) *TransactionService {
	return &TransactionService{
		storage:    storage,
		amqpClient: amqpClient,
	}
}

// CreateTransaction saves the transaction locally and publishes an export
// message. The publish is best effort; a queue failure never loses the
// write, the startup sweep picks the row up later.
func (s *TransactionService) CreateTransaction(ctx context.Context, t core.Transaction) (string, error) {
	id, err := s.storage.Append(ctx, t)
	if err != nil {
		return "", fmt.Errorf("save transaction: %w", err)
	}

	if err := s.publishExportMessage(ctx, id); err != nil {
		fields := log.NewFields().
			WithOperation(log.OpExport).
			WithError(err)
		fields[log.FieldTxID] = id
		slog.ErrorContext(ctx, "Failed to publish export message", fields.ToSlice()...)
	}

	return id, nil
}

func (s *TransactionService) publishExportMessage(ctx context.Context, id string) error {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping export message")
		return nil
	}

	return s.amqpClient.PublishTransactionExport(ctx, id)
}

// Close closes both storage and AMQP connections.
func (s *TransactionService) Close() error {
	var errs []error

	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close transaction service: %v", errs)
	}

	return nil
}
