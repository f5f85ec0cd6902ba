package adapters

import (
	"context"

	"kakebo/internal/core"
	"kakebo/internal/services"
	"kakebo/internal/storage"
)

// SQLiteAdapter adapts SQLiteRepository and TransactionService to the
// ledger ports, so the HTTP handlers work unchanged against the SQLite +
// AMQP backend.
type SQLiteAdapter struct {
	storage *storage.SQLiteRepository
	service *services.TransactionService
}

func NewSQLiteAdapter(storage *storage.SQLiteRepository, service *services.TransactionService) *SQLiteAdapter {
	return &SQLiteAdapter{
		storage: storage,
		service: service,
	}
}

// Append implements ledger.TransactionWriter. Writes go through the service
// so each one is queued for export.
func (a *SQLiteAdapter) Append(ctx context.Context, t core.Transaction) (string, error) {
	return a.service.CreateTransaction(ctx, t)
}

// ListTransactions implements ledger.TransactionLister.
func (a *SQLiteAdapter) ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error) {
	return a.storage.ListTransactions(ctx, userID)
}

// GetSavingsGoal implements ledger.GoalReader.
func (a *SQLiteAdapter) GetSavingsGoal(ctx context.Context, userID string) (core.SavingsGoal, error) {
	return a.storage.GetSavingsGoal(ctx, userID)
}

// PutSavingsGoal implements ledger.GoalWriter.
func (a *SQLiteAdapter) PutSavingsGoal(ctx context.Context, g core.SavingsGoal) error {
	return a.storage.PutSavingsGoal(ctx, g)
}
