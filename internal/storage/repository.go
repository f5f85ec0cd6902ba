package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"kakebo/internal/core"

	_ "modernc.org/sqlite"
)

// dateLayout is the canonical on-disk form of a transaction date.
const dateLayout = "2006-01-02"

var ErrTransactionNotFound = errors.New("transaction not found")

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append implements ledger.TransactionWriter. New rows enter the sync queue
// in the pending state.
func (r *SQLiteRepository) Append(ctx context.Context, t core.Transaction) (string, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := t.Validate(); err != nil {
		return "", err
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, user_id, type, category, amount_cents, date, notes, created_at, sync_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'pending')`,
		t.ID, t.UserID, string(t.Type), t.Category, t.Amount.Cents,
		t.Date.Format(dateLayout), t.Notes, t.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", t.ID,
		"user_id", t.UserID,
		"type", t.Type,
		"category", t.Category,
		"amount_cents", t.Amount.Cents)

	return t.ID, nil
}

// ListTransactions implements ledger.TransactionLister. Rows whose stored
// date no longer parses are skipped and logged rather than failing the
// whole listing.
func (r *SQLiteRepository) ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error) {
	if userID == "" {
		return nil, core.ErrEmptyUserID
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, type, category, amount_cents, date, notes, created_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY date DESC, created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	out := make([]core.Transaction, 0)
	for rows.Next() {
		var (
			t       core.Transaction
			typ     string
			rawDate string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &typ, &t.Category, &t.Amount.Cents, &rawDate, &t.Notes, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		day, err := time.Parse(dateLayout, rawDate)
		if err != nil {
			slog.WarnContext(ctx, "Skipping transaction with unparseable date",
				"id", t.ID, "date", rawDate, "error", err)
			continue
		}
		t.Type = core.TransactionType(typ)
		t.Date = core.Date{Time: day}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return out, nil
}

// GetTransaction loads a single transaction by ID for the export path.
func (r *SQLiteRepository) GetTransaction(ctx context.Context, id string) (core.Transaction, error) {
	var (
		t       core.Transaction
		typ     string
		rawDate string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, type, category, amount_cents, date, notes, created_at
		FROM transactions
		WHERE id = ?`, id).
		Scan(&t.ID, &t.UserID, &typ, &t.Category, &t.Amount.Cents, &rawDate, &t.Notes, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, ErrTransactionNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction by id: %w", err)
	}

	day, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse transaction date: %w", err)
	}
	t.Type = core.TransactionType(typ)
	t.Date = core.Date{Time: day}
	return t, nil
}

// GetSavingsGoal implements ledger.GoalReader. A user without a goal gets
// the zero goal.
func (r *SQLiteRepository) GetSavingsGoal(ctx context.Context, userID string) (core.SavingsGoal, error) {
	if userID == "" {
		return core.SavingsGoal{}, core.ErrEmptyUserID
	}

	g := core.SavingsGoal{UserID: userID}
	err := r.db.QueryRowContext(ctx,
		`SELECT target_cents FROM savings_goals WHERE user_id = ?`, userID).
		Scan(&g.TargetCents)
	if errors.Is(err, sql.ErrNoRows) {
		return g, nil
	}
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("get savings goal: %w", err)
	}
	return g, nil
}

// PutSavingsGoal implements ledger.GoalWriter with upsert semantics.
func (r *SQLiteRepository) PutSavingsGoal(ctx context.Context, g core.SavingsGoal) error {
	if err := g.Validate(); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO savings_goals (user_id, target_cents, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			target_cents = excluded.target_cents,
			updated_at = CURRENT_TIMESTAMP`,
		g.UserID, g.TargetCents)
	if err != nil {
		return fmt.Errorf("upsert savings goal: %w", err)
	}

	slog.InfoContext(ctx, "Savings goal saved",
		"user_id", g.UserID, "target_cents", g.TargetCents)
	return nil
}

// PendingSyncTransaction holds the minimal data needed for sync queue
// messages.
type PendingSyncTransaction struct {
	ID        string
	CreatedAt time.Time
}

// GetPendingSyncTransactions returns transactions awaiting export, oldest
// first.
func (r *SQLiteRepository) GetPendingSyncTransactions(ctx context.Context, limit int) ([]PendingSyncTransaction, error) {
	return r.querySyncQueue(ctx, `
		SELECT id, created_at
		FROM transactions
		WHERE sync_status = 'pending'
		ORDER BY created_at ASC
		LIMIT ?`, limit)
}

// GetUnsyncedTransactions returns transactions awaiting export plus those
// whose last export attempt failed, oldest first. The startup sweep uses
// this so errored rows get retried.
func (r *SQLiteRepository) GetUnsyncedTransactions(ctx context.Context, limit int) ([]PendingSyncTransaction, error) {
	return r.querySyncQueue(ctx, `
		SELECT id, created_at
		FROM transactions
		WHERE sync_status IN ('pending', 'error')
		ORDER BY created_at ASC
		LIMIT ?`, limit)
}

func (r *SQLiteRepository) querySyncQueue(ctx context.Context, query string, limit int) ([]PendingSyncTransaction, error) {
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query sync queue: %w", err)
	}
	defer rows.Close()

	var out []PendingSyncTransaction
	for rows.Next() {
		var p PendingSyncTransaction
		if err := rows.Scan(&p.ID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sync queue row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sync queue rows: %w", err)
	}
	return out, nil
}

// MarkSynced marks a transaction as successfully exported.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET sync_status = 'synced', synced_at = CURRENT_TIMESTAMP
		WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark transaction synced: %w", err)
	}

	slog.InfoContext(ctx, "Transaction marked as synced", "id", id)
	return nil
}

// MarkSyncError flags a transaction whose export failed so the startup
// sweep can retry it.
func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET sync_status = 'error'
		WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark transaction sync error: %w", err)
	}

	slog.WarnContext(ctx, "Transaction marked with sync error", "id", id)
	return nil
}
