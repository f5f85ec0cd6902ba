package worker

import (
	"context"
	"errors"
	"testing"

	"kakebo/internal/amqp"
	"kakebo/internal/core"
	"kakebo/internal/storage"
)

type fakeStore struct {
	transactions map[string]core.Transaction
	pending      []storage.PendingSyncTransaction
	failed       []storage.PendingSyncTransaction
	synced       []string
	errored      []string
}

func (f *fakeStore) GetTransaction(_ context.Context, id string) (core.Transaction, error) {
	t, ok := f.transactions[id]
	if !ok {
		return core.Transaction{}, storage.ErrTransactionNotFound
	}
	return t, nil
}

func (f *fakeStore) GetPendingSyncTransactions(_ context.Context, limit int) ([]storage.PendingSyncTransaction, error) {
	if limit < len(f.pending) {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakeStore) GetUnsyncedTransactions(_ context.Context, limit int) ([]storage.PendingSyncTransaction, error) {
	all := append(append([]storage.PendingSyncTransaction{}, f.pending...), f.failed...)
	if limit < len(all) {
		return all[:limit], nil
	}
	return all, nil
}

func (f *fakeStore) MarkSynced(_ context.Context, id string) error {
	f.synced = append(f.synced, id)
	return nil
}

func (f *fakeStore) MarkSyncError(_ context.Context, id string) error {
	f.errored = append(f.errored, id)
	return nil
}

type fakeExporter struct {
	exported []string
	fail     bool
}

func (f *fakeExporter) Export(_ context.Context, t core.Transaction) error {
	if f.fail {
		return errors.New("sink unavailable")
	}
	f.exported = append(f.exported, t.ID)
	return nil
}

func sampleStoredTx(id string) core.Transaction {
	return core.Transaction{
		ID:       id,
		UserID:   "u1",
		Type:     core.Expense,
		Category: "Groceries",
		Amount:   core.Money{Cents: 2500},
		Date:     core.NewDate(2025, 6, 10),
	}
}

func TestHandleExportMessage(t *testing.T) {
	store := &fakeStore{transactions: map[string]core.Transaction{
		"t1": sampleStoredTx("t1"),
	}}
	sink := &fakeExporter{}
	w := NewExportWorker(store, sink, 10)

	msg := amqp.NewTransactionExportMessage("t1")
	if err := w.HandleExportMessage(context.Background(), msg); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(sink.exported) != 1 || sink.exported[0] != "t1" {
		t.Fatalf("expected t1 exported, got %v", sink.exported)
	}
	if len(store.synced) != 1 || store.synced[0] != "t1" {
		t.Fatalf("expected t1 marked synced, got %v", store.synced)
	}
}

func TestHandleExportMessageUnknownID(t *testing.T) {
	store := &fakeStore{transactions: map[string]core.Transaction{}}
	w := NewExportWorker(store, &fakeExporter{}, 10)

	msg := amqp.NewTransactionExportMessage("missing")
	if err := w.HandleExportMessage(context.Background(), msg); err == nil {
		t.Fatal("expected error for unknown transaction")
	}
}

func TestHandleExportMessageSinkFailure(t *testing.T) {
	store := &fakeStore{transactions: map[string]core.Transaction{
		"t1": sampleStoredTx("t1"),
	}}
	w := NewExportWorker(store, &fakeExporter{fail: true}, 10)

	msg := amqp.NewTransactionExportMessage("t1")
	if err := w.HandleExportMessage(context.Background(), msg); err == nil {
		t.Fatal("expected error when sink fails")
	}
	if len(store.errored) != 1 || store.errored[0] != "t1" {
		t.Fatalf("expected t1 marked with sync error, got %v", store.errored)
	}
	if len(store.synced) != 0 {
		t.Fatalf("failed export must not be marked synced, got %v", store.synced)
	}
}

func TestStartupSyncCheck(t *testing.T) {
	store := &fakeStore{
		transactions: map[string]core.Transaction{
			"t1": sampleStoredTx("t1"),
			"t2": sampleStoredTx("t2"),
		},
		pending: []storage.PendingSyncTransaction{
			{ID: "t1"}, {ID: "t2"}, {ID: "gone"},
		},
	}
	sink := &fakeExporter{}
	w := NewExportWorker(store, sink, 10)

	if err := w.StartupSyncCheck(context.Background()); err != nil {
		t.Fatalf("startup sync: %v", err)
	}
	if len(sink.exported) != 2 {
		t.Fatalf("expected 2 exports, got %v", sink.exported)
	}
	// the missing row is flagged, not fatal
	if len(store.errored) != 1 || store.errored[0] != "gone" {
		t.Fatalf("expected missing row marked with sync error, got %v", store.errored)
	}
}

func TestStartupSyncCheckRetriesErroredRows(t *testing.T) {
	store := &fakeStore{
		transactions: map[string]core.Transaction{
			"t1": sampleStoredTx("t1"),
			"t2": sampleStoredTx("t2"),
		},
		pending: []storage.PendingSyncTransaction{{ID: "t1"}},
		failed:  []storage.PendingSyncTransaction{{ID: "t2"}},
	}
	sink := &fakeExporter{}
	w := NewExportWorker(store, sink, 10)

	if err := w.StartupSyncCheck(context.Background()); err != nil {
		t.Fatalf("startup sync: %v", err)
	}
	if len(sink.exported) != 2 {
		t.Fatalf("expected the errored row to be retried alongside pending, got %v", sink.exported)
	}
	if len(store.synced) != 2 {
		t.Fatalf("expected both rows marked synced, got %v", store.synced)
	}
}

func TestProcessPendingTransactionsEmpty(t *testing.T) {
	store := &fakeStore{transactions: map[string]core.Transaction{}}
	w := NewExportWorker(store, &fakeExporter{}, 10)
	if err := w.ProcessPendingTransactions(context.Background()); err != nil {
		t.Fatalf("empty backlog should be a no-op, got %v", err)
	}
}
