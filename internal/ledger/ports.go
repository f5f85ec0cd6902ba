package ledger

import (
	"context"

	"kakebo/internal/core"
)

// Ports for outbound adapters.
type (
	TransactionWriter interface {
		Append(ctx context.Context, t core.Transaction) (id string, err error)
	}

	// TransactionLister returns a user's history, newest first. Filtering
	// and aggregation happen in core on the returned snapshot.
	TransactionLister interface {
		ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error)
	}

	// GoalReader loads a user's savings goal. A user with no goal yet gets
	// the zero goal, not an error.
	GoalReader interface {
		GetSavingsGoal(ctx context.Context, userID string) (core.SavingsGoal, error)
	}

	GoalWriter interface {
		PutSavingsGoal(ctx context.Context, g core.SavingsGoal) error
	}

	// TransactionExporter pushes a stored transaction to an external sink.
	TransactionExporter interface {
		Export(ctx context.Context, t core.Transaction) error
	}
)

// Backend bundles the ports the HTTP layer needs from a single store.
type Backend interface {
	TransactionWriter
	TransactionLister
	GoalReader
	GoalWriter
}
