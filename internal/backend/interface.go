package backend

import (
	"context"

	"kakebo/internal/ledger"
)

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result contains the backend instance and optional cleanup function.
type Result struct {
	Backend ledger.Backend
	Cleanup CleanupFunc
}

// Factory creates backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for backend creation.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// Type selects the ledger backend.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
