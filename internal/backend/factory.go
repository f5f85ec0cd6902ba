package backend

import (
	"context"
	"fmt"
	"log/slog"

	"kakebo/internal/adapters"
	"kakebo/internal/amqp"
	"kakebo/internal/ledger/memory"
	"kakebo/internal/services"
	"kakebo/internal/storage"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateBackend implements Factory.CreateBackend.
func (f *DefaultFactory) CreateBackend(_ context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(config)
	case MemoryBackend:
		return f.createMemoryBackend()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	// AMQP is optional. Without it the worker's startup sweep still exports.
	var amqpClient *amqp.Client
	if config.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without export queue", "error", err)
		} else {
			f.logger.Info("Initialized AMQP client",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
		}
	}

	service := services.NewTransactionService(repo, amqpClient)
	adapter := adapters.NewSQLiteAdapter(repo, service)

	f.logger.Info("Initialized SQLite backend",
		"db_path", config.SQLiteDBPath,
		"amqp_enabled", amqpClient != nil)

	return &Result{
		Backend: adapter,
		Cleanup: service.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend() (*Result, error) {
	f.logger.Info("Initialized memory backend")

	return &Result{
		Backend: memory.New(),
		Cleanup: nil,
	}, nil
}
