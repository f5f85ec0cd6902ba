package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"kakebo/internal/core"
)

// Store is an in-memory ledger backend. It is safe for concurrent use and
// lists each user's transactions date-descending, matching the persistent
// backends.
type Store struct {
	mu    sync.Mutex
	items map[string][]core.Transaction
	goals map[string]core.SavingsGoal
}

func New() *Store {
	return &Store{
		items: make(map[string][]core.Transaction),
		goals: make(map[string]core.SavingsGoal),
	}
}

// Append validates and stores the transaction, assigning an ID when the
// caller left it empty.
func (s *Store) Append(_ context.Context, t core.Transaction) (string, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := t.Validate(); err != nil {
		return "", err
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[t.UserID] = append([]core.Transaction{t}, s.items[t.UserID]...)
	return t.ID, nil
}

// ListTransactions returns a copy of the user's history ordered by date
// descending, most recently created first within a day.
func (s *Store) ListTransactions(_ context.Context, userID string) ([]core.Transaction, error) {
	if userID == "" {
		return nil, core.ErrEmptyUserID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.items[userID]))
	copy(out, s.items[userID])
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.After(out[j].Date.Time)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetSavingsGoal returns the user's goal, or the zero goal if none was set.
func (s *Store) GetSavingsGoal(_ context.Context, userID string) (core.SavingsGoal, error) {
	if userID == "" {
		return core.SavingsGoal{}, core.ErrEmptyUserID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.goals[userID]
	if !ok {
		return core.SavingsGoal{UserID: userID}, nil
	}
	return g, nil
}

func (s *Store) PutSavingsGoal(_ context.Context, g core.SavingsGoal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals[g.UserID] = g
	return nil
}
