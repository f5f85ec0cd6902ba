package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"kakebo/internal/core"
	"kakebo/internal/log"
)

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	case http.MethodGet:
		s.handleListTransactions(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := UserIDFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := ParseCreateTransactionRequest(r, userID)
	if err != nil {
		slog.WarnContext(ctx, "Rejected transaction payload", "user_id", userID, "error", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.backend.Append(ctx, t)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(ctx, "Failed to save transaction", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}

	s.invalidateUser(userID)

	fields := log.NewFields().
		WithComponent(log.ComponentHTTP).
		WithTransaction(userID, string(t.Type), t.Category, t.Amount.Cents)
	fields[log.FieldTxID] = id
	slog.InfoContext(ctx, "Transaction created", fields.ToSlice()...)

	respondJSON(w, http.StatusCreated, createdResponse{ID: id})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := UserIDFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	criteria, err := ParseFilterCriteria(r, time.Now(), s.windowDays)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	history, err := s.loadHistory(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to list transactions", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	matched := core.Filter(history, criteria)
	out := make([]transactionResponse, len(matched))
	for i, t := range matched {
		out[i] = toTransactionResponse(t)
	}
	summary := core.Summarize(matched)

	respondJSON(w, http.StatusOK, transactionListResponse{
		Transactions: out,
		Count:        len(out),
		Summary: periodSummaryResponse{
			IncomeCents:  summary.IncomeCents,
			ExpenseCents: summary.ExpenseCents,
			NetCents:     summary.NetCents,
		},
	})
}

func isValidationError(err error) bool {
	return errors.Is(err, core.ErrInvalidAmount) ||
		errors.Is(err, core.ErrInvalidType) ||
		errors.Is(err, core.ErrInvalidCategory) ||
		errors.Is(err, core.ErrInvalidDate) ||
		errors.Is(err, core.ErrEmptyUserID) ||
		errors.Is(err, core.ErrNotesTooLong) ||
		errors.Is(err, core.ErrInvalidGoal)
}
