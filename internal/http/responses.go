package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"kakebo/internal/core"
)

type errorResponse struct {
	Error string `json:"error"`
}

type transactionResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Label       string `json:"label"`
	AmountCents int64  `json:"amount_cents"`
	Date        string `json:"date"`
	Notes       string `json:"notes,omitempty"`
}

type periodSummaryResponse struct {
	IncomeCents  int64 `json:"income_cents"`
	ExpenseCents int64 `json:"expense_cents"`
	NetCents     int64 `json:"net_cents"`
}

type transactionListResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
	Summary      periodSummaryResponse `json:"summary"`
}

type savingsResponse struct {
	TargetCents     int64   `json:"target_cents"`
	Percent         float64 `json:"percent"`
	DifferenceCents int64   `json:"difference_cents"`
}

type summaryResponse struct {
	periodSummaryResponse
	Savings savingsResponse `json:"savings"`
}

type breakdownRow struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amount_cents"`
}

type breakdownResponse struct {
	Breakdown  []breakdownRow `json:"breakdown"`
	TotalCents int64          `json:"total_cents"`
}

type goalResponse struct {
	TargetCents int64 `json:"target_cents"`
}

type createdResponse struct {
	ID string `json:"id"`
}

func toTransactionResponse(t core.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Category:    t.Category,
		Label:       core.CategoryLabel(t.Category),
		AmountCents: t.Amount.Cents,
		Date:        t.Date.Format(time.DateOnly),
		Notes:       t.Notes,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}
