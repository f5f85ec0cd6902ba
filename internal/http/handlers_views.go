package http

import (
	"log/slog"
	"net/http"
	"time"

	"kakebo/internal/core"
)

// handleSummary returns the period totals for the requested window plus the
// user's progress toward their savings goal, computed over net savings.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

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
		slog.ErrorContext(ctx, "Failed to load history for summary", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}

	goal, err := s.loadGoal(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load savings goal", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}

	summary := core.Summarize(core.Filter(history, criteria))
	progress := core.Progress(summary.NetCents, goal.TargetCents)

	respondJSON(w, http.StatusOK, summaryResponse{
		periodSummaryResponse: periodSummaryResponse{
			IncomeCents:  summary.IncomeCents,
			ExpenseCents: summary.ExpenseCents,
			NetCents:     summary.NetCents,
		},
		Savings: savingsResponse{
			TargetCents:     goal.TargetCents,
			Percent:         progress.Percent,
			DifferenceCents: progress.DifferenceCents,
		},
	})
}

// handleBreakdown returns expenses in the requested window grouped by
// category label, largest first.
func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

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
		slog.ErrorContext(ctx, "Failed to load history for breakdown", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to compute breakdown")
		return
	}

	byLabel := core.Breakdown(core.Filter(history, criteria))
	ranked := core.RankBreakdown(byLabel)

	rows := make([]breakdownRow, len(ranked))
	var total int64
	for i, row := range ranked {
		rows[i] = breakdownRow{Label: row.Label, AmountCents: row.Amount.Cents}
		total += row.Amount.Cents
	}

	respondJSON(w, http.StatusOK, breakdownResponse{
		Breakdown:  rows,
		TotalCents: total,
	})
}
