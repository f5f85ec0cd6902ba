package http

import (
	"log/slog"
	"net/http"
)

func (s *Server) handleSavingsGoal(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGetSavingsGoal(w, r)
	case http.MethodPut:
		s.handlePutSavingsGoal(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleGetSavingsGoal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := UserIDFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := s.loadGoal(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to get savings goal", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get savings goal")
		return
	}

	respondJSON(w, http.StatusOK, goalResponse{TargetCents: goal.TargetCents})
}

func (s *Server) handlePutSavingsGoal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := UserIDFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := ParseUpdateGoalRequest(r, userID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.backend.PutSavingsGoal(ctx, goal); err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(ctx, "Failed to save savings goal", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save savings goal")
		return
	}

	s.invalidateUser(userID)

	slog.InfoContext(ctx, "Savings goal updated",
		"user_id", userID, "target_cents", goal.TargetCents)

	respondJSON(w, http.StatusOK, goalResponse{TargetCents: goal.TargetCents})
}
