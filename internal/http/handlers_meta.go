package http

import (
	"net/http"

	"kakebo/internal/core"
)

// handleCategories returns the fixed category catalog in display order.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"categories": core.Categories(),
	})
}

// handleReflection returns the static monthly reflection prompts.
func (s *Server) handleReflection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"prompts": core.ReflectionPrompts(),
	})
}
