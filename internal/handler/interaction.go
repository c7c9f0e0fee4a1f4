package handler

import (
	"net/http"

	"github.com/forkful/recipe-recommender/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// POST /users/{userID}/interactions
//
// The write path is fire-and-forget from the caller's perspective: a
// well-formed request is acknowledged with 202 once the event is recorded.
// Unknown interaction types are accepted and weighted as views.
func (h *Handler) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	var req InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Invalid request body")
		return
	}
	if req.RecipeID == "" || req.Type == "" {
		writeError(w, http.StatusBadRequest, "invalid_body", "recipe_id and type are required")
		return
	}

	if err := h.service.RecordInteraction(r.Context(), userID, req.RecipeID, domain.InteractionType(req.Type)); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
