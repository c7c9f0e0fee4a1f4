package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/forkful/recipe-recommender/internal/domain"
	"github.com/go-chi/chi/v5"
)

// GET /users/{userID}/recommendations
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	filters, ok := parseFilters(w, r)
	if !ok {
		return
	}

	// Parse and validate limit
	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 20 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	result, err := h.service.GetRecommendations(r.Context(), userID, filters, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	resp := RecommendationResponse{
		UserID:          userID,
		Recommendations: result.Recommendations,
		Metadata: domain.RecommendationMeta{
			CacheHit:    result.CacheHit,
			Fallback:    result.Fallback,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalCount:  len(result.Recommendations),
		},
	}

	writeJSON(w, http.StatusOK, resp)
}

// parseFilters reads the filter set from query parameters. Set-valued
// filters are comma-separated. Returns ok=false after writing an error
// response for malformed numeric parameters.
func parseFilters(w http.ResponseWriter, r *http.Request) (domain.FilterSpec, bool) {
	q := r.URL.Query()
	filters := domain.FilterSpec{
		Dietary:    splitParam(q.Get("dietary")),
		Cuisine:    splitParam(q.Get("cuisine")),
		Difficulty: q.Get("difficulty"),
	}

	if v := q.Get("max_time"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid max_time parameter")
			return domain.FilterSpec{}, false
		}
		filters.MaxTime = parsed
	}

	if v := q.Get("max_calories"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid max_calories parameter")
			return domain.FilterSpec{}, false
		}
		filters.MaxCalories = parsed
	}

	return filters, true
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
