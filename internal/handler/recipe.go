package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/forkful/recipe-recommender/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// POST /recipes
//
// Catalog sync entry point. Entries are immutable: re-registering an
// existing ID is a conflict, not an update.
func (h *Handler) AddRecipe(w http.ResponseWriter, r *http.Request) {
	var recipe domain.RecipeMetadata
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Invalid request body")
		return
	}
	if recipe.ID == "" {
		writeError(w, http.StatusBadRequest, "invalid_body", "id is required")
		return
	}
	if recipe.CookTime < 0 || recipe.Calories < 0 {
		writeError(w, http.StatusBadRequest, "invalid_body", "cook_time_minutes and calories must be positive")
		return
	}

	if err := h.service.AddRecipe(r.Context(), recipe); err != nil {
		if errors.Is(err, domain.ErrRecipeExists) {
			writeError(w, http.StatusConflict, "recipe_exists",
				fmt.Sprintf("Recipe %s is already registered", recipe.ID))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// GET /recipes/{recipeID}/similar
func (h *Handler) SimilarRecipes(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "recipeID")
	if recipeID == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid recipe_id parameter")
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 20 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	similar, err := h.service.SimilarRecipes(r.Context(), recipeID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			writeError(w, http.StatusNotFound, "recipe_not_found",
				fmt.Sprintf("Recipe %s does not exist", recipeID))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, SimilarRecipesResponse{
		RecipeID: recipeID,
		Similar:  similar,
	})
}
