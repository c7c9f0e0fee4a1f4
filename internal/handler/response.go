package handler

import "github.com/forkful/recipe-recommender/internal/domain"

type RecommendationResponse struct {
	UserID          string                        `json:"user_id"`
	Recommendations []domain.ScoredRecommendation `json:"recommendations"`
	Metadata        domain.RecommendationMeta     `json:"metadata"`
}

type SimilarRecipesResponse struct {
	RecipeID string                 `json:"recipe_id"`
	Similar  []domain.SimilarRecipe `json:"similar"`
}

type InteractionRequest struct {
	RecipeID string `json:"recipe_id"`
	Type     string `json:"type"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
