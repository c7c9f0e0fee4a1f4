package domain

import "time"

type InteractionType string

const (
	InteractionView     InteractionType = "view"
	InteractionLike     InteractionType = "like"
	InteractionFavorite InteractionType = "favorite"
	InteractionCook     InteractionType = "cook"
	InteractionRate     InteractionType = "rate"
)

// InteractionEvent is an append-only record of a user acting on a recipe.
// RecipeID is a weak reference: the recipe may not be in the catalog yet.
type InteractionEvent struct {
	RecipeID  string          `json:"recipe_id"`
	Type      InteractionType `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
}
