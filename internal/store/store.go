// Package store defines the storage contracts the recommendation engine
// depends on, keeping the scoring pipeline agnostic of where catalog,
// interaction and profile data actually live.
package store

import (
	"context"

	"github.com/forkful/recipe-recommender/internal/domain"
)

// Catalog holds recipe metadata keyed by recipe ID. Entries are immutable
// once registered; a lookup miss is reported via ok=false, not an error.
type Catalog interface {
	GetRecipe(ctx context.Context, id string) (domain.RecipeMetadata, bool, error)
	AllRecipes(ctx context.Context) ([]domain.RecipeMetadata, error)
	AddRecipe(ctx context.Context, recipe domain.RecipeMetadata) error
}

// InteractionLog holds per-user interaction events in chronological
// (append) order.
type InteractionLog interface {
	Append(ctx context.Context, userID string, event domain.InteractionEvent) error
	History(ctx context.Context, userID string) ([]domain.InteractionEvent, error)
	// AllHistories returns every known user's history, used by the
	// similar-user search. Callers receive a snapshot they may not mutate
	// concurrently with writers.
	AllHistories(ctx context.Context) (map[string][]domain.InteractionEvent, error)
	// UserIDs returns every user with at least one recorded event, in
	// ascending order.
	UserIDs(ctx context.Context) ([]string, error)
}

// ProfileStore holds learned preference profiles. Loading an unknown user
// yields the zero profile, never an error.
type ProfileStore interface {
	Load(ctx context.Context, userID string) (domain.UserPreferenceProfile, error)
	Save(ctx context.Context, userID string, profile domain.UserPreferenceProfile) error
}
