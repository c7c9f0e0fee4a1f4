package service

import (
	"context"
	"testing"

	"github.com/forkful/recipe-recommender/internal/domain"
	"github.com/forkful/recipe-recommender/internal/engine"
	"github.com/forkful/recipe-recommender/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *store.MemoryCatalog) {
	t.Helper()
	catalog := store.NewMemoryCatalog()
	interactions := store.NewMemoryInteractionLog()
	profiles := store.NewMemoryProfileStore()
	eng := engine.New(catalog, interactions, profiles, zerolog.Nop())
	return New(eng, catalog, interactions, nil, zerolog.Nop()), catalog
}

func seedCatalog(t *testing.T, catalog *store.MemoryCatalog) {
	t.Helper()
	ctx := context.Background()
	recipes := []domain.RecipeMetadata{
		{ID: "r1", Name: "Margherita Pizza", Cuisine: "Italian", Difficulty: domain.DifficultyMedium, CookTime: 35, Tags: []string{"Vegetarian"}},
		{ID: "r2", Name: "Pad Thai", Cuisine: "Thai", Difficulty: domain.DifficultyMedium, CookTime: 30, Tags: []string{"Noodles"}},
		{ID: "r3", Name: "Greek Salad", Cuisine: "Greek", Difficulty: domain.DifficultyEasy, CookTime: 10, Tags: []string{"Vegetarian", "Fresh"}},
	}
	for _, r := range recipes {
		require.NoError(t, catalog.AddRecipe(ctx, r))
	}
}

func TestGetRecommendationsLimit(t *testing.T) {
	svc, catalog := newTestService(t)
	seedCatalog(t, catalog)
	ctx := context.Background()

	require.NoError(t, svc.RecordInteraction(ctx, "alice", "r1", domain.InteractionLike))

	result, err := svc.GetRecommendations(ctx, "alice", domain.FilterSpec{}, 1)
	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.False(t, result.CacheHit)
	assert.Len(t, result.Recommendations, 1)
}

func TestGetRecommendationsColdUser(t *testing.T) {
	svc, catalog := newTestService(t)
	seedCatalog(t, catalog)

	// No history, no profile: nothing collaborative, nothing content
	// based. The pipeline succeeds with an empty list rather than
	// falling back.
	result, err := svc.GetRecommendations(context.Background(), "stranger", domain.FilterSpec{}, 0)
	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.Empty(t, result.Recommendations)
}

func TestRecordInteractionThenRecommend(t *testing.T) {
	svc, catalog := newTestService(t)
	seedCatalog(t, catalog)
	ctx := context.Background()

	require.NoError(t, svc.RecordInteraction(ctx, "alice", "r1", domain.InteractionCook))

	result, err := svc.GetRecommendations(ctx, "alice", domain.FilterSpec{Dietary: []string{"Vegetarian"}}, 0)
	require.NoError(t, err)
	for _, rec := range result.Recommendations {
		assert.Contains(t, []string{"r1", "r3"}, rec.RecipeID, "dietary filter keeps vegetarian recipes only")
	}
}

func TestSimilarRecipesDefaultsLimit(t *testing.T) {
	svc, catalog := newTestService(t)
	seedCatalog(t, catalog)

	similar, err := svc.SimilarRecipes(context.Background(), "r1", 0)
	require.NoError(t, err)
	assert.Len(t, similar, 2)
}

func TestAddRecipeConflict(t *testing.T) {
	svc, catalog := newTestService(t)
	seedCatalog(t, catalog)

	err := svc.AddRecipe(context.Background(), domain.RecipeMetadata{ID: "r1"})
	assert.ErrorIs(t, err, domain.ErrRecipeExists)
}

func TestGetBatchRecommendations(t *testing.T) {
	svc, catalog := newTestService(t)
	seedCatalog(t, catalog)
	ctx := context.Background()

	for _, user := range []string{"alice", "bob", "carol"} {
		require.NoError(t, svc.RecordInteraction(ctx, user, "r1", domain.InteractionLike))
	}

	result, err := svc.GetBatchRecommendations(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalUsers)
	require.Len(t, result.Results, 2)
	assert.Equal(t, 2, result.Summary.SuccessCount)
	assert.Equal(t, 0, result.Summary.FailedCount)
	assert.Equal(t, "alice", result.Results[0].UserID, "users are paged in ascending order")
}

func TestGetBatchRecommendationsPageBeyondRange(t *testing.T) {
	svc, catalog := newTestService(t)
	seedCatalog(t, catalog)
	ctx := context.Background()
	require.NoError(t, svc.RecordInteraction(ctx, "alice", "r1", domain.InteractionLike))

	result, err := svc.GetBatchRecommendations(ctx, 50, 20)
	require.NoError(t, err)
	assert.Empty(t, result.Results)
	assert.Equal(t, 1, result.TotalUsers)
}
