package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/forkful/recipe-recommender/internal/domain"
)

// SimilarRecipes returns the catalog recipes most alike the given one,
// best first, at most limit entries.
func (e *Engine) SimilarRecipes(ctx context.Context, recipeID string, limit int) ([]domain.SimilarRecipe, error) {
	target, ok, err := e.catalog.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup %s: %w", recipeID, err)
	}
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}

	recipes, err := e.catalog.AllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	neighbors := make([]domain.SimilarRecipe, 0, len(recipes))
	for _, candidate := range recipes {
		if candidate.ID == recipeID {
			continue
		}
		neighbors = append(neighbors, domain.SimilarRecipe{
			RecipeID:   candidate.ID,
			Similarity: RecipeSimilarity(target, candidate),
			Recipe:     candidate,
		})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})
	if limit > 0 && len(neighbors) > limit {
		neighbors = neighbors[:limit]
	}
	return neighbors, nil
}
