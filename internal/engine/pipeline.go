package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/forkful/recipe-recommender/internal/domain"
)

const (
	cuisineDiversityBoost    = 0.10
	difficultyDiversityBoost = 0.05
)

// GetRecommendations runs the full scoring pipeline for a user: read a
// snapshot of profile, history and catalog, blend collaborative and
// content scores, filter, rank and diversify. It never fails: any error or
// panic inside the pipeline degrades to the static fallback list, and the
// second return value reports that degradation.
func (e *Engine) GetRecommendations(ctx context.Context, userID string, filters domain.FilterSpec) (recs []domain.ScoredRecommendation, fallback bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Str("user_id", userID).Interface("panic", r).
				Msg("scoring pipeline panicked, serving fallback")
			recs, fallback = FallbackRecommendations(), true
		}
	}()

	recs, err := e.generate(ctx, userID, filters)
	if err != nil {
		e.logger.Error().Err(err).Str("user_id", userID).
			Msg("scoring pipeline failed, serving fallback")
		return FallbackRecommendations(), true
	}
	return recs, false
}

func (e *Engine) generate(ctx context.Context, userID string, filters domain.FilterSpec) ([]domain.ScoredRecommendation, error) {
	profile, err := e.profiles.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	histories, err := e.interactions.AllHistories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load interaction histories: %w", err)
	}
	recipes, err := e.catalog.AllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	now := e.now()
	collab := collaborativeScores(userID, histories[userID], histories, now)
	content := contentScores(profile, recipes)
	hybrid := hybridScores(collab, content)

	byID := make(map[string]domain.RecipeMetadata, len(recipes))
	for _, recipe := range recipes {
		byID[recipe.ID] = recipe
	}

	filtered := applyAdvancedFilters(hybrid, byID, filters)
	return rankRecommendations(filtered), nil
}

// hybridScores linearly blends the two score maps over the union of their
// keys, treating a missing entry as zero.
func hybridScores(collab, content map[string]float64) map[string]float64 {
	hybrid := make(map[string]float64, len(collab)+len(content))
	for recipeID, score := range collab {
		hybrid[recipeID] = score * collaborativeWeight
	}
	for recipeID, score := range content {
		hybrid[recipeID] += score * contentWeight
	}
	return hybrid
}

// applyAdvancedFilters resolves every scored recipe against the catalog
// and drops those failing the request's filter set. Recipes without
// catalog metadata are discarded outright, never defaulted.
func applyAdvancedFilters(scores map[string]float64, catalog map[string]domain.RecipeMetadata, filters domain.FilterSpec) []domain.ScoredRecommendation {
	filtered := make([]domain.ScoredRecommendation, 0, len(scores))
	for recipeID, score := range scores {
		recipe, ok := catalog[recipeID]
		if !ok {
			continue
		}
		if !matchesFilters(recipe, filters) {
			continue
		}
		filtered = append(filtered, domain.ScoredRecommendation{
			RecipeID: recipeID,
			Score:    score,
			Recipe:   recipe,
		})
	}
	return filtered
}

func matchesFilters(recipe domain.RecipeMetadata, filters domain.FilterSpec) bool {
	if len(filters.Dietary) > 0 {
		matched := false
		for _, diet := range filters.Dietary {
			// The dietary term drops hyphens before the substring match
			// ("gluten-free" is compared as "glutenfree"). Quirky, but
			// callers depend on it; see DESIGN.md before changing.
			needle := strings.ReplaceAll(strings.ToLower(diet), "-", "")
			if tagContains(recipe.Tags, needle) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(filters.Cuisine) > 0 {
		matched := false
		lower := strings.ToLower(recipe.Cuisine)
		for _, cuisine := range filters.Cuisine {
			if recipe.Cuisine != "" && strings.Contains(lower, strings.ToLower(cuisine)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if filters.Difficulty != "" && filters.Difficulty != "all" {
		if string(recipe.Difficulty) != filters.Difficulty {
			return false
		}
	}

	if filters.MaxTime > 0 && recipe.CookTime > filters.MaxTime {
		return false
	}

	if filters.MaxCalories > 0 && recipe.Calories > 0 && recipe.Calories > filters.MaxCalories {
		return false
	}

	return true
}

// rankRecommendations sorts by score, applies the diversity boost and
// truncates to the final list size.
func rankRecommendations(filtered []domain.ScoredRecommendation) []domain.ScoredRecommendation {
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	diverse := applyDiversityBoost(filtered)
	if len(diverse) > maxRecommendations {
		diverse = diverse[:maxRecommendations]
	}
	return diverse
}

// applyDiversityBoost makes a single left-to-right pass in score order,
// rewarding the first occurrence of each cuisine and difficulty, then
// re-sorts on the boosted score. Greedy and order-dependent on purpose:
// the boost goes to the first-seen recipe of an attribute, not to a
// globally optimal diverse set.
func applyDiversityBoost(recipes []domain.ScoredRecommendation) []domain.ScoredRecommendation {
	seenCuisines := make(map[string]struct{})
	seenDifficulties := make(map[domain.Difficulty]struct{})

	boosted := make([]domain.ScoredRecommendation, 0, len(recipes))
	for _, rec := range recipes {
		final := rec.Score
		if _, ok := seenCuisines[rec.Recipe.Cuisine]; !ok {
			final += cuisineDiversityBoost
			seenCuisines[rec.Recipe.Cuisine] = struct{}{}
		}
		if _, ok := seenDifficulties[rec.Recipe.Difficulty]; !ok {
			final += difficultyDiversityBoost
			seenDifficulties[rec.Recipe.Difficulty] = struct{}{}
		}
		rec.FinalScore = final
		boosted = append(boosted, rec)
	}

	sort.SliceStable(boosted, func(i, j int) bool {
		return boosted[i].FinalScore > boosted[j].FinalScore
	})
	return boosted
}

// FallbackRecommendations is the static list served when the pipeline
// fails. It is curated, not computed from the catalog, so it is available
// even when the catalog itself is the failure.
func FallbackRecommendations() []domain.ScoredRecommendation {
	return []domain.ScoredRecommendation{
		{
			RecipeID:   "fallback-1",
			Score:      0.8,
			FinalScore: 0.8,
			Recipe: domain.RecipeMetadata{
				ID:         "fallback-1",
				Name:       "Classic Pasta Carbonara",
				Cuisine:    "Italian",
				Difficulty: domain.DifficultyMedium,
				CookTime:   25,
				Tags:       []string{"Pasta", "Quick", "Classic"},
			},
		},
		{
			RecipeID:   "fallback-2",
			Score:      0.7,
			FinalScore: 0.7,
			Recipe: domain.RecipeMetadata{
				ID:         "fallback-2",
				Name:       "Garden Vegetable Stir Fry",
				Cuisine:    "Asian",
				Difficulty: domain.DifficultyEasy,
				CookTime:   15,
				Tags:       []string{"Vegetarian", "Quick", "Healthy"},
			},
		},
	}
}
