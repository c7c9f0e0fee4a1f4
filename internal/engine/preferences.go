package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/forkful/recipe-recommender/internal/domain"
)

// Tags that feed dietary preference learning, matched case-insensitively.
var learnableDietaryTags = map[string]struct{}{
	"vegetarian":  {},
	"vegan":       {},
	"gluten-free": {},
}

// RecordInteraction appends an event to the user's history and runs the
// learning step. Writes for the same user are serialized; independent
// users proceed in parallel.
func (e *Engine) RecordInteraction(ctx context.Context, userID, recipeID string, interactionType domain.InteractionType) error {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	event := domain.InteractionEvent{
		RecipeID:  recipeID,
		Type:      interactionType,
		Timestamp: e.now(),
	}
	if err := e.interactions.Append(ctx, userID, event); err != nil {
		return fmt.Errorf("append interaction for user %s: %w", userID, err)
	}
	if err := e.learnFromInteraction(ctx, userID, recipeID); err != nil {
		return fmt.Errorf("learn from interaction for user %s: %w", userID, err)
	}
	return nil
}

// learnFromInteraction updates the user's preference profile from the
// recipe they just acted on. A recipe missing from the catalog is a
// silent no-op: the event may simply predate catalog sync.
//
// The learner is intentionally last-wins. Time preference and skill level
// are overwritten by each interaction with no averaging, and the
// interaction type carries no weight. Recency weighting exists only in
// collaborative scoring.
func (e *Engine) learnFromInteraction(ctx context.Context, userID, recipeID string) error {
	recipe, ok, err := e.catalog.GetRecipe(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("catalog lookup %s: %w", recipeID, err)
	}
	if !ok {
		return nil
	}

	profile, err := e.profiles.Load(ctx, userID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	if recipe.Cuisine != "" && !containsString(profile.PreferredCuisines, recipe.Cuisine) {
		profile.PreferredCuisines = append(profile.PreferredCuisines, recipe.Cuisine)
	}

	for _, tag := range recipe.Tags {
		if _, learnable := learnableDietaryTags[strings.ToLower(tag)]; !learnable {
			continue
		}
		if !containsString(profile.DietaryPreferences, tag) {
			profile.DietaryPreferences = append(profile.DietaryPreferences, tag)
		}
	}

	if recipe.CookTime > 0 {
		switch {
		case recipe.CookTime <= 20:
			profile.TimePreference = domain.TimeQuick
		case recipe.CookTime <= 45:
			profile.TimePreference = domain.TimeMedium
		default:
			profile.TimePreference = domain.TimeSlow
		}
	}

	if recipe.Difficulty != "" {
		profile.SkillLevel = recipe.Difficulty
	}

	if err := e.profiles.Save(ctx, userID, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
