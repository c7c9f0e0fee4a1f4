package engine

import (
	"math"
	"sort"
	"time"

	"github.com/forkful/recipe-recommender/internal/domain"
)

// similarUser is a neighbor found by the Jaccard search.
type similarUser struct {
	userID     string
	similarity float64
}

// baseInteractionWeights rank interaction types by strength of signal.
// Unrecognized types fall back to the view weight rather than failing.
var baseInteractionWeights = map[domain.InteractionType]float64{
	domain.InteractionView:     1,
	domain.InteractionLike:     3,
	domain.InteractionFavorite: 5,
	domain.InteractionCook:     8,
	domain.InteractionRate:     4,
}

// findSimilarUsers computes Jaccard similarity between the requesting
// user's interacted-recipe set and every other known user's set, keeping
// neighbors above the similarity threshold, best first, at most
// maxSimilarUsers. Ties are broken by ascending user ID so results do not
// depend on map iteration order.
func findSimilarUsers(userID string, history []domain.InteractionEvent, all map[string][]domain.InteractionEvent) []similarUser {
	interacted := recipeSet(history)

	similar := make([]similarUser, 0)
	for otherID, otherHistory := range all {
		if otherID == userID {
			continue
		}
		other := recipeSet(otherHistory)

		intersection := 0
		for id := range interacted {
			if _, ok := other[id]; ok {
				intersection++
			}
		}
		union := len(interacted) + len(other) - intersection
		if union == 0 {
			// Similarity is undefined for two empty histories.
			continue
		}

		similarity := float64(intersection) / float64(union)
		if similarity > minUserSimilarity {
			similar = append(similar, similarUser{userID: otherID, similarity: similarity})
		}
	}

	sort.Slice(similar, func(i, j int) bool {
		if similar[i].similarity != similar[j].similarity {
			return similar[i].similarity > similar[j].similarity
		}
		return similar[i].userID < similar[j].userID
	})
	if len(similar) > maxSimilarUsers {
		similar = similar[:maxSimilarUsers]
	}
	return similar
}

// collaborativeScores accumulates, for every recipe a similar user touched,
// similarity x interaction weight. Scores are not normalized.
func collaborativeScores(userID string, history []domain.InteractionEvent, all map[string][]domain.InteractionEvent, now time.Time) map[string]float64 {
	scores := make(map[string]float64)
	for _, neighbor := range findSimilarUsers(userID, history, all) {
		for _, event := range all[neighbor.userID] {
			scores[event.RecipeID] += neighbor.similarity * interactionWeight(event, now)
		}
	}
	return scores
}

func interactionWeight(event domain.InteractionEvent, now time.Time) float64 {
	base, ok := baseInteractionWeights[event.Type]
	if !ok {
		base = 1
	}
	return base * recencyWeight(event.Timestamp, now)
}

// recencyWeight decays exponentially with a 30-day time constant, so an
// interaction at age zero weighs exactly 1.0.
func recencyWeight(timestamp, now time.Time) float64 {
	ageDays := now.Sub(timestamp).Hours() / 24
	return math.Exp(-ageDays / 30)
}

func recipeSet(history []domain.InteractionEvent) map[string]struct{} {
	set := make(map[string]struct{}, len(history))
	for _, event := range history {
		set[event.RecipeID] = struct{}{}
	}
	return set
}

// RecipeSimilarity scores how alike two recipes are on cuisine, tags,
// difficulty and cooking time, for content-based neighbor lookups.
func RecipeSimilarity(a, b domain.RecipeMetadata) float64 {
	similarity := 0.0

	if a.Cuisine == b.Cuisine {
		similarity += 0.3
	}

	common := 0
	bTags := make(map[string]struct{}, len(b.Tags))
	for _, tag := range b.Tags {
		bTags[tag] = struct{}{}
	}
	for _, tag := range a.Tags {
		if _, ok := bTags[tag]; ok {
			common++
		}
	}
	maxTags := max(len(a.Tags), len(b.Tags), 1)
	similarity += 0.4 * float64(common) / float64(maxTags)

	if a.Difficulty == b.Difficulty {
		similarity += 0.2
	}

	if maxTime := max(a.CookTime, b.CookTime); maxTime > 0 {
		diff := a.CookTime - b.CookTime
		if diff < 0 {
			diff = -diff
		}
		similarity += 0.1 * (1 - float64(diff)/float64(maxTime))
	} else {
		// Both unknown or zero: identical as far as time is concerned.
		similarity += 0.1
	}

	return similarity
}
