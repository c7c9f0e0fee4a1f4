package engine

import (
	"testing"
	"time"

	"github.com/forkful/recipe-recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func events(recipeIDs ...string) []domain.InteractionEvent {
	out := make([]domain.InteractionEvent, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		out = append(out, domain.InteractionEvent{RecipeID: id, Type: domain.InteractionView, Timestamp: time.Now()})
	}
	return out
}

func TestRecencyWeight(t *testing.T) {
	now := time.Now()

	assert.InDelta(t, 1.0, recencyWeight(now, now), 1e-9, "age zero weighs exactly 1")

	// Strictly decreasing in age.
	prev := recencyWeight(now, now)
	for _, days := range []int{1, 7, 30, 90, 365} {
		w := recencyWeight(now.Add(-time.Duration(days)*24*time.Hour), now)
		assert.Less(t, w, prev, "weight at %d days should be below the previous age", days)
		prev = w
	}

	// 30-day time constant: weight at 30 days is 1/e.
	thirty := recencyWeight(now.Add(-30*24*time.Hour), now)
	assert.InDelta(t, 0.3679, thirty, 0.001)
}

func TestInteractionWeightBaseWeights(t *testing.T) {
	now := time.Now()

	cases := map[domain.InteractionType]float64{
		domain.InteractionView:     1,
		domain.InteractionLike:     3,
		domain.InteractionFavorite: 5,
		domain.InteractionCook:     8,
		domain.InteractionRate:     4,
	}
	for typ, want := range cases {
		ev := domain.InteractionEvent{Type: typ, Timestamp: now}
		assert.InDelta(t, want, interactionWeight(ev, now), 1e-9, "type %s", typ)
	}

	// Unknown types are tolerated, weighted as views.
	unknown := domain.InteractionEvent{Type: "share", Timestamp: now}
	assert.InDelta(t, 1.0, interactionWeight(unknown, now), 1e-9)
}

func TestFindSimilarUsersJaccard(t *testing.T) {
	all := map[string][]domain.InteractionEvent{
		"alice": events("r1", "r2", "r3"),
		"bob":   events("r1", "r2", "r4"),       // J(alice,bob) = 2/4 = 0.5
		"carol": events("r5", "r6"),             // J(alice,carol) = 0
		"dave":  events("r1", "r7", "r8", "r9"), // J(alice,dave) = 1/6 ≈ 0.167
	}

	similar := findSimilarUsers("alice", all["alice"], all)
	require.Len(t, similar, 2)
	assert.Equal(t, "bob", similar[0].userID)
	assert.InDelta(t, 0.5, similar[0].similarity, 1e-9)
	assert.Equal(t, "dave", similar[1].userID)
}

func TestFindSimilarUsersSymmetric(t *testing.T) {
	all := map[string][]domain.InteractionEvent{
		"alice": events("r1", "r2", "r3"),
		"bob":   events("r2", "r3", "r4"),
	}

	fromAlice := findSimilarUsers("alice", all["alice"], all)
	fromBob := findSimilarUsers("bob", all["bob"], all)
	require.Len(t, fromAlice, 1)
	require.Len(t, fromBob, 1)
	assert.InDelta(t, fromAlice[0].similarity, fromBob[0].similarity, 1e-9)
}

func TestFindSimilarUsersThresholdAndEmpty(t *testing.T) {
	all := map[string][]domain.InteractionEvent{
		"alice": events("r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8", "r9", "r10"),
		// Exactly 0.10 similarity is excluded: 1 common of 10 total.
		"edge":  events("r1"),
		"empty": nil,
	}

	similar := findSimilarUsers("alice", all["alice"], all)
	assert.Empty(t, similar)
}

func TestFindSimilarUsersTopTen(t *testing.T) {
	all := map[string][]domain.InteractionEvent{"target": events("r1", "r2")}
	for i := 0; i < 15; i++ {
		all[string(rune('a'+i))] = events("r1", "r2")
	}

	similar := findSimilarUsers("target", all["target"], all)
	assert.Len(t, similar, 10)
	// Ties broken by ascending user ID.
	for i := 1; i < len(similar); i++ {
		assert.Less(t, similar[i-1].userID, similar[i].userID)
	}
}

func TestCollaborativeScoresAccumulate(t *testing.T) {
	now := time.Now()
	all := map[string][]domain.InteractionEvent{
		"alice": events("r1", "r2"),
		"bob": {
			{RecipeID: "r1", Type: domain.InteractionView, Timestamp: now},
			{RecipeID: "r3", Type: domain.InteractionCook, Timestamp: now},
		},
	}

	scores := collaborativeScores("alice", all["alice"], all, now)
	// J(alice,bob) = 1/3.
	require.Contains(t, scores, "r3")
	assert.InDelta(t, (1.0/3)*8, scores["r3"], 1e-6)
	assert.InDelta(t, (1.0/3)*1, scores["r1"], 1e-6)
}

func TestRecipeSimilarityIdentical(t *testing.T) {
	recipe := domain.RecipeMetadata{
		ID: "r1", Cuisine: "Italian", Difficulty: domain.DifficultyMedium,
		CookTime: 30, Tags: []string{"Pasta", "Classic"},
	}
	twin := recipe
	twin.ID = "r2"

	assert.InDelta(t, 1.0, RecipeSimilarity(recipe, twin), 1e-9)
}

func TestRecipeSimilarityDisjoint(t *testing.T) {
	a := domain.RecipeMetadata{
		ID: "a", Cuisine: "Italian", Difficulty: domain.DifficultyEasy,
		CookTime: 10, Tags: []string{"Pasta"},
	}
	b := domain.RecipeMetadata{
		ID: "b", Cuisine: "Thai", Difficulty: domain.DifficultyHard,
		CookTime: 120, Tags: []string{"Curry"},
	}

	assert.Less(t, RecipeSimilarity(a, b), 0.3)
}

func TestRecipeSimilarityZeroCookTime(t *testing.T) {
	a := domain.RecipeMetadata{ID: "a", Cuisine: "Greek", Tags: []string{"Fresh"}}
	b := domain.RecipeMetadata{ID: "b", Cuisine: "Greek", Tags: []string{"Fresh"}}

	// Both cook times are zero; the time term must not divide by zero and
	// counts the pair as identical in time.
	assert.InDelta(t, 1.0, RecipeSimilarity(a, b), 1e-9)
}
