package engine

import (
	"context"
	"testing"
	"time"

	"github.com/forkful/recipe-recommender/internal/domain"
	"github.com/forkful/recipe-recommender/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	catalog      *store.MemoryCatalog
	interactions *store.MemoryInteractionLog
	profiles     *store.MemoryProfileStore
	engine       *Engine
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()
	f := &testFixture{
		catalog:      store.NewMemoryCatalog(),
		interactions: store.NewMemoryInteractionLog(),
		profiles:     store.NewMemoryProfileStore(),
	}
	f.engine = New(f.catalog, f.interactions, f.profiles, zerolog.Nop())
	return f
}

func (f *testFixture) addRecipe(t *testing.T, recipe domain.RecipeMetadata) {
	t.Helper()
	require.NoError(t, f.catalog.AddRecipe(context.Background(), recipe))
}

func TestLearnFromInteraction(t *testing.T) {
	f := newFixture(t)
	f.addRecipe(t, domain.RecipeMetadata{
		ID: "r1", Cuisine: "Indian", Difficulty: domain.DifficultyMedium,
		CookTime: 40, Tags: []string{"Vegetarian", "Curry"},
	})

	ctx := context.Background()
	require.NoError(t, f.engine.RecordInteraction(ctx, "alice", "r1", domain.InteractionLike))

	profile, err := f.profiles.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Indian"}, profile.PreferredCuisines)
	assert.Equal(t, []string{"Vegetarian"}, profile.DietaryPreferences, "only dietary tags are learned")
	assert.Equal(t, domain.TimeMedium, profile.TimePreference)
	assert.Equal(t, domain.DifficultyMedium, profile.SkillLevel)
}

func TestLearnTimeThresholds(t *testing.T) {
	cases := []struct {
		cookTime int
		want     domain.TimePreference
	}{
		{20, domain.TimeQuick},
		{21, domain.TimeMedium},
		{45, domain.TimeMedium},
		{46, domain.TimeSlow},
	}

	for _, tc := range cases {
		f := newFixture(t)
		f.addRecipe(t, domain.RecipeMetadata{ID: "r1", CookTime: tc.cookTime})

		ctx := context.Background()
		require.NoError(t, f.engine.RecordInteraction(ctx, "alice", "r1", domain.InteractionView))

		profile, err := f.profiles.Load(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, tc.want, profile.TimePreference, "cook time %d", tc.cookTime)
	}
}

func TestLearnIsLastWins(t *testing.T) {
	f := newFixture(t)
	f.addRecipe(t, domain.RecipeMetadata{ID: "quick", CookTime: 10, Difficulty: domain.DifficultyEasy})
	f.addRecipe(t, domain.RecipeMetadata{ID: "slow", CookTime: 90, Difficulty: domain.DifficultyHard})

	ctx := context.Background()
	require.NoError(t, f.engine.RecordInteraction(ctx, "alice", "quick", domain.InteractionCook))
	require.NoError(t, f.engine.RecordInteraction(ctx, "alice", "slow", domain.InteractionView))

	// The most recent interaction overwrites, regardless of type weight.
	profile, err := f.profiles.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.TimeSlow, profile.TimePreference)
	assert.Equal(t, domain.DifficultyHard, profile.SkillLevel)
}

func TestLearnUnknownRecipeIsNoOp(t *testing.T) {
	f := newFixture(t)

	ctx := context.Background()
	require.NoError(t, f.engine.RecordInteraction(ctx, "alice", "missing", domain.InteractionCook))

	// Event is logged (it may predate catalog sync) but no preference is
	// learned from it.
	history, err := f.interactions.History(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, history, 1)

	profile, err := f.profiles.Load(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, profile.IsEmpty())
}

func TestRecordInteractionChronologicalOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, id := range []string{"r1", "r2", "r3"} {
		require.NoError(t, f.engine.RecordInteraction(ctx, "alice", id, domain.InteractionView))
	}

	history, err := f.interactions.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "r1", history[0].RecipeID)
	assert.Equal(t, "r3", history[2].RecipeID)
	assert.False(t, history[2].Timestamp.Before(history[0].Timestamp))
}

func TestRecordInteractionConcurrentSameUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const n = 50
	done := make(chan struct{})
	for i := 0; i < n; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_ = f.engine.RecordInteraction(ctx, "alice", "r1", domain.InteractionView)
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}

	history, err := f.interactions.History(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, history, n, "no lost updates under concurrent writes")

	var last time.Time
	for _, event := range history {
		assert.False(t, event.Timestamp.Before(last), "append order is chronological")
		last = event.Timestamp
	}
}
