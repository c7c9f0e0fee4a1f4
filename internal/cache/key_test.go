package cache

import (
	"testing"

	"github.com/forkful/recipe-recommender/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildKeyStableUnderFilterOrdering(t *testing.T) {
	a := domain.FilterSpec{
		Dietary: []string{"Vegetarian", "Vegan"},
		Cuisine: []string{"Thai", "Italian"},
		MaxTime: 30,
	}
	b := domain.FilterSpec{
		Dietary: []string{"Vegan", "Vegetarian"},
		Cuisine: []string{"Italian", "Thai"},
		MaxTime: 30,
	}

	assert.Equal(t, buildKey("alice", a), buildKey("alice", b),
		"equivalent filter sets share a cache entry")
}

func TestBuildKeyDistinguishesFilters(t *testing.T) {
	base := domain.FilterSpec{Dietary: []string{"Vegan"}}

	assert.NotEqual(t, buildKey("alice", base), buildKey("bob", base))
	assert.NotEqual(t,
		buildKey("alice", base),
		buildKey("alice", domain.FilterSpec{Dietary: []string{"Vegetarian"}}))
	assert.NotEqual(t,
		buildKey("alice", domain.FilterSpec{MaxTime: 30}),
		buildKey("alice", domain.FilterSpec{MaxCalories: 30}))
}

func TestBuildKeyIsPerUserPrefixed(t *testing.T) {
	key := buildKey("alice", domain.FilterSpec{})
	assert.Contains(t, key, "rec:user:alice:f:", "invalidation scans by user prefix")
}
