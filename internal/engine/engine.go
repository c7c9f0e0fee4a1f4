// Package engine implements the hybrid recipe recommendation engine:
// Jaccard-similarity collaborative filtering blended with weighted
// content-based scoring, followed by filtering and a greedy diversity
// re-rank.
package engine

import (
	"sync"
	"time"

	"github.com/forkful/recipe-recommender/internal/store"
	"github.com/rs/zerolog"
)

const (
	// Hybrid blend weights.
	collaborativeWeight = 0.6
	contentWeight       = 0.4

	// Similar-user search.
	minUserSimilarity = 0.1
	maxSimilarUsers   = 10

	// Final list size.
	maxRecommendations = 20
)

// Engine scores a candidate set of recipes for a user. It is stateless per
// request aside from its three collaborators, which are injected by the
// host application.
type Engine struct {
	catalog      store.Catalog
	interactions store.InteractionLog
	profiles     store.ProfileStore
	logger       zerolog.Logger

	now func() time.Time

	// Serializes the record-then-learn write path per user. Independent
	// users never contend on the same stripe unless their IDs collide.
	userLocks [64]sync.Mutex
}

func New(catalog store.Catalog, interactions store.InteractionLog, profiles store.ProfileStore, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog:      catalog,
		interactions: interactions,
		profiles:     profiles,
		logger:       logger.With().Str("component", "engine").Logger(),
		now:          time.Now,
	}
}

func (e *Engine) userLock(userID string) *sync.Mutex {
	h := uint32(2166136261)
	for i := 0; i < len(userID); i++ {
		h ^= uint32(userID[i])
		h *= 16777619
	}
	return &e.userLocks[h%uint32(len(e.userLocks))]
}
