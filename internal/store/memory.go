package store

import (
	"context"
	"sort"
	"sync"

	"github.com/forkful/recipe-recommender/internal/domain"
)

// MemoryCatalog is an in-memory Catalog, used in tests and when running
// without Postgres.
type MemoryCatalog struct {
	mu      sync.RWMutex
	recipes map[string]domain.RecipeMetadata
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{recipes: make(map[string]domain.RecipeMetadata)}
}

func (c *MemoryCatalog) GetRecipe(_ context.Context, id string) (domain.RecipeMetadata, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.recipes[id]
	return r, ok, nil
}

func (c *MemoryCatalog) AllRecipes(_ context.Context) ([]domain.RecipeMetadata, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.RecipeMetadata, 0, len(c.recipes))
	for _, r := range c.recipes {
		out = append(out, r)
	}
	// Deterministic order keeps scoring reproducible given identical data.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *MemoryCatalog) AddRecipe(_ context.Context, recipe domain.RecipeMetadata) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.recipes[recipe.ID]; ok {
		return domain.ErrRecipeExists
	}
	c.recipes[recipe.ID] = recipe
	return nil
}

// MemoryInteractionLog is an in-memory InteractionLog. Reads return copies
// so scoring operates on a consistent snapshot while other users' writes
// proceed.
type MemoryInteractionLog struct {
	mu     sync.RWMutex
	byUser map[string][]domain.InteractionEvent
}

func NewMemoryInteractionLog() *MemoryInteractionLog {
	return &MemoryInteractionLog{byUser: make(map[string][]domain.InteractionEvent)}
}

func (l *MemoryInteractionLog) Append(_ context.Context, userID string, event domain.InteractionEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.byUser[userID] = append(l.byUser[userID], event)
	return nil
}

func (l *MemoryInteractionLog) History(_ context.Context, userID string) ([]domain.InteractionEvent, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.InteractionEvent(nil), l.byUser[userID]...), nil
}

func (l *MemoryInteractionLog) AllHistories(_ context.Context) (map[string][]domain.InteractionEvent, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string][]domain.InteractionEvent, len(l.byUser))
	for userID, events := range l.byUser {
		out[userID] = append([]domain.InteractionEvent(nil), events...)
	}
	return out, nil
}

func (l *MemoryInteractionLog) UserIDs(_ context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := make([]string, 0, len(l.byUser))
	for userID := range l.byUser {
		ids = append(ids, userID)
	}
	sort.Strings(ids)
	return ids, nil
}

// MemoryProfileStore is an in-memory ProfileStore.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.UserPreferenceProfile
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]domain.UserPreferenceProfile)}
}

func (s *MemoryProfileStore) Load(_ context.Context, userID string) (domain.UserPreferenceProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[userID].Clone(), nil
}

func (s *MemoryProfileStore) Save(_ context.Context, userID string, profile domain.UserPreferenceProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = profile.Clone()
	return nil
}
