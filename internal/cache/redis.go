package cache

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"github.com/forkful/recipe-recommender/internal/domain"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func buildKey(userID string, filters domain.FilterSpec) string {
	return fmt.Sprintf("rec:user:%s:f:%s", userID, filterFingerprint(filters))
}

// filterFingerprint is stable under the ordering of filter set members, so
// equivalent requests share a cache entry.
func filterFingerprint(filters domain.FilterSpec) string {
	dietary := append([]string(nil), filters.Dietary...)
	sort.Strings(dietary)
	cuisine := append([]string(nil), filters.Cuisine...)
	sort.Strings(cuisine)

	var b strings.Builder
	b.WriteString("d=")
	b.WriteString(strings.Join(dietary, ","))
	b.WriteString(";c=")
	b.WriteString(strings.Join(cuisine, ","))
	fmt.Fprintf(&b, ";df=%s;t=%d;cal=%d", filters.Difficulty, filters.MaxTime, filters.MaxCalories)

	h := fnv.New64a()
	h.Write([]byte(b.String()))
	return fmt.Sprintf("%x", h.Sum64())
}

// Get recommendations from cache; found=false on a miss
func (c *Cache) Get(ctx context.Context, userID string, filters domain.FilterSpec) ([]domain.ScoredRecommendation, bool, error) {
	key := buildKey(userID, filters)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to get recommendations from cache: %w", err)
	}

	var recs []domain.ScoredRecommendation
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal recommendations %s: %w", key, err)
	}

	return recs, true, nil
}

// Store recommendations in cache
func (c *Cache) Set(ctx context.Context, userID string, filters domain.FilterSpec, recs []domain.ScoredRecommendation) error {
	key := buildKey(userID, filters)
	val, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set recommendations in cache: %w", err)
	}

	return nil
}

// Clear user cache: used when the user's interaction history changes
func (c *Cache) ClearUserCache(ctx context.Context, userID string) error {
	pattern := fmt.Sprintf("rec:user:%s:f:*", userID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
