package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/forkful/recipe-recommender/internal/cache"
	"github.com/forkful/recipe-recommender/internal/domain"
	"github.com/forkful/recipe-recommender/internal/engine"
	"github.com/forkful/recipe-recommender/internal/store"
	"github.com/rs/zerolog"
)

const (
	defaultLimit         = 20
	maxLimit             = 20
	defaultSimilarLimit  = 5
	maxSimilarLimit      = 20
	batchConcurrency     = 10
	batchUsersPerPage    = 20
	maxBatchUsersPerPage = 100
)

type Service struct {
	engine       *engine.Engine
	catalog      store.Catalog
	interactions store.InteractionLog
	cache        *cache.Cache
	logger       zerolog.Logger
}

// New wires the service. cache may be nil, in which case every request is
// scored fresh.
func New(eng *engine.Engine, catalog store.Catalog, interactions store.InteractionLog, c *cache.Cache, logger zerolog.Logger) *Service {
	return &Service{
		engine:       eng,
		catalog:      catalog,
		interactions: interactions,
		cache:        c,
		logger:       logger.With().Str("component", "service").Logger(),
	}
}

func (s *Service) GetRecommendations(ctx context.Context, userID string, filters domain.FilterSpec, limit int) (*domain.RecommendationResult, error) {
	if limit <= 0 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}

	// Check cache
	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, userID, filters)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("cache get failed")
		}
		if found {
			return &domain.RecommendationResult{
				Recommendations: truncate(cached, limit),
				CacheHit:        true,
			}, nil
		}
	}

	// Cache miss -> score fresh. The engine never fails; it degrades to
	// the static fallback list and reports that it did.
	recs, fallback := s.engine.GetRecommendations(ctx, userID, filters)

	// Don't cache fallback results; the next request should retry the
	// real pipeline.
	if s.cache != nil && !fallback {
		if cacheErr := s.cache.Set(ctx, userID, filters, recs); cacheErr != nil {
			s.logger.Warn().Err(cacheErr).Str("user_id", userID).Msg("cache set failed")
		}
	}

	return &domain.RecommendationResult{
		Recommendations: truncate(recs, limit),
		Fallback:        fallback,
	}, nil
}

// RecordInteraction appends the event, runs preference learning and
// invalidates the user's cached recommendations.
func (s *Service) RecordInteraction(ctx context.Context, userID, recipeID string, interactionType domain.InteractionType) error {
	if err := s.engine.RecordInteraction(ctx, userID, recipeID, interactionType); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.ClearUserCache(ctx, userID); err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("cache invalidation failed")
		}
	}
	return nil
}

func (s *Service) SimilarRecipes(ctx context.Context, recipeID string, limit int) ([]domain.SimilarRecipe, error) {
	if limit <= 0 {
		limit = defaultSimilarLimit
	} else if limit > maxSimilarLimit {
		limit = maxSimilarLimit
	}
	return s.engine.SimilarRecipes(ctx, recipeID, limit)
}

func (s *Service) AddRecipe(ctx context.Context, recipe domain.RecipeMetadata) error {
	return s.catalog.AddRecipe(ctx, recipe)
}

// GetBatchRecommendations scores a page of known users concurrently with a
// bounded worker pool. A failing user does not fail the batch.
func (s *Service) GetBatchRecommendations(ctx context.Context, page, limit int) (*domain.BatchResponse, error) {
	start := time.Now()

	if limit <= 0 {
		limit = batchUsersPerPage
	} else if limit > maxBatchUsersPerPage {
		limit = maxBatchUsersPerPage
	}
	if page <= 0 {
		page = 1
	}

	userIDs, err := s.interactions.UserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch user ids: %w", err)
	}
	totalUsers := len(userIDs)

	offset := (page - 1) * limit
	if offset > totalUsers {
		offset = totalUsers
	}
	end := offset + limit
	if end > totalUsers {
		end = totalUsers
	}
	pageIDs := userIDs[offset:end]

	results := make([]domain.BatchUserResult, len(pageIDs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, batchConcurrency) // semaphore

	for i, userID := range pageIDs {
		wg.Add(1)
		go func(idx int, uid string) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = s.processUserForBatch(ctx, uid)
		}(i, userID)
	}
	wg.Wait()

	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	return &domain.BatchResponse{
		Page:       page,
		Limit:      limit,
		TotalUsers: totalUsers,
		Results:    results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		},
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// Generates recommendations for a single user, capturing errors.
func (s *Service) processUserForBatch(ctx context.Context, userID string) domain.BatchUserResult {
	result, err := s.GetRecommendations(ctx, userID, domain.FilterSpec{}, defaultLimit)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("batch user failed")
		code, msg := categorizeError(err)
		return domain.BatchUserResult{
			UserID:  userID,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}

	return domain.BatchUserResult{
		UserID:          userID,
		Recommendations: result.Recommendations,
		Status:          domain.StatusSuccess,
	}
}

func truncate(recs []domain.ScoredRecommendation, limit int) []domain.ScoredRecommendation {
	if len(recs) > limit {
		return recs[:limit]
	}
	return recs
}

// Handle response error
func categorizeError(err error) (string, string) {
	if errors.Is(err, domain.ErrRecipeNotFound) {
		return "recipe_not_found", "recipe not found"
	}
	if errors.Is(err, domain.ErrRecipeExists) {
		return "recipe_exists", "recipe already registered"
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "request_timeout", "request timed out"
	}
	return "internal_error", "an unexpected error occurred"
}
