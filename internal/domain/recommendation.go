package domain

type ScoredRecommendation struct {
	RecipeID   string         `json:"recipe_id"`
	Score      float64        `json:"score"`
	FinalScore float64        `json:"final_score"`
	Recipe     RecipeMetadata `json:"recipe"`
}

type SimilarRecipe struct {
	RecipeID   string         `json:"recipe_id"`
	Similarity float64        `json:"similarity"`
	Recipe     RecipeMetadata `json:"recipe"`
}

type RecommendationMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	Fallback    bool   `json:"fallback"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type RecommendationResult struct {
	Recommendations []ScoredRecommendation
	CacheHit        bool
	Fallback        bool
}

type BatchStatus string

const (
	StatusSuccess BatchStatus = "success"
	StatusFailed  BatchStatus = "failed"
)

type BatchUserResult struct {
	UserID          string                 `json:"user_id"`
	Recommendations []ScoredRecommendation `json:"recommendations,omitempty"`
	Status          BatchStatus            `json:"status"`
	Error           string                 `json:"error,omitempty"`
	Message         string                 `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchMeta struct {
	GeneratedAt string `json:"generated_at"`
}

type BatchResponse struct {
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalUsers int               `json:"total_users"`
	Results    []BatchUserResult `json:"results"`
	Summary    BatchSummary      `json:"summary"`
	Metadata   BatchMeta         `json:"metadata"`
}
