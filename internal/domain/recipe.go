package domain

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// RecipeMetadata is immutable once registered. Optional fields use zero
// values for "absent": empty Cuisine/Difficulty, zero CookTime/Calories.
type RecipeMetadata struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Cuisine    string     `json:"cuisine,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	CookTime   int        `json:"cook_time_minutes,omitempty"`
	Calories   int        `json:"calories,omitempty"`
	Tags       []string   `json:"tags"`
	CreatedAt  time.Time  `json:"created_at"`
}
