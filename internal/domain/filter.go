package domain

// FilterSpec is request-scoped and never persisted. Empty slices and zero
// values mean "no constraint". Difficulty accepts "all" as no constraint.
type FilterSpec struct {
	Dietary     []string `json:"dietary,omitempty"`
	Cuisine     []string `json:"cuisine,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	MaxTime     int      `json:"max_time,omitempty"`
	MaxCalories int      `json:"max_calories,omitempty"`
}
