package engine

import (
	"strings"

	"github.com/forkful/recipe-recommender/internal/domain"
)

// Content scoring term weights. The terms are additive, so a recipe that
// matches every learned preference scores close to 1.
const (
	cuisineTermWeight    = 0.30
	dietaryTermWeight    = 0.25
	timeTermWeight       = 0.20
	difficultyTermWeight = 0.15
	spiceTermWeight      = 0.10
)

// timeRange maps a time preference to an acceptable cook-time window and
// its ideal midpoint.
type timeRange struct {
	min, max, ideal int
}

var timeRanges = map[domain.TimePreference]timeRange{
	domain.TimeQuick:  {min: 0, max: 20, ideal: 15},
	domain.TimeMedium: {min: 15, max: 45, ideal: 30},
	domain.TimeSlow:   {min: 30, max: 120, ideal: 60},
}

var spiceKeywords = map[domain.SpicePreference][]string{
	domain.SpiceMild:   {"mild", "gentle", "subtle"},
	domain.SpiceMedium: {"medium", "moderate", "balanced"},
	domain.SpiceSpicy:  {"spicy", "hot", "fiery", "bold", "zesty"},
}

// contentScores rates every catalog recipe against the user's learned
// preferences. An entirely empty profile yields an empty map, not a
// zero-filled one: the hybrid blend must not see every catalog recipe as a
// candidate on preference evidence that does not exist.
func contentScores(profile domain.UserPreferenceProfile, recipes []domain.RecipeMetadata) map[string]float64 {
	if profile.IsEmpty() {
		return map[string]float64{}
	}

	scores := make(map[string]float64, len(recipes))
	for _, recipe := range recipes {
		score := 0.0

		if len(profile.PreferredCuisines) > 0 && recipe.Cuisine != "" {
			if containsString(profile.PreferredCuisines, recipe.Cuisine) {
				score += cuisineTermWeight
			}
		}

		if len(profile.DietaryPreferences) > 0 && len(recipe.Tags) > 0 {
			matched := 0
			for _, diet := range profile.DietaryPreferences {
				if tagContains(recipe.Tags, diet) {
					matched++
				}
			}
			score += dietaryTermWeight * float64(matched) / float64(len(profile.DietaryPreferences))
		}

		if profile.TimePreference != "" && recipe.CookTime > 0 {
			score += timeTermWeight * timePreferenceScore(profile.TimePreference, recipe.CookTime)
		}

		if profile.SkillLevel != "" && recipe.Difficulty != "" && profile.SkillLevel == recipe.Difficulty {
			score += difficultyTermWeight
		}

		if profile.SpicePreference != "" && len(recipe.Tags) > 0 {
			score += spiceTermWeight * spicePreferenceScore(profile.SpicePreference, recipe.Tags)
		}

		scores[recipe.ID] = score
	}
	return scores
}

// timePreferenceScore is 1 at the preference's ideal cook time, falls off
// linearly toward the window edges, and is 0 outside the window. An
// unrecognized preference gets a neutral 0.5.
func timePreferenceScore(pref domain.TimePreference, cookTime int) float64 {
	r, ok := timeRanges[pref]
	if !ok {
		return 0.5
	}
	if cookTime < r.min || cookTime > r.max {
		return 0
	}
	distance := cookTime - r.ideal
	if distance < 0 {
		distance = -distance
	}
	maxDistance := float64(r.max-r.min) / 2
	score := 1 - float64(distance)/maxDistance
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// spicePreferenceScore is 1 if any tag mentions a keyword of the user's
// spice level, else 0.
func spicePreferenceScore(pref domain.SpicePreference, tags []string) float64 {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, keyword := range spiceKeywords[pref] {
			if strings.Contains(lower, keyword) {
				return 1
			}
		}
	}
	return 0
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// tagContains reports whether needle appears case-insensitively as a
// substring of any tag.
func tagContains(tags []string, needle string) bool {
	lowered := strings.ToLower(needle)
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), lowered) {
			return true
		}
	}
	return false
}
