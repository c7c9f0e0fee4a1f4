package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forkful/recipe-recommender/internal/domain"
	"github.com/jackc/pgx/v5"
)

// Load a profile; an unknown user gets the zero profile, not an error.
func (r *Repository) Load(ctx context.Context, userID string) (domain.UserPreferenceProfile, error) {
	var profile domain.UserPreferenceProfile

	err := r.pool.QueryRow(ctx,
		`SELECT preferred_cuisines, dietary_preferences, time_preference, skill_level, spice_preference
		 FROM user_preference_profiles WHERE user_id = $1`,
		userID,
	).Scan(&profile.PreferredCuisines, &profile.DietaryPreferences,
		(*string)(&profile.TimePreference), (*string)(&profile.SkillLevel),
		(*string)(&profile.SpicePreference))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserPreferenceProfile{}, nil
		}
		return domain.UserPreferenceProfile{}, fmt.Errorf("query profile for user %s: %w", userID, err)
	}

	return profile, nil
}

func (r *Repository) Save(ctx context.Context, userID string, profile domain.UserPreferenceProfile) error {
	// nil slices would encode as SQL NULL; the columns are NOT NULL.
	cuisines := profile.PreferredCuisines
	if cuisines == nil {
		cuisines = []string{}
	}
	dietary := profile.DietaryPreferences
	if dietary == nil {
		dietary = []string{}
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_preference_profiles
			(user_id, preferred_cuisines, dietary_preferences, time_preference, skill_level, spice_preference, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())
		 ON CONFLICT (user_id) DO UPDATE SET
			preferred_cuisines = EXCLUDED.preferred_cuisines,
			dietary_preferences = EXCLUDED.dietary_preferences,
			time_preference = EXCLUDED.time_preference,
			skill_level = EXCLUDED.skill_level,
			spice_preference = EXCLUDED.spice_preference,
			updated_at = now()`,
		userID, cuisines, dietary,
		string(profile.TimePreference), string(profile.SkillLevel), string(profile.SpicePreference),
	)
	if err != nil {
		return fmt.Errorf("upsert profile for user %s: %w", userID, err)
	}
	return nil
}
