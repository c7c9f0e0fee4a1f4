package repository

import (
	"context"
	"fmt"

	"github.com/forkful/recipe-recommender/internal/domain"
)

func (r *Repository) Append(ctx context.Context, userID string, event domain.InteractionEvent) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO interaction_events (user_id, recipe_id, interaction_type, occurred_at)
		 VALUES ($1, $2, $3, $4)`,
		userID, event.RecipeID, string(event.Type), event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert interaction for user %s: %w", userID, err)
	}
	return nil
}

func (r *Repository) History(ctx context.Context, userID string) ([]domain.InteractionEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT recipe_id, interaction_type, occurred_at
		 FROM interaction_events
		 WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query history for user %s: %w", userID, err)
	}
	defer rows.Close()

	var events []domain.InteractionEvent
	for rows.Next() {
		var event domain.InteractionEvent
		if err := rows.Scan(&event.RecipeID, (*string)(&event.Type), &event.Timestamp); err != nil {
			return nil, fmt.Errorf("scan interaction event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over interaction events: %w", err)
	}
	return events, nil
}

func (r *Repository) AllHistories(ctx context.Context) (map[string][]domain.InteractionEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, recipe_id, interaction_type, occurred_at
		 FROM interaction_events
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query interaction events: %w", err)
	}
	defer rows.Close()

	histories := make(map[string][]domain.InteractionEvent)
	for rows.Next() {
		var userID string
		var event domain.InteractionEvent
		if err := rows.Scan(&userID, &event.RecipeID, (*string)(&event.Type), &event.Timestamp); err != nil {
			return nil, fmt.Errorf("scan interaction event: %w", err)
		}
		histories[userID] = append(histories[userID], event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over interaction events: %w", err)
	}
	return histories, nil
}

func (r *Repository) UserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT user_id FROM interaction_events ORDER BY user_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query user ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user ids: %w", err)
	}
	return ids, nil
}
