package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forkful/recipe-recommender/internal/domain"
	"github.com/jackc/pgx/v5"
)

// Get single recipe; ok=false on a miss
func (r *Repository) GetRecipe(ctx context.Context, id string) (domain.RecipeMetadata, bool, error) {
	var recipe domain.RecipeMetadata

	err := r.pool.QueryRow(ctx,
		`SELECT id, name, cuisine, difficulty, cook_time_minutes, calories, tags, created_at
		 FROM recipes WHERE id = $1`,
		id,
	).Scan(&recipe.ID, &recipe.Name, &recipe.Cuisine, (*string)(&recipe.Difficulty),
		&recipe.CookTime, &recipe.Calories, &recipe.Tags, &recipe.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RecipeMetadata{}, false, nil
		}
		return domain.RecipeMetadata{}, false, fmt.Errorf("query recipe id=%s: %w", id, err)
	}

	return recipe, true, nil
}

func (r *Repository) AllRecipes(ctx context.Context) ([]domain.RecipeMetadata, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, cuisine, difficulty, cook_time_minutes, calories, tags, created_at
		 FROM recipes ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []domain.RecipeMetadata
	for rows.Next() {
		var recipe domain.RecipeMetadata
		err := rows.Scan(&recipe.ID, &recipe.Name, &recipe.Cuisine, (*string)(&recipe.Difficulty),
			&recipe.CookTime, &recipe.Calories, &recipe.Tags, &recipe.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over recipes: %w", err)
	}
	return recipes, nil
}

func (r *Repository) AddRecipe(ctx context.Context, recipe domain.RecipeMetadata) error {
	tags := recipe.Tags
	if tags == nil {
		tags = []string{}
	}

	tag, err := r.pool.Exec(ctx,
		`INSERT INTO recipes (id, name, cuisine, difficulty, cook_time_minutes, calories, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING`,
		recipe.ID, recipe.Name, recipe.Cuisine, string(recipe.Difficulty),
		recipe.CookTime, recipe.Calories, tags,
	)
	if err != nil {
		return fmt.Errorf("insert recipe id=%s: %w", recipe.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeExists
	}
	return nil
}
