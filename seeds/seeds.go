package seeds

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type seedRecipe struct {
	id         string
	name       string
	cuisine    string
	difficulty string
	cookTime   int
	calories   int
	tags       []string
}

var recipes = []seedRecipe{
	{"r-001", "Margherita Pizza", "Italian", "Medium", 35, 820, []string{"Vegetarian", "Classic", "Baked"}},
	{"r-002", "Spaghetti Carbonara", "Italian", "Medium", 25, 760, []string{"Pasta", "Quick", "Classic"}},
	{"r-003", "Mushroom Risotto", "Italian", "Hard", 50, 640, []string{"Vegetarian", "Creamy", "Comfort"}},
	{"r-004", "Chicken Tikka Masala", "Indian", "Medium", 45, 710, []string{"Spicy", "Curry", "Comfort"}},
	{"r-005", "Chana Masala", "Indian", "Easy", 30, 430, []string{"Vegan", "Spicy", "Legumes"}},
	{"r-006", "Palak Paneer", "Indian", "Medium", 40, 520, []string{"Vegetarian", "Mild", "Curry"}},
	{"r-007", "Beef Tacos", "Mexican", "Easy", 20, 560, []string{"Quick", "Bold", "Street Food"}},
	{"r-008", "Veggie Burrito Bowl", "Mexican", "Easy", 25, 480, []string{"Vegetarian", "Zesty", "Bowl"}},
	{"r-009", "Chicken Enchiladas", "Mexican", "Medium", 55, 690, []string{"Spicy", "Baked", "Cheesy"}},
	{"r-010", "Pad Thai", "Thai", "Medium", 30, 580, []string{"Noodles", "Balanced", "Street Food"}},
	{"r-011", "Green Curry", "Thai", "Medium", 35, 610, []string{"Spicy", "Curry", "Coconut"}},
	{"r-012", "Tom Yum Soup", "Thai", "Easy", 25, 320, []string{"Hot", "Soup", "Gluten-Free"}},
	{"r-013", "Vegetable Stir Fry", "Chinese", "Easy", 15, 340, []string{"Vegan", "Quick", "Healthy"}},
	{"r-014", "Kung Pao Chicken", "Chinese", "Medium", 30, 620, []string{"Spicy", "Nuts", "Wok"}},
	{"r-015", "Vegetable Dumplings", "Chinese", "Hard", 75, 450, []string{"Vegetarian", "Steamed", "Handmade"}},
	{"r-016", "Teriyaki Salmon", "Japanese", "Easy", 20, 490, []string{"Fish", "Quick", "Gluten-Free"}},
	{"r-017", "Vegetable Ramen", "Japanese", "Hard", 90, 550, []string{"Vegetarian", "Soup", "Noodles"}},
	{"r-018", "Chicken Katsu", "Japanese", "Medium", 35, 720, []string{"Fried", "Crispy", "Comfort"}},
	{"r-019", "Greek Salad", "Greek", "Easy", 10, 280, []string{"Vegetarian", "Fresh", "Gluten-Free"}},
	{"r-020", "Moussaka", "Greek", "Hard", 95, 780, []string{"Baked", "Comfort", "Eggplant"}},
	{"r-021", "Falafel Wrap", "Middle Eastern", "Easy", 20, 510, []string{"Vegan", "Street Food", "Legumes"}},
	{"r-022", "Shakshuka", "Middle Eastern", "Easy", 25, 390, []string{"Vegetarian", "Eggs", "Mild"}},
	{"r-023", "Coq au Vin", "French", "Hard", 110, 840, []string{"Braised", "Classic", "Wine"}},
	{"r-024", "Ratatouille", "French", "Medium", 60, 310, []string{"Vegan", "Gluten-Free", "Subtle"}},
}

var interactionTypes = []string{"view", "like", "favorite", "cook", "rate"}
var interactionWeights = []float64{0.45, 0.25, 0.1, 0.12, 0.08}

// Setup inserts deterministic seed data: the recipe catalog, a set of
// users and their interaction histories. Profiles are learned at runtime,
// not seeded.
func Setup(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	logger.Info().Msg("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE interaction_events, user_preference_profiles, recipes RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	logger.Info().Msg("[seed] inserting recipes")
	if err := seedRecipes(ctx, pool); err != nil {
		return fmt.Errorf("seed recipes: %w", err)
	}

	logger.Info().Msg("[seed] inserting interaction history")
	if err := seedInteractions(ctx, pool, rng, 12, 240); err != nil {
		return fmt.Errorf("seed interactions: %w", err)
	}

	logger.Info().Msg("[seed] seeding complete")
	return nil
}

func seedRecipes(ctx context.Context, pool *pgxpool.Pool) error {
	rows := []string{}
	args := []any{}

	for i, r := range recipes {
		base := i * 7
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		args = append(args, r.id, r.name, r.cuisine, r.difficulty, r.cookTime, r.calories, r.tags)
	}

	query := fmt.Sprintf(`
		INSERT INTO recipes (id, name, cuisine, difficulty, cook_time_minutes, calories, tags)
		VALUES %s`, strings.Join(rows, ", "))
	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert recipes: %w", err)
	}
	return nil
}

func seedInteractions(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, users, events int) error {
	rows := []string{}
	args := []any{}

	for i := 0; i < events; i++ {
		userID := fmt.Sprintf("user-%03d", rng.Intn(users)+1)
		recipe := recipes[rng.Intn(len(recipes))]
		interactionType := weightedChoice(rng, interactionTypes, interactionWeights)
		occurredAt := time.Now().Add(-time.Duration(rng.Intn(60*24)) * time.Hour)

		base := i * 4
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, userID, recipe.id, interactionType, occurredAt)
	}

	query := fmt.Sprintf(`
		INSERT INTO interaction_events (user_id, recipe_id, interaction_type, occurred_at)
		VALUES %s`, strings.Join(rows, ", "))
	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert interaction events: %w", err)
	}
	return nil
}

func weightedChoice(rng *rand.Rand, choices []string, weights []float64) string {
	r := rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}
