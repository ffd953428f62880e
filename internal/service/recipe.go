package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/ai-cooking-suggest/backend/internal/models"
	"github.com/pageza/ai-cooking-suggest/backend/internal/store"
	"github.com/pageza/ai-cooking-suggest/backend/internal/types"
)

// RecipeService turns ingredient lists into stored recipes
type RecipeService struct {
	generator TextGenerator
	store     store.RecipeStore
	listLimit int
	log       *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(generator TextGenerator, recipes store.RecipeStore, listLimit int, log *zap.Logger) *RecipeService {
	return &RecipeService{
		generator: generator,
		store:     recipes,
		listLimit: listLimit,
		log:       log,
	}
}

// Generate asks the provider for a recipe built from ingredients, parses the reply and
// persists the result. identity may be nil for anonymous callers.
func (s *RecipeService) Generate(ctx context.Context, ingredients []string, identity *types.Identity) (*models.Recipe, error) {
	ingredients = cleanIngredients(ingredients)
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}

	s.log.Info("Generating recipe", zap.Strings("ingredients", ingredients))

	reply, err := s.generator.Complete(ctx, BuildRecipePrompt(ingredients))
	if err != nil {
		s.log.Error("Recipe generation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	parsed := ParseRecipeText(reply, ingredients)
	s.log.Info("Parsed recipe",
		zap.String("title", parsed.Title),
		zap.String("cooking_time", parsed.CookingTime),
		zap.String("servings", parsed.Servings),
		zap.String("difficulty", parsed.Difficulty),
	)

	recipe := &models.Recipe{
		ID:           uuid.New(),
		Title:        parsed.Title,
		Description:  parsed.Description,
		Ingredients:  models.JSONBStringArray(parsed.Ingredients),
		Instructions: parsed.Instructions,
		CookingTime:  parsed.CookingTime,
		Servings:     parsed.Servings,
		Difficulty:   parsed.Difficulty,
		CreatedAt:    time.Now().UTC(),
	}
	if identity != nil {
		userID := identity.UserID
		recipe.UserID = &userID
	}

	if err := s.store.Insert(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to store recipe: %w", err)
	}

	return recipe, nil
}

// ListRecent returns the newest recipes from every user, bounded by the configured limit.
func (s *RecipeService) ListRecent(ctx context.Context) ([]*models.Recipe, error) {
	return s.store.ListRecent(ctx, s.listLimit)
}

// ListByOwner returns every recipe requested by userID, newest first.
func (s *RecipeService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	return s.store.ListByOwner(ctx, userID)
}

// StorageKind names the storage recipes are written to.
func (s *RecipeService) StorageKind() string {
	return s.store.Kind()
}

func cleanIngredients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
