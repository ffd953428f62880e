package store

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/ai-cooking-suggest/backend/internal/models"
)

// FallbackRecipeStore writes to and reads from a primary store and switches to a
// secondary store for any call where the primary fails. Inserts therefore never fail
// while the secondary is an in-memory store.
type FallbackRecipeStore struct {
	primary   RecipeStore
	secondary RecipeStore
	log       *zap.Logger
}

func NewFallbackRecipeStore(primary, secondary RecipeStore, log *zap.Logger) *FallbackRecipeStore {
	return &FallbackRecipeStore{primary: primary, secondary: secondary, log: log}
}

func (s *FallbackRecipeStore) Insert(ctx context.Context, recipe *models.Recipe) error {
	err := s.primary.Insert(ctx, recipe)
	if err == nil {
		return nil
	}
	s.log.Warn("Primary recipe store insert failed, using fallback storage",
		zap.String("primary", s.primary.Kind()),
		zap.String("fallback", s.secondary.Kind()),
		zap.Error(err),
	)
	return s.secondary.Insert(ctx, recipe)
}

func (s *FallbackRecipeStore) ListRecent(ctx context.Context, limit int) ([]*models.Recipe, error) {
	recipes, err := s.primary.ListRecent(ctx, limit)
	if err == nil {
		return recipes, nil
	}
	s.log.Warn("Primary recipe store list failed, using fallback storage", zap.Error(err))
	return s.secondary.ListRecent(ctx, limit)
}

func (s *FallbackRecipeStore) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	recipes, err := s.primary.ListByOwner(ctx, userID)
	if err == nil {
		return recipes, nil
	}
	s.log.Warn("Primary recipe store owner list failed, using fallback storage",
		zap.String("user_id", userID.String()),
		zap.Error(err),
	)
	return s.secondary.ListByOwner(ctx, userID)
}

func (s *FallbackRecipeStore) Kind() string {
	return s.primary.Kind()
}
