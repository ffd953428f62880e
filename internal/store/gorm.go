package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/ai-cooking-suggest/backend/internal/models"
)

// GormRecipeStore stores recipes in the relational database.
type GormRecipeStore struct {
	db *gorm.DB
}

// NewGormRecipeStore creates a new GormRecipeStore instance
func NewGormRecipeStore(db *gorm.DB) *GormRecipeStore {
	return &GormRecipeStore{db: db}
}

// Insert creates a recipe row
func (s *GormRecipeStore) Insert(ctx context.Context, recipe *models.Recipe) error {
	return s.db.WithContext(ctx).Create(recipe).Error
}

// ListRecent returns at most limit recipes, newest first
func (s *GormRecipeStore) ListRecent(ctx context.Context, limit int) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	query := s.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListByOwner returns every recipe requested by userID, newest first
func (s *GormRecipeStore) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *GormRecipeStore) Kind() string {
	return s.db.Dialector.Name()
}
