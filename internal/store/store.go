// Package store persists generated recipes behind the RecipeStore interface. The gorm store
// is durable; the memory store lives and dies with the process.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/ai-cooking-suggest/backend/internal/models"
)

// RecipeStore is the persistence boundary for recipes. Both list operations return
// records newest first.
type RecipeStore interface {
	Insert(ctx context.Context, recipe *models.Recipe) error
	ListRecent(ctx context.Context, limit int) ([]*models.Recipe, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error)
	// Kind names the backing storage, for health reporting.
	Kind() string
}
