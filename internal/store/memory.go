package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pageza/ai-cooking-suggest/backend/internal/models"
)

// MemoryRecipeStore keeps recipes in process memory. Contents are lost on restart.
type MemoryRecipeStore struct {
	mu      sync.RWMutex
	recipes []*models.Recipe
}

func NewMemoryRecipeStore() *MemoryRecipeStore {
	return &MemoryRecipeStore{}
}

func (s *MemoryRecipeStore) Insert(_ context.Context, recipe *models.Recipe) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	s.mu.Lock()
	s.recipes = append(s.recipes, recipe)
	s.mu.Unlock()
	return nil
}

func (s *MemoryRecipeStore) ListRecent(_ context.Context, limit int) ([]*models.Recipe, error) {
	out := s.newestFirst(func(*models.Recipe) bool { return true })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryRecipeStore) ListByOwner(_ context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	return s.newestFirst(func(r *models.Recipe) bool { return r.OwnedBy(userID) }), nil
}

func (s *MemoryRecipeStore) Kind() string {
	return "memory"
}

// Len returns the number of stored recipes.
func (s *MemoryRecipeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

// newestFirst copies the matching recipes ordered by CreatedAt descending. Recipes with
// equal timestamps keep reverse insertion order.
func (s *MemoryRecipeStore) newestFirst(keep func(*models.Recipe) bool) []*models.Recipe {
	s.mu.RLock()
	out := make([]*models.Recipe, 0, len(s.recipes))
	for i := len(s.recipes) - 1; i >= 0; i-- {
		if keep(s.recipes[i]) {
			out = append(out, s.recipes[i])
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
