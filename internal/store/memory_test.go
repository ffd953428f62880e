package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/ai-cooking-suggest/backend/internal/models"
)

func newRecipe(title string, owner *uuid.UUID, createdAt time.Time) *models.Recipe {
	return &models.Recipe{
		Title:       title,
		Ingredients: models.JSONBStringArray{"salt"},
		UserID:      owner,
		CreatedAt:   createdAt,
	}
}

func titles(recipes []*models.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Title
	}
	return out
}

func TestMemoryRecipeStore_ListRecentNewestFirst(t *testing.T) {
	s := NewMemoryRecipeStore()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, s.Insert(ctx, newRecipe("middle", nil, base.Add(-time.Hour))))
	require.NoError(t, s.Insert(ctx, newRecipe("oldest", nil, base.Add(-2*time.Hour))))
	require.NoError(t, s.Insert(ctx, newRecipe("newest", nil, base)))

	list, err := s.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"newest", "middle", "oldest"}, titles(list))

	limited, err := s.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"newest", "middle"}, titles(limited))
}

func TestMemoryRecipeStore_EqualTimestampsReverseInsertion(t *testing.T) {
	s := NewMemoryRecipeStore()
	ctx := context.Background()
	at := time.Now()

	require.NoError(t, s.Insert(ctx, newRecipe("first", nil, at)))
	require.NoError(t, s.Insert(ctx, newRecipe("second", nil, at)))

	list, err := s.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, titles(list))
}

func TestMemoryRecipeStore_ListByOwner(t *testing.T) {
	s := NewMemoryRecipeStore()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()
	base := time.Now()

	require.NoError(t, s.Insert(ctx, newRecipe("alice-old", &alice, base.Add(-time.Minute))))
	require.NoError(t, s.Insert(ctx, newRecipe("bob", &bob, base)))
	require.NoError(t, s.Insert(ctx, newRecipe("anon", nil, base)))
	require.NoError(t, s.Insert(ctx, newRecipe("alice-new", &alice, base)))

	list, err := s.ListByOwner(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice-new", "alice-old"}, titles(list))

	none, err := s.ListByOwner(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryRecipeStore_InsertAssignsID(t *testing.T) {
	s := NewMemoryRecipeStore()
	r := newRecipe("untitled", nil, time.Now())

	require.NoError(t, s.Insert(context.Background(), r))
	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, "memory", s.Kind())
}

func TestMemoryRecipeStore_ConcurrentInsert(t *testing.T) {
	s := NewMemoryRecipeStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Insert(ctx, newRecipe(fmt.Sprintf("r%d", i), nil, time.Now()))
			_, _ = s.ListRecent(ctx, 5)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
