package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/ai-cooking-suggest/backend/internal/models"
	"github.com/pageza/ai-cooking-suggest/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	Generate(ctx context.Context, ingredients []string, identity *types.Identity) (*models.Recipe, error)
	ListRecent(ctx context.Context) ([]*models.Recipe, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error)
	StorageKind() string
}

var (
	_ IAuthService   = (*AuthService)(nil)
	_ IRecipeService = (*RecipeService)(nil)
	_ TextGenerator  = (*LLMService)(nil)
)
