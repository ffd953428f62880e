package testhelpers

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/ai-cooking-suggest/backend/internal/models"
)

// WellFormedReply is a provider reply using every labeled section.
const WellFormedReply = "TITLE: Egg Fried Rice\nINGREDIENTS:\n- 2 eggs\n- 1 cup rice\nINSTRUCTIONS:\n1. Beat eggs.\n2. Fry rice.\nCOOKING_TIME: 15 minutes\nSERVINGS: 2\nDIFFICULTY: Easy"

// CreateTestUser inserts a user whose password is hashed with the minimum bcrypt cost.
func CreateTestUser(t *testing.T, db *gorm.DB, username, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// NewTestRecipe builds an unsaved recipe created at the given offset from now.
func NewTestRecipe(title string, owner *uuid.UUID, age time.Duration) *models.Recipe {
	return &models.Recipe{
		ID:           uuid.New(),
		Title:        title,
		Description:  fmt.Sprintf("%s description", title),
		Ingredients:  models.JSONBStringArray{"salt", "pepper"},
		Instructions: "Cook.",
		CookingTime:  "10 minutes",
		Servings:     "2",
		Difficulty:   "Easy",
		UserID:       owner,
		CreatedAt:    time.Now().UTC().Add(-age),
	}
}

// DecodeJSON unmarshals a response body into v, failing the test on error.
func DecodeJSON(t *testing.T, body []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, v), "body: %s", string(body))
}
