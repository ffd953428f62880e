package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/ai-cooking-suggest/backend/internal/api"
	"github.com/pageza/ai-cooking-suggest/backend/internal/models"
	"github.com/pageza/ai-cooking-suggest/backend/internal/service"
	"github.com/pageza/ai-cooking-suggest/backend/internal/store"
	"github.com/pageza/ai-cooking-suggest/backend/internal/testhelpers"
)

const testSecret = "test-secret"

type testEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	auth      *service.AuthService
	recipes   *store.MemoryRecipeStore
	generator *testhelpers.MockTextGenerator
}

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestEnv wires the real handlers to an in-memory sqlite database, an in-process
// recipe store and a mocked provider. withDB=false simulates a server without a database.
func setupTestEnv(t *testing.T, withDB bool) *testEnv {
	t.Helper()

	var db *gorm.DB
	if withDB {
		db = testhelpers.SetupSQLiteDB(t)
	}

	auth := service.NewAuthService(db, testSecret, time.Hour)
	recipes := store.NewMemoryRecipeStore()
	generator := new(testhelpers.MockTextGenerator)
	log := zap.NewNop()

	router := gin.New()
	api.RegisterRoutes(router, api.Dependencies{
		Auth:    auth,
		Recipes: service.NewRecipeService(generator, recipes, 20, log),
		Log:     log,
	})

	return &testEnv{router: router, db: db, auth: auth, recipes: recipes, generator: generator}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) tokenFor(t *testing.T, username string) (*models.User, string) {
	t.Helper()
	require.NotNil(t, e.db, "tokenFor needs a database")

	user := testhelpers.CreateTestUser(t, e.db, username, username+"@example.com", "secret1")
	token, err := e.auth.GenerateToken(user)
	require.NoError(t, err)
	return user, token
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, "body: %s", w.Body.String())
}

