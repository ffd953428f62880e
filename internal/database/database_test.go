package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/ai-cooking-suggest/backend/config"
	"github.com/pageza/ai-cooking-suggest/backend/internal/database"
	"github.com/pageza/ai-cooking-suggest/backend/internal/models"
	"github.com/pageza/ai-cooking-suggest/backend/internal/testhelpers"
)

func TestOpen_NotConfigured(t *testing.T) {
	db, err := database.Open(&config.Config{DBDriver: "postgres"}, zap.NewNop())

	assert.ErrorIs(t, err, database.ErrNotConfigured)
	assert.Nil(t, db)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "cooking.db"),
	}

	db, err := database.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.RunMigrations(db, "does-not-matter", zap.NewNop()))
	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Recipe{}))
	assert.NoError(t, database.HealthCheck(context.Background(), db))
}

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "cook",
		DBPassword: "pw",
		DBName:     "recipes",
		DBSSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=cook password=pw dbname=recipes sslmode=disable", database.DSN(cfg))

	cfg.DatabaseURL = "postgres://cook:pw@db/recipes"
	assert.Equal(t, "postgres://cook:pw@db/recipes", database.DSN(cfg))
}

func TestRunMigrations_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	migrations := filepath.Join("..", "..", "migrations")
	db := testhelpers.SetupPostgresDB(t, migrations)

	// Re-running skips files already recorded.
	require.NoError(t, database.RunMigrations(db, migrations, zap.NewNop()))

	var applied int64
	require.NoError(t, db.Table("migrations").Count(&applied).Error)
	assert.Equal(t, int64(2), applied)

	user := testhelpers.CreateTestUser(t, db, "chef", "chef@example.com", "secret1")
	recipe := testhelpers.NewTestRecipe("Stew", &user.ID, 0)
	require.NoError(t, db.Create(recipe).Error)

	var loaded models.Recipe
	require.NoError(t, db.First(&loaded, "id = ?", recipe.ID).Error)
	assert.Equal(t, models.JSONBStringArray{"salt", "pepper"}, loaded.Ingredients)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	cfg := &config.Config{RedisHost: "127.0.0.1", RedisPort: "1"}

	client, err := database.NewRedisClient(cfg, zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, client)
}
