package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/ai-cooking-suggest/backend/config"
	"github.com/pageza/ai-cooking-suggest/backend/internal/api"
	"github.com/pageza/ai-cooking-suggest/backend/internal/database"
	"github.com/pageza/ai-cooking-suggest/backend/internal/logger"
	"github.com/pageza/ai-cooking-suggest/backend/internal/middleware"
	"github.com/pageza/ai-cooking-suggest/backend/internal/server"
	"github.com/pageza/ai-cooking-suggest/backend/internal/service"
	"github.com/pageza/ai-cooking-suggest/backend/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, config.IsProduction())
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db := openDatabase(cfg, log)
	if db != nil {
		defer func() { _ = database.Close(db) }()
	}

	redisClient := openRedis(cfg, log)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	llm, err := service.NewLLMService(cfg.LLM, log)
	if err != nil {
		return err
	}

	recipes := recipeStore(db, log)
	deps := api.Dependencies{
		Auth:    service.NewAuthService(db, cfg.JWTSecret, cfg.JWTExpiry),
		Recipes: service.NewRecipeService(llm, recipes, cfg.RecipesListLimit, log),
		Log:     log,
	}
	if cfg.RateLimit.Enabled && redisClient != nil {
		deps.Limiter = middleware.NewGenerationRateLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window, log)
	}

	srv := server.New(cfg, deps)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		log.Info("Received signal", zap.String("signal", sig.String()))
	}

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

// openDatabase returns nil when no database is configured or reachable; the server then
// keeps recipes in memory and auth endpoints report the database as unavailable.
func openDatabase(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := database.Open(cfg, log)
	if errors.Is(err, database.ErrNotConfigured) {
		log.Warn("No database configured, using in-memory storage")
		return nil
	}
	if err != nil {
		log.Warn("Database unavailable, using in-memory storage", zap.Error(err))
		return nil
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir, log); err != nil {
		log.Error("Failed to run migrations, using in-memory storage", zap.Error(err))
		_ = database.Close(db)
		return nil
	}
	return db
}

func openRedis(cfg *config.Config, log *zap.Logger) *redis.Client {
	if !cfg.RateLimit.Enabled || !cfg.HasRedis() {
		return nil
	}
	client, err := database.NewRedisClient(cfg, log)
	if err != nil {
		log.Warn("Redis unavailable, rate limiting disabled", zap.Error(err))
		return nil
	}
	return client
}

func recipeStore(db *gorm.DB, log *zap.Logger) store.RecipeStore {
	if db == nil {
		return store.NewMemoryRecipeStore()
	}
	return store.NewFallbackRecipeStore(store.NewGormRecipeStore(db), store.NewMemoryRecipeStore(), log)
}
