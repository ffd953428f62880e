package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pageza/ai-cooking-suggest/backend/config"
	"github.com/pageza/ai-cooking-suggest/backend/internal/database"
	"github.com/pageza/ai-cooking-suggest/backend/internal/logger"
)

func main() {
	cfg := config.Load()

	dir := flag.String("dir", cfg.MigrationsDir, "directory containing .sql migration files")
	flag.Parse()

	log := logger.New(cfg.LogLevel, config.IsProduction())
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.RunMigrations(db, *dir, log); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("All migrations applied successfully", zap.String("dir", *dir))
}
