package main

import (
	"context"
	"fmt"
	"os"

	"trivia-api/internal/bootstrap"
	"trivia-api/internal/config"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

const defaultSeedFile = "configs/seed_data/trivia.json"

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	// seed.file (TRIVIA_SEED_FILE) overrides the bundled dataset.
	file := cfg.Seed.File
	if file == "" {
		file = defaultSeedFile
	}

	if cfg.DB.Driver == config.DriverMemory {
		log.Fatal("Seeding the memory driver has no lasting effect; set seed.file for the API instead")
	}

	// The seeder always creates missing tables.
	cfg.DB.AutoSchema = true
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	defer store.Close()

	log.Info("Loading seed data from file", zap.String("path", file))
	result, err := store.SeedFromFile(ctx, file)
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Seeding process completed",
		zap.Bool("skipped", result.Skipped),
		zap.Int("categories", result.Categories),
		zap.Int("questions", result.Questions),
	)
}
