package bootstrap

import (
	"context"
	"fmt"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"
	"trivia-api/internal/seed"

	"go.uber.org/zap"
)

// Store bundles the persistence ports for the configured driver.
type Store struct {
	Categories   domain.CategoryRepository
	Questions    domain.QuestionRepository
	Transactions domain.TransactionManager
	close        func() error
}

// Close releases the underlying connection pool, if any.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore connects to the configured backend. The memory driver needs no
// connection; sql drivers are pinged and, with db.auto_schema, migrated.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	log := logger.Get()

	if cfg.DB.Driver == config.DriverMemory {
		log.Info("Using in-memory store")
		mem := repository.NewMemoryStore()
		return &Store{Categories: mem, Questions: mem, Transactions: mem}, nil
	}

	db, err := database.NewSQLXDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		return nil, err
	}
	log.Info("Connected to database", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoSchema {
		if err := database.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		log.Info("Database schema ensured")
	}

	return &Store{
		Categories:   repository.NewCategoryDatabaseAdapter(db),
		Questions:    repository.NewQuestionDatabaseAdapter(db),
		Transactions: repository.NewTransactionManagerAdapter(db),
		close:        db.Close,
	}, nil
}

// SeedFromFile loads path and applies it to the store.
func (s *Store) SeedFromFile(ctx context.Context, path string) (seed.Result, error) {
	data, err := seed.Load(path)
	if err != nil {
		return seed.Result{}, err
	}
	return seed.Apply(ctx, s.Transactions, s.Categories, s.Questions, data)
}
