package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// Data is the seed file layout. Questions reference categories by type.
type Data struct {
	Categories []string       `json:"categories"`
	Questions  []QuestionData `json:"questions"`
}

type QuestionData struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int64  `json:"difficulty"`
}

// Result reports what Apply inserted.
type Result struct {
	Categories int
	Questions  int
	Skipped    bool
}

// Load reads and decodes a seed file.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}
	return &data, nil
}

// Apply inserts data inside a single transaction. It does nothing when any
// category already exists, so it is safe to run on every start.
func Apply(
	ctx context.Context,
	tm domain.TransactionManager,
	categories domain.CategoryRepository,
	questions domain.QuestionRepository,
	data *Data,
) (Result, error) {
	log := logger.Get()
	var result Result

	err := tm.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := categories.ListCategories(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			log.Info("Store already seeded, skipping", zap.Int("categories", len(existing)))
			result.Skipped = true
			return nil
		}

		ids := make(map[string]int64, len(data.Categories))
		for _, typ := range data.Categories {
			category := &domain.Category{Type: typ}
			if err := categories.CreateCategory(ctx, category); err != nil {
				return fmt.Errorf("failed to seed category %q: %w", typ, err)
			}
			ids[typ] = category.ID
			result.Categories++
		}

		for _, q := range data.Questions {
			categoryID, ok := ids[q.Category]
			if !ok {
				return fmt.Errorf("question %q references unknown category %q", q.Question, q.Category)
			}
			question := &domain.Question{
				Question:   q.Question,
				Answer:     q.Answer,
				Category:   categoryID,
				Difficulty: q.Difficulty,
			}
			if err := questions.CreateQuestion(ctx, question); err != nil {
				return fmt.Errorf("failed to seed question %q: %w", q.Question, err)
			}
			result.Questions++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if !result.Skipped {
		log.Info("Seed data applied",
			zap.Int("categories", result.Categories),
			zap.Int("questions", result.Questions),
		)
	}
	return result, nil
}
