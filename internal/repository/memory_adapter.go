package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"trivia-api/internal/domain"
)

// MemoryStore keeps categories and questions in process memory. It
// implements domain.CategoryRepository, domain.QuestionRepository and
// domain.TransactionManager.
type MemoryStore struct {
	mu             sync.RWMutex
	categories     map[int64]domain.Category
	questions      map[int64]domain.Question
	nextCategoryID int64
	nextQuestionID int64
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		categories:     make(map[int64]domain.Category),
		questions:      make(map[int64]domain.Question),
		nextCategoryID: 1,
		nextQuestionID: 1,
	}
}

func (s *MemoryStore) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]*domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, &c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (s *MemoryStore) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *MemoryStore) CreateCategory(ctx context.Context, category *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories[category.ID] = *category
	return nil
}

func (s *MemoryStore) ListQuestions(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(filter.SearchTerm)
	questions := make([]*domain.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if filter.CategoryID != nil && q.Category != *filter.CategoryID {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(q.Question), term) {
			continue
		}
		questions = append(questions, &q)
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions, nil
}

func (s *MemoryStore) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.questions[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (s *MemoryStore) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	question.ID = s.nextQuestionID
	s.nextQuestionID++
	s.questions[question.ID] = *question
	return nil
}

func (s *MemoryStore) DeleteQuestion(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[id]; !ok {
		return fmt.Errorf("question %d not deleted: %w", id, ErrNoRowsAffected)
	}
	delete(s.questions, id)
	return nil
}

// WithTransaction runs fn directly; the memory store has no rollback.
func (s *MemoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
