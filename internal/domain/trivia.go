package domain

import "context"

// Category is a question category. Categories are seeded out of band and
// read-only through the API.
type Category struct {
	ID   int64
	Type string
}

// Question is a trivia question. Category references a Category id but is
// not validated on write.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int64
}

// FormattedQuestion is the API-visible projection of a Question.
type FormattedQuestion struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int64  `json:"difficulty"`
}

// Format returns the API projection of the question.
func (q *Question) Format() FormattedQuestion {
	return FormattedQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// FormatQuestions projects every question, preserving order. Never returns nil.
func FormatQuestions(questions []*Question) []FormattedQuestion {
	formatted := make([]FormattedQuestion, 0, len(questions))
	for _, q := range questions {
		formatted = append(formatted, q.Format())
	}
	return formatted
}

// CategoryMap aggregates categories into an id -> type mapping.
func CategoryMap(categories []*Category) map[int64]string {
	m := make(map[int64]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

// QuestionFilter narrows ListQuestions. Zero value matches every question.
type QuestionFilter struct {
	CategoryID *int64
	// SearchTerm is matched case-insensitively as a substring of the question text.
	SearchTerm string
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// ListCategories returns all categories ordered by id
	ListCategories(ctx context.Context) ([]*Category, error)

	// GetCategoryByID returns nil, nil when the category does not exist
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)

	// CreateCategory persists a category and sets its ID
	CreateCategory(ctx context.Context, category *Category) error
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// ListQuestions returns the questions matching filter ordered by id
	ListQuestions(ctx context.Context, filter QuestionFilter) ([]*Question, error)

	// GetQuestionByID returns nil, nil when the question does not exist
	GetQuestionByID(ctx context.Context, id int64) (*Question, error)

	// CreateQuestion persists a question and sets its ID
	CreateQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion removes a question; it fails if no row was removed
	DeleteQuestion(ctx context.Context, id int64) error
}

// TransactionManager runs fn inside a single unit of work.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
