package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
)

// ErrNoRowsAffected is returned when a write matched no row.
var ErrNoRowsAffected = errors.New("no rows affected")

const questionColumns = "id, question, answer, category, difficulty"

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx
type QuestionDatabaseAdapter struct {
	db DBTX
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db DBTX) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// ListQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListQuestions(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.CategoryID != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.SearchTerm != "" {
		condition, term := searchCondition(exec.DriverName(), filter.SearchTerm)
		conditions = append(conditions, condition)
		args = append(args, "%"+escapeLike(term)+"%")
	}

	query := "SELECT " + questionColumns + " FROM questions"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions, nil
}

// GetQuestionByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)
	var row models.Question
	query := exec.Rebind("SELECT " + questionColumns + " FROM questions WHERE id = ?")
	if err := exec.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return toDomainQuestion(&row), nil
}

// CreateQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(`INSERT INTO questions (question, answer, category, difficulty)
		VALUES (?, ?, ?, ?) RETURNING id`)

	var id int64
	err := exec.QueryRowxContext(ctx, query,
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	question.ID = id
	return nil
}

// DeleteQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) error {
	exec := GetExecutor(ctx, a.db)
	result, err := exec.ExecContext(ctx, exec.Rebind("DELETE FROM questions WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("question %d not deleted: %w", id, ErrNoRowsAffected)
	}
	return nil
}

// searchCondition returns a case-insensitive substring match on question and
// the term to bind. Postgres folds case with ILIKE; sqlite needs the
// Unicode-aware lower function registered by the database package.
func searchCondition(driver, term string) (string, string) {
	switch driver {
	case "pgx":
		return `question ILIKE ? ESCAPE '\'`, term
	case database.SQLiteDriverName:
		return database.SQLiteLowerFunc + `(question) LIKE ? ESCAPE '\'`, strings.ToLower(term)
	default:
		return `LOWER(question) LIKE ? ESCAPE '\'`, strings.ToLower(term)
	}
}

// escapeLike makes %, _ and \ match literally under ESCAPE '\'.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toDomainQuestion(row *models.Question) *domain.Question {
	return &domain.Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: row.Difficulty,
	}
}
