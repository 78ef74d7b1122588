package dto

import (
	"encoding/json"

	"trivia-api/internal/domain"
)

// CategoriesResponse is the body of GET /categories
// @Description id -> type mapping of every category
type CategoriesResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

// QuestionListResponse is the body of GET /questions
type QuestionListResponse struct {
	Success        bool                       `json:"success"`
	Questions      []domain.FormattedQuestion `json:"questions"`
	TotalQuestions int                        `json:"total_questions"`
	Categories     map[int64]string           `json:"categories"`
}

// SearchQuestionsResponse is the body of POST /questions with a searchTerm
type SearchQuestionsResponse struct {
	Success        bool                       `json:"success"`
	Questions      []domain.FormattedQuestion `json:"questions"`
	TotalQuestions int                        `json:"total_questions"`
}

// CategoryQuestionsResponse is the body of GET /categories/{id}/questions
type CategoryQuestionsResponse struct {
	Success         bool                       `json:"success"`
	Questions       []domain.FormattedQuestion `json:"questions"`
	TotalQuestions  int                        `json:"total_questions"`
	CurrentCategory string                     `json:"current_category"`
}

// MutationResponse acknowledges a question insert or delete
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// QuestionsPostRequest is the body of POST /questions. A truthy SearchTerm
// selects search; otherwise the remaining fields describe a new question.
// Category and Difficulty accept JSON numbers or numeric strings.
type QuestionsPostRequest struct {
	SearchTerm *string      `json:"searchTerm"`
	Question   *string      `json:"question"`
	Answer     *string      `json:"answer"`
	Category   *json.Number `json:"category"`
	Difficulty *json.Number `json:"difficulty"`
}

// IsSearch reports whether the request asks for a search.
func (r *QuestionsPostRequest) IsSearch() bool {
	return r.SearchTerm != nil && *r.SearchTerm != ""
}

// QuizCategory selects the quiz pool; ID 0 means every category.
type QuizCategory struct {
	ID *json.Number `json:"id"`
}

// QuizRequest is the body of POST /quizzes
type QuizRequest struct {
	PreviousQuestions []int64       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// QuizResponse is the body of POST /quizzes; Question is null once the pool is exhausted
type QuizResponse struct {
	Success  bool                      `json:"success"`
	Question *domain.FormattedQuestion `json:"question"`
}

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
