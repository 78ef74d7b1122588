package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"trivia-api/internal/dto"
)

// FieldError describes one invalid request field
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationErrors collects every invalid field of a request
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func missing(field string) FieldError {
	return FieldError{Field: field, Reason: "is required"}
}

func notInteger(field string, n json.Number) FieldError {
	return FieldError{Field: field, Reason: fmt.Sprintf("%q is not an integer", n.String())}
}

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuestion checks that every question field is present and that
// category and difficulty are integers.
func (v *Validator) ValidateCreateQuestion(req *dto.QuestionsPostRequest) ValidationErrors {
	var errs ValidationErrors

	if req.Question == nil {
		errs = append(errs, missing("question"))
	}
	if req.Answer == nil {
		errs = append(errs, missing("answer"))
	}
	errs = appendIntegerField(errs, "category", req.Category)
	errs = appendIntegerField(errs, "difficulty", req.Difficulty)

	return errs
}

// ValidateQuizRequest checks that previous_questions and quiz_category.id are present.
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) ValidationErrors {
	var errs ValidationErrors

	if req.PreviousQuestions == nil {
		errs = append(errs, missing("previous_questions"))
	}
	if req.QuizCategory == nil {
		errs = append(errs, missing("quiz_category"))
	} else {
		errs = appendIntegerField(errs, "quiz_category.id", req.QuizCategory.ID)
	}

	return errs
}

func appendIntegerField(errs ValidationErrors, field string, n *json.Number) ValidationErrors {
	if n == nil {
		return append(errs, missing(field))
	}
	if _, err := n.Int64(); err != nil {
		return append(errs, notInteger(field, *n))
	}
	return errs
}
