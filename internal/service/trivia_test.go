package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCategories = []*domain.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
}

// makeQuestions returns n questions with ids 1..n in the given category.
func makeQuestions(n int, category int64) []*domain.Question {
	questions := make([]*domain.Question, n)
	for i := range questions {
		questions[i] = &domain.Question{
			ID:         int64(i + 1),
			Question:   "Question?",
			Answer:     "Answer",
			Category:   category,
			Difficulty: 1,
		}
	}
	return questions
}

func assertDomainError(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func newTestService(opts ...Option) (TriviaService, *MockCategoryRepository, *MockQuestionRepository) {
	categories := new(MockCategoryRepository)
	questions := new(MockQuestionRepository)
	return NewTriviaService(categories, questions, opts...), categories, questions
}

func strPtr(s string) *string { return &s }

func numPtr(s string) *json.Number {
	n := json.Number(s)
	return &n
}

func TestGetCategories(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, categories, _ := newTestService()
		categories.On("ListCategories", mock.Anything).Return(testCategories, nil).Once()

		resp, err := svc.GetCategories(context.Background())

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, map[int64]string{1: "Science", 2: "Art", 3: "Geography"}, resp.Categories)
		categories.AssertExpectations(t)
	})

	t.Run("NoCategories", func(t *testing.T) {
		svc, categories, _ := newTestService()
		categories.On("ListCategories", mock.Anything).Return([]*domain.Category{}, nil).Once()

		_, err := svc.GetCategories(context.Background())

		assertDomainError(t, err, domain.CodeNotFound)
	})

	t.Run("StorageError", func(t *testing.T) {
		svc, categories, _ := newTestService()
		categories.On("ListCategories", mock.Anything).Return(nil, errors.New("db down")).Once()

		_, err := svc.GetCategories(context.Background())

		assertDomainError(t, err, domain.CodeInternal)
	})
}

func TestListQuestions(t *testing.T) {
	tests := []struct {
		name          string
		questions     []*domain.Question
		categories    []*domain.Category
		page          int
		expectedCode  domain.ErrorCode
		expectedIDs   []int64
		expectedTotal int
	}{
		{
			name:          "second page of twelve",
			questions:     makeQuestions(12, 1),
			categories:    testCategories,
			page:          2,
			expectedIDs:   []int64{11, 12},
			expectedTotal: 12,
		},
		{
			name:          "invalid page falls back to first",
			questions:     makeQuestions(3, 1),
			categories:    testCategories,
			page:          0,
			expectedIDs:   []int64{1, 2, 3},
			expectedTotal: 3,
		},
		{
			name:         "page past the end",
			questions:    makeQuestions(12, 1),
			categories:   testCategories,
			page:         3,
			expectedCode: domain.CodeNotFound,
		},
		{
			name:         "no questions",
			questions:    []*domain.Question{},
			categories:   testCategories,
			page:         1,
			expectedCode: domain.CodeNotFound,
		},
		{
			name:         "no categories",
			questions:    makeQuestions(2, 1),
			categories:   []*domain.Category{},
			page:         1,
			expectedCode: domain.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, categories, questions := newTestService()
			questions.On("ListQuestions", mock.Anything, domain.QuestionFilter{}).Return(tt.questions, nil).Once()
			categories.On("ListCategories", mock.Anything).Return(tt.categories, nil).Once()

			resp, err := svc.ListQuestions(context.Background(), tt.page)

			if tt.expectedCode != "" {
				assertDomainError(t, err, tt.expectedCode)
				return
			}
			require.NoError(t, err)
			var ids []int64
			for _, q := range resp.Questions {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, tt.expectedTotal, resp.TotalQuestions)
			assert.Len(t, resp.Categories, len(tt.categories))
		})
	}
}

func TestListQuestions_StorageError(t *testing.T) {
	svc, categories, questions := newTestService()
	questions.On("ListQuestions", mock.Anything, domain.QuestionFilter{}).Return(nil, errors.New("timeout")).Once()
	categories.On("ListCategories", mock.Anything).Return(testCategories, nil).Maybe()

	_, err := svc.ListQuestions(context.Background(), 1)

	assertDomainError(t, err, domain.CodeInternal)
}

func TestDeleteQuestion(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, _, questions := newTestService()
		questions.On("GetQuestionByID", mock.Anything, int64(5)).Return(&domain.Question{ID: 5}, nil).Once()
		questions.On("DeleteQuestion", mock.Anything, int64(5)).Return(nil).Once()

		resp, err := svc.DeleteQuestion(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, &dto.MutationResponse{Success: true, Message: "Deletion was Successful!", ID: 5}, resp)
		questions.AssertExpectations(t)
	})

	t.Run("Missing question is unprocessable", func(t *testing.T) {
		svc, _, questions := newTestService()
		questions.On("GetQuestionByID", mock.Anything, int64(1000)).Return(nil, nil).Once()

		_, err := svc.DeleteQuestion(context.Background(), 1000)

		assertDomainError(t, err, domain.CodeUnprocessable)
		questions.AssertNotCalled(t, "DeleteQuestion", mock.Anything, mock.Anything)
	})

	t.Run("Delete failure is unprocessable", func(t *testing.T) {
		svc, _, questions := newTestService()
		questions.On("GetQuestionByID", mock.Anything, int64(5)).Return(&domain.Question{ID: 5}, nil).Once()
		questions.On("DeleteQuestion", mock.Anything, int64(5)).Return(errors.New("row vanished")).Once()

		_, err := svc.DeleteQuestion(context.Background(), 5)

		assertDomainError(t, err, domain.CodeUnprocessable)
	})
}

func TestSearchQuestions(t *testing.T) {
	t.Run("Total counts every match", func(t *testing.T) {
		svc, _, questions := newTestService()
		questions.On("ListQuestions", mock.Anything, domain.QuestionFilter{SearchTerm: "title"}).
			Return(makeQuestions(13, 4), nil).Once()

		resp, err := svc.SearchQuestions(context.Background(), "title", 1)

		require.NoError(t, err)
		assert.Len(t, resp.Questions, 10)
		assert.Equal(t, 13, resp.TotalQuestions)
	})

	t.Run("No matches is not an error", func(t *testing.T) {
		svc, _, questions := newTestService()
		questions.On("ListQuestions", mock.Anything, domain.QuestionFilter{SearchTerm: "zzz"}).
			Return([]*domain.Question{}, nil).Once()

		resp, err := svc.SearchQuestions(context.Background(), "zzz", 1)

		require.NoError(t, err)
		assert.NotNil(t, resp.Questions)
		assert.Empty(t, resp.Questions)
		assert.Zero(t, resp.TotalQuestions)
	})
}

func TestCreateQuestion(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, _, questions := newTestService()
		expected := &domain.Question{Question: "What is 2+2?", Answer: "4", Category: 1, Difficulty: 2}
		questions.On("CreateQuestion", mock.Anything, expected).
			Run(func(args mock.Arguments) { args.Get(1).(*domain.Question).ID = 24 }).
			Return(nil).Once()

		resp, err := svc.CreateQuestion(context.Background(), &dto.QuestionsPostRequest{
			Question:   strPtr("What is 2+2?"),
			Answer:     strPtr("4"),
			Category:   numPtr("1"),
			Difficulty: numPtr("2"),
		})

		require.NoError(t, err)
		assert.Equal(t, &dto.MutationResponse{Success: true, Message: "Insertion was Successful!", ID: 24}, resp)
		questions.AssertExpectations(t)
	})

	t.Run("Null field is unprocessable and nothing is inserted", func(t *testing.T) {
		svc, _, questions := newTestService()

		_, err := svc.CreateQuestion(context.Background(), &dto.QuestionsPostRequest{
			Question: strPtr("What is 2+2?"),
			Answer:   strPtr("4"),
			Category: numPtr("1"),
		})

		assertDomainError(t, err, domain.CodeUnprocessable)
		questions.AssertNotCalled(t, "CreateQuestion", mock.Anything, mock.Anything)
	})

	t.Run("Storage failure is unprocessable", func(t *testing.T) {
		svc, _, questions := newTestService()
		questions.On("CreateQuestion", mock.Anything, mock.Anything).Return(errors.New("constraint")).Once()

		_, err := svc.CreateQuestion(context.Background(), &dto.QuestionsPostRequest{
			Question:   strPtr("q"),
			Answer:     strPtr("a"),
			Category:   numPtr("1"),
			Difficulty: numPtr("1"),
		})

		assertDomainError(t, err, domain.CodeUnprocessable)
	})
}

func TestGetQuestionsByCategory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, categories, questions := newTestService()
		categoryID := int64(1)
		categories.On("GetCategoryByID", mock.Anything, categoryID).Return(testCategories[0], nil).Once()
		questions.On("ListQuestions", mock.Anything, domain.QuestionFilter{CategoryID: &categoryID}).
			Return(makeQuestions(12, 1), nil).Once()

		resp, err := svc.GetQuestionsByCategory(context.Background(), categoryID, 2)

		require.NoError(t, err)
		assert.Len(t, resp.Questions, 2)
		assert.Equal(t, 12, resp.TotalQuestions)
		assert.Equal(t, "Science", resp.CurrentCategory)
	})

	t.Run("Unknown category is a bad request", func(t *testing.T) {
		svc, categories, questions := newTestService()
		categories.On("GetCategoryByID", mock.Anything, int64(1000)).Return(nil, nil).Once()

		_, err := svc.GetQuestionsByCategory(context.Background(), 1000, 1)

		assertDomainError(t, err, domain.CodeBadRequest)
		questions.AssertNotCalled(t, "ListQuestions", mock.Anything, mock.Anything)
	})
}

func TestNextQuizQuestion(t *testing.T) {
	science := int64(1)

	t.Run("Exhausted pool returns null question", func(t *testing.T) {
		svc, _, questions := newTestService()
		questions.On("ListQuestions", mock.Anything, domain.QuestionFilter{CategoryID: &science}).
			Return(makeQuestions(3, 1), nil).Once()

		resp, err := svc.NextQuizQuestion(context.Background(), &dto.QuizRequest{
			PreviousQuestions: []int64{1, 2, 3},
			QuizCategory:      &dto.QuizCategory{ID: numPtr("1")},
		})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Nil(t, resp.Question)
	})

	t.Run("Category zero draws from every question", func(t *testing.T) {
		svc, _, questions := newTestService()
		pool := makeQuestions(5, 2)
		questions.On("ListQuestions", mock.Anything, domain.QuestionFilter{}).Return(pool, nil).Once()

		resp, err := svc.NextQuizQuestion(context.Background(), &dto.QuizRequest{
			PreviousQuestions: []int64{},
			QuizCategory:      &dto.QuizCategory{ID: numPtr("0")},
		})

		require.NoError(t, err)
		require.NotNil(t, resp.Question)
		assert.GreaterOrEqual(t, resp.Question.ID, int64(1))
		assert.LessOrEqual(t, resp.Question.ID, int64(5))
	})

	t.Run("Previous questions are never drawn", func(t *testing.T) {
		var bounds []int
		svc, _, questions := newTestService(WithIntN(func(n int) int {
			bounds = append(bounds, n)
			return n - 1
		}))
		questions.On("ListQuestions", mock.Anything, domain.QuestionFilter{CategoryID: &science}).
			Return(makeQuestions(4, 1), nil).Once()

		resp, err := svc.NextQuizQuestion(context.Background(), &dto.QuizRequest{
			PreviousQuestions: []int64{4, 2},
			QuizCategory:      &dto.QuizCategory{ID: numPtr("1")},
		})

		require.NoError(t, err)
		require.NotNil(t, resp.Question)
		assert.Equal(t, int64(3), resp.Question.ID)
		assert.Equal(t, []int{2}, bounds)
	})

	t.Run("Equal length ends the quiz even with foreign ids", func(t *testing.T) {
		svc, _, questions := newTestService()
		questions.On("ListQuestions", mock.Anything, domain.QuestionFilter{CategoryID: &science}).
			Return(makeQuestions(3, 1), nil).Once()

		resp, err := svc.NextQuizQuestion(context.Background(), &dto.QuizRequest{
			PreviousQuestions: []int64{1, 98, 99},
			QuizCategory:      &dto.QuizCategory{ID: numPtr("1")},
		})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Nil(t, resp.Question)
	})

	t.Run("Inconsistent previous list terminates with null", func(t *testing.T) {
		svc, _, questions := newTestService()
		questions.On("ListQuestions", mock.Anything, domain.QuestionFilter{CategoryID: &science}).
			Return(makeQuestions(2, 1), nil).Once()

		resp, err := svc.NextQuizQuestion(context.Background(), &dto.QuizRequest{
			PreviousQuestions: []int64{1, 2, 77},
			QuizCategory:      &dto.QuizCategory{ID: numPtr("1")},
		})

		require.NoError(t, err)
		assert.Nil(t, resp.Question)
	})

	t.Run("Missing fields are a bad request", func(t *testing.T) {
		svc, _, questions := newTestService()

		_, err := svc.NextQuizQuestion(context.Background(), &dto.QuizRequest{
			QuizCategory: &dto.QuizCategory{ID: numPtr("1")},
		})
		assertDomainError(t, err, domain.CodeBadRequest)

		_, err = svc.NextQuizQuestion(context.Background(), &dto.QuizRequest{PreviousQuestions: []int64{}})
		assertDomainError(t, err, domain.CodeBadRequest)

		questions.AssertNotCalled(t, "ListQuestions", mock.Anything, mock.Anything)
	})
}
