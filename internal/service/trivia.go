package service

import (
	"context"
	"math/rand/v2"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/util"
	"trivia-api/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	messageDeleted  = "Deletion was Successful!"
	messageInserted = "Insertion was Successful!"
)

// TriviaService defines the trivia question bank operations. Every error it
// returns is a *domain.DomainError.
type TriviaService interface {
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	DeleteQuestion(ctx context.Context, id int64) (*dto.MutationResponse, error)
	SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error)
	CreateQuestion(ctx context.Context, req *dto.QuestionsPostRequest) (*dto.MutationResponse, error)
	GetQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error)
	NextQuizQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

// Option configures a triviaService
type Option func(*triviaService)

// WithIntN replaces the random source used to draw quiz questions.
// intN must return a value in [0, n).
func WithIntN(intN func(n int) int) Option {
	return func(s *triviaService) {
		s.intN = intN
	}
}

type triviaService struct {
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	validator  *validation.Validator
	intN       func(n int) int
}

// NewTriviaService creates a new instance of triviaService
func NewTriviaService(
	categories domain.CategoryRepository,
	questions domain.QuestionRepository,
	opts ...Option,
) TriviaService {
	s := &triviaService{
		categories: categories,
		questions:  questions,
		validator:  validation.NewValidator(),
		intN:       rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetCategories implements TriviaService
func (s *triviaService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if len(categories) == 0 {
		return nil, domain.NewNotFoundError(nil)
	}

	return &dto.CategoriesResponse{
		Success:    true,
		Categories: domain.CategoryMap(categories),
	}, nil
}

// ListQuestions implements TriviaService
func (s *triviaService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	var (
		questions  []*domain.Question
		categories []*domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.questions.ListQuestions(gctx, domain.QuestionFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.ListCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError(err)
	}

	current := util.Paginate(page, domain.FormatQuestions(questions))
	if len(current) == 0 {
		return nil, domain.NewNotFoundError(nil)
	}
	if len(categories) == 0 {
		return nil, domain.NewNotFoundError(nil)
	}

	return &dto.QuestionListResponse{
		Success:        true,
		Questions:      current,
		TotalQuestions: len(questions),
		Categories:     domain.CategoryMap(categories),
	}, nil
}

// DeleteQuestion implements TriviaService
func (s *triviaService) DeleteQuestion(ctx context.Context, id int64) (*dto.MutationResponse, error) {
	question, err := s.questions.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if question == nil {
		return nil, domain.NewUnprocessableError(nil)
	}

	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		return nil, domain.NewUnprocessableError(err)
	}

	logger.Get().Info("Question deleted", zap.Int64("question_id", id))
	return &dto.MutationResponse{
		Success: true,
		Message: messageDeleted,
		ID:      id,
	}, nil
}

// SearchQuestions implements TriviaService. An empty match set is a valid result.
func (s *triviaService) SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error) {
	matches, err := s.questions.ListQuestions(ctx, domain.QuestionFilter{SearchTerm: term})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	return &dto.SearchQuestionsResponse{
		Success:        true,
		Questions:      util.Paginate(page, domain.FormatQuestions(matches)),
		TotalQuestions: len(matches),
	}, nil
}

// CreateQuestion implements TriviaService
func (s *triviaService) CreateQuestion(ctx context.Context, req *dto.QuestionsPostRequest) (*dto.MutationResponse, error) {
	if errs := s.validator.ValidateCreateQuestion(req); len(errs) > 0 {
		return nil, domain.NewUnprocessableError(errs)
	}

	// Integer-ness was checked by the validator.
	category, _ := req.Category.Int64()
	difficulty, _ := req.Difficulty.Int64()
	question := &domain.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   category,
		Difficulty: difficulty,
	}

	if err := s.questions.CreateQuestion(ctx, question); err != nil {
		return nil, domain.NewUnprocessableError(err)
	}

	logger.Get().Info("Question created", zap.Int64("question_id", question.ID), zap.Int64("category", category))
	return &dto.MutationResponse{
		Success: true,
		Message: messageInserted,
		ID:      question.ID,
	}, nil
}

// GetQuestionsByCategory implements TriviaService. total_questions counts every
// question in the category, not only the returned page.
func (s *triviaService) GetQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error) {
	category, err := s.categories.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if category == nil {
		return nil, domain.NewBadRequestError(nil)
	}

	questions, err := s.questions.ListQuestions(ctx, domain.QuestionFilter{CategoryID: &categoryID})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       util.Paginate(page, domain.FormatQuestions(questions)),
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	}, nil
}

// NextQuizQuestion implements TriviaService. The quiz counts as finished, with a
// null question, whenever len(previous_questions) equals the pool size. This
// holds even if previous_questions names ids outside the pool and unseen
// questions remain. Otherwise it draws uniformly from the pool minus
// previous_questions, and an empty remainder also yields a null question.
func (s *triviaService) NextQuizQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if errs := s.validator.ValidateQuizRequest(req); len(errs) > 0 {
		return nil, domain.NewBadRequestError(errs)
	}

	categoryID, _ := req.QuizCategory.ID.Int64()
	filter := domain.QuestionFilter{}
	if categoryID != 0 {
		filter.CategoryID = &categoryID
	}

	pool, err := s.questions.ListQuestions(ctx, filter)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	if len(req.PreviousQuestions) == len(pool) {
		return &dto.QuizResponse{Success: true}, nil
	}

	eligible := eligibleQuestions(pool, req.PreviousQuestions)
	if len(eligible) == 0 {
		logger.Get().Debug("Quiz pool exhausted",
			zap.Int64("category", categoryID),
			zap.Int("pool_size", len(pool)),
			zap.Int("previous_questions", len(req.PreviousQuestions)),
		)
		return &dto.QuizResponse{Success: true}, nil
	}

	next := eligible[s.intN(len(eligible))].Format()
	return &dto.QuizResponse{
		Success:  true,
		Question: &next,
	}, nil
}

// eligibleQuestions returns the questions of pool whose id is not in previous.
func eligibleQuestions(pool []*domain.Question, previous []int64) []*domain.Question {
	seen := make(map[int64]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	eligible := make([]*domain.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			eligible = append(eligible, q)
		}
	}
	return eligible
}
