package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TriviaHandler handles trivia-related HTTP requests
type TriviaHandler struct {
	service service.TriviaService
}

// NewTriviaHandler creates a new TriviaHandler instance
func NewTriviaHandler(service service.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		service: service,
	}
}

// RegisterRoutes mounts every trivia endpoint on router.
func (h *TriviaHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.GetCategories)
	router.Get("/categories/:id<int>/questions", h.GetQuestionsByCategory)
	router.Get("/questions", h.GetQuestions)
	router.Post("/questions", h.PostQuestions)
	router.Delete("/questions/:id<int>", h.DeleteQuestion)
	router.Post("/quizzes", h.PostQuizzes)
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category as an id -> type mapping
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *TriviaHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.service.GetCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions godoc
// @Summary List questions
// @Description Returns one page of questions (10 per page) with the category map
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *TriviaHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), c.QueryInt("page", 1))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *TriviaHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.NewNotFoundError(err)
	}

	resp, err := h.service.DeleteQuestion(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PostQuestions godoc
// @Summary Create or search questions
// @Description A non-empty searchTerm performs a case-insensitive substring search.
// @Description Otherwise question, answer, category and difficulty create a new question.
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.QuestionsPostRequest true "Search term or new question"
// @Success 200 {object} dto.SearchQuestionsResponse "search results, or dto.MutationResponse on create"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *TriviaHandler) PostQuestions(c *fiber.Ctx) error {
	var req dto.QuestionsPostRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Invalid questions request body", zap.Error(err))
		return domain.NewBadRequestError(err)
	}

	if req.IsSearch() {
		resp, err := h.service.SearchQuestions(c.UserContext(), *req.SearchTerm, c.QueryInt("page", 1))
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestionsByCategory godoc
// @Summary List questions of a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *TriviaHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.NewNotFoundError(err)
	}

	resp, err := h.service.GetQuestionsByCategory(c.UserContext(), int64(id), c.QueryInt("page", 1))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PostQuizzes godoc
// @Summary Next quiz question
// @Description Draws a random question not in previous_questions from the chosen
// @Description category (id 0 means all). question is null once the pool is exhausted.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *TriviaHandler) PostQuizzes(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Invalid quiz request body", zap.Error(err))
		return domain.NewBadRequestError(err)
	}

	resp, err := h.service.NextQuizQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
