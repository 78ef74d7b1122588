package middleware

import (
	"errors"
	"net/http"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const messageMethodNotAllowed = "method not allowed"

// ErrorHandler is a centralized error handler. Every error leaves the API as
// the {success, error, message} envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := resolveError(err)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.String("request_id", RequestIDFromCtx(c)),
			zap.Error(err),
		}
		if status >= http.StatusInternalServerError {
			logger.Get().Error("Request failed", fields...)
		} else {
			logger.Get().Warn("Request rejected", fields...)
		}

		return c.Status(status).JSON(dto.ErrorResponse{
			Success: false,
			Error:   status,
			Message: message,
		})
	}
}

// resolveError maps an error to its response status and client-visible message.
func resolveError(err error) (int, string) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.HTTPStatus(), domainErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case http.StatusNotFound:
			return http.StatusNotFound, domain.MessageNotFound
		case http.StatusMethodNotAllowed:
			return http.StatusMethodNotAllowed, messageMethodNotAllowed
		case http.StatusBadRequest:
			return http.StatusBadRequest, domain.MessageBadRequest
		case http.StatusUnprocessableEntity:
			return http.StatusUnprocessableEntity, domain.MessageUnprocessable
		}
		return fiberErr.Code, fiberErr.Message
	}

	return http.StatusInternalServerError, domain.MessageInternal
}
