package domain

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeBadRequest    ErrorCode = "BAD_REQUEST"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeUnprocessable ErrorCode = "UNPROCESSABLE"
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// Fixed user-visible messages per code.
const (
	MessageBadRequest    = "bad request"
	MessageNotFound      = "resource not found"
	MessageUnprocessable = "unprocessable"
	MessageInternal      = "internal server error"
)

// DomainError represents a domain-specific error. Message is what clients see;
// Cause is only logged.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error code to its response status.
func (e *DomainError) HTTPStatus() int {
	switch e.Code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewBadRequestError(cause error) *DomainError {
	return NewError(CodeBadRequest, MessageBadRequest, cause)
}

func NewNotFoundError(cause error) *DomainError {
	return NewError(CodeNotFound, MessageNotFound, cause)
}

func NewUnprocessableError(cause error) *DomainError {
	return NewError(CodeUnprocessable, MessageUnprocessable, cause)
}

func NewInternalError(cause error) *DomainError {
	return NewError(CodeInternal, MessageInternal, cause)
}
