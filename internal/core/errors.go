// Rentora | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidInput  = errors.New("invalid input")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenRevoked  = errors.New("token revoked")
	ErrNotAnObjectID = errors.New("not an object id")
)

// AppError is the structured error surfaced to clients: an HTTP status, a
// machine code, a human message and the component that raised it.
type AppError struct {
	Status    int    `json:"-"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Component string `json:"component,omitempty"`
	Details   any    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s: %s", e.Component, e.Message)
	}
	return e.Message
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func UnauthorizedError(message string) *AppError {
	return &AppError{
		Status:  http.StatusUnauthorized,
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func TokenExpiredError() *AppError {
	return &AppError{
		Status:  http.StatusUnauthorized,
		Code:    "TOKEN_EXPIRED",
		Message: "authorization token has expired",
	}
}

func TokenRevokedError() *AppError {
	return &AppError{
		Status:  http.StatusUnauthorized,
		Code:    "TOKEN_REVOKED",
		Message: "authorization token has been revoked",
	}
}

func TokenInvalidError() *AppError {
	return &AppError{
		Status:  http.StatusUnauthorized,
		Code:    "TOKEN_INVALID",
		Message: "authorization token is invalid",
	}
}

func NotFoundError(resource, component string) *AppError {
	return &AppError{
		Status:    http.StatusNotFound,
		Code:      "NOT_FOUND",
		Message:   fmt.Sprintf("%s not found", resource),
		Component: component,
	}
}

func DuplicateError(field, component string) *AppError {
	return &AppError{
		Status:    http.StatusConflict,
		Code:      "CONFLICT",
		Message:   fmt.Sprintf("%s already exists", field),
		Component: component,
	}
}

func ValidationFailedError(details any, component string) *AppError {
	return &AppError{
		Status:    http.StatusBadRequest,
		Code:      "VALIDATION_FAILED",
		Message:   "request body failed validation",
		Component: component,
		Details:   details,
	}
}

func BadRequestError(message, component string) *AppError {
	return &AppError{
		Status:    http.StatusBadRequest,
		Code:      "BAD_REQUEST",
		Message:   message,
		Component: component,
	}
}

// NotOwnerError reports a caller mutating a resource it does not own. The
// upstream contract maps this to 400 rather than 403; preserved as-is.
func NotOwnerError(component string) *AppError {
	return &AppError{
		Status:    http.StatusBadRequest,
		Code:      "NOT_OWNER",
		Message:   "resource belongs to another user",
		Component: component,
	}
}

func ObjectIDError(param, component string) *AppError {
	return &AppError{
		Status:    http.StatusBadRequest,
		Code:      "NOT_AN_OBJECT_ID",
		Message:   fmt.Sprintf("%s is not a valid object id", param),
		Component: component,
	}
}

// IsOwner is the single authorization predicate used by every owner-gated
// handler. The check lives at the handler layer, not in the stores.
func IsOwner(resourceOwnerID, callerID string) bool {
	return resourceOwnerID != "" && resourceOwnerID == callerID
}
