// Rentora | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type errorEnvelope struct {
	Error *AppError `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

func Created(w http.ResponseWriter, v any) {
	JSON(w, http.StatusCreated, v)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// JSONError writes err as the structured error envelope. Anything that is
// not an AppError becomes an opaque 500; detail stays server-side.
func JSONError(w http.ResponseWriter, err error) {
	if appErr, ok := AsAppError(err); ok {
		JSON(w, appErr.Status, errorEnvelope{Error: appErr})
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		JSONError(w, NotFoundError("resource", ""))
	case errors.Is(err, ErrNotAnObjectID):
		JSONError(w, ObjectIDError("id", ""))
	case errors.Is(err, ErrInvalidInput):
		JSONError(w, BadRequestError(err.Error(), ""))
	case errors.Is(err, ErrDuplicateKey):
		JSONError(w, DuplicateError("resource", ""))
	case errors.Is(err, ErrUnauthorized):
		JSONError(w, UnauthorizedError("authentication required"))
	default:
		InternalServerError(w, err)
	}
}

func BadRequest(w http.ResponseWriter, message string) {
	JSONError(w, BadRequestError(message, ""))
}

func NotFound(w http.ResponseWriter, resource string) {
	JSONError(w, NotFoundError(resource, ""))
}

func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	JSON(w, http.StatusInternalServerError, errorEnvelope{
		Error: &AppError{
			Status:  http.StatusInternalServerError,
			Code:    "INTERNAL",
			Message: "internal server error",
		},
	})
}

// FieldViolation is one violated constraint in a validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormatValidationError flattens a validator error into the full list of
// violated fields. Validation is batch: every failing field is reported,
// not just the first.
func FormatValidationError(err error) []FieldViolation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldViolation{{Field: "", Message: err.Error()}}
	}

	violations := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, FieldViolation{
			Field:   fe.Field(),
			Message: messageForTag(fe),
		})
	}

	return violations
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return "is shorter than the minimum length " + fe.Param()
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind().String() == "string" {
			return "is longer than the maximum length " + fe.Param()
		}
		return "must be at most " + fe.Param()
	case "len":
		return "must have exactly " + fe.Param() + " elements"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "latitude":
		return "must be a valid latitude"
	case "longitude":
		return "must be a valid longitude"
	default:
		return "failed constraint " + fe.Tag()
	}
}
