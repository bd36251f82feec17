// Rentora | 2026
// response_test.go

package core

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=1,max=15"`
	Cost  int    `validate:"required,min=100,max=100000"`
}

func TestFormatValidationErrorReportsEveryField(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.Struct(sampleRequest{
		Email: "not-an-email",
		Name:  "",
		Cost:  5,
	})
	require.Error(t, err)

	violations := FormatValidationError(err)
	require.Len(t, violations, 3)

	fields := make(map[string]string, len(violations))
	for _, violation := range violations {
		fields[violation.Field] = violation.Message
	}

	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Name")
	assert.Contains(t, fields, "Cost")
	assert.Equal(t, "must be a valid email address", fields["Email"])
	assert.Equal(t, "is required", fields["Name"])
}

func TestJSONErrorWritesAppError(t *testing.T) {
	rec := httptest.NewRecorder()

	JSONError(rec, NotFoundError("offer", "test"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "offer not found", body.Error.Message)
}

func TestJSONErrorMapsSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"bad object id", ErrNotAnObjectID, http.StatusBadRequest, "NOT_AN_OBJECT_ID"},
		{"duplicate", ErrDuplicateKey, http.StatusConflict, "CONFLICT"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			JSONError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)

			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestJSONErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()

	JSONError(rec, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestIsOwner(t *testing.T) {
	assert.True(t, IsOwner("abc", "abc"))
	assert.False(t, IsOwner("abc", "def"))
	assert.False(t, IsOwner("", ""))
}
