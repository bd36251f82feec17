// Rentora | 2026
// objectid.go

package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rentora/rentora/internal/core"
)

// ValidateObjectID rejects the request with 400 when the named route
// parameter is not a well-formed document id.
func ValidateObjectID(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, param)

			if _, err := primitive.ObjectIDFromHex(raw); err != nil {
				core.JSONError(w, core.ObjectIDError(param, "ValidateObjectID"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
