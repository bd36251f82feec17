// Rentora | 2026
// exists.go

package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rentora/rentora/internal/core"
)

// ExistenceFunc reports whether the record named by id exists.
type ExistenceFunc func(ctx context.Context, id string) (bool, error)

// RequireExists gates a route on the named route parameter resolving to an
// existing record, via the supplied lookup.
func RequireExists(
	param, resource string,
	exists ExistenceFunc,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, param)

			ok, err := exists(r.Context(), id)
			if err != nil {
				core.InternalServerError(w, err)
				return
			}

			if !ok {
				core.JSONError(w, core.NotFoundError(resource, "RequireExists"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
