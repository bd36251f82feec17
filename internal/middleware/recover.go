// Rentora | 2026
// recover.go

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/rentora/rentora/internal/core"
)

// Recoverer converts a handler panic into a generic 500 response. The
// panic value and stack stay server-side; the process keeps serving.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"panic", rec,
					"path", r.URL.Path,
					"request_id", GetRequestID(r.Context()),
					"stack", string(debug.Stack()),
				)
				core.InternalServerError(
					w,
					fmt.Errorf("panic: %v", rec),
				)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
