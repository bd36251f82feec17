// Rentora | 2026
// upload.go

package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/core"
)

// Upload accepts at most one file under the named multipart field, writes
// it into dir under a generated name and exposes that name to the handler
// through the context. A request without a file passes through untouched:
// upload fields are optional.
func Upload(
	dir, field string,
	maxBytes int64,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")
			if !strings.HasPrefix(contentType, "multipart/form-data") {
				next.ServeHTTP(w, r)
				return
			}

			if err := r.ParseMultipartForm(maxBytes); err != nil {
				core.JSONError(
					w,
					core.BadRequestError("malformed multipart body", "Upload"),
				)
				return
			}

			file, header, err := r.FormFile(field)
			if errors.Is(err, http.ErrMissingFile) {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				core.JSONError(
					w,
					core.BadRequestError("unreadable upload field", "Upload"),
				)
				return
			}
			defer file.Close() //nolint:errcheck // read-only handle

			name, err := storeFile(dir, header.Filename, file)
			if err != nil {
				core.InternalServerError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UploadedFileKey, name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func storeFile(dir, originalName string, src io.Reader) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(originalName))

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close() //nolint:errcheck // close error surfaced via Copy

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return name, nil
}
