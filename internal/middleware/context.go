// Rentora | 2026
// context.go

package middleware

import "context"

type contextKey string

const (
	RequestIDKey    contextKey = "request_id"
	UserIDKey       contextKey = "user_id"
	UserEmailKey    contextKey = "user_email"
	ClaimsKey       contextKey = "token_claims"
	UploadedFileKey contextKey = "uploaded_file"
)

// TokenClaims is the identity a verified session token carries.
type TokenClaims struct {
	UserID string
	Email  string
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

func GetClaims(ctx context.Context) *TokenClaims {
	if claims, ok := ctx.Value(ClaimsKey).(*TokenClaims); ok {
		return claims
	}
	return nil
}

func IsAuthenticated(ctx context.Context) bool {
	return GetUserID(ctx) != ""
}

// GetUploadedFile returns the stored filename placed in the context by the
// Upload middleware, or "" when the request carried no file.
func GetUploadedFile(ctx context.Context) string {
	if name, ok := ctx.Value(UploadedFileKey).(string); ok {
		return name
	}
	return ""
}
