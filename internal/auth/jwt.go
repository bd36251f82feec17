// Rentora | 2026
// jwt.go

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/rentora/rentora/internal/config"
	"github.com/rentora/rentora/internal/core"
	"github.com/rentora/rentora/internal/middleware"
)

// TokenManager issues and verifies HS256 session tokens. Tokens carry the
// user id (sub) and email, are stamped with their issue time and expire
// two days after issue. Verification consults the revocation list, so a
// logged-out token fails even while cryptographically valid.
type TokenManager struct {
	key     jwk.Key
	config  config.AuthConfig
	revoked *RevocationList
}

func NewTokenManager(
	cfg config.AuthConfig,
	revoked *RevocationList,
) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("token manager: signing secret is empty")
	}

	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	if cfg.TokenExpire <= 0 {
		cfg.TokenExpire = 48 * time.Hour
	}

	return &TokenManager{
		key:     key,
		config:  cfg,
		revoked: revoked,
	}, nil
}

func (m *TokenManager) Issue(userID, email string) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		Issuer(m.config.Issuer).
		Subject(userID).
		IssuedAt(now).
		Expiration(now.Add(m.config.TokenExpire)).
		Claim("email", email).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

func (m *TokenManager) VerifyToken(
	ctx context.Context,
	tokenString string,
) (*middleware.TokenClaims, error) {
	if m.revoked != nil && m.revoked.Contains(tokenString) {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
	}

	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.config.Issuer),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf(
			"verify token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	var email string
	if err := token.Get("email", &email); err != nil {
		return nil, fmt.Errorf(
			"verify token: missing email claim: %w",
			core.ErrTokenInvalid,
		)
	}

	return &middleware.TokenClaims{
		UserID: subject,
		Email:  email,
	}, nil
}

// Revoke invalidates a live token until process restart.
func (m *TokenManager) Revoke(tokenString string) {
	m.revoked.Add(tokenString)
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}
