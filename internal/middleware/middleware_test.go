// Rentora | 2026
// middleware_test.go

package middleware

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rentora/rentora/internal/core"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestValidateObjectID(t *testing.T) {
	var called bool
	handler := ValidateObjectID("offerId")(okHandler(&called))

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/offers/xyz", nil), "offerId", "xyz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_AN_OBJECT_ID")
	assert.False(t, called)

	called = false
	valid := primitive.NewObjectID().Hex()
	req = withURLParam(httptest.NewRequest(http.MethodGet, "/offers/"+valid, nil), "offerId", valid)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireExists(t *testing.T) {
	knownID := primitive.NewObjectID().Hex()
	lookup := func(_ context.Context, id string) (bool, error) {
		return id == knownID, nil
	}

	var called bool
	handler := RequireExists("offerId", "offer", lookup)(okHandler(&called))

	missing := primitive.NewObjectID().Hex()
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/offers/"+missing, nil), "offerId", missing)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "offer not found")
	assert.False(t, called)

	req = withURLParam(httptest.NewRequest(http.MethodGet, "/offers/"+knownID, nil), "offerId", knownID)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireExistsLookupFailure(t *testing.T) {
	lookup := func(context.Context, string) (bool, error) {
		return false, fmt.Errorf("store unavailable")
	}

	var called bool
	handler := RequireExists("offerId", "offer", lookup)(okHandler(&called))

	id := primitive.NewObjectID().Hex()
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/offers/"+id, nil), "offerId", id)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, called)
}

type stubVerifier struct {
	claims *TokenClaims
	err    error
}

func (s *stubVerifier) VerifyToken(context.Context, string) (*TokenClaims, error) {
	return s.claims, s.err
}

func TestAuthenticatorMissingToken(t *testing.T) {
	var called bool
	handler := Authenticator(&stubVerifier{})(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/login", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticatorRevokedToken(t *testing.T) {
	verifier := &stubVerifier{err: fmt.Errorf("verify token: %w", core.ErrTokenRevoked)}

	var called bool
	handler := Authenticator(verifier)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/users/login", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
	assert.False(t, called)
}

func TestAuthenticatorPlacesClaims(t *testing.T) {
	verifier := &stubVerifier{claims: &TokenClaims{
		UserID: "507f1f77bcf86cd799439011",
		Email:  "keks@htmlacademy.ru",
	}}

	var gotUserID, gotEmail string
	handler := Authenticator(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		gotEmail = GetUserEmail(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/users/login", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "507f1f77bcf86cd799439011", gotUserID)
	assert.Equal(t, "keks@htmlacademy.ru", gotEmail)
}

func TestOptionalAuthAnonymousPassesThrough(t *testing.T) {
	var called bool
	var authenticated bool
	handler := OptionalAuth(&stubVerifier{err: core.ErrTokenInvalid})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			authenticated = IsAuthenticated(r.Context())
		}))

	// no token at all
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/offers", nil))
	assert.True(t, called)
	assert.False(t, authenticated)

	// a bad token is ignored rather than rejected
	called = false
	req := httptest.NewRequest(http.MethodGet, "/offers", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, called)
	assert.False(t, authenticated)
}

func TestExtractToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", ExtractToken(req))

	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", ExtractToken(req))

	req.Header.Set("Authorization", "bearer abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", ExtractToken(req), "scheme is case-insensitive")

	req.Header.Set("Authorization", "Basic abc")
	assert.Equal(t, "", ExtractToken(req))
}

func TestUploadWithoutFilePassesThrough(t *testing.T) {
	var fileName string
	handler := Upload(t.TempDir(), "avatar", 1<<20)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fileName = GetUploadedFile(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

	// non-multipart request
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/x/avatar", strings.NewReader("{}")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", fileName)

	// multipart request without the field
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("unrelated", "value"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/users/x/avatar", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", fileName)
}

func TestUploadStoresFile(t *testing.T) {
	dir := t.TempDir()

	var fileName string
	handler := Upload(dir, "avatar", 1<<20)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fileName = GetUploadedFile(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("avatar", "Photo.JPG")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/users/x/avatar", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, fileName)
	assert.True(t, strings.HasSuffix(fileName, ".jpg"), "extension is normalized to lower case")
	assert.NotContains(t, fileName, "Photo", "stored name never echoes the client's name")
}
