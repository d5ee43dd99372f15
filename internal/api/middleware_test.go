package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sehat-ai/backend/internal/api"
	"sehat-ai/backend/internal/auth"
)

const testSecret = "test-secret"

// signTestToken builds a valid HS256 token the way the identity service
// would.
func signTestToken(t *testing.T, secret string, expiry time.Time) string {
	t.Helper()
	claims := auth.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authedHandler(t *testing.T) (http.Handler, *bool) {
	reached := false
	verifier := auth.NewJWTVerifier(testSecret)
	handler := api.RequireAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := api.UserFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "user-1", claims.UserID)
		reached = true
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &reached
}

func TestRequireAuth_MissingToken(t *testing.T) {
	handler, reached := authedHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/respond", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "No token provided")
	assert.False(t, *reached)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	handler, reached := authedHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/respond", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, *reached)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	handler, reached := authedHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/respond", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid token")
	assert.False(t, *reached)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	handler, reached := authedHandler(t)

	token := signTestToken(t, "a-different-secret", time.Now().Add(time.Hour))
	req := httptest.NewRequest(http.MethodPost, "/respond", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, *reached)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	handler, reached := authedHandler(t)

	token := signTestToken(t, testSecret, time.Now().Add(-time.Hour))
	req := httptest.NewRequest(http.MethodPost, "/respond", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, *reached)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	handler, reached := authedHandler(t)

	token := signTestToken(t, testSecret, time.Now().Add(time.Hour))
	req := httptest.NewRequest(http.MethodPost, "/respond", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, *reached)
}
