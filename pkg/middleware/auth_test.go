package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "tool-client",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runAuth(secret string, req *http.Request) *httptest.ResponseRecorder {
	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	AuthMiddleware(secret)(next).ServeHTTP(recorder, req)

	if recorder.Code == http.StatusOK && !reached {
		panic("handler reported OK without being reached")
	}
	return recorder
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret))

	recorder := runAuth(testSecret, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)

	recorder := runAuth(testSecret, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"code":"AUTH_001"`)
	assert.Contains(t, recorder.Body.String(), "Authorization header is required")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	recorder := runAuth(testSecret, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Bearer token is required")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "another-secret"))

	recorder := runAuth(testSecret, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid token")
}

func TestAuthMiddleware_EmptySecretDisablesAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)

	recorder := runAuth("", req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthMiddleware_HealthcheckBypassesAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)

	recorder := runAuth(testSecret, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
