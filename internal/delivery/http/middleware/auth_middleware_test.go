package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthlink/config"
	"healthlink/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testJWTService() *jwt.Service {
	return jwt.NewService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(testJWTService())

	called := false
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	m.Authenticate(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(testJWTService())

	called := false
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()

	m.Authenticate(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	expired := jwt.NewService(config.JWTConfig{Secret: "test-secret", Expiry: -time.Hour})
	token, err := expired.Issue(uuid.New(), "patient")
	assert.NoError(t, err)

	m := NewAuthMiddleware(testJWTService())

	called := false
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	m.Authenticate(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticate_BearerToken(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()
	token, err := svc.Issue(userID, "doctor")
	assert.NoError(t, err)

	m := NewAuthMiddleware(svc)

	var gotUserID uuid.UUID
	var gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserIDFromContext(r.Context())
		gotRole, _ = GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	m.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, "doctor", gotRole)
}

// The header value is accepted with or without the "Bearer " prefix.
func TestAuthenticate_RawToken(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()
	token, err := svc.Issue(userID, "patient")
	assert.NoError(t, err)

	m := NewAuthMiddleware(svc)

	var gotUserID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()

	m.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
}
