package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthlink/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireRole_Allowed(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()

	RequireRole(entity.RoleDoctor)(okHandler(&called)).ServeHTTP(rec, requestWithRole(entity.RoleDoctor))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireRole_Forbidden(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()

	RequireRole(entity.RoleDoctor)(okHandler(&called)).ServeHTTP(rec, requestWithRole(entity.RolePatient))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireRole_MissingRole(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	RequireRole(entity.RoleDoctor)(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireDoctor(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()

	RequireDoctor(okHandler(&called)).ServeHTTP(rec, requestWithRole(entity.RolePatient))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequirePatient(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()

	RequirePatient(okHandler(&called)).ServeHTTP(rec, requestWithRole(entity.RolePatient))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
