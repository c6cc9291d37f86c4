package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestAs(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/medicines", nil)
	principal := entity.Principal{ID: uuid.New(), Email: "who@example.com", Role: role}
	return req.WithContext(WithPrincipal(req.Context(), principal))
}

func TestRequireRole_Allowed(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireDoctor()(okHandler()).ServeHTTP(rec, requestAs(entity.RoleDoctor))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_Forbidden(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireDoctor()(okHandler()).ServeHTTP(rec, requestAs(entity.RolePatient))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// No role hierarchy: admin and receptionist have no clinical access.
func TestRequireRole_NoHierarchy(t *testing.T) {
	for _, role := range []string{entity.RoleAdmin, entity.RoleReceptionist} {
		rec := httptest.NewRecorder()
		RequireDoctor()(okHandler()).ServeHTTP(rec, requestAs(role))
		assert.Equal(t, http.StatusForbidden, rec.Code, "role %s", role)
	}
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	guard := RequireRole(entity.RoleDoctor, entity.RolePatient)

	for _, role := range []string{entity.RoleDoctor, entity.RolePatient} {
		rec := httptest.NewRecorder()
		guard(okHandler()).ServeHTTP(rec, requestAs(role))
		assert.Equal(t, http.StatusOK, rec.Code, "role %s", role)
	}
}

func TestRequireRole_MissingPrincipal(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/medicines", nil)
	RequireDoctor()(okHandler()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
