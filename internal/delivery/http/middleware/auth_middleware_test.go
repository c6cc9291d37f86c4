package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dixit-Goti/hospital-management/config"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	"github.com/Dixit-Goti/hospital-management/pkg/apperror"
	"github.com/Dixit-Goti/hospital-management/pkg/jwt"
	"github.com/Dixit-Goti/hospital-management/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenStore struct {
	valid map[string]bool
}

func (s *fakeTokenStore) Save(ctx context.Context, subjectID uuid.UUID, tokenID string, ttl time.Duration) error {
	if s.valid == nil {
		s.valid = make(map[string]bool)
	}
	s.valid[subjectID.String()+":"+tokenID] = true
	return nil
}

func (s *fakeTokenStore) Exists(ctx context.Context, subjectID uuid.UUID, tokenID string) (bool, error) {
	return s.valid[subjectID.String()+":"+tokenID], nil
}

func (s *fakeTokenStore) RevokeAll(ctx context.Context, subjectID uuid.UUID) error {
	for key := range s.valid {
		if len(key) > 36 && key[:36] == subjectID.String() {
			delete(s.valid, key)
		}
	}
	return nil
}

func newTestAuth(t *testing.T, expiry time.Duration) (*AuthMiddleware, *jwt.JWTService, *fakeTokenStore) {
	t.Helper()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: expiry})
	store := &fakeTokenStore{valid: make(map[string]bool)}
	return NewAuthMiddleware(logrus.New(), jwtService, store), jwtService, store
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.ErrorCode
}

func protectedEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(principal.Email))
	})
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mw, _, _ := newTestAuth(t, time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	mw.Handle(protectedEcho(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperror.CodeInvalidToken, errorCode(t, rec))
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	mw, _, _ := newTestAuth(t, time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Token abc")
	mw.Handle(protectedEcho(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperror.CodeInvalidToken, errorCode(t, rec))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	mw, jwtService, _ := newTestAuth(t, -time.Minute)

	token, _, err := jwtService.GenerateToken(uuid.New(), "doc@example.com", entity.RoleDoctor)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	mw.Handle(protectedEcho(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperror.CodeTokenExpired, errorCode(t, rec))
}

func TestAuthMiddleware_RevokedSession(t *testing.T) {
	mw, jwtService, _ := newTestAuth(t, time.Hour)

	// Token never saved into the store: treated as revoked.
	token, _, err := jwtService.GenerateToken(uuid.New(), "doc@example.com", entity.RoleDoctor)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	mw.Handle(protectedEcho(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperror.CodeInvalidToken, errorCode(t, rec))
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mw, jwtService, store := newTestAuth(t, time.Hour)

	subjectID := uuid.New()
	token, tokenID, err := jwtService.GenerateToken(subjectID, "doc@example.com", entity.RoleDoctor)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), subjectID, tokenID, time.Hour))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	mw.Handle(protectedEcho(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "doc@example.com", rec.Body.String())
}
