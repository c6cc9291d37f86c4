package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	"github.com/Dixit-Goti/hospital-management/internal/service"
	"github.com/Dixit-Goti/hospital-management/pkg/apperror"
	"github.com/Dixit-Goti/hospital-management/pkg/jwt"
	"github.com/Dixit-Goti/hospital-management/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const principalKey contextKey = "principal"

// AuthMiddleware verifies the bearer token and checks the session against the
// token store, so revoked sessions fail even before their token expires.
type AuthMiddleware struct {
	log        *logrus.Logger
	jwtService *jwt.JWTService
	tokenStore service.TokenStore
}

func NewAuthMiddleware(log *logrus.Logger, jwtService *jwt.JWTService, tokenStore service.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		log:        log,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

func (m *AuthMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(w, "Missing or malformed authorization header", apperror.CodeInvalidToken)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(w, "Token has expired", apperror.CodeTokenExpired)
				return
			}
			response.Unauthorized(w, "Invalid token", apperror.CodeInvalidToken)
			return
		}

		valid, err := m.tokenStore.Exists(r.Context(), claims.SubjectID, claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to check session token: %+v", err)
			response.Err(w, err)
			return
		}
		if !valid {
			response.Unauthorized(w, "Session has been revoked", apperror.CodeInvalidToken)
			return
		}

		principal := entity.Principal{
			ID:    claims.SubjectID,
			Email: claims.Email,
			Role:  claims.Role,
		}
		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PrincipalFromContext returns the authenticated principal placed there by
// AuthMiddleware. The second return is false on unauthenticated requests.
func PrincipalFromContext(ctx context.Context) (entity.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(entity.Principal)
	return principal, ok
}

// WithPrincipal is used by tests to simulate an authenticated request.
func WithPrincipal(ctx context.Context, principal entity.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}
