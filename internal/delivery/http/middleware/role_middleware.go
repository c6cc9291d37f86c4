package middleware

import (
	"net/http"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	"github.com/Dixit-Goti/hospital-management/pkg/apperror"
	"github.com/Dixit-Goti/hospital-management/pkg/response"
)

// RequireRole gates a route to the given roles. It must run after
// AuthMiddleware; a missing principal is treated as unauthenticated.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Missing or malformed authorization header", apperror.CodeInvalidToken)
				return
			}
			if _, ok := allowed[principal.Role]; !ok {
				response.Forbidden(w, "Access denied: insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequireDoctor() func(http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)
}

func RequirePatient() func(http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)
}
