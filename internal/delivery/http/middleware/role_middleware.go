package middleware

import (
	"net/http"

	"maternal-care-backend/internal/domain/entity"
	"maternal-care-backend/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Role is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireMOH is a convenience middleware for MOH officer endpoints
func RequireMOH(next http.Handler) http.Handler {
	return RequireRole(entity.RoleMOH)(next)
}

// RequireMidwife is a convenience middleware for midwife endpoints
func RequireMidwife(next http.Handler) http.Handler {
	return RequireRole(entity.RoleMidwife)(next)
}

// RequireMother is a convenience middleware for the mother mobile app
func RequireMother(next http.Handler) http.Handler {
	return RequireRole(entity.RoleMother)(next)
}
