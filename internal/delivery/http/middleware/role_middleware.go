package middleware

import (
	"net/http"
	"slices"

	"expediente-admin/pkg/jwt"
	"expediente-admin/pkg/response"
)

// RequireRole lets the request through only when the actor holds one of
// allowedRoles. Must run after Authenticate.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if !slices.Contains(allowedRoles, role) {
				response.Forbidden(w, "Only administrators can manage products")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin guards the product admin routes.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(jwt.RoleAdmin)(next)
}
