package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/symmetrical-potato/web/internal/api/metrics"
	"github.com/symmetrical-potato/web/internal/core/domain"
)

// HasRole reports whether the identity carries at least one of the required
// roles (any-match). A nil identity or an empty role set always denies, even
// though every real account carries ROLE_USER.
func HasRole(identity *domain.Identity, required ...string) bool {
	if identity == nil || len(identity.Roles) == 0 {
		return false
	}
	held := make(map[string]struct{}, len(identity.Roles))
	for _, r := range identity.Roles {
		held[r] = struct{}{}
	}
	for _, r := range required {
		if _, ok := held[r]; ok {
			return true
		}
	}
	return false
}

// RequireRole gates a route group on the given roles. Denial is control
// flow, not an error: the request short-circuits with a 303 redirect to
// redirectTarget and never reaches the handler.
func RequireRole(redirectTarget string, roles ...string) echo.MiddlewareFunc {
	if redirectTarget == "" {
		redirectTarget = "/login"
	}
	if len(roles) == 0 {
		roles = []string{domain.RoleUser}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scope := RequestScope(c)
			var identity *domain.Identity
			if scope != nil {
				identity = scope.User
			}
			if !HasRole(identity, roles...) {
				metrics.RoleDenialsTotal.WithLabelValues(roles[0]).Inc()
				return c.Redirect(http.StatusSeeOther, redirectTarget)
			}
			return next(c)
		}
	}
}

// RequireUser gates on ROLE_USER with the /login redirect default.
func RequireUser() echo.MiddlewareFunc {
	return RequireRole("/login", domain.RoleUser)
}

// RequireAdmin gates on ROLE_ADMIN. Denied users are sent back to their own
// dashboard rather than the login page: they are authenticated, just not
// authorized.
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole("/dashboard", domain.RoleAdmin)
}
