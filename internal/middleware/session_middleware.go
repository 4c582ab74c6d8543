package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/olowojude/Food-Flex/internal/services"
)

// Role-gated pages redirect rather than error: an expired or missing
// session is just "logged out", never a failure page.

// RequireAuth sends unauthenticated visitors to the login page.
func RequireAuth(s *services.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !s.Authenticated() {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// RequireBuyer gates buyer-only pages (cart, checkout, credit).
func RequireBuyer(s *services.SessionService) echo.MiddlewareFunc {
	return requireRole(s, func() bool { return s.IsBuyer() })
}

// RequireSeller gates seller-only pages (inventory, order fulfillment).
func RequireSeller(s *services.SessionService) echo.MiddlewareFunc {
	return requireRole(s, func() bool { return s.IsSeller() })
}

// RequireAdmin gates the management pages.
func RequireAdmin(s *services.SessionService) echo.MiddlewareFunc {
	return requireRole(s, func() bool { return s.IsAdmin() })
}

func requireRole(s *services.SessionService, allowed func() bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !s.Authenticated() {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			if !allowed() {
				return c.Redirect(http.StatusSeeOther, "/")
			}
			return next(c)
		}
	}
}
