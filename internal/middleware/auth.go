package middleware

import (
	"strings"

	"github.com/camknopp/open-mics-near-me/internal/auth"
	"github.com/labstack/echo/v4"
)

// UserIDKey is the echo context key holding the authenticated subject, when
// there is one.
const UserIDKey = "user_id"

// OptionalAuth validates a Bearer session token if the request carries one
// and stashes its subject in the context. Requests without a token, or with a
// bad one, pass through untouched: identity is optional everywhere.
func OptionalAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				raw := strings.TrimPrefix(header, "Bearer ")
				if session, err := auth.ParseSession(secret, raw); err == nil {
					c.Set(UserIDKey, session.UserID)
				}
			}
			return next(c)
		}
	}
}
