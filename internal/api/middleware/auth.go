package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cinehub/internal/domain"
)

const userIDContextKey = "user_id"

// JWTAuth returns echo middleware that validates the bearer token and
// stores the authenticated user id in the request context.
func JWTAuth(verifier domain.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			userID, err := verifier.VerifyToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by JWTAuth, or zero when the
// middleware did not run.
func UserID(c echo.Context) int64 {
	userID, _ := c.Get(userIDContextKey).(int64)
	return userID
}
