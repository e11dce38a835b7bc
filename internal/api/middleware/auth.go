package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

// identityKey is the echo context key holding the caller's domain.Identity.
const identityKey = "identity"

// Auth validates the bearer token and injects the caller's identity into the
// context. Requests without a valid token are rejected with 401 before the
// handler runs.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			who, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			SetIdentity(c, who)
			return next(c)
		}
	}
}

// SetIdentity stores who on the context.
func SetIdentity(c echo.Context, who domain.Identity) {
	c.Set(identityKey, who)
}

// Identity returns the caller set by Auth. ok is false on unauthenticated routes.
func Identity(c echo.Context) (domain.Identity, bool) {
	who, ok := c.Get(identityKey).(domain.Identity)
	if !ok || who.UserID <= 0 {
		return domain.Identity{}, false
	}
	return who, true
}
