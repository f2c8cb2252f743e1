package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "bmshub/internal/delivery/context"
	"bmshub/internal/domain/service"
)

// AuthMiddleware gates routes behind the external identity verifier.
// Only two routes use it; everything else is unauthenticated by
// construction, mirroring the upstream API contract.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer ID token and stores the verified
// principal on the context. A missing or malformed header is 401; a token
// the verifier rejects is 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized access"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized access"})
		}

		if m.verifier == nil {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden access"})
		}

		principal, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden access"})
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}
