package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bcrental/car-rental-api/internal/auth"
	"github.com/bcrental/car-rental-api/internal/core/domain"
	"github.com/bcrental/car-rental-api/internal/core/ports"
)

// userContextKey is where the decoded claims live on the echo context.
const userContextKey = "user"

// RequireRole returns the role gate for protected routes. It extracts the
// bearer token, verifies it, re-fetches the role by the embedded role id (so
// role reassignment takes effect without reissuing tokens), and allows the
// request only when the live role name matches roleName. A role id that no
// longer resolves fails closed.
func RequireRole(codec *auth.Codec, roles ports.RoleRepository, roleName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return domain.NewInvalidTokenError("missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.NewInvalidTokenError("invalid authorization header")
			}

			claims, err := codec.Decode(parts[1])
			if err != nil {
				return err
			}

			role, err := roles.FindByID(c.Request().Context(), claims.Role.ID)
			if err != nil {
				return err
			}
			if role == nil {
				return domain.NewInsufficientAccessError(claims.Role.Name)
			}
			if role.Name != roleName {
				return domain.NewInsufficientAccessError(role.Name)
			}

			c.Set(userContextKey, claims)
			return next(c)
		}
	}
}

// CurrentUser returns the claims injected by RequireRole, or nil when the
// request did not pass through the gate.
func CurrentUser(c echo.Context) *auth.Claims {
	claims, _ := c.Get(userContextKey).(*auth.Claims)
	return claims
}
