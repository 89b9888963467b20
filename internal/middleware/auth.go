package middleware

import (
	"net/http"
	"strings"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/utils"
	"github.com/labstack/echo/v4"
)

func JWTAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": utils.ErrUnauthorized.Error()})
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": utils.ErrInvalidToken.Error()})
			}

			token := strings.Split(authHeader, " ")[1]

			claims, err := utils.ValidateToken(token)

			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": utils.ErrInvalidToken.Error()})
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

// RequireRoles rejects requests whose token role is not in the allowed set.
// Must run after JWTAuth.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": utils.ErrUnauthorized.Error()})
			}

			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, map[string]string{"error": utils.ErrForbidden.Error()})
		}
	}
}
