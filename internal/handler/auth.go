package handler

import (
	"net/http"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/repository/postgres"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/utils"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

func SetupAuthRoutes(e *echo.Echo, storage *postgres.Storage, authMiddleware echo.MiddlewareFunc) {
	e.POST("/api/auth/login", Login(storage))
	e.GET("/api/auth/verify", Verify(storage), authMiddleware)
}

// Login godoc
// @Summary Login
// @Description Authenticate with email and password, returns a JWT and the user record
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Login credentials"
// @Success 200 {object} domain.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/login [post]
func Login(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		user, err := storage.GetUserByEmail(c.Request().Context(), req.Email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		}

		if !user.IsActive {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "account is deactivated"})
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		}

		token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate token"})
		}

		return c.JSON(http.StatusOK, domain.AuthResponse{
			Token: token,
			User:  *user,
		})
	}
}

// Verify godoc
// @Summary Verify token
// @Description Return the user behind a still-valid bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} map[string]string
// @Router /auth/verify [get]
func Verify(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get("user_id").(string)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": utils.ErrValueConversion.Error()})
		}

		user, err := storage.GetUserByID(c.Request().Context(), userID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": utils.ErrInvalidToken.Error()})
		}

		return c.JSON(http.StatusOK, user)
	}
}
