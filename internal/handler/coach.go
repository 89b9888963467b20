package handler

import (
	"errors"
	"net/http"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/middleware"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

func SetupCoachRoutes(e *echo.Echo, storage *postgres.Storage, authMiddleware echo.MiddlewareFunc) {
	adminOnly := middleware.RequireRoles("admin")

	g := e.Group("/api/coaches", authMiddleware)
	g.GET("", GetCoaches(storage))
	g.GET("/:id", GetCoachByID(storage))
	g.POST("", CreateCoach(storage), adminOnly)
	g.PUT("/:id", UpdateCoach(storage), adminOnly)
	g.DELETE("/:id", DeleteCoach(storage), adminOnly)
}

// GetCoaches godoc
// @Summary List coaches
// @Tags coaches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Coach
// @Failure 500 {object} map[string]string
// @Router /coaches [get]
func GetCoaches(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		coaches, err := storage.GetAllCoaches(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch coaches"})
		}

		return c.JSON(http.StatusOK, coaches)
	}
}

// GetCoachByID godoc
// @Summary Get coach by ID
// @Tags coaches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Success 200 {object} domain.Coach
// @Failure 404 {object} map[string]string
// @Router /coaches/{id} [get]
func GetCoachByID(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		coach, err := storage.GetCoachByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Coach not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch coach"})
		}

		return c.JSON(http.StatusOK, coach)
	}
}

// CreateCoach godoc
// @Summary Create a coach
// @Tags coaches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param coach body domain.CoachRequest true "Coach details"
// @Success 201 {object} domain.Coach
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /coaches [post]
func CreateCoach(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.CoachRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		status := req.Status
		if status == "" {
			status = "active"
		}

		coach := &domain.Coach{
			ID:             uuid.NewString(),
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Specialization: req.Specialization,
			Experience:     req.Experience,
			Image:          req.Image,
			Bio:            req.Bio,
			Status:         status,
			Salary:         req.Salary,
		}

		created, err := storage.CreateCoach(c.Request().Context(), coach)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create coach"})
		}

		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateCoach godoc
// @Summary Update a coach
// @Tags coaches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Param coach body domain.CoachRequest true "Coach details"
// @Success 200 {object} domain.Coach
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coaches/{id} [put]
func UpdateCoach(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.CoachRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		status := req.Status
		if status == "" {
			status = "active"
		}

		coach := &domain.Coach{
			ID:             c.Param("id"),
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Specialization: req.Specialization,
			Experience:     req.Experience,
			Image:          req.Image,
			Bio:            req.Bio,
			Status:         status,
			Salary:         req.Salary,
		}

		updated, err := storage.UpdateCoach(c.Request().Context(), coach)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Coach not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update coach"})
		}

		return c.JSON(http.StatusOK, updated)
	}
}

// DeleteCoach godoc
// @Summary Delete a coach
// @Tags coaches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coaches/{id} [delete]
func DeleteCoach(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := storage.DeleteCoach(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Coach not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete coach"})
		}

		return c.JSON(http.StatusOK, map[string]string{"message": "Coach deleted successfully"})
	}
}
