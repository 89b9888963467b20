package handler

import (
	"net/http"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/repository/postgres"
	"github.com/labstack/echo/v4"
)

func SetupDashboardRoutes(e *echo.Echo, storage *postgres.Storage, authMiddleware echo.MiddlewareFunc) {
	e.GET("/api/dashboard/stats", GetDashboardStats(storage), authMiddleware)
}

// GetDashboardStats godoc
// @Summary Dashboard statistics
// @Description Member, coach and schedule counts plus revenue aggregates
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.DashboardStats
// @Failure 500 {object} map[string]string
// @Router /dashboard/stats [get]
func GetDashboardStats(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := storage.DashboardStats(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute stats"})
		}

		return c.JSON(http.StatusOK, stats)
	}
}
