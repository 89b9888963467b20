package handler

import (
	"errors"
	"net/http"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/enrollment"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/middleware"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

func SetupScheduleRoutes(e *echo.Echo, storage *postgres.Storage, authMiddleware echo.MiddlewareFunc) {
	adminOnly := middleware.RequireRoles("admin")
	schedulerOnly := middleware.RequireRoles("coach", "admin")

	e.GET("/api/schedules", GetSchedules(storage))
	e.GET("/api/schedules/:id", GetScheduleByID(storage))

	e.POST("/api/schedules", CreateSchedule(storage), authMiddleware, schedulerOnly)
	e.PUT("/api/schedules/:id", UpdateSchedule(storage), authMiddleware, adminOnly)
	e.DELETE("/api/schedules/:id", DeleteSchedule(storage), authMiddleware, adminOnly)

	e.POST("/api/schedules/:id/enroll", EnrollMember(storage), authMiddleware)
	e.POST("/api/schedules/:id/unenroll", UnenrollMember(storage), authMiddleware)
}

// GetSchedules godoc
// @Summary List class schedules
// @Description Get all schedules, optionally filtered by class name, coach or date
// @Tags schedules
// @Accept json
// @Produce json
// @Param className query string false "Substring match on class name"
// @Param coachId query string false "Coach id"
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} domain.Schedule
// @Failure 500 {object} map[string]string
// @Router /schedules [get]
func GetSchedules(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter := domain.ScheduleFilter{
			ClassName: c.QueryParam("className"),
			CoachID:   c.QueryParam("coachId"),
			Date:      c.QueryParam("date"),
		}

		schedules, err := storage.GetAllSchedules(c.Request().Context(), filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch schedules"})
		}

		return c.JSON(http.StatusOK, schedules)
	}
}

// GetScheduleByID godoc
// @Summary Get schedule by ID
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} domain.Schedule
// @Failure 404 {object} map[string]string
// @Router /schedules/{id} [get]
func GetScheduleByID(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		schedule, err := storage.GetScheduleByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Schedule not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch schedule"})
		}

		return c.JSON(http.StatusOK, schedule)
	}
}

// CreateSchedule godoc
// @Summary Create a class schedule
// @Description Create a new class occurrence. Requires a coach or admin token.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schedule body domain.ScheduleRequest true "Schedule details"
// @Success 201 {object} domain.Schedule
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /schedules [post]
func CreateSchedule(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.ScheduleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		// Edit-time invariant; the enrollment engine does not re-check it.
		if req.StartTime >= req.EndTime {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "startTime must be before endTime"})
		}

		schedule := &domain.Schedule{
			ID:          uuid.NewString(),
			ClassName:   req.ClassName,
			CoachID:     req.CoachID,
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Capacity:    req.Capacity,
			Description: req.Description,
		}

		created, err := storage.CreateSchedule(c.Request().Context(), schedule)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create schedule"})
		}

		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateSchedule godoc
// @Summary Update a class schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param schedule body domain.ScheduleRequest true "Schedule details"
// @Success 200 {object} domain.Schedule
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id} [put]
func UpdateSchedule(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.ScheduleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if req.StartTime >= req.EndTime {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "startTime must be before endTime"})
		}

		schedule := &domain.Schedule{
			ID:          c.Param("id"),
			ClassName:   req.ClassName,
			CoachID:     req.CoachID,
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Capacity:    req.Capacity,
			Description: req.Description,
		}

		updated, err := storage.UpdateSchedule(c.Request().Context(), schedule)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Schedule not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update schedule"})
		}

		return c.JSON(http.StatusOK, updated)
	}
}

// DeleteSchedule godoc
// @Summary Delete a class schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id} [delete]
func DeleteSchedule(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := storage.DeleteSchedule(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Schedule not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete schedule"})
		}

		return c.JSON(http.StatusOK, map[string]string{"message": "Schedule deleted successfully"})
	}
}

// EnrollMember godoc
// @Summary Enroll a member in a class
// @Description Join a class occurrence. Fails when already enrolled, the class is full or in the past, or the member has an overlapping class the same day.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param request body domain.EnrollRequest true "Member to enroll"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id}/enroll [post]
func EnrollMember(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.EnrollRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		schedule, err := storage.EnrollMember(c.Request().Context(), c.Param("id"), req.UserID)
		if err != nil {
			return enrollmentError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"message":       "Successfully enrolled in class",
			"enrolledCount": len(schedule.EnrolledMembers),
			"capacity":      schedule.Capacity,
		})
	}
}

// UnenrollMember godoc
// @Summary Unenroll a member from a class
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param request body domain.EnrollRequest true "Member to unenroll"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id}/unenroll [post]
func UnenrollMember(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.EnrollRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		schedule, err := storage.UnenrollMember(c.Request().Context(), c.Param("id"), req.UserID)
		if err != nil {
			return enrollmentError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"message":       "Successfully unenrolled from class",
			"enrolledCount": len(schedule.EnrolledMembers),
			"capacity":      schedule.Capacity,
		})
	}
}

// enrollmentError maps storage and engine failures to the wire contract:
// missing schedule is 404, every gate rejection is 400 with its message,
// anything else is a 500.
func enrollmentError(c echo.Context, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Schedule not found"})
	}

	var conflict *enrollment.ConflictError
	switch {
	case errors.Is(err, enrollment.ErrAlreadyEnrolled),
		errors.Is(err, enrollment.ErrClassFull),
		errors.Is(err, enrollment.ErrPastClass),
		errors.Is(err, enrollment.ErrNotEnrolled):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &conflict):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": conflict.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update enrollment"})
	}
}
