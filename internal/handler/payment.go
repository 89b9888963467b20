package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/middleware"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

func SetupPaymentRoutes(e *echo.Echo, storage *postgres.Storage, authMiddleware echo.MiddlewareFunc) {
	adminOnly := middleware.RequireRoles("admin")

	g := e.Group("/api/payments", authMiddleware)
	g.GET("", GetPayments(storage))
	g.GET("/export", ExportPayments(storage), adminOnly)
	g.GET("/:id", GetPaymentByID(storage))
	g.POST("", CreatePayment(storage))
	g.DELETE("/:id", DeletePayment(storage), adminOnly)
}

// GetPayments godoc
// @Summary List payments
// @Description Get all payments, newest first, each populated with its member record
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Payment
// @Failure 500 {object} map[string]string
// @Router /payments [get]
func GetPayments(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		payments, err := storage.GetAllPayments(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch payments"})
		}

		return c.JSON(http.StatusOK, payments)
	}
}

// GetPaymentByID godoc
// @Summary Get payment by ID
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} domain.Payment
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [get]
func GetPaymentByID(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		payment, err := storage.GetPaymentByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Payment not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch payment"})
		}

		return c.JSON(http.StatusOK, payment)
	}
}

// CreatePayment godoc
// @Summary Record a payment
// @Description Record a payment for a member. Member name and plan are snapshotted from the member record.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payment body domain.PaymentRequest true "Payment details"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} map[string]string
// @Router /payments [post]
func CreatePayment(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.PaymentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		member, err := storage.GetMemberByID(c.Request().Context(), req.MemberID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Member not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch member"})
		}

		paymentDate := time.Now().UTC()
		if req.PaymentDate != nil {
			paymentDate = *req.PaymentDate
		}

		payment := &domain.Payment{
			ID:             uuid.NewString(),
			MemberID:       member.ID,
			MemberName:     member.Name,
			MembershipType: &member.MembershipType,
			Amount:         req.Amount,
			PaymentDate:    paymentDate,
			PaymentMethod:  req.PaymentMethod,
			Status:         "completed",
			Description:    req.Description,
			Notes:          req.Notes,
			IsStudent:      req.IsStudent,
		}

		created, err := storage.CreatePayment(c.Request().Context(), payment)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create payment"})
		}

		return c.JSON(http.StatusCreated, created)
	}
}

// DeletePayment godoc
// @Summary Delete a payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [delete]
func DeletePayment(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := storage.DeletePayment(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Payment not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete payment"})
		}

		return c.JSON(http.StatusOK, map[string]string{"message": "Payment deleted successfully"})
	}
}

// ExportPayments godoc
// @Summary Export payments as a spreadsheet
// @Description Stream every payment as an .xlsx file
// @Tags payments
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string
// @Router /payments/export [get]
func ExportPayments(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		payments, err := storage.GetAllPayments(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch payments"})
		}

		f := excelize.NewFile()
		const sheetName = "Payments"
		index, err := f.NewSheet(sheetName)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to build export"})
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		headers := []string{"Member", "Membership", "Amount", "Method", "Status", "Student", "Payment Date"}
		for i, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheetName, cell, header)
		}

		for i, p := range payments {
			row := i + 2
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), p.MemberName)
			if p.MembershipType != nil {
				f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), *p.MembershipType)
			}
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.Amount)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), p.PaymentMethod)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), p.Status)
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), p.IsStudent)
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), p.PaymentDate.Format("2006-01-02 15:04"))
		}

		fileName := fmt.Sprintf("payments_%s.xlsx", time.Now().Format("20060102_150405"))
		c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)

		if err := f.Write(c.Response()); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to write export"})
		}
		return nil
	}
}
