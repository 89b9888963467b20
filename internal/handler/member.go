package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/middleware"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Default password for auto-created member accounts; members are expected
// to change it after first login.
const defaultMemberPassword = "member123"

func SetupMemberRoutes(e *echo.Echo, storage *postgres.Storage, logger *zap.Logger, authMiddleware echo.MiddlewareFunc) {
	adminOnly := middleware.RequireRoles("admin")

	g := e.Group("/api/members", authMiddleware)
	g.GET("", GetMembers(storage))
	g.GET("/:id", GetMemberByID(storage))
	g.POST("", CreateMember(storage, logger), adminOnly)
	g.PUT("/:id", UpdateMember(storage), adminOnly)
	g.DELETE("/:id", DeleteMember(storage), adminOnly)
}

// GetMembers godoc
// @Summary List members
// @Description Get all members, optionally filtered by name/email search, status or membership type
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring match on name or email"
// @Param status query string false "active, expired or inactive"
// @Param membershipType query string false "Membership plan"
// @Success 200 {array} domain.Member
// @Failure 500 {object} map[string]string
// @Router /members [get]
func GetMembers(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter := domain.MemberFilter{
			Search:         c.QueryParam("search"),
			Status:         c.QueryParam("status"),
			MembershipType: c.QueryParam("membershipType"),
		}

		members, err := storage.GetAllMembers(c.Request().Context(), filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch members"})
		}

		return c.JSON(http.StatusOK, members)
	}
}

// GetMemberByID godoc
// @Summary Get member by ID
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} domain.Member
// @Failure 404 {object} map[string]string
// @Router /members/{id} [get]
func GetMemberByID(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		member, err := storage.GetMemberByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Member not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch member"})
		}

		return c.JSON(http.StatusOK, member)
	}
}

// CreateMember godoc
// @Summary Create a member
// @Description Create a member. Trial plans expire after a day, monthly after 30 days, annual after a year. Non-trial members also get a login account.
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param member body domain.MemberRequest true "Member details"
// @Success 201 {object} domain.Member
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /members [post]
func CreateMember(storage *postgres.Storage, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.MemberRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		now := time.Now().UTC()
		member := &domain.Member{
			ID:               uuid.NewString(),
			Name:             req.Name,
			Email:            req.Email,
			Phone:            req.Phone,
			MembershipType:   req.MembershipType,
			JoinDate:         now,
			Address:          req.Address,
			EmergencyContact: req.EmergencyContact,
			CoachID:          req.CoachID,
		}
		applyMembershipRules(member, now)

		if member.CoachID != nil {
			coach, err := storage.GetCoachByID(c.Request().Context(), *member.CoachID)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Coach not found"})
			}
			member.CoachName = &coach.Name
		}

		created, err := storage.CreateMember(c.Request().Context(), member)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create member"})
		}

		// Non-trial members get a login account so they can enroll in
		// classes themselves. Account creation failure is logged but never
		// fails member creation.
		if !created.IsTrial && created.Email != "" && !strings.Contains(created.Email, "@trial.local") {
			if err := createMemberAccount(c, storage, created, req.Password); err != nil {
				logger.Warn("failed to create user account for member",
					zap.String("memberId", created.ID),
					zap.Error(err),
				)
			}
		}

		return c.JSON(http.StatusCreated, created)
	}
}

func createMemberAccount(c echo.Context, storage *postgres.Storage, member *domain.Member, password *string) error {
	ctx := c.Request().Context()

	if _, err := storage.GetUserByEmail(ctx, member.Email); err == nil {
		return nil // account already exists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	plain := defaultMemberPassword
	if password != nil && *password != "" {
		plain = *password
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = storage.CreateUser(ctx, &domain.User{
		ID:           uuid.NewString(),
		Name:         member.Name,
		Email:        member.Email,
		PasswordHash: string(hash),
		Role:         "member",
		AuthProvider: "local",
		IsActive:     true,
	})
	return err
}

// UpdateMember godoc
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param member body domain.MemberRequest true "Member details"
// @Success 200 {object} domain.Member
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /members/{id} [put]
func UpdateMember(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.MemberRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		existing, err := storage.GetMemberByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Member not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch member"})
		}

		existing.Name = req.Name
		existing.Email = req.Email
		existing.Phone = req.Phone
		existing.Address = req.Address
		existing.EmergencyContact = req.EmergencyContact
		existing.CoachID = req.CoachID
		existing.CoachName = nil

		// A plan change restarts the expiration clock.
		if !strings.EqualFold(existing.MembershipType, req.MembershipType) {
			existing.MembershipType = req.MembershipType
			existing.IsTrial = false
			existing.ExpirationDate = nil
			applyMembershipRules(existing, time.Now().UTC())
		}

		if existing.CoachID != nil {
			coach, err := storage.GetCoachByID(c.Request().Context(), *existing.CoachID)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Coach not found"})
			}
			existing.CoachName = &coach.Name
		}

		updated, err := storage.UpdateMember(c.Request().Context(), existing)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update member"})
		}

		return c.JSON(http.StatusOK, updated)
	}
}

// DeleteMember godoc
// @Summary Delete a member
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /members/{id} [delete]
func DeleteMember(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := storage.DeleteMember(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Member not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete member"})
		}

		return c.JSON(http.StatusOK, map[string]string{"message": "Member deleted successfully"})
	}
}
