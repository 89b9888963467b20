package main

import (
	"context"
	"net/http"
	"os"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/handler"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/middleware"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/repository/postgres"

	_ "github.com/dajacjhonwilliam4-oss/Gym-Management-System/docs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (customValidator *CustomValidator) Validate(i interface{}) error {
	if err := customValidator.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// @title Gym Management API
// @version 1.0
// @description REST API for gym coaches, members, payments and class schedules with enrollment

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api
// @schemes https http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.PATCH},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Error(v.Error),
			)
			return nil
		},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		logger.Fatal("DATABASE_URL not set")
	}

	ctx := context.Background()

	storage, err := postgres.NewConnection(ctx, connString)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer storage.Close()

	if err := storage.Migrate(ctx); err != nil {
		logger.Fatal("failed to apply schema", zap.Error(err))
	}

	if err := seedAdmin(ctx, storage, logger); err != nil {
		logger.Fatal("failed to seed admin account", zap.Error(err))
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authMiddleware := middleware.JWTAuth()
	handler.SetupAuthRoutes(e, storage, authMiddleware)
	handler.SetupCoachRoutes(e, storage, authMiddleware)
	handler.SetupMemberRoutes(e, storage, logger, authMiddleware)
	handler.SetupPaymentRoutes(e, storage, authMiddleware)
	handler.SetupScheduleRoutes(e, storage, authMiddleware)
	handler.SetupDashboardRoutes(e, storage, authMiddleware)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("starting server", zap.String("port", port))
	e.Logger.Fatal(e.Start(":" + port))
}

// seedAdmin creates the first admin account from env when the users table
// is empty, so a fresh deployment can log in.
func seedAdmin(ctx context.Context, storage *postgres.Storage, logger *zap.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	created, err := storage.SeedAdmin(ctx, name, email, string(hash))
	if err != nil {
		return err
	}
	if created {
		logger.Info("seeded initial admin account", zap.String("email", email))
	}
	return nil
}
