package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nathangtg/jangular-auth/config"
	"github.com/nathangtg/jangular-auth/db"
	"github.com/nathangtg/jangular-auth/internal/auth/domain"
	"github.com/nathangtg/jangular-auth/internal/auth/handler"
	repo "github.com/nathangtg/jangular-auth/internal/auth/repository/postgres"
	"github.com/nathangtg/jangular-auth/internal/auth/service"
	"github.com/nathangtg/jangular-auth/pkg/constant"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.Env)
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repo.NewPostgresRepository(pool)
	if err := userRepo.EnsureDefaultRoles(ctx, []domain.Role{
		{Name: constant.RoleUser, Description: "Standard user with basic permissions"},
		{Name: constant.RoleAdmin, Description: "Administrator with full access"},
		{Name: constant.RoleModerator, Description: "Manager with department-level access"},
	}); err != nil {
		logger.Fatal("failed to seed roles", zap.Error(err))
	}

	passwords := service.NewPasswordService(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.SigningSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	lockout := service.NewLockoutGuard(cfg.MaxFailedAttempts, cfg.LockDuration)
	passwordHistory := service.NewPasswordHistoryGuard(passwords, constant.PasswordHistoryDepth)
	loginHistory := service.NewLoginHistoryService(userRepo)

	clock := domain.SystemClock()
	authService := service.NewAuthService(userRepo, tokens, passwords, lockout,
		passwordHistory, clock, logger)
	authHandler := handler.NewAuthHandler(authService, loginHistory, tokens, clock, logger)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	if env == "development" {
		logger, _ := zap.NewDevelopment()

		return logger
	}

	logger, _ := zap.NewProduction()

	return logger
}
