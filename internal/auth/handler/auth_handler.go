package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nathangtg/jangular-auth/internal/auth/domain"
	"github.com/nathangtg/jangular-auth/internal/auth/dto"
	"github.com/nathangtg/jangular-auth/internal/auth/service"
	autherror "github.com/nathangtg/jangular-auth/internal/errors"
)

type AuthHandler struct {
	authService  *service.AuthService
	loginHistory *service.LoginHistoryService
	tokens       service.TokenGenerator
	clock        domain.Clock
	log          *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, loginHistory *service.LoginHistoryService, tokens service.TokenGenerator, clock domain.Clock, log *zap.Logger) *AuthHandler {
	if clock == nil {
		clock = domain.SystemClock()
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &AuthHandler{
		authService:  authService,
		loginHistory: loginHistory,
		tokens:       tokens,
		clock:        clock,
		log:          log,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	acc, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewAccountOutput(acc))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	tokenPair, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokenPair)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	resp, err := h.authService.Refresh(c.Context(), input)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}

	if err := h.authService.Logout(c.Context(), token); err != nil {
		return h.renderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
	}

	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.authService.ChangePassword(c.Context(), principal.AccountID, input); err != nil {
		return h.renderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// History returns the principal's login history. Optional query params:
// successful=true|false, from/to as RFC 3339 timestamps.
func (h *AuthHandler) History(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
	}

	var (
		events []domain.LoginEvent
		err    error
	)
	switch {
	case c.Query("from") != "" || c.Query("to") != "":
		from, to, perr := parseTimeRange(c.Query("from"), c.Query("to"))
		if perr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid time range"})
		}
		events, err = h.loginHistory.HistoryBetween(c.Context(), principal.AccountID, from, to)
	case c.Query("successful") != "":
		events, err = h.loginHistory.HistoryBySuccess(c.Context(), principal.AccountID, c.QueryBool("successful"))
	default:
		events, err = h.loginHistory.History(c.Context(), principal.AccountID)
	}
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewLoginEventOutputs(events))
}

func (h *AuthHandler) ActiveSessions(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
	}

	events, err := h.loginHistory.ActiveSessions(c.Context(), principal.AccountID)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewLoginEventOutputs(events))
}

// renderError maps typed service errors to transport responses. Unknown
// username and wrong password produce the same body so the endpoint cannot
// be used as a username oracle. Lock state and remaining duration are
// revealed; they do not aid credential guessing.
func (h *AuthHandler) renderError(c *fiber.Ctx, err error) error {
	var lockedErr *autherror.AccountLockedError
	if errors.As(err, &lockedErr) {
		return c.Status(fiber.StatusLocked).JSON(fiber.Map{
			"error":               "account locked",
			"retry_after_seconds": int(lockedErr.RetryAfter.Seconds()),
		})
	}

	switch {
	case errors.Is(err, autherror.ErrInvalidCredentials), errors.Is(err, autherror.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": autherror.ErrInvalidCredentials.Error()})
	case errors.Is(err, autherror.ErrTokenExpired),
		errors.Is(err, autherror.ErrTokenMalformed),
		errors.Is(err, autherror.ErrTokenSignatureInvalid),
		errors.Is(err, autherror.ErrTokenUnsupported):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrPasswordReuse),
		errors.Is(err, autherror.ErrValidation),
		errors.Is(err, autherror.ErrUsernameTaken),
		errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		h.log.Error("internal error", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

func parseTimeRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return from, to, nil
}
