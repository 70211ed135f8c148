package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nathangtg/jangular-auth/internal/auth/domain"
	"github.com/nathangtg/jangular-auth/internal/auth/service"
)

const principalKey = "principal"

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}

	return strings.TrimPrefix(header, "Bearer ")
}

// RequireAuth validates the bearer access token and stores the principal in
// the request locals for handlers further down the chain.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}

		claims, err := h.tokens.Validate(token, service.TokenTypeAccess, h.clock.Now())
		if err != nil {
			return h.renderError(c, err)
		}

		c.Locals(principalKey, domain.Principal{
			AccountID: claims.AccountID,
			Username:  claims.Username(),
			Roles:     claims.Roles,
		})

		return c.Next()
	}
}

// RequirePermission gates a route on an explicit authorization decision for
// the already-authenticated principal.
func (h *AuthHandler) RequirePermission(resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := principalFrom(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
		}

		if !service.Authorize(principal, resource, action) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}

		return c.Next()
	}
}

func principalFrom(c *fiber.Ctx) (domain.Principal, bool) {
	principal, ok := c.Locals(principalKey).(domain.Principal)

	return principal, ok
}
