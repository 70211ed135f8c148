package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/refresh", h.Refresh)
	app.Delete("/api/v1/session", h.Logout)

	me := app.Group("/api/v1/me", h.RequireAuth())
	me.Post("/password", h.RequirePermission("account", "change-password"), h.ChangePassword)
	me.Get("/history", h.RequirePermission("login-history", "read"), h.History)
	me.Get("/sessions", h.RequirePermission("login-history", "read"), h.ActiveSessions)
}
