package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Post("/logout", h.RequireAuth, h.Logout)
}
