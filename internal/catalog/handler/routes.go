package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *CatalogHandler) {
	app.Get("/bands/:id", h.GetBand)
	app.Get("/genre/:id", h.GetGenre)
	app.Get("/genres", h.ListGenres)
}
