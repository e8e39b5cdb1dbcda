package handler

import (
	"errors"
	"strconv"

	"github.com/danielstevenson70/ITGHM-api/internal/catalog/service"
	catalogerror "github.com/danielstevenson70/ITGHM-api/internal/errors"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) GetBand(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid band id",
		})
	}

	band, err := h.catalogService.GetBand(c.Context(), id)
	if err != nil {
		if errors.Is(err, catalogerror.ErrBandNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Errorf("band lookup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(band)
}

func (h *CatalogHandler) GetGenre(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid genre id",
		})
	}

	genre, err := h.catalogService.GetGenre(c.Context(), id)
	if err != nil {
		if errors.Is(err, catalogerror.ErrGenreNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Errorf("genre lookup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(genre)
}

func (h *CatalogHandler) ListGenres(c *fiber.Ctx) error {
	genres, err := h.catalogService.ListGenres(c.Context())
	if err != nil {
		log.Errorf("genre listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(genres)
}
