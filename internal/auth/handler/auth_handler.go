package handler

import (
	"errors"

	"github.com/danielstevenson70/ITGHM-api/internal/auth/dto"
	"github.com/danielstevenson70/ITGHM-api/internal/auth/service"
	autherror "github.com/danielstevenson70/ITGHM-api/internal/errors"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrEmailAlreadyInUse) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Errorf("register failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.UserOutput{
		ID:    user.ID,
		Email: user.Email,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	token, err := h.userService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid user credentials",
			})
		}
		log.Errorf("login failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(token)
}

// Logout revokes the bearer token the middleware already validated. Any
// failure class (malformed, expired, revoked, double logout) collapses into
// the same 401 so the response leaks nothing about ledger state.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals(localsTokenKey).(string)

	if err := h.userService.Logout(c.Context(), tokenString); err != nil {
		switch {
		case errors.Is(err, autherror.ErrTokenMalformed),
			errors.Is(err, autherror.ErrTokenSignatureInvalid),
			errors.Is(err, autherror.ErrTokenExpired),
			errors.Is(err, autherror.ErrTokenAlreadyRevoked):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		default:
			log.Errorf("logout failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"details": "Logged out",
	})
}
