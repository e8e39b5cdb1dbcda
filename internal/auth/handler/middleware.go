package handler

import (
	"errors"
	"strings"

	autherror "github.com/danielstevenson70/ITGHM-api/internal/errors"
	"github.com/danielstevenson70/ITGHM-api/pkg/constant"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const (
	localsTokenKey  = "token"
	localsClaimsKey = "claims"
)

// RequireAuth validates the bearer token on every request: signature, expiry,
// then the revocation ledger. The raw token and its claims are stored in the
// request locals for downstream handlers.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, constant.AuthScheme) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	tokenString := strings.TrimPrefix(authHeader, constant.AuthScheme)

	claims, err := h.userService.ValidateToken(c.Context(), tokenString)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrTokenMalformed),
			errors.Is(err, autherror.ErrTokenSignatureInvalid),
			errors.Is(err, autherror.ErrTokenExpired),
			errors.Is(err, autherror.ErrTokenRevoked):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		default:
			// Lower-level failures (e.g. the blacklist lookup hitting a dead
			// database) are not auth failures.
			log.Errorf("token validation failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}
	}

	c.Locals(localsTokenKey, tokenString)
	c.Locals(localsClaimsKey, claims)

	return c.Next()
}
