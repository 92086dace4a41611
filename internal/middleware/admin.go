package middleware

import (
	"github.com/drivehub/carrental/internal/dto"
	"github.com/drivehub/carrental/internal/models"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired runs after RequireIdentity and rejects non-admin callers.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := CurrentIdentity(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if ident.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}

		return c.Next()
	}
}
