package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rayto1224/ksbc-web/internals/constants"
)

// IsAdmin must run after AuthMiddleware.
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}
