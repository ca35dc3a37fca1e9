package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID reads the user id placed in Locals by the auth middleware.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid UUID format")
	}
	return id, nil
}

// GetUserEmail reads the account email placed in Locals by the auth middleware.
func GetUserEmail(c *fiber.Ctx) (string, error) {
	email, ok := c.Locals("user_email").(string)
	if !ok || email == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid user email in context")
	}
	return email, nil
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	return role
}
