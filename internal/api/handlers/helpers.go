package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// getUserID pulls the authenticated user id stored by the auth
// middleware.
func getUserID(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals("userID").(string)
	return userID, ok && userID != ""
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "User not authenticated",
	})
}
