package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v2"
)

// Role admits only the listed roles, e.g. Role("Admin", SuperAdmin).
func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Ambil role user dari context (diset di Auth middleware)
		userRole, ok := c.Locals("role").(string)
		if !ok || userRole == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role tidak valid"})
		}

		if slices.Contains(allowedRoles, userRole) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Akses ditolak: role " + userRole + " tidak memiliki akses ke menu ini",
		})
	}
}
