package middleware

import (
	"e-disposisi/internal/errs"
	"e-disposisi/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// SuperAdmin bypasses every permission check.
const SuperAdmin = "Super Admin"

func Permission(roles repository.RoleRepository, requiredPermission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil Role user dari Context (diset di Auth middleware)
		userRole, ok := c.Locals("role").(string)
		if !ok || userRole == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role tidak valid"})
		}

		if userRole == SuperAdmin {
			return c.Next()
		}

		// 2. Cek Permission ke Database
		role, err := roles.GetByName(c.UserContext(), userRole)
		if errs.Is(err, errs.NotFound) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role tidak valid"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memvalidasi permission"})
		}

		for _, p := range role.Permissions {
			if p.NamaPermission == requiredPermission {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Anda tidak memiliki izin " + requiredPermission})
	}
}
