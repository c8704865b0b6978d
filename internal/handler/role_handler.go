package handler

import (
	"e-disposisi/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	repo repository.RoleRepository
}

func NewRoleHandler(repo repository.RoleRepository) *RoleHandler {
	return &RoleHandler{repo: repo}
}

func (h *RoleHandler) GetAll(c *fiber.Ctx) error {
	roles, err := h.repo.GetAll(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data role"})
	}
	return c.JSON(fiber.Map{"data": roles})
}

func (h *RoleHandler) GetAllPermissions(c *fiber.Ctx) error {
	perms, err := h.repo.GetAllPermissions(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data permission"})
	}
	return c.JSON(fiber.Map{"data": perms})
}
