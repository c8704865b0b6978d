package routes

import (
	"e-disposisi/internal/handler"
	"e-disposisi/internal/middleware"
	"e-disposisi/internal/model"
	"e-disposisi/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoleRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	repo := repository.NewRoleRepository(db)
	hdl := handler.NewRoleHandler(repo)

	admin := app.Group("/api/admin/roles", middleware.Auth(deps.JWT.Secret), middleware.Role("Admin", middleware.SuperAdmin), middleware.Permission(repo, model.PermissionKelolaRole))
	admin.Get("/", hdl.GetAll)
	admin.Get("/permissions", hdl.GetAllPermissions)
}
