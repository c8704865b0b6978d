package routes

import (
	"e-disposisi/internal/handler"
	"e-disposisi/internal/middleware"
	"e-disposisi/internal/model"
	"e-disposisi/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	repo := repository.NewDashboardRepository(db)
	hdl := handler.NewDashboardHandler(repo)

	roles := repository.NewRoleRepository(db)
	api := app.Group("/api/dashboard", middleware.Auth(deps.JWT.Secret), middleware.Permission(roles, model.PermissionLihatSurat))
	api.Get("/", hdl.GetStats)
}
