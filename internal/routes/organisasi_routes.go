package routes

import (
	"e-disposisi/internal/handler"
	"e-disposisi/internal/middleware"
	"e-disposisi/internal/model"
	"e-disposisi/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOrganisasiRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	hdl := handler.NewOrganisasiHandler(repository.NewOrganisasiRepository(db))
	roles := repository.NewRoleRepository(db)

	api := app.Group("/api/organisasi", middleware.Auth(deps.JWT.Secret))
	api.Get("/", hdl.GetInfo) // Info organisasi + daftar pegawai aktif
	api.Put("/", middleware.Permission(roles, model.PermissionKelolaRole), hdl.UpdateOrganisasi)
}
