package routes

import (
	"e-disposisi/internal/handler"
	"e-disposisi/internal/middleware"
	"e-disposisi/internal/model"
	"e-disposisi/internal/repository"
	"e-disposisi/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSuratRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	roles := repository.NewRoleRepository(db)
	uc := usecase.NewSuratUsecase(repository.NewSuratRepository(db), repository.NewPegawaiRepository(db), deps.Store)
	hdl := handler.NewSuratHandler(uc)

	api := app.Group("/api/surat", middleware.Auth(deps.JWT.Secret))
	api.Get("/", middleware.Permission(roles, model.PermissionLihatSurat), hdl.GetAll)
	api.Get("/:id", middleware.Permission(roles, model.PermissionLihatSurat), hdl.GetDetail)
	api.Post("/", middleware.Permission(roles, model.PermissionRegistrasiSurat), hdl.Create)
}
