package routes

import (
	"e-disposisi/internal/handler"
	"e-disposisi/internal/middleware"
	"e-disposisi/internal/repository"
	"e-disposisi/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPegawaiRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	repo := repository.NewPegawaiRepository(db)
	hdl := handler.NewPegawaiHandler(usecase.NewPegawaiUsecase(repo, deps.JWT))

	// Auth Routes
	app.Post("/api/login", hdl.Login)

	// Profile Routes (Protected)
	api := app.Group("/api/pegawai", middleware.Auth(deps.JWT.Secret))
	api.Get("/profile", hdl.Profile)
}
