package routes

import (
	"e-disposisi/internal/handler"
	"e-disposisi/internal/middleware"
	"e-disposisi/internal/repository"
	"e-disposisi/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDisposisiRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	disposisiRepo := repository.NewDisposisiRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	pegawaiRepo := repository.NewPegawaiRepository(db)

	disposisiUC := usecase.NewDisposisiUsecase(
		disposisiRepo,
		repository.NewSuratRepository(db),
		pegawaiRepo,
		feedbackRepo,
		usecase.NewRoutingEngine(pegawaiRepo, deps.Vocab),
		deps.Vocab,
	)
	feedbackUC := usecase.NewFeedbackUsecase(disposisiRepo, feedbackRepo, pegawaiRepo, deps.Store)

	dispo := handler.NewDisposisiHandler(disposisiUC)
	fb := handler.NewFeedbackHandler(feedbackUC)

	api := app.Group("/api/disposisi", middleware.Auth(deps.JWT.Secret))
	api.Post("/", dispo.Create)
	api.Get("/antrian", dispo.Antrian)   // Antrian sesuai tingkat jabatan
	api.Get("/terkirim", dispo.Terkirim) // Riwayat yang pernah diteruskan
	api.Get("/:id", dispo.Detail)
	api.Post("/:id/terima", dispo.Terima)
	api.Get("/:id/tujuan", dispo.Tujuan)
	api.Post("/:id/teruskan", dispo.Teruskan)
	api.Get("/:id/cetak", dispo.Cetak)
	api.Get("/:id/feedback", fb.List)
	api.Post("/:id/feedback", fb.Submit)

	app.Put("/api/feedback/:id", middleware.Auth(deps.JWT.Secret), fb.Edit)
}
