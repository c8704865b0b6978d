package main

import (
	"context"

	"e-disposisi/config"
	"e-disposisi/internal/middleware"
	"e-disposisi/internal/routes"
	"e-disposisi/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	log.Info("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		log.Warn("File .env tidak ditemukan, menggunakan environment variables sistem.")
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Konfigurasi tidak valid: %v", err)
	}

	log.Info("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	log.Info("3. Database berhasil terhubung! Menyiapkan routes...")

	vocab, err := config.LoadVocabulary()
	if err != nil {
		log.Fatalf("Gagal memuat kosakata disposisi: %v", err)
	}
	storageCfg := config.LoadStorageConfig()
	store, err := storage.New(context.Background(), storageCfg)
	if err != nil {
		log.Fatalf("Gagal menyiapkan penyimpanan lampiran: %v", err)
	}

	deps := routes.Deps{
		JWT:   config.LoadJWTConfig(),
		Vocab: vocab,
		Store: store,
	}

	app := fiber.New(fiber.Config{BodyLimit: 30 * 1024 * 1024})

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari domain/port lain
	app.Use(logger.New()) // Agar log request muncul di terminal (Debugging)
	app.Use(middleware.NewMetricsBuilder().Build())

	// Serve Static Files (lampiran penyimpanan lokal)
	if storageCfg.Driver == config.StorageLocal {
		app.Static("/uploads", storageCfg.UploadDir)
	}

	routes.SetupPegawaiRoutes(app, config.DB, deps)
	routes.SetupSuratRoutes(app, config.DB, deps)
	routes.SetupDisposisiRoutes(app, config.DB, deps)
	routes.SetupDashboardRoutes(app, config.DB, deps)
	routes.SetupOrganisasiRoutes(app, config.DB, deps)
	routes.SetupRoleRoutes(app, config.DB, deps)
	routes.SetupMetricsRoutes(app)

	port := config.GetEnv("APP_PORT", "3000")
	log.Infof("4. Server siap! Menunggu request di port :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server berhenti: %v", err)
	}
}
