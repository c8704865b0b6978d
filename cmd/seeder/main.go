package main

import (
	"e-disposisi/config"
	"e-disposisi/internal/database"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

func main() {
	log.Info("Memulai Database Seeding...")

	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		log.Warn("File .env tidak ditemukan, menggunakan environment variables sistem.")
	}
	if err := config.ValidateDatabaseConfig(); err != nil {
		log.Fatalf("Konfigurasi database tidak valid: %v", err)
	}

	config.ConnectDB()

	log.Info("Menjalankan SeedAll...")
	if err := database.SeedAll(config.DB); err != nil {
		log.Fatalf("Seeding gagal: %v", err)
	}
	log.Infof("Seeding Selesai! Password semua akun: %s", database.DefaultPassword)
}
