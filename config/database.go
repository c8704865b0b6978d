package config

import (
	"fmt"

	"e-disposisi/internal/model"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// DSN builds the MySQL DSN from DB_* variables.
// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
func DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASS", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "e_disposisi"),
		GetEnv("DB_PARAMS", "charset=utf8mb4&parseTime=True&loc=Local"),
	)
}

func ConnectDB() {
	db, err := gorm.Open(mysql.Open(DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Gagal koneksi ke database: %v", err)
	}

	log.Info("Koneksi Database Berhasil!")

	// Auto Migration: Membuat tabel otomatis berdasarkan struct di folder model
	if err := db.AutoMigrate(
		&model.Organisasi{},
		&model.Permission{},
		&model.Role{},
		&model.Pegawai{},
		&model.Surat{},
		&model.Lampiran{},
		&model.Disposisi{},
		&model.RiwayatDisposisi{},
		&model.Feedback{},
		&model.FeedbackRevisi{},
	); err != nil {
		log.Fatalf("Gagal migrasi database: %v", err)
	}

	DB = db
}
