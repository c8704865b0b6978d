package repository

import (
	"context"

	"e-disposisi/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type DashboardStats struct {
	PerStatus       map[model.Status]int64 `json:"per_status"`
	PerSifat        map[model.Sifat]int64  `json:"per_sifat"`
	TotalDisposisi  int64                  `json:"total_disposisi"`
	SuratTanpaDispo int64                  `json:"surat_tanpa_disposisi"`
	SuratBelumBaca  int64                  `json:"surat_belum_dibaca"`
}

type DashboardRepository interface {
	GetDashboardStats(ctx context.Context, orgID uint) (*DashboardStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(ctx context.Context, orgID uint) (*DashboardStats, error) {
	db := r.db.WithContext(ctx)
	stats := &DashboardStats{
		PerStatus: make(map[model.Status]int64),
		PerSifat:  make(map[model.Sifat]int64),
	}

	// 1. Statistik per status aktif
	var perStatus []struct {
		StatusAktif model.Status
		Count       int64
	}
	err := db.Model(&model.Disposisi{}).Where("organisasi_id = ?", orgID).
		Group("status_aktif").Select("status_aktif, count(*) as count").Scan(&perStatus).Error
	if err != nil {
		return nil, errors.Wrap(err, "count disposisi per status")
	}
	for _, s := range perStatus {
		stats.PerStatus[s.StatusAktif] = s.Count
		stats.TotalDisposisi += s.Count
	}

	// 2. Statistik per sifat
	var perSifat []struct {
		Sifat model.Sifat
		Count int64
	}
	err = db.Model(&model.Disposisi{}).Where("organisasi_id = ?", orgID).
		Group("sifat").Select("sifat, count(*) as count").Scan(&perSifat).Error
	if err != nil {
		return nil, errors.Wrap(err, "count disposisi per sifat")
	}
	for _, s := range perSifat {
		stats.PerSifat[s.Sifat] = s.Count
	}

	// 3. Surat yang belum didisposisikan
	withDispo := db.Model(&model.Disposisi{}).Select("surat_id")
	err = db.Model(&model.Surat{}).Where("id NOT IN (?)", withDispo).Count(&stats.SuratTanpaDispo).Error
	if err != nil {
		return nil, errors.Wrap(err, "count surat tanpa disposisi")
	}
	err = db.Model(&model.Surat{}).Where("sudah_dibaca = ?", false).Count(&stats.SuratBelumBaca).Error
	return stats, errors.Wrap(err, "count surat belum dibaca")
}
