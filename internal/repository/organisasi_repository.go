package repository

import (
	"context"

	"e-disposisi/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type OrganisasiRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Organisasi, error)
	Update(ctx context.Context, org *model.Organisasi) error
}

type organisasiRepository struct {
	db *gorm.DB
}

func NewOrganisasiRepository(db *gorm.DB) OrganisasiRepository {
	return &organisasiRepository{db}
}

// GetByID loads the organisasi with its active pegawai ordered by tier rank.
func (r *organisasiRepository) GetByID(ctx context.Context, id uint) (*model.Organisasi, error) {
	var org model.Organisasi
	err := r.db.WithContext(ctx).
		Preload("Pegawai", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).
				Order("FIELD(tier, 'kepala', 'kabid', 'bawahan')").
				Order("nama ASC")
		}).
		First(&org, id).Error
	if err != nil {
		return nil, findErr(err, "organisasi")
	}
	return &org, nil
}

func (r *organisasiRepository) Update(ctx context.Context, org *model.Organisasi) error {
	err := r.db.WithContext(ctx).Model(org).Update("nama_organisasi", org.NamaOrganisasi).Error
	return errors.Wrapf(err, "update organisasi %d", org.ID)
}
