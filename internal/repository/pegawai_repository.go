package repository

import (
	"context"

	"e-disposisi/internal/model"

	"gorm.io/gorm"
)

// PegawaiRepository is the user directory consulted by routing.
type PegawaiRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Pegawai, error)
	FindByNIP(ctx context.Context, nip string) (*model.Pegawai, error)
	ListByOrganisasi(ctx context.Context, orgID uint, tiers ...model.Tier) ([]model.Pegawai, error)
}

type pegawaiRepository struct {
	db *gorm.DB
}

func NewPegawaiRepository(db *gorm.DB) PegawaiRepository {
	return &pegawaiRepository{db}
}

func (r *pegawaiRepository) FindByID(ctx context.Context, id uint) (*model.Pegawai, error) {
	var p model.Pegawai
	err := r.db.WithContext(ctx).Preload("Role.Permissions").Preload("Organisasi").First(&p, id).Error
	if err != nil {
		return nil, findErr(err, "pegawai")
	}
	return &p, nil
}

func (r *pegawaiRepository) FindByNIP(ctx context.Context, nip string) (*model.Pegawai, error) {
	var p model.Pegawai
	// Preload Role agar permission langsung tersedia saat login
	err := r.db.WithContext(ctx).Preload("Role.Permissions").Preload("Organisasi").Where("nip = ?", nip).First(&p).Error
	if err != nil {
		return nil, findErr(err, "pegawai")
	}
	return &p, nil
}

// ListByOrganisasi returns active pegawai of an organisasi, optionally
// limited to some tiers.
func (r *pegawaiRepository) ListByOrganisasi(ctx context.Context, orgID uint, tiers ...model.Tier) ([]model.Pegawai, error) {
	var list []model.Pegawai
	q := r.db.WithContext(ctx).Where("organisasi_id = ? AND is_active = ?", orgID, true)
	if len(tiers) > 0 {
		q = q.Where("tier IN ?", tiers)
	}
	if err := q.Order("nama ASC").Find(&list).Error; err != nil {
		return nil, findErr(err, "pegawai")
	}
	return list, nil
}
