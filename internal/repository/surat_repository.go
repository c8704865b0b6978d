package repository

import (
	"context"

	"e-disposisi/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SuratFilter struct {
	Q     string
	Page  int
	Limit int
}

type SuratRepository interface {
	Create(ctx context.Context, s *model.Surat) error
	FindByID(ctx context.Context, id uint) (*model.Surat, error)
	List(ctx context.Context, f SuratFilter) ([]model.Surat, int64, error)
	MarkDibaca(ctx context.Context, id uint) error
}

type suratRepository struct {
	db *gorm.DB
}

func NewSuratRepository(db *gorm.DB) SuratRepository {
	return &suratRepository{db}
}

// Create inserts the letter together with its lampiran.
func (r *suratRepository) Create(ctx context.Context, s *model.Surat) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(s).Error, "create surat")
}

func (r *suratRepository) FindByID(ctx context.Context, id uint) (*model.Surat, error) {
	var s model.Surat
	if err := r.db.WithContext(ctx).Preload("Lampiran").First(&s, id).Error; err != nil {
		return nil, findErr(err, "surat")
	}
	return &s, nil
}

func (r *suratRepository) List(ctx context.Context, f SuratFilter) ([]model.Surat, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Surat{})
	if f.Q != "" {
		like := containsPattern(f.Q)
		q = q.Where("perihal LIKE ? OR nomor_surat LIKE ? OR asal_instansi LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count surat")
	}

	var list []model.Surat
	if err := q.Preload("Lampiran").Order("id DESC").Scopes(pageScope(f.Page, f.Limit)).Find(&list).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list surat")
	}
	return list, total, nil
}

func (r *suratRepository) MarkDibaca(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&model.Surat{}).Where("id = ?", id).Update("sudah_dibaca", true).Error
	return errors.Wrap(err, "mark surat dibaca")
}
