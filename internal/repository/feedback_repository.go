package repository

import (
	"context"

	"e-disposisi/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	// Create stores f and the new tier status of d in one transaction.
	Create(ctx context.Context, f *model.Feedback, d *model.Disposisi) error
	Update(ctx context.Context, e FeedbackEdit) error
	FindByID(ctx context.Context, id uint) (*model.Feedback, error)
	ListByDisposisi(ctx context.Context, disposisiID uint) ([]model.Feedback, error)
	IsAuthor(ctx context.Context, disposisiID, pegawaiID uint) (bool, error)
}

// FeedbackEdit is everything one edit writes.
type FeedbackEdit struct {
	Feedback  *model.Feedback
	Disposisi *model.Disposisi
	Hapus     []uint
	Baru      []model.Lampiran
	Revisi    model.FeedbackRevisi
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db}
}

func (r *feedbackRepository) Create(ctx context.Context, f *model.Feedback, d *model.Disposisi) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveVersioned(tx, d); err != nil {
			return err
		}
		return errors.Wrap(tx.Create(f).Error, "create feedback")
	})
	if err != nil {
		return err
	}
	d.Version++
	return nil
}

func (r *feedbackRepository) Update(ctx context.Context, e FeedbackEdit) error {
	f := e.Feedback
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveVersioned(tx, e.Disposisi); err != nil {
			return err
		}
		err := tx.Model(&model.Feedback{}).Where("id = ?", f.ID).
			Updates(map[string]any{"catatan": f.Catatan, "status": f.Status}).Error
		if err != nil {
			return errors.Wrap(err, "update feedback")
		}
		if len(e.Hapus) > 0 {
			// soft delete, blob stays in the store
			err = tx.Where("id IN ? AND pemilik_type = ? AND pemilik_id = ?", e.Hapus, model.PemilikFeedback, f.ID).
				Delete(&model.Lampiran{}).Error
			if err != nil {
				return errors.Wrap(err, "delete lampiran feedback")
			}
		}
		if len(e.Baru) > 0 {
			for i := range e.Baru {
				e.Baru[i].PemilikID = f.ID
				e.Baru[i].PemilikType = model.PemilikFeedback
			}
			if err = tx.Create(&e.Baru).Error; err != nil {
				return errors.Wrap(err, "create lampiran feedback")
			}
		}
		e.Revisi.FeedbackID = f.ID
		return errors.Wrap(tx.Create(&e.Revisi).Error, "create revisi feedback")
	})
	if err != nil {
		return err
	}
	e.Disposisi.Version++
	return nil
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uint) (*model.Feedback, error) {
	var f model.Feedback
	if err := r.db.WithContext(ctx).Preload("Lampiran").Preload("Penulis").First(&f, id).Error; err != nil {
		return nil, findErr(err, "feedback")
	}
	return &f, nil
}

func (r *feedbackRepository) ListByDisposisi(ctx context.Context, disposisiID uint) ([]model.Feedback, error) {
	var list []model.Feedback
	err := r.db.WithContext(ctx).
		Preload("Penulis").
		Preload("Lampiran").
		Preload("Revisi", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("disposisi_id = ?", disposisiID).
		Order("id ASC").
		Find(&list).Error
	return list, errors.Wrap(err, "list feedback")
}

func (r *feedbackRepository) IsAuthor(ctx context.Context, disposisiID, pegawaiID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Feedback{}).
		Where("disposisi_id = ? AND penulis_id = ?", disposisiID, pegawaiID).
		Count(&n).Error
	return n > 0, errors.Wrap(err, "count feedback penulis")
}
