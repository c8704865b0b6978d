package repository

import (
	"context"

	"e-disposisi/internal/errs"
	"e-disposisi/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type QueueFilter struct {
	Pegawai *model.Pegawai
	Tier    model.Tier
	Status  model.Status
	Sifat   model.Sifat
	Q       string
	Page    int
	Limit   int
}

type DisposisiRepository interface {
	Create(ctx context.Context, d *model.Disposisi) error
	FindByID(ctx context.Context, id uint) (*model.Disposisi, error)
	// Save persists the status and holder fields of d if nobody changed the
	// record since it was loaded, and appends step to the routing history.
	Save(ctx context.Context, d *model.Disposisi, step *model.RiwayatDisposisi) error
	Queue(ctx context.Context, f QueueFilter) ([]model.Disposisi, int64, error)
	Terkirim(ctx context.Context, pegawaiID uint, page, limit int) ([]model.Disposisi, int64, error)
}

type disposisiRepository struct {
	db *gorm.DB
}

func NewDisposisiRepository(db *gorm.DB) DisposisiRepository {
	return &disposisiRepository{db}
}

func (r *disposisiRepository) Create(ctx context.Context, d *model.Disposisi) error {
	err := r.db.WithContext(ctx).Create(d).Error
	if isDuplicate(err) {
		return errs.Conflictf("surat ini sudah memiliki disposisi")
	}
	return errors.Wrap(err, "create disposisi")
}

func (r *disposisiRepository) FindByID(ctx context.Context, id uint) (*model.Disposisi, error) {
	var d model.Disposisi
	err := r.db.WithContext(ctx).
		Preload("Surat.Lampiran").
		Preload("DibuatOleh").
		Preload("Pemegang").
		Preload("Riwayat", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Riwayat.DariPegawai").
		First(&d, id).Error
	if err != nil {
		return nil, findErr(err, "disposisi")
	}
	return &d, nil
}

func (r *disposisiRepository) Save(ctx context.Context, d *model.Disposisi, step *model.RiwayatDisposisi) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveVersioned(tx, d); err != nil {
			return err
		}
		if step == nil {
			return nil
		}
		step.DisposisiID = d.ID
		return errors.Wrap(tx.Create(step).Error, "create riwayat disposisi")
	})
	if err != nil {
		return err
	}
	d.Version++
	return nil
}

// saveVersioned is the optimistic write shared by every mutation of a
// disposisi. Callers bump d.Version once the transaction commits.
func saveVersioned(tx *gorm.DB, d *model.Disposisi) error {
	res := tx.Model(&model.Disposisi{}).
		Where("id = ? AND version = ?", d.ID, d.Version).
		Updates(map[string]any{
			"status_tier":      d.StatusTier,
			"tier_aktif":       d.TierAktif,
			"status_aktif":     d.StatusAktif,
			"pemegang_id":      d.PemegangID,
			"jabatan_pemegang": d.JabatanPemegang,
			"catatan_atasan":   d.CatatanAtasan,
			"version":          gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "update disposisi")
	}
	if res.RowsAffected == 0 {
		return errs.Conflictf("disposisi telah diubah oleh pengguna lain, silakan muat ulang")
	}
	return nil
}

// holderScope matches records held by p, either by name or by jabatan.
func holderScope(p *model.Pegawai) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(pemegang_id = ?) OR (pemegang_id IS NULL AND jabatan_pemegang = ?)", p.ID, p.Jabatan)
	}
}

func (r *disposisiRepository) Queue(ctx context.Context, f QueueFilter) ([]model.Disposisi, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Disposisi{}).
		Scopes(holderScope(f.Pegawai)).
		Where("tier_aktif = ? AND status_aktif <> ?", f.Tier, model.StatusDiteruskan)
	if f.Status != "" {
		q = q.Where("status_aktif = ?", f.Status)
	}
	if f.Sifat != "" {
		q = q.Where("sifat = ?", f.Sifat)
	}
	if f.Q != "" {
		q = q.Where("perihal LIKE ?", containsPattern(f.Q))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count antrian disposisi")
	}
	var list []model.Disposisi
	if err := q.Preload("Surat").Order("id DESC").Scopes(pageScope(f.Page, f.Limit)).Find(&list).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list antrian disposisi")
	}
	return list, total, nil
}

// Terkirim lists records pegawaiID forwarded, newest first. It is read-only.
func (r *disposisiRepository) Terkirim(ctx context.Context, pegawaiID uint, page, limit int) ([]model.Disposisi, int64, error) {
	sent := r.db.Model(&model.RiwayatDisposisi{}).Select("disposisi_id").Where("dari_pegawai_id = ?", pegawaiID)
	q := r.db.WithContext(ctx).Model(&model.Disposisi{}).Where("id IN (?)", sent)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count disposisi terkirim")
	}
	var list []model.Disposisi
	if err := q.Preload("Surat").Order("id DESC").Scopes(pageScope(page, limit)).Find(&list).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list disposisi terkirim")
	}
	return list, total, nil
}
