package usecase

import (
	"context"
	"strings"
	"time"

	"e-disposisi/internal/errs"
	"e-disposisi/internal/model"
	"e-disposisi/internal/repository"
	"e-disposisi/internal/storage"

	"github.com/gofiber/fiber/v2/log"
)

type RegisterSuratInput struct {
	AsalInstansi    string
	Perihal         string
	NomorSurat      string
	TanggalDiterima time.Time
	Files           []storage.Upload
}

const suratPrefix = "surat"

type SuratUsecase struct {
	repo    repository.SuratRepository
	pegawai repository.PegawaiRepository
	store   storage.AttachmentStore
}

func NewSuratUsecase(repo repository.SuratRepository, pegawai repository.PegawaiRepository, store storage.AttachmentStore) *SuratUsecase {
	return &SuratUsecase{repo: repo, pegawai: pegawai, store: store}
}

func (u *SuratUsecase) Register(ctx context.Context, actorID uint, in RegisterSuratInput) (*model.Surat, error) {
	var missing []string
	if strings.TrimSpace(in.AsalInstansi) == "" {
		missing = append(missing, "asal_instansi")
	}
	if strings.TrimSpace(in.Perihal) == "" {
		missing = append(missing, "perihal")
	}
	if strings.TrimSpace(in.NomorSurat) == "" {
		missing = append(missing, "nomor_surat")
	}
	if in.TanggalDiterima.IsZero() {
		missing = append(missing, "tanggal_diterima")
	}
	if len(missing) > 0 {
		return nil, errs.Invalidf("field wajib diisi: %s", strings.Join(missing, ", "))
	}
	if err := checkFiles(in.Files); err != nil {
		return nil, err
	}
	actor, err := loadActor(ctx, u.pegawai, actorID)
	if err != nil {
		return nil, err
	}

	lampiran, err := uploadAll(ctx, u.store, suratPrefix, in.Files)
	if err != nil {
		log.Errorw("upload lampiran surat gagal", "pegawai_id", actor.ID, "error", err)
		return nil, err
	}
	s := &model.Surat{
		AsalInstansi:    in.AsalInstansi,
		Perihal:         in.Perihal,
		NomorSurat:      in.NomorSurat,
		TanggalDiterima: in.TanggalDiterima,
		DicatatOlehID:   actor.ID,
		Lampiran:        lampiran,
	}
	if err = u.repo.Create(ctx, s); err != nil {
		discard(ctx, u.store, lampiran)
		return nil, err
	}
	log.Infow("surat dicatat", "surat_id", s.ID, "nomor_surat", s.NomorSurat, "pegawai_id", actor.ID)
	return s, nil
}

func (u *SuratUsecase) List(ctx context.Context, f repository.SuratFilter) ([]model.Surat, int64, error) {
	return u.repo.List(ctx, f)
}

// Detail sets the read flag the first time a head opens the letter. The flag
// is independent of any disposisi status.
func (u *SuratUsecase) Detail(ctx context.Context, actorID, id uint) (*model.Surat, error) {
	actor, err := loadActor(ctx, u.pegawai, actorID)
	if err != nil {
		return nil, err
	}
	s, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Tier == model.TierKepala && !s.SudahDibaca {
		if err = u.repo.MarkDibaca(ctx, s.ID); err != nil {
			return nil, err
		}
		s.SudahDibaca = true
	}
	return s, nil
}
