package usecase

import (
	"context"

	"e-disposisi/internal/metrics"
	"e-disposisi/internal/model"
	"e-disposisi/internal/repository"
	"e-disposisi/internal/storage"

	"github.com/gofiber/fiber/v2/log"
)

type SubmitFeedbackInput struct {
	Catatan string
	Status  model.Status
	Files   []storage.Upload
}

type EditFeedbackInput struct {
	Catatan string
	Status  model.Status
	Hapus   []uint
	Files   []storage.Upload
}

const feedbackPrefix = "feedback"

type FeedbackUsecase struct {
	disposisi repository.DisposisiRepository
	feedback  repository.FeedbackRepository
	pegawai   repository.PegawaiRepository
	store     storage.AttachmentStore
}

func NewFeedbackUsecase(
	disposisi repository.DisposisiRepository,
	feedback repository.FeedbackRepository,
	pegawai repository.PegawaiRepository,
	store storage.AttachmentStore,
) *FeedbackUsecase {
	return &FeedbackUsecase{disposisi: disposisi, feedback: feedback, pegawai: pegawai, store: store}
}

func (u *FeedbackUsecase) Submit(ctx context.Context, actorID, disposisiID uint, in SubmitFeedbackInput) (f *model.Feedback, err error) {
	defer func() { metrics.Transition("feedback", err) }()

	if err = model.ValidateFeedback(in.Catatan, in.Status, len(in.Files)); err != nil {
		return nil, err
	}
	if err = checkFiles(in.Files); err != nil {
		return nil, err
	}
	actor, err := loadActor(ctx, u.pegawai, actorID)
	if err != nil {
		return nil, err
	}
	d, err := u.disposisi.FindByID(ctx, disposisiID)
	if err != nil {
		return nil, err
	}
	tier, err := d.ApplyFeedback(actor, in.Status)
	if err != nil {
		return nil, err
	}

	lampiran, err := uploadAll(ctx, u.store, feedbackPrefix, in.Files)
	if err != nil {
		log.Errorw("upload lampiran feedback gagal", "disposisi_id", d.ID, "pegawai_id", actor.ID, "error", err)
		return nil, err
	}
	f = &model.Feedback{
		DisposisiID: d.ID,
		Tier:        tier,
		PenulisID:   actor.ID,
		Catatan:     in.Catatan,
		Status:      in.Status,
		Lampiran:    lampiran,
	}
	if err = u.feedback.Create(ctx, f, d); err != nil {
		discard(ctx, u.store, lampiran)
		return nil, err
	}
	log.Infow("feedback dikirim", "disposisi_id", d.ID, "feedback_id", f.ID, "pegawai_id", actor.ID,
		"tier", tier, "status", in.Status, "lampiran", len(lampiran))
	return f, nil
}

// Edit rewrites a feedback entry in place and re-drives its tier status.
// Removed lampiran are only soft deleted.
func (u *FeedbackUsecase) Edit(ctx context.Context, actorID, feedbackID uint, in EditFeedbackInput) (f *model.Feedback, err error) {
	defer func() { metrics.Transition("ubah_feedback", err) }()

	actor, err := loadActor(ctx, u.pegawai, actorID)
	if err != nil {
		return nil, err
	}
	f, err = u.feedback.FindByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	perubahan := model.PerubahanFeedback{
		Catatan:       in.Catatan,
		Status:        in.Status,
		HapusLampiran: in.Hapus,
		JumlahBaru:    len(in.Files),
	}
	if err = f.CheckEdit(actor, perubahan); err != nil {
		return nil, err
	}
	if err = checkFiles(in.Files); err != nil {
		return nil, err
	}
	d, err := u.disposisi.FindByID(ctx, f.DisposisiID)
	if err != nil {
		return nil, err
	}
	if err = d.ReviseFeedback(f.Tier, in.Status); err != nil {
		return nil, err
	}

	baru, err := uploadAll(ctx, u.store, feedbackPrefix, in.Files)
	if err != nil {
		log.Errorw("upload lampiran feedback gagal", "feedback_id", f.ID, "pegawai_id", actor.ID, "error", err)
		return nil, err
	}
	revisi := f.ApplyEdit(actor.ID, perubahan, baru)
	err = u.feedback.Update(ctx, repository.FeedbackEdit{
		Feedback:  f,
		Disposisi: d,
		Hapus:     in.Hapus,
		Baru:      baru,
		Revisi:    revisi,
	})
	if err != nil {
		discard(ctx, u.store, baru)
		return nil, err
	}
	log.Infow("feedback diubah", "disposisi_id", d.ID, "feedback_id", f.ID, "pegawai_id", actor.ID,
		"tier", f.Tier, "status", in.Status)
	return u.feedback.FindByID(ctx, f.ID)
}

func (u *FeedbackUsecase) List(ctx context.Context, actorID, disposisiID uint) ([]model.Feedback, error) {
	actor, err := loadActor(ctx, u.pegawai, actorID)
	if err != nil {
		return nil, err
	}
	d, err := u.disposisi.FindByID(ctx, disposisiID)
	if err != nil {
		return nil, err
	}
	if err = canView(ctx, u.feedback, d, actor); err != nil {
		return nil, err
	}
	return u.feedback.ListByDisposisi(ctx, d.ID)
}
