package usecase

import (
	"context"

	"e-disposisi/config"
	"e-disposisi/internal/errs"
	"e-disposisi/internal/metrics"
	"e-disposisi/internal/model"
	"e-disposisi/internal/repository"

	"github.com/gofiber/fiber/v2/log"
)

type CreateDisposisiInput struct {
	SuratID   uint
	Sifat     model.Sifat
	Perihal   string
	Instruksi string
	Catatan   string
	Jabatan   string
}

type QueueInput struct {
	Tier   model.Tier
	Status model.Status
	Sifat  model.Sifat
	Q      string
	Page   int
	Limit  int
}

// Cetak is everything the PDF renderer needs.
type Cetak struct {
	Disposisi *model.Disposisi `json:"disposisi"`
	Feedback  []model.Feedback `json:"feedback"`
}

type DisposisiUsecase struct {
	repo     repository.DisposisiRepository
	surat    repository.SuratRepository
	pegawai  repository.PegawaiRepository
	feedback repository.FeedbackRepository
	routing  *RoutingEngine
	vocab    *config.Vocabulary
}

func NewDisposisiUsecase(
	repo repository.DisposisiRepository,
	surat repository.SuratRepository,
	pegawai repository.PegawaiRepository,
	feedback repository.FeedbackRepository,
	routing *RoutingEngine,
	vocab *config.Vocabulary,
) *DisposisiUsecase {
	return &DisposisiUsecase{repo: repo, surat: surat, pegawai: pegawai, feedback: feedback, routing: routing, vocab: vocab}
}

// loadActor resolves the acting pegawai of a request. An unknown id means the
// token no longer matches anyone.
func loadActor(ctx context.Context, repo repository.PegawaiRepository, id uint) (*model.Pegawai, error) {
	p, err := repo.FindByID(ctx, id)
	switch {
	case errs.Is(err, errs.NotFound):
		return nil, errs.Unauthorizedf("pegawai tidak dikenali")
	case err != nil:
		return nil, errs.Upstream("direktori pegawai tidak dapat diakses", err)
	}
	return p, nil
}

// canView allows the creator, the holder, anyone in the routing history and
// feedback authors.
func canView(ctx context.Context, feedback repository.FeedbackRepository, d *model.Disposisi, p *model.Pegawai) error {
	if d.Involves(p) {
		return nil
	}
	ok, err := feedback.IsAuthor(ctx, d.ID, p.ID)
	if err != nil {
		return err
	}
	if !ok {
		return errs.Unauthorizedf("anda tidak terlibat dalam disposisi ini")
	}
	return nil
}

func (u *DisposisiUsecase) Create(ctx context.Context, actorID uint, in CreateDisposisiInput) (d *model.Disposisi, err error) {
	defer func() { metrics.Transition("buat", err) }()

	actor, err := loadActor(ctx, u.pegawai, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Tier != model.TierKepala {
		return nil, errs.Unauthorizedf("hanya kepala yang dapat membuat disposisi")
	}
	if !u.vocab.ValidInstruksi(in.Instruksi) {
		return nil, errs.Invalidf("instruksi %q tidak ada dalam daftar", in.Instruksi)
	}
	next, _ := model.TierKepala.Next()
	if tier, ok := u.vocab.TierOfJabatan(in.Jabatan); !ok || tier != next {
		return nil, errs.Invalidf("jabatan %q bukan jabatan tingkat %s", in.Jabatan, next)
	}
	surat, err := u.surat.FindByID(ctx, in.SuratID)
	if err != nil {
		return nil, err
	}
	if in.Perihal == "" {
		in.Perihal = surat.Perihal
	}

	d, err = model.NewDisposisi(actor, surat, model.DisposisiBaru{
		Sifat:     in.Sifat,
		Perihal:   in.Perihal,
		Instruksi: in.Instruksi,
		Catatan:   in.Catatan,
		Jabatan:   in.Jabatan,
	})
	if err != nil {
		return nil, err
	}
	if err = u.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	log.Infow("disposisi dibuat", "disposisi_id", d.ID, "surat_id", surat.ID, "pegawai_id", actor.ID, "jabatan", in.Jabatan)
	return d, nil
}

// Detail marks the record read when its holder opens it.
func (u *DisposisiUsecase) Detail(ctx context.Context, actorID, id uint) (*model.Disposisi, error) {
	actor, err := loadActor(ctx, u.pegawai, actorID)
	if err != nil {
		return nil, err
	}
	d, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = canView(ctx, u.feedback, d, actor); err != nil {
		return nil, err
	}
	if !d.MarkRead(actor) {
		return d, nil
	}

	err = u.repo.Save(ctx, d, nil)
	metrics.Transition("baca", err)
	switch {
	case errs.Is(err, errs.StateConflict):
		// someone else moved the record first; show what they left
		return u.repo.FindByID(ctx, id)
	case err != nil:
		return nil, err
	}
	log.Infow("disposisi dibaca", "disposisi_id", d.ID, "pegawai_id", actor.ID, "tier", d.TierAktif)
	return d, nil
}

func (u *DisposisiUsecase) Accept(ctx context.Context, actorID, id uint) (d *model.Disposisi, err error) {
	defer func() { metrics.Transition("terima", err) }()

	actor, err := loadActor(ctx, u.pegawai, actorID)
	if err != nil {
		return nil, err
	}
	d, err = u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = d.Accept(actor); err != nil {
		return nil, err
	}
	if err = u.repo.Save(ctx, d, nil); err != nil {
		return nil, err
	}
	log.Infow("disposisi diterima", "disposisi_id", d.ID, "pegawai_id", actor.ID, "tier", d.TierAktif)
	return d, nil
}

func (u *DisposisiUsecase) Forward(ctx context.Context, actorID, id uint, target model.Target, catatan string) (d *model.Disposisi, err error) {
	defer func() { metrics.Transition("teruskan", err) }()

	actor, err := loadActor(ctx, u.pegawai, actorID)
	if err != nil {
		return nil, err
	}
	d, err = u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = d.CanForward(actor); err != nil {
		return nil, err
	}
	from := d.TierAktif
	downstream, err := u.routing.Resolve(ctx, actor, from, target)
	if err != nil {
		return nil, err
	}
	step, err := d.Forward(actor, target, downstream, catatan)
	if err != nil {
		return nil, err
	}
	if err = u.repo.Save(ctx, d, step); err != nil {
		return nil, err
	}
	var kePegawai uint
	if step.KePegawaiID != nil {
		kePegawai = *step.KePegawaiID
	}
	log.Infow("disposisi diteruskan", "disposisi_id", d.ID, "pegawai_id", actor.ID,
		"dari_tier", from, "ke_tier", downstream, "ke_pegawai_id", kePegawai, "ke_jabatan", step.KeJabatan)
	return d, nil
}

// Targets lists where the holder may forward the record.
func (u *DisposisiUsecase) Targets(ctx context.Context, actorID, id uint) (*Tujuan, error) {
	actor, err := loadActor(ctx, u.pegawai, actorID)
	if err != nil {
		return nil, err
	}
	d, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !d.HeldBy(actor) {
		return nil, errs.Unauthorizedf("anda bukan pemegang disposisi ini")
	}
	return u.routing.Targets(ctx, actor, d.TierAktif)
}

func (u *DisposisiUsecase) Queue(ctx context.Context, actorID uint, in QueueInput) ([]model.Disposisi, int64, error) {
	actor, err := loadActor(ctx, u.pegawai, actorID)
	if err != nil {
		return nil, 0, err
	}
	if in.Tier == "" {
		in.Tier = actor.Tier
	}
	if !in.Tier.Valid() {
		return nil, 0, errs.Invalidf("tier %q tidak dikenal", in.Tier)
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, 0, errs.Invalidf("status %q tidak dikenal", in.Status)
	}
	if in.Sifat != "" && !in.Sifat.Valid() {
		return nil, 0, errs.Invalidf("sifat %q tidak dikenal", in.Sifat)
	}
	return u.repo.Queue(ctx, repository.QueueFilter{
		Pegawai: actor,
		Tier:    in.Tier,
		Status:  in.Status,
		Sifat:   in.Sifat,
		Q:       in.Q,
		Page:    in.Page,
		Limit:   in.Limit,
	})
}

func (u *DisposisiUsecase) Sent(ctx context.Context, actorID uint, page, limit int) ([]model.Disposisi, int64, error) {
	actor, err := loadActor(ctx, u.pegawai, actorID)
	if err != nil {
		return nil, 0, err
	}
	return u.repo.Terkirim(ctx, actor.ID, page, limit)
}

func (u *DisposisiUsecase) Export(ctx context.Context, actorID, id uint) (*Cetak, error) {
	actor, err := loadActor(ctx, u.pegawai, actorID)
	if err != nil {
		return nil, err
	}
	d, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = canView(ctx, u.feedback, d, actor); err != nil {
		return nil, err
	}
	list, err := u.feedback.ListByDisposisi(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	if !d.HolderConsistent() {
		log.Errorw("pemegang disposisi tidak konsisten", "disposisi_id", d.ID)
		return nil, errs.New(errs.Internal, "data disposisi tidak konsisten")
	}
	return &Cetak{Disposisi: d, Feedback: list}, nil
}
