package usecase

import (
	"context"

	"e-disposisi/config"
	"e-disposisi/internal/errs"
	"e-disposisi/internal/model"
	"e-disposisi/internal/repository"
)

// RoutingEngine validates forwarding targets against the vocabulary and the
// pegawai directory.
type RoutingEngine struct {
	pegawai repository.PegawaiRepository
	vocab   *config.Vocabulary
}

func NewRoutingEngine(pegawai repository.PegawaiRepository, vocab *config.Vocabulary) *RoutingEngine {
	return &RoutingEngine{pegawai: pegawai, vocab: vocab}
}

// Resolve checks that actor, holding a record at tier from, may forward it to
// target, and returns the tier the record moves to.
func (e *RoutingEngine) Resolve(ctx context.Context, actor *model.Pegawai, from model.Tier, target model.Target) (model.Tier, error) {
	switch t := target.(type) {
	case model.TitleTarget:
		next, ok := from.Next()
		if !ok {
			return "", errs.Invalidf("tidak ada tingkat di bawah %s", from)
		}
		if tier, ok := e.vocab.TierOfJabatan(t.Jabatan); !ok || tier != next {
			return "", errs.Invalidf("jabatan %q bukan jabatan tingkat %s", t.Jabatan, next)
		}
		return next, nil

	case model.PersonTarget:
		if t.PegawaiID == actor.ID {
			return "", errs.Invalidf("tidak dapat meneruskan disposisi kepada diri sendiri")
		}
		p, err := e.pegawai.FindByID(ctx, t.PegawaiID)
		switch {
		case errs.Is(err, errs.NotFound):
			return "", err
		case err != nil:
			return "", errs.Upstream("direktori pegawai tidak dapat diakses", err)
		}
		if !p.IsActive {
			return "", errs.Invalidf("pegawai %s tidak aktif", p.Nama)
		}
		if p.OrganisasiID != actor.OrganisasiID {
			return "", errs.Invalidf("pegawai %s berada di luar unit organisasi anda", p.Nama)
		}
		if !from.Above(p.Tier) {
			return "", errs.Invalidf("pegawai %s tidak berada di tingkat di bawah %s", p.Nama, from)
		}
		return p.Tier, nil

	default:
		return "", errs.Invalidf("tujuan disposisi wajib dipilih")
	}
}

// Tujuan lists the legal targets of one forward.
type Tujuan struct {
	Jabatan []string        `json:"jabatan"`
	Pegawai []model.Pegawai `json:"pegawai"`
}

func (e *RoutingEngine) Targets(ctx context.Context, actor *model.Pegawai, from model.Tier) (*Tujuan, error) {
	next, ok := from.Next()
	if !ok {
		return &Tujuan{Jabatan: []string{}, Pegawai: []model.Pegawai{}}, nil
	}

	var lower []model.Tier
	for _, t := range model.Tiers() {
		if from.Above(t) {
			lower = append(lower, t)
		}
	}
	list, err := e.pegawai.ListByOrganisasi(ctx, actor.OrganisasiID, lower...)
	if err != nil {
		return nil, errs.Upstream("direktori pegawai tidak dapat diakses", err)
	}
	pegawai := make([]model.Pegawai, 0, len(list))
	for _, p := range list {
		if p.ID != actor.ID {
			pegawai = append(pegawai, p)
		}
	}
	return &Tujuan{Jabatan: e.vocab.TitlesFor(next), Pegawai: pegawai}, nil
}
