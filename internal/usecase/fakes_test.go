package usecase

import (
	"context"
	"errors"
	"sync"

	"e-disposisi/internal/errs"
	"e-disposisi/internal/model"
	"e-disposisi/internal/repository"
)

type fakePegawaiRepo struct {
	byID map[uint]model.Pegawai
	err  error
}

func newFakePegawai(list ...*model.Pegawai) *fakePegawaiRepo {
	r := &fakePegawaiRepo{byID: map[uint]model.Pegawai{}}
	for _, p := range list {
		r.byID[p.ID] = *p
	}
	return r
}

func (r *fakePegawaiRepo) FindByID(_ context.Context, id uint) (*model.Pegawai, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.byID[id]
	if !ok {
		return nil, errs.NotFoundf("pegawai tidak ditemukan")
	}
	return &p, nil
}

func (r *fakePegawaiRepo) FindByNIP(_ context.Context, nip string) (*model.Pegawai, error) {
	for _, p := range r.byID {
		if p.NIP == nip {
			p := p
			return &p, nil
		}
	}
	return nil, errs.NotFoundf("pegawai tidak ditemukan")
}

func (r *fakePegawaiRepo) ListByOrganisasi(_ context.Context, orgID uint, tiers ...model.Tier) ([]model.Pegawai, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []model.Pegawai
	for _, p := range r.byID {
		if p.OrganisasiID != orgID || !p.IsActive {
			continue
		}
		for _, t := range tiers {
			if p.Tier == t {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type fakeSuratRepo struct {
	mu     sync.Mutex
	data   map[uint]model.Surat
	nextID uint
	err    error
}

func newFakeSurat(list ...model.Surat) *fakeSuratRepo {
	r := &fakeSuratRepo{data: map[uint]model.Surat{}, nextID: 100}
	for _, s := range list {
		r.data[s.ID] = s
	}
	return r
}

func (r *fakeSuratRepo) Create(_ context.Context, s *model.Surat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	s.ID = r.nextID
	r.data[s.ID] = *s
	return nil
}

func (r *fakeSuratRepo) FindByID(_ context.Context, id uint) (*model.Surat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.data[id]
	if !ok {
		return nil, errs.NotFoundf("surat tidak ditemukan")
	}
	return &s, nil
}

func (r *fakeSuratRepo) List(_ context.Context, _ repository.SuratFilter) ([]model.Surat, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Surat, 0, len(r.data))
	for _, s := range r.data {
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSuratRepo) MarkDibaca(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.data[id]
	s.SudahDibaca = true
	r.data[id] = s
	return nil
}

// fakeDisposisiRepo keeps copies and enforces the version check like the
// SQL repository does.
type fakeDisposisiRepo struct {
	mu      sync.Mutex
	data    map[uint]model.Disposisi
	riwayat []model.RiwayatDisposisi
	nextID  uint
	// saveHook runs before each Save, used to inject a concurrent writer
	saveHook func()
}

func newFakeDisposisi() *fakeDisposisiRepo {
	return &fakeDisposisiRepo{data: map[uint]model.Disposisi{}}
}

func clone(d model.Disposisi) model.Disposisi {
	st := make(model.StatusTier, len(d.StatusTier))
	for k, v := range d.StatusTier {
		st[k] = v
	}
	d.StatusTier = st
	if d.PemegangID != nil {
		id := *d.PemegangID
		d.PemegangID = &id
	}
	d.Riwayat = append([]model.RiwayatDisposisi(nil), d.Riwayat...)
	return d
}

func (r *fakeDisposisiRepo) Create(_ context.Context, d *model.Disposisi) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.data {
		if v.SuratID == d.SuratID {
			return errs.Conflictf("surat ini sudah memiliki disposisi")
		}
	}
	r.nextID++
	d.ID = r.nextID
	r.data[d.ID] = clone(*d)
	return nil
}

func (r *fakeDisposisiRepo) FindByID(_ context.Context, id uint) (*model.Disposisi, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.data[id]
	if !ok {
		return nil, errs.NotFoundf("disposisi tidak ditemukan")
	}
	c := clone(d)
	return &c, nil
}

func (r *fakeDisposisiRepo) save(d *model.Disposisi, step *model.RiwayatDisposisi) error {
	cur, ok := r.data[d.ID]
	if !ok || cur.Version != d.Version {
		return errs.Conflictf("disposisi telah diubah oleh pengguna lain, silakan muat ulang")
	}
	next := clone(*d)
	next.Version++
	if step != nil {
		step.DisposisiID = d.ID
		next.Riwayat = append(next.Riwayat, *step)
		r.riwayat = append(r.riwayat, *step)
	}
	r.data[d.ID] = next
	d.Version++
	if step != nil {
		d.Riwayat = append(d.Riwayat, *step)
	}
	return nil
}

func (r *fakeDisposisiRepo) Save(_ context.Context, d *model.Disposisi, step *model.RiwayatDisposisi) error {
	if r.saveHook != nil {
		hook := r.saveHook
		r.saveHook = nil
		hook()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(d, step)
}

func (r *fakeDisposisiRepo) Queue(_ context.Context, f repository.QueueFilter) ([]model.Disposisi, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Disposisi
	for _, d := range r.data {
		if d.TierAktif != f.Tier || !d.InQueue(f.Tier, f.Pegawai) {
			continue
		}
		if f.Status != "" && d.StatusAktif != f.Status {
			continue
		}
		out = append(out, clone(d))
	}
	return out, int64(len(out)), nil
}

func (r *fakeDisposisiRepo) Terkirim(_ context.Context, pegawaiID uint, _, _ int) ([]model.Disposisi, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Disposisi
	for _, d := range r.data {
		for _, s := range d.Riwayat {
			if s.DariPegawaiID == pegawaiID {
				out = append(out, clone(d))
				break
			}
		}
	}
	return out, int64(len(out)), nil
}

type fakeFeedbackRepo struct {
	mu        sync.Mutex
	disposisi *fakeDisposisiRepo
	data      map[uint]model.Feedback
	revisi    []model.FeedbackRevisi
	nextID    uint
	failWrite bool
}

func newFakeFeedback(d *fakeDisposisiRepo) *fakeFeedbackRepo {
	return &fakeFeedbackRepo{disposisi: d, data: map[uint]model.Feedback{}}
}

var errDB = errors.New("db down")

func (r *fakeFeedbackRepo) Create(_ context.Context, f *model.Feedback, d *model.Disposisi) error {
	if r.failWrite {
		return errDB
	}
	r.disposisi.mu.Lock()
	defer r.disposisi.mu.Unlock()
	if err := r.disposisi.save(d, nil); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	f.ID = r.nextID
	for i := range f.Lampiran {
		f.Lampiran[i].ID = f.ID*10 + uint(i)
		f.Lampiran[i].PemilikID = f.ID
		f.Lampiran[i].PemilikType = model.PemilikFeedback
	}
	c := *f
	c.Lampiran = append([]model.Lampiran(nil), f.Lampiran...)
	r.data[f.ID] = c
	return nil
}

func (r *fakeFeedbackRepo) Update(_ context.Context, e repository.FeedbackEdit) error {
	if r.failWrite {
		return errDB
	}
	r.disposisi.mu.Lock()
	defer r.disposisi.mu.Unlock()
	if err := r.disposisi.save(e.Disposisi, nil); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *e.Feedback
	c.Lampiran = append([]model.Lampiran(nil), e.Feedback.Lampiran...)
	r.data[c.ID] = c
	e.Revisi.FeedbackID = c.ID
	r.revisi = append(r.revisi, e.Revisi)
	return nil
}

func (r *fakeFeedbackRepo) FindByID(_ context.Context, id uint) (*model.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.data[id]
	if !ok {
		return nil, errs.NotFoundf("feedback tidak ditemukan")
	}
	f.Lampiran = append([]model.Lampiran(nil), f.Lampiran...)
	return &f, nil
}

func (r *fakeFeedbackRepo) ListByDisposisi(_ context.Context, disposisiID uint) ([]model.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Feedback
	for id := uint(1); id <= r.nextID; id++ {
		if f, ok := r.data[id]; ok && f.DisposisiID == disposisiID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) IsAuthor(_ context.Context, disposisiID, pegawaiID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.data {
		if f.DisposisiID == disposisiID && f.PenulisID == pegawaiID {
			return true, nil
		}
	}
	return false, nil
}
