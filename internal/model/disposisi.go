package model

import (
	"e-disposisi/internal/errs"

	"gorm.io/gorm"
)

// Disposisi is the aggregate routed down the hierarchy for one Surat.
//
// Exactly one of PemegangID and JabatanPemegang names the current holder.
// TierAktif and StatusAktif mirror StatusTier for the active tier so queues
// can be filtered in SQL; every mutation goes through the methods below so
// the copies never drift.
type Disposisi struct {
	gorm.Model
	SuratID         uint       `json:"surat_id" gorm:"uniqueIndex;not null"`
	Sifat           Sifat      `json:"sifat" gorm:"type:varchar(20);not null;index"`
	Perihal         string     `json:"perihal" gorm:"type:varchar(255)"`
	Instruksi       string     `json:"instruksi" gorm:"type:varchar(255)"`
	Catatan         string     `json:"catatan" gorm:"type:text"`
	JabatanTujuan   string     `json:"jabatan_tujuan" gorm:"type:varchar(150)"`
	StatusTier      StatusTier `json:"status_tier" gorm:"type:json"`
	TierAktif       Tier       `json:"tier_aktif" gorm:"type:varchar(20);index"`
	StatusAktif     Status     `json:"status_aktif" gorm:"type:varchar(20);index"`
	PemegangID      *uint      `json:"pemegang_id" gorm:"index"`
	JabatanPemegang string     `json:"jabatan_pemegang" gorm:"type:varchar(150);index"`
	CatatanAtasan   string     `json:"catatan_atasan" gorm:"type:text"`
	OrganisasiID    uint       `json:"organisasi_id" gorm:"index"`
	DibuatOlehID    uint       `json:"dibuat_oleh_id" gorm:"not null;index"`
	Version         int64      `json:"version" gorm:"not null;default:1"`

	// Relasi
	Surat      *Surat             `json:"surat,omitempty" gorm:"foreignKey:SuratID"`
	DibuatOleh *Pegawai           `json:"dibuat_oleh,omitempty" gorm:"foreignKey:DibuatOlehID"`
	Pemegang   *Pegawai           `json:"pemegang,omitempty" gorm:"foreignKey:PemegangID"`
	Riwayat    []RiwayatDisposisi `json:"riwayat,omitempty" gorm:"foreignKey:DisposisiID"`
}

func (Disposisi) TableName() string {
	return "disposisi"
}

// RiwayatDisposisi records one routing step, including the creation step
// from the head to the first jabatan.
type RiwayatDisposisi struct {
	gorm.Model
	DisposisiID   uint   `json:"disposisi_id" gorm:"index;not null"`
	DariPegawaiID uint   `json:"dari_pegawai_id" gorm:"index"`
	DariTier      Tier   `json:"dari_tier" gorm:"type:varchar(20)"`
	KeTier        Tier   `json:"ke_tier" gorm:"type:varchar(20)"`
	KePegawaiID   *uint  `json:"ke_pegawai_id" gorm:"index"`
	KeJabatan     string `json:"ke_jabatan" gorm:"type:varchar(150)"`
	Catatan       string `json:"catatan" gorm:"type:text"`

	DariPegawai *Pegawai `json:"dari_pegawai,omitempty" gorm:"foreignKey:DariPegawaiID"`
}

func (RiwayatDisposisi) TableName() string {
	return "riwayat_disposisi"
}

// Target is a forwarding destination: one pegawai or one whole jabatan.
type Target interface {
	target()
}

type PersonTarget struct {
	PegawaiID uint
}

type TitleTarget struct {
	Jabatan string
}

func (PersonTarget) target() {}
func (TitleTarget) target()  {}

type DisposisiBaru struct {
	Sifat     Sifat
	Perihal   string
	Instruksi string
	Catatan   string
	Jabatan   string
}

// NewDisposisi builds the record a head issues for surat. Creation is the
// head's own forward: its tier is born "diteruskan" and the target jabatan's
// tier starts at "belum dibaca".
func NewDisposisi(kepala *Pegawai, surat *Surat, in DisposisiBaru) (*Disposisi, error) {
	if kepala == nil || kepala.Tier != TierKepala {
		return nil, errs.Unauthorizedf("hanya kepala yang dapat membuat disposisi")
	}
	if !in.Sifat.Valid() {
		return nil, errs.Invalidf("sifat %q tidak dikenal", in.Sifat)
	}
	if in.Jabatan == "" {
		return nil, errs.Invalidf("jabatan tujuan wajib diisi")
	}
	next, _ := TierKepala.Next()
	d := &Disposisi{
		SuratID:         surat.ID,
		Sifat:           in.Sifat,
		Perihal:         in.Perihal,
		Instruksi:       in.Instruksi,
		Catatan:         in.Catatan,
		JabatanTujuan:   in.Jabatan,
		StatusTier:      StatusTier{TierKepala: StatusDiteruskan, next: StatusBelumDibaca},
		JabatanPemegang: in.Jabatan,
		CatatanAtasan:   in.Catatan,
		OrganisasiID:    kepala.OrganisasiID,
		DibuatOlehID:    kepala.ID,
		Version:         1,
		Riwayat: []RiwayatDisposisi{{
			DariPegawaiID: kepala.ID,
			DariTier:      TierKepala,
			KeTier:        next,
			KeJabatan:     in.Jabatan,
			Catatan:       in.Catatan,
		}},
	}
	d.sync()
	return d, nil
}

func (d *Disposisi) sync() {
	if t, ok := d.StatusTier.Deepest(); ok {
		d.TierAktif = t
		d.StatusAktif = d.StatusTier[t]
	}
}

func (d *Disposisi) setStatus(t Tier, s Status) {
	if d.StatusTier == nil {
		d.StatusTier = StatusTier{}
	}
	d.StatusTier[t] = s
	d.sync()
}

// Status returns the status of the active tier.
func (d *Disposisi) Status() Status {
	return d.StatusTier[d.TierAktif]
}

// HeldBy reports whether p is the current holder: the named pegawai, or any
// pegawai carrying the holder jabatan when no one is named.
func (d *Disposisi) HeldBy(p *Pegawai) bool {
	if p == nil {
		return false
	}
	if d.PemegangID != nil {
		return *d.PemegangID == p.ID
	}
	return d.JabatanPemegang != "" && d.JabatanPemegang == p.Jabatan
}

// HolderConsistent reports whether exactly one of PemegangID and JabatanPemegang is set.
func (d *Disposisi) HolderConsistent() bool {
	return (d.PemegangID != nil) != (d.JabatanPemegang != "")
}

// guardHolder lets only the holder act. A pegawai whose tier already handed
// the record on gets a conflict instead, since that tier is frozen.
func (d *Disposisi) guardHolder(p *Pegawai) error {
	if d.HeldBy(p) {
		return nil
	}
	if t, ok := d.forwardedTierOf(p); ok {
		return errs.Conflictf("disposisi sudah %s oleh tingkat %s", StatusDiteruskan, t)
	}
	return errs.Unauthorizedf("anda bukan pemegang disposisi ini")
}

// forwardedTierOf finds a tier p held or acted for that is now diteruskan.
func (d *Disposisi) forwardedTierOf(p *Pegawai) (Tier, bool) {
	if p == nil {
		return "", false
	}
	frozen := func(t Tier) bool { return d.StatusTier[t] == StatusDiteruskan }
	if d.DibuatOlehID == p.ID && frozen(TierKepala) {
		return TierKepala, true
	}
	for _, r := range d.Riwayat {
		if r.DariPegawaiID == p.ID && frozen(r.DariTier) {
			return r.DariTier, true
		}
		received := (r.KePegawaiID != nil && *r.KePegawaiID == p.ID) ||
			(r.KePegawaiID == nil && r.KeJabatan != "" && r.KeJabatan == p.Jabatan)
		if received && frozen(r.KeTier) {
			return r.KeTier, true
		}
	}
	return "", false
}

// MarkRead moves the active tier from "belum dibaca" to "dibaca" when the
// holder opens the record. It reports whether anything changed.
func (d *Disposisi) MarkRead(p *Pegawai) bool {
	if !d.HeldBy(p) || d.Status() != StatusBelumDibaca {
		return false
	}
	d.setStatus(d.TierAktif, StatusDibaca)
	return true
}

func (d *Disposisi) Accept(p *Pegawai) error {
	if err := d.guardHolder(p); err != nil {
		return err
	}
	if s := d.Status(); s != StatusDibaca {
		return errs.Conflictf("disposisi berstatus %q tidak dapat diterima", s)
	}
	d.setStatus(d.TierAktif, StatusDiterima)
	return nil
}

// CanForward checks the holder and state guards of a forward without
// looking at the target.
func (d *Disposisi) CanForward(p *Pegawai) error {
	if err := d.guardHolder(p); err != nil {
		return err
	}
	if s := d.Status(); s != StatusDiterima {
		return errs.Conflictf("disposisi berstatus %q tidak dapat diteruskan, terima terlebih dahulu", s)
	}
	return nil
}

// Forward hands the record to target at tier downstream. The target must
// already be validated against the directory.
func (d *Disposisi) Forward(p *Pegawai, target Target, downstream Tier, catatan string) (*RiwayatDisposisi, error) {
	if err := d.CanForward(p); err != nil {
		return nil, err
	}
	if !d.TierAktif.Above(downstream) {
		return nil, errs.Invalidf("tujuan harus berada di tingkat di bawah %s", d.TierAktif)
	}
	step := &RiwayatDisposisi{
		DisposisiID:   d.ID,
		DariPegawaiID: p.ID,
		DariTier:      d.TierAktif,
		KeTier:        downstream,
		Catatan:       catatan,
	}
	var (
		holderID *uint
		jabatan  string
	)
	switch t := target.(type) {
	case PersonTarget:
		if t.PegawaiID == 0 {
			return nil, errs.Invalidf("pegawai tujuan wajib diisi")
		}
		id := t.PegawaiID
		holderID = &id
		step.KePegawaiID = &id
	case TitleTarget:
		if t.Jabatan == "" {
			return nil, errs.Invalidf("jabatan tujuan wajib diisi")
		}
		jabatan = t.Jabatan
		step.KeJabatan = t.Jabatan
	default:
		return nil, errs.Invalidf("jenis tujuan tidak dikenal")
	}

	d.StatusTier[d.TierAktif] = StatusDiteruskan
	d.StatusTier[downstream] = StatusBelumDibaca
	d.PemegangID = holderID
	d.JabatanPemegang = jabatan
	d.Pemegang = nil
	d.CatatanAtasan = catatan
	d.sync()
	return step, nil
}

// ApplyFeedback drives the active tier to the status requested by a new
// feedback entry and returns that tier.
func (d *Disposisi) ApplyFeedback(p *Pegawai, s Status) (Tier, error) {
	if !s.IsFeedbackStatus() {
		return "", errs.Invalidf("status feedback harus %q atau %q", StatusDiproses, StatusSelesai)
	}
	if err := d.guardHolder(p); err != nil {
		return "", err
	}
	if cur := d.Status(); cur != StatusDiterima && cur != StatusDiproses {
		return "", errs.Conflictf("feedback tidak dapat dikirim saat disposisi berstatus %q", cur)
	}
	t := d.TierAktif
	d.setStatus(t, s)
	return t, nil
}

// ReviseFeedback re-drives tier with the status of an edited feedback entry.
// Unlike ApplyFeedback it may leave "selesai".
func (d *Disposisi) ReviseFeedback(t Tier, s Status) error {
	if !s.IsFeedbackStatus() {
		return errs.Invalidf("status feedback harus %q atau %q", StatusDiproses, StatusSelesai)
	}
	cur, ok := d.StatusTier[t]
	if !ok || (cur != StatusDiproses && cur != StatusSelesai) {
		return errs.Conflictf("feedback tingkat %s tidak dapat diubah saat berstatus %q", t, cur)
	}
	d.setStatus(t, s)
	return nil
}

// InQueue reports whether the record belongs in tier's actionable queue for p.
func (d *Disposisi) InQueue(t Tier, p *Pegawai) bool {
	s, ok := d.StatusTier[t]
	return ok && s != StatusDiteruskan && d.HeldBy(p)
}

// Involves reports whether p created, holds or took part in routing the record.
func (d *Disposisi) Involves(p *Pegawai) bool {
	if p == nil {
		return false
	}
	if d.DibuatOlehID == p.ID || d.HeldBy(p) {
		return true
	}
	for _, r := range d.Riwayat {
		if r.DariPegawaiID == p.ID {
			return true
		}
		if r.KePegawaiID != nil && *r.KePegawaiID == p.ID {
			return true
		}
		if r.KeJabatan != "" && r.KeJabatan == p.Jabatan {
			return true
		}
	}
	return false
}
