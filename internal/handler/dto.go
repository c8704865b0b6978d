package handler

import (
	"time"

	"e-disposisi/internal/errs"
	"e-disposisi/internal/model"

	"github.com/ecodeclub/ekit/slice"
)

type LoginRequest struct {
	NIP      string `json:"nip"`
	Password string `json:"password"`
}

type CreateDisposisiRequest struct {
	SuratID   uint        `json:"surat_id"`
	Sifat     model.Sifat `json:"sifat"`
	Perihal   string      `json:"perihal"`
	Instruksi string      `json:"instruksi"`
	Catatan   string      `json:"catatan"`
	Jabatan   string      `json:"jabatan"`
}

const (
	targetPerson = "person"
	targetTitle  = "title"
)

type ForwardRequest struct {
	TargetType string `json:"target_type"`
	PegawaiID  uint   `json:"pegawai_id"`
	PegawaiIDs []uint `json:"pegawai_ids"`
	Jabatan    string `json:"jabatan"`
	Catatan    string `json:"catatan"`
}

// ToTarget accepts exactly one destination. Several candidates are rejected,
// there is no broadcast forward.
func (r ForwardRequest) ToTarget() (model.Target, error) {
	switch r.TargetType {
	case targetPerson:
		ids := append([]uint(nil), r.PegawaiIDs...)
		if r.PegawaiID != 0 {
			ids = append(ids, r.PegawaiID)
		}
		if len(ids) != 1 {
			return nil, errs.Invalidf("pilih tepat satu pegawai tujuan")
		}
		if r.Jabatan != "" {
			return nil, errs.Invalidf("tujuan pegawai tidak boleh disertai jabatan")
		}
		return model.PersonTarget{PegawaiID: ids[0]}, nil
	case targetTitle:
		if r.Jabatan == "" {
			return nil, errs.Invalidf("jabatan tujuan wajib diisi")
		}
		if r.PegawaiID != 0 || len(r.PegawaiIDs) > 0 {
			return nil, errs.Invalidf("tujuan jabatan tidak boleh disertai pegawai")
		}
		return model.TitleTarget{Jabatan: r.Jabatan}, nil
	default:
		return nil, errs.Invalidf("target_type harus %q atau %q", targetPerson, targetTitle)
	}
}

// DisposisiItem is the queue row.
type DisposisiItem struct {
	ID              uint         `json:"id"`
	SuratID         uint         `json:"surat_id"`
	NomorSurat      string       `json:"nomor_surat"`
	AsalInstansi    string       `json:"asal_instansi"`
	Sifat           model.Sifat  `json:"sifat"`
	Perihal         string       `json:"perihal"`
	TierAktif       model.Tier   `json:"tier_aktif"`
	Status          model.Status `json:"status"`
	PemegangID      *uint        `json:"pemegang_id"`
	JabatanPemegang string       `json:"jabatan_pemegang"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func toItems(list []model.Disposisi) []DisposisiItem {
	return slice.Map(list, func(_ int, d model.Disposisi) DisposisiItem {
		item := DisposisiItem{
			ID:              d.ID,
			SuratID:         d.SuratID,
			Sifat:           d.Sifat,
			Perihal:         d.Perihal,
			TierAktif:       d.TierAktif,
			Status:          d.StatusAktif,
			PemegangID:      d.PemegangID,
			JabatanPemegang: d.JabatanPemegang,
			UpdatedAt:       d.UpdatedAt,
		}
		if d.Surat != nil {
			item.NomorSurat = d.Surat.NomorSurat
			item.AsalInstansi = d.Surat.AsalInstansi
		}
		return item
	})
}

// CetakResponse is the flat projection consumed by the PDF renderer.
type CetakResponse struct {
	Surat         *model.Surat     `json:"surat"`
	Sifat         model.Sifat      `json:"sifat"`
	Perihal       string           `json:"perihal"`
	Instruksi     string           `json:"instruksi"`
	Catatan       string           `json:"catatan"`
	JabatanTujuan string           `json:"jabatan_tujuan"`
	StatusTier    model.StatusTier `json:"status_tier"`
	CatatanAtasan string           `json:"catatan_atasan"`
	DibuatOleh    string           `json:"dibuat_oleh"`
	DibuatPada    time.Time        `json:"dibuat_pada"`
	Riwayat       []CetakRiwayat   `json:"riwayat"`
	Feedback      []CetakFeedback  `json:"feedback"`
}

type CetakRiwayat struct {
	Dari      string     `json:"dari"`
	DariTier  model.Tier `json:"dari_tier"`
	KeTier    model.Tier `json:"ke_tier"`
	KeJabatan string     `json:"ke_jabatan,omitempty"`
	KePegawai *uint      `json:"ke_pegawai_id,omitempty"`
	Catatan   string     `json:"catatan"`
	Tanggal   time.Time  `json:"tanggal"`
}

type CetakFeedback struct {
	Tier     model.Tier       `json:"tier"`
	Penulis  string           `json:"penulis"`
	Catatan  string           `json:"catatan"`
	Status   model.Status     `json:"status"`
	Lampiran []model.Lampiran `json:"lampiran"`
	Tanggal  time.Time        `json:"tanggal"`
}

func nama(p *model.Pegawai) string {
	if p == nil {
		return ""
	}
	return p.Nama
}

func toCetak(d *model.Disposisi, feedback []model.Feedback) CetakResponse {
	return CetakResponse{
		Surat:         d.Surat,
		Sifat:         d.Sifat,
		Perihal:       d.Perihal,
		Instruksi:     d.Instruksi,
		Catatan:       d.Catatan,
		JabatanTujuan: d.JabatanTujuan,
		StatusTier:    d.StatusTier,
		CatatanAtasan: d.CatatanAtasan,
		DibuatOleh:    nama(d.DibuatOleh),
		DibuatPada:    d.CreatedAt,
		Riwayat: slice.Map(d.Riwayat, func(_ int, r model.RiwayatDisposisi) CetakRiwayat {
			return CetakRiwayat{
				Dari:      nama(r.DariPegawai),
				DariTier:  r.DariTier,
				KeTier:    r.KeTier,
				KeJabatan: r.KeJabatan,
				KePegawai: r.KePegawaiID,
				Catatan:   r.Catatan,
				Tanggal:   r.CreatedAt,
			}
		}),
		Feedback: slice.Map(feedback, func(_ int, f model.Feedback) CetakFeedback {
			return CetakFeedback{
				Tier:     f.Tier,
				Penulis:  nama(f.Penulis),
				Catatan:  f.Catatan,
				Status:   f.Status,
				Lampiran: f.Lampiran,
				Tanggal:  f.UpdatedAt,
			}
		}),
	}
}
