package model

import (
	"strings"

	"e-disposisi/internal/errs"

	"gorm.io/gorm"
)

// Feedback is a tier's response to a disposisi. Only its author may edit it.
type Feedback struct {
	gorm.Model
	DisposisiID uint   `json:"disposisi_id" gorm:"index;not null"`
	Tier        Tier   `json:"tier" gorm:"type:varchar(20);not null"`
	PenulisID   uint   `json:"penulis_id" gorm:"index;not null"`
	Catatan     string `json:"catatan" gorm:"type:text;not null"`
	Status      Status `json:"status" gorm:"type:varchar(20);not null"`

	Penulis  *Pegawai         `json:"penulis,omitempty" gorm:"foreignKey:PenulisID"`
	Lampiran []Lampiran       `json:"lampiran" gorm:"polymorphic:Pemilik;polymorphicValue:feedback"`
	Revisi   []FeedbackRevisi `json:"revisi,omitempty" gorm:"foreignKey:FeedbackID"`
}

// FeedbackRevisi keeps what a feedback entry looked like before an edit.
type FeedbackRevisi struct {
	gorm.Model
	FeedbackID      uint   `json:"feedback_id" gorm:"index;not null"`
	DiubahOlehID    uint   `json:"diubah_oleh_id"`
	CatatanLama     string `json:"catatan_lama" gorm:"type:text"`
	StatusLama      Status `json:"status_lama" gorm:"type:varchar(20)"`
	LampiranDihapus int    `json:"lampiran_dihapus"`
	LampiranBaru    int    `json:"lampiran_baru"`
}

// ValidateFeedback checks the input shared by submit and edit.
func ValidateFeedback(catatan string, s Status, jumlahLampiran int) error {
	if strings.TrimSpace(catatan) == "" {
		return errs.Invalidf("catatan feedback wajib diisi")
	}
	if !s.IsFeedbackStatus() {
		return errs.Invalidf("status feedback harus %q atau %q", StatusDiproses, StatusSelesai)
	}
	if jumlahLampiran > MaxLampiran {
		return errs.Invalidf("lampiran maksimal %d file", MaxLampiran)
	}
	return nil
}

type PerubahanFeedback struct {
	Catatan       string
	Status        Status
	HapusLampiran []uint
	JumlahBaru    int
}

// CheckEdit validates an edit by p before any upload happens.
func (f *Feedback) CheckEdit(p *Pegawai, in PerubahanFeedback) error {
	if p == nil || f.PenulisID != p.ID {
		return errs.Unauthorizedf("hanya penulis yang dapat mengubah feedback ini")
	}
	for _, id := range in.HapusLampiran {
		if !f.hasLampiran(id) {
			return errs.Invalidf("lampiran %d bukan milik feedback ini", id)
		}
	}
	sisa := len(f.Lampiran) - len(uniq(in.HapusLampiran)) + in.JumlahBaru
	return ValidateFeedback(in.Catatan, in.Status, sisa)
}

// ApplyEdit mutates the entry in place. Author and disposisi binding are
// never touched.
func (f *Feedback) ApplyEdit(editor uint, in PerubahanFeedback, baru []Lampiran) FeedbackRevisi {
	rev := FeedbackRevisi{
		FeedbackID:      f.ID,
		DiubahOlehID:    editor,
		CatatanLama:     f.Catatan,
		StatusLama:      f.Status,
		LampiranDihapus: len(uniq(in.HapusLampiran)),
		LampiranBaru:    len(baru),
	}
	hapus := make(map[uint]struct{}, len(in.HapusLampiran))
	for _, id := range in.HapusLampiran {
		hapus[id] = struct{}{}
	}
	kept := make([]Lampiran, 0, len(f.Lampiran)+len(baru))
	for _, l := range f.Lampiran {
		if _, ok := hapus[l.ID]; !ok {
			kept = append(kept, l)
		}
	}
	f.Lampiran = append(kept, baru...)
	f.Catatan = in.Catatan
	f.Status = in.Status
	return rev
}

func (f *Feedback) hasLampiran(id uint) bool {
	for _, l := range f.Lampiran {
		if l.ID == id {
			return true
		}
	}
	return false
}

func uniq(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
