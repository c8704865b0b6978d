package model

import (
	"time"

	"gorm.io/gorm"
)

// Surat is an incoming letter. Apart from the read flag it is never changed
// after registration.
type Surat struct {
	gorm.Model
	AsalInstansi    string     `json:"asal_instansi" gorm:"type:varchar(200);index"`
	Perihal         string     `json:"perihal" gorm:"type:varchar(255)"`
	NomorSurat      string     `json:"nomor_surat" gorm:"type:varchar(100);index"`
	TanggalDiterima time.Time  `json:"tanggal_diterima" gorm:"type:date;index"`
	SudahDibaca     bool       `json:"sudah_dibaca" gorm:"not null;default:false"`
	DicatatOlehID   uint       `json:"dicatat_oleh_id" gorm:"index"`
	Lampiran        []Lampiran `json:"lampiran" gorm:"polymorphic:Pemilik;polymorphicValue:surat"`
}

func (Surat) TableName() string {
	return "surat"
}
