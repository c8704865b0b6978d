package model

import "gorm.io/gorm"

// MaxLampiran is the attachment cap of a single feedback entry or letter.
const MaxLampiran = 5

// Lampiran is a reference to a blob held by the attachment store. It belongs
// either to a Surat or to a Feedback (polymorphic owner).
type Lampiran struct {
	gorm.Model
	PemilikID   uint   `json:"-" gorm:"index"`
	PemilikType string `json:"-" gorm:"type:varchar(50);index"`
	Key         string `json:"key" gorm:"type:varchar(255);not null"`
	URL         string `json:"url" gorm:"type:text"`
	NamaFile    string `json:"nama_file" gorm:"type:varchar(255)"`
	MimeType    string `json:"mime_type" gorm:"type:varchar(100)"`
	Ukuran      int64  `json:"ukuran"`
}

// Values of Lampiran.PemilikType.
const (
	PemilikSurat    = "surat"
	PemilikFeedback = "feedback"
)
