package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tier adalah tingkatan hierarki yang dapat memegang disposisi.
type Tier string

const (
	TierKepala Tier = "kepala"
	// TierKabid mencakup Sekretaris dan Kepala Bidang.
	TierKabid   Tier = "kabid"
	TierBawahan Tier = "bawahan"
)

var tierOrder = []Tier{TierKepala, TierKabid, TierBawahan}

func Tiers() []Tier {
	out := make([]Tier, len(tierOrder))
	copy(out, tierOrder)
	return out
}

func (t Tier) rank() int {
	for i, v := range tierOrder {
		if v == t {
			return i
		}
	}
	return -1
}

func (t Tier) Valid() bool { return t.rank() >= 0 }

// Next returns the tier directly below t.
func (t Tier) Next() (Tier, bool) {
	r := t.rank()
	if r < 0 || r+1 >= len(tierOrder) {
		return "", false
	}
	return tierOrder[r+1], true
}

// Above reports whether t ranks strictly higher than o.
func (t Tier) Above(o Tier) bool {
	return t.Valid() && o.Valid() && t.rank() < o.rank()
}

type Status string

const (
	StatusBelumDibaca Status = "belum dibaca"
	StatusDibaca      Status = "dibaca"
	StatusDiterima    Status = "diterima"
	StatusDiteruskan  Status = "diteruskan"
	StatusDiproses    Status = "diproses"
	StatusSelesai     Status = "selesai"
)

func (s Status) Valid() bool {
	switch s {
	case StatusBelumDibaca, StatusDibaca, StatusDiterima, StatusDiteruskan, StatusDiproses, StatusSelesai:
		return true
	}
	return false
}

// Terminal statuses end a tier's participation: it either moved the record on
// or finished it.
func (s Status) Terminal() bool {
	return s == StatusDiteruskan || s == StatusSelesai
}

// IsFeedbackStatus reports whether s may be requested by a feedback entry.
func (s Status) IsFeedbackStatus() bool {
	return s == StatusDiproses || s == StatusSelesai
}

// Sifat adalah tingkat urgensi disposisi.
type Sifat string

const (
	SifatSangatSegera Sifat = "Sangat Segera"
	SifatSegera       Sifat = "Segera"
	SifatRahasia      Sifat = "Rahasia"
	SifatBiasa        Sifat = "Biasa"
)

func (s Sifat) Valid() bool {
	switch s {
	case SifatSangatSegera, SifatSegera, SifatRahasia, SifatBiasa:
		return true
	}
	return false
}

// StatusTier holds one status per tier that has touched a disposisi. It is
// stored as a JSON column.
type StatusTier map[Tier]Status

func (m StatusTier) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[Tier]Status(m))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *StatusTier) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = StatusTier{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("status_tier: unsupported type %T", src)
	}
	out := StatusTier{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, (*map[Tier]Status)(&out)); err != nil {
			return fmt.Errorf("status_tier: %w", err)
		}
	}
	*m = out
	return nil
}

// Deepest returns the lowest-ranked tier present in the map. Forwarding only
// moves downwards, so this is the record's active tier.
func (m StatusTier) Deepest() (Tier, bool) {
	for i := len(tierOrder) - 1; i >= 0; i-- {
		if _, ok := m[tierOrder[i]]; ok {
			return tierOrder[i], true
		}
	}
	return "", false
}
