package model

import "gorm.io/gorm"

type Pegawai struct {
	gorm.Model
	AtasanID     *uint  `json:"atasan_id"`
	OrganisasiID uint   `json:"organisasi_id" gorm:"index"`
	RoleID       uint   `json:"role_id"`
	Nama         string `json:"nama"`
	NIP          string `json:"nip" gorm:"column:nip;unique;not null"`
	Password     string `json:"-"`
	Email        string `json:"email"`
	Jabatan      string `json:"jabatan" gorm:"type:varchar(150);index"`
	Tier         Tier   `json:"tier" gorm:"type:varchar(20);index"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`

	// Relasi
	Atasan     *Pegawai    `json:"atasan,omitempty" gorm:"foreignKey:AtasanID"`
	Role       *Role       `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Organisasi *Organisasi `json:"organisasi,omitempty" gorm:"foreignKey:OrganisasiID"`
}

func (p *Pegawai) HasPermission(name string) bool {
	if p == nil || p.Role == nil {
		return false
	}
	for _, perm := range p.Role.Permissions {
		if perm.NamaPermission == name {
			return true
		}
	}
	return false
}
