package database

import (
	"e-disposisi/internal/model"

	"github.com/gofiber/fiber/v2/log"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded account.
const DefaultPassword = "admin123"

type seedPegawai struct {
	Nama    string
	NIP     string
	Jabatan string
	Tier    model.Tier
	Role    string
	Atasan  string
}

var pegawaiAwal = []seedPegawai{
	{Nama: "Administrator Utama", NIP: "123456789123456789", Jabatan: "Staf Umum", Tier: model.TierBawahan, Role: "Admin"},
	{Nama: "Drs. Hendra Wijaya", NIP: "196801011990031001", Jabatan: "Kepala Dinas", Tier: model.TierKepala, Role: "Pimpinan"},
	{Nama: "Siti Rahmawati", NIP: "197205152000032002", Jabatan: "Sekretaris", Tier: model.TierKabid, Role: "Pimpinan", Atasan: "196801011990031001"},
	{Nama: "Agus Salim", NIP: "197403202001121003", Jabatan: "Kepala Bidang Pelayanan", Tier: model.TierKabid, Role: "Pimpinan", Atasan: "196801011990031001"},
	{Nama: "Rina Marlina", NIP: "198507102010012004", Jabatan: "Kepala Sub Bagian Umum", Tier: model.TierBawahan, Role: "Operator", Atasan: "197205152000032002"},
	{Nama: "Budi Pegawai", NIP: "987654321", Jabatan: "Staf Teknis", Tier: model.TierBawahan, Role: "Pegawai", Atasan: "197403202001121003"},
}

var izinRole = map[string][]string{
	"Admin":    {model.PermissionRegistrasiSurat, model.PermissionLihatSurat, model.PermissionKelolaRole},
	"Pimpinan": {model.PermissionLihatSurat},
	"Operator": {model.PermissionRegistrasiSurat, model.PermissionLihatSurat},
	"Pegawai":  {model.PermissionLihatSurat},
}

func SeedAll(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// 1. Seed Organisasi
		org := model.Organisasi{NamaOrganisasi: "Dinas Komunikasi dan Informatika"}
		if err := tx.FirstOrCreate(&org, model.Organisasi{NamaOrganisasi: org.NamaOrganisasi}).Error; err != nil {
			return errors.Wrap(err, "seed organisasi")
		}

		// 2. Seed Permissions
		perms := map[string]model.Permission{}
		for _, name := range []string{model.PermissionRegistrasiSurat, model.PermissionLihatSurat, model.PermissionKelolaRole} {
			p := model.Permission{NamaPermission: name}
			if err := tx.FirstOrCreate(&p, model.Permission{NamaPermission: name}).Error; err != nil {
				return errors.Wrapf(err, "seed permission %s", name)
			}
			perms[name] = p
		}

		// 3. Seed Roles beserta permission-nya
		roles := map[string]uint{}
		for name, names := range izinRole {
			r := model.Role{NamaRole: name}
			if err := tx.FirstOrCreate(&r, model.Role{NamaRole: name}).Error; err != nil {
				return errors.Wrapf(err, "seed role %s", name)
			}
			var list []model.Permission
			for _, n := range names {
				list = append(list, perms[n])
			}
			if err := tx.Model(&r).Association("Permissions").Replace(list); err != nil {
				return errors.Wrapf(err, "seed permission role %s", name)
			}
			roles[name] = r.ID
		}

		// 4. Seed Pegawai untuk setiap tingkat
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
		if err != nil {
			return errors.Wrap(err, "hash password")
		}
		ids := map[string]uint{}
		for _, s := range pegawaiAwal {
			p := model.Pegawai{
				Nama:         s.Nama,
				NIP:          s.NIP,
				Password:     string(hashedPassword),
				Jabatan:      s.Jabatan,
				Tier:         s.Tier,
				RoleID:       roles[s.Role],
				OrganisasiID: org.ID,
				IsActive:     true,
			}
			if id, ok := ids[s.Atasan]; ok {
				p.AtasanID = &id
			}
			if err := tx.Where(model.Pegawai{NIP: s.NIP}).Assign(p).FirstOrCreate(&p).Error; err != nil {
				return errors.Wrapf(err, "seed pegawai %s", s.NIP)
			}
			ids[s.NIP] = p.ID
			log.Infow("pegawai disiapkan", "nip", s.NIP, "jabatan", s.Jabatan, "tier", s.Tier)
		}
		return nil
	})
}
