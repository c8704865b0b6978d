package handler

import (
	"strings"

	"e-disposisi/internal/errs"
	"e-disposisi/internal/model"
	"e-disposisi/internal/repository"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gofiber/fiber/v2"
)

type OrganisasiHandler struct {
	repo repository.OrganisasiRepository
}

func NewOrganisasiHandler(repo repository.OrganisasiRepository) *OrganisasiHandler {
	return &OrganisasiHandler{repo: repo}
}

type AnggotaOrganisasi struct {
	ID      uint       `json:"id"`
	Nama    string     `json:"nama"`
	NIP     string     `json:"nip"`
	Jabatan string     `json:"jabatan"`
	Tier    model.Tier `json:"tier"`
}

type OrganisasiResponse struct {
	ID             uint                `json:"id"`
	NamaOrganisasi string              `json:"nama_organisasi"`
	Anggota        []AnggotaOrganisasi `json:"anggota"`
}

// GetInfo returns the actor's organisasi and its directory of active pegawai.
func (h *OrganisasiHandler) GetInfo(c *fiber.Ctx) error {
	orgID, _ := c.Locals("organisasi_id").(float64)
	org, err := h.repo.GetByID(c.UserContext(), uint(orgID))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data organisasi", OrganisasiResponse{
		ID:             org.ID,
		NamaOrganisasi: org.NamaOrganisasi,
		Anggota: slice.Map(org.Pegawai, func(_ int, p model.Pegawai) AnggotaOrganisasi {
			return AnggotaOrganisasi{ID: p.ID, Nama: p.Nama, NIP: p.NIP, Jabatan: p.Jabatan, Tier: p.Tier}
		}),
	})
}

type UpdateOrganisasiRequest struct {
	NamaOrganisasi string `json:"nama_organisasi"`
}

func (h *OrganisasiHandler) UpdateOrganisasi(c *fiber.Ctx) error {
	// Ambil ID Organisasi dari token Admin yang login
	orgID, _ := c.Locals("organisasi_id").(float64)

	var req UpdateOrganisasiRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, errs.Invalidf("Data tidak valid"))
	}
	nama := strings.TrimSpace(req.NamaOrganisasi)
	if nama == "" {
		return fail(c, errs.Invalidf("nama organisasi wajib diisi"))
	}

	org, err := h.repo.GetByID(c.UserContext(), uint(orgID))
	if err != nil {
		return fail(c, err)
	}
	org.NamaOrganisasi = nama
	if err := h.repo.Update(c.UserContext(), org); err != nil {
		return fail(c, err)
	}
	return ok(c, "Informasi organisasi berhasil diperbarui", fiber.Map{"id": org.ID, "nama_organisasi": org.NamaOrganisasi})
}
