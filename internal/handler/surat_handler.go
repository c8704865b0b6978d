package handler

import (
	"time"

	"e-disposisi/internal/errs"
	"e-disposisi/internal/repository"
	"e-disposisi/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type SuratHandler struct {
	uc *usecase.SuratUsecase
}

func NewSuratHandler(uc *usecase.SuratUsecase) *SuratHandler {
	return &SuratHandler{uc: uc}
}

// Create: multipart asal_instansi, perihal, nomor_surat, tanggal_diterima
// (YYYY-MM-DD) and files[].
func (h *SuratHandler) Create(c *fiber.Ctx) error {
	tanggal, err := time.ParseInLocation("2006-01-02", c.FormValue("tanggal_diterima"), time.Local)
	if err != nil {
		return fail(c, errs.Invalidf("tanggal_diterima harus berformat YYYY-MM-DD"))
	}

	s, err := h.uc.Register(c.UserContext(), actorID(c), usecase.RegisterSuratInput{
		AsalInstansi:    c.FormValue("asal_instansi"),
		Perihal:         c.FormValue("perihal"),
		NomorSurat:      c.FormValue("nomor_surat"),
		TanggalDiterima: tanggal,
		Files:           formFiles(c, "files"),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Surat berhasil dicatat", "data": s})
}

func (h *SuratHandler) GetAll(c *fiber.Ctx) error {
	f := repository.SuratFilter{
		Q:     c.Query("q"),
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
	}
	list, total, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return fail(c, err)
	}
	return okPage(c, "Berhasil mengambil data surat", list, f.Page, f.Limit, total)
}

func (h *SuratHandler) GetDetail(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	s, err := h.uc.Detail(c.UserContext(), actorID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil detail surat", s)
}
