package handler

import (
	"e-disposisi/internal/errs"
	"e-disposisi/internal/model"
	"e-disposisi/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DisposisiHandler struct {
	uc *usecase.DisposisiUsecase
}

func NewDisposisiHandler(uc *usecase.DisposisiUsecase) *DisposisiHandler {
	return &DisposisiHandler{uc: uc}
}

func (h *DisposisiHandler) Create(c *fiber.Ctx) error {
	var req CreateDisposisiRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, errs.Invalidf("Format data salah"))
	}

	d, err := h.uc.Create(c.UserContext(), actorID(c), usecase.CreateDisposisiInput{
		SuratID:   req.SuratID,
		Sifat:     req.Sifat,
		Perihal:   req.Perihal,
		Instruksi: req.Instruksi,
		Catatan:   req.Catatan,
		Jabatan:   req.Jabatan,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Disposisi berhasil dibuat", "data": d})
}

// Antrian is the actionable queue of the acting pegawai.
func (h *DisposisiHandler) Antrian(c *fiber.Ctx) error {
	in := usecase.QueueInput{
		Tier:   model.Tier(c.Query("tier")),
		Status: model.Status(c.Query("status")),
		Sifat:  model.Sifat(c.Query("sifat")),
		Q:      c.Query("q"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 20),
	}
	list, total, err := h.uc.Queue(c.UserContext(), actorID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return okPage(c, "Berhasil mengambil antrian disposisi", toItems(list), in.Page, in.Limit, total)
}

func (h *DisposisiHandler) Terkirim(c *fiber.Ctx) error {
	page, limit := c.QueryInt("page", 1), c.QueryInt("limit", 20)
	list, total, err := h.uc.Sent(c.UserContext(), actorID(c), page, limit)
	if err != nil {
		return fail(c, err)
	}
	return okPage(c, "Berhasil mengambil disposisi terkirim", toItems(list), page, limit, total)
}

func (h *DisposisiHandler) Detail(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	d, err := h.uc.Detail(c.UserContext(), actorID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil detail disposisi", d)
}

func (h *DisposisiHandler) Terima(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	d, err := h.uc.Accept(c.UserContext(), actorID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Disposisi diterima", d)
}

func (h *DisposisiHandler) Tujuan(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	t, err := h.uc.Targets(c.UserContext(), actorID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil tujuan disposisi", t)
}

func (h *DisposisiHandler) Teruskan(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var req ForwardRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, errs.Invalidf("Format data salah"))
	}
	target, err := req.ToTarget()
	if err != nil {
		return fail(c, err)
	}

	d, err := h.uc.Forward(c.UserContext(), actorID(c), id, target, req.Catatan)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Disposisi berhasil diteruskan", d)
}

func (h *DisposisiHandler) Cetak(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Export(c.UserContext(), actorID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Data cetak disposisi", toCetak(out.Disposisi, out.Feedback))
}
