package handler

import (
	"e-disposisi/internal/errs"
	"e-disposisi/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PegawaiHandler struct {
	uc *usecase.PegawaiUsecase
}

func NewPegawaiHandler(uc *usecase.PegawaiUsecase) *PegawaiHandler {
	return &PegawaiHandler{uc: uc}
}

func (h *PegawaiHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, errs.Invalidf("Format data salah"))
	}

	token, p, err := h.uc.Login(c.UserContext(), req.NIP, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Login berhasil", fiber.Map{"token": token, "pegawai": p})
}

func (h *PegawaiHandler) Profile(c *fiber.Ctx) error {
	p, err := h.uc.Profile(c.UserContext(), actorID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil profil", p)
}
