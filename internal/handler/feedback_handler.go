package handler

import (
	"e-disposisi/internal/model"
	"e-disposisi/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type FeedbackHandler struct {
	uc *usecase.FeedbackUsecase
}

func NewFeedbackHandler(uc *usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	list, err := h.uc.List(c.UserContext(), actorID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil feedback", list)
}

// Submit: multipart catatan, status, files[].
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	f, err := h.uc.Submit(c.UserContext(), actorID(c), id, usecase.SubmitFeedbackInput{
		Catatan: c.FormValue("catatan"),
		Status:  model.Status(c.FormValue("status")),
		Files:   formFiles(c, "files"),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Feedback berhasil dikirim", "data": f})
}

// Edit: multipart catatan, status, hapus_lampiran[], files[].
func (h *FeedbackHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	hapus, err := formIDs(c, "hapus_lampiran")
	if err != nil {
		return fail(c, err)
	}
	f, err := h.uc.Edit(c.UserContext(), actorID(c), id, usecase.EditFeedbackInput{
		Catatan: c.FormValue("catatan"),
		Status:  model.Status(c.FormValue("status")),
		Hapus:   hapus,
		Files:   formFiles(c, "files"),
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Feedback berhasil diubah", f)
}
