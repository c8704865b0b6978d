package handler

import (
	"math"
	"strconv"

	"e-disposisi/internal/errs"
	"e-disposisi/internal/repository"
	"e-disposisi/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// fail writes err as {"error", "code"} with the status of its kind. Internal
// errors are logged and hidden from the caller.
func fail(c *fiber.Ctx, err error) error {
	kind := errs.KindOf(err)
	if kind == errs.Internal {
		log.Errorw("request gagal", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(errs.HTTPStatus(kind)).JSON(fiber.Map{
		"error": errs.Message(err, "Terjadi kesalahan pada server"),
		"code":  kind.String(),
	})
}

func ok(c *fiber.Ctx, message string, data any) error {
	return c.JSON(fiber.Map{"message": message, "data": data})
}

func okPage(c *fiber.Ctx, message string, data any, page, limit int, total int64) error {
	page, limit = repository.Paginate(page, limit)
	meta := fiber.Map{
		"page":       page,
		"limit":      limit,
		"total":      total,
		"total_page": int(math.Ceil(float64(total) / float64(limit))),
	}
	return c.JSON(fiber.Map{"message": message, "data": data, "meta": meta})
}

// actorID reads the user_id claim stored by the Auth middleware. JWT numbers
// decode as float64.
func actorID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("user_id").(float64); ok && id > 0 {
		return uint(id)
	}
	return 0
}

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.Invalidf("id tidak valid")
	}
	return uint(id), nil
}

// formFiles returns the files under key of a multipart body, or nothing when
// the body is not multipart.
func formFiles(c *fiber.Ctx, key string) []storage.Upload {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return storage.FromFileHeaders(form.File[key])
}

func formValues(c *fiber.Ctx, key string) []string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		if v := c.FormValue(key); v != "" {
			return []string{v}
		}
		return nil
	}
	return form.Value[key]
}

func formIDs(c *fiber.Ctx, key string) ([]uint, error) {
	var ids []uint
	for _, v := range formValues(c, key) {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id == 0 {
			return nil, errs.Invalidf("%s berisi id tidak valid: %q", key, v)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

