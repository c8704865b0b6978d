package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"e-disposisi/internal/errs"
	"e-disposisi/internal/model"
	"e-disposisi/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&m))
	return m
}

func TestFail(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode int
		wantKind string
		wantMsg  string
	}{
		{name: "not found", err: errs.NotFoundf("disposisi tidak ditemukan"), wantCode: fiber.StatusNotFound, wantKind: "NOT_FOUND", wantMsg: "disposisi tidak ditemukan"},
		{name: "unauthorized", err: errs.Unauthorizedf("anda bukan pemegang disposisi ini"), wantCode: fiber.StatusForbidden, wantKind: "UNAUTHORIZED", wantMsg: "anda bukan pemegang disposisi ini"},
		{name: "conflict", err: errs.Conflictf("disposisi telah diubah"), wantCode: fiber.StatusConflict, wantKind: "STATE_CONFLICT", wantMsg: "disposisi telah diubah"},
		{name: "invalid", err: errs.Invalidf("catatan wajib diisi"), wantCode: fiber.StatusBadRequest, wantKind: "INVALID_ARGUMENT", wantMsg: "catatan wajib diisi"},
		{name: "upstream", err: errs.Upstream("gagal mengunggah lampiran", errors.New("s3 timeout")), wantCode: fiber.StatusBadGateway, wantKind: "UPSTREAM_FAILURE", wantMsg: "gagal mengunggah lampiran"},
		{name: "internal disembunyikan", err: errors.New("dial tcp 10.0.0.1:3306: refused"), wantCode: fiber.StatusInternalServerError, wantKind: "INTERNAL", wantMsg: "Terjadi kesalahan pada server"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return fail(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, resp.StatusCode)
			body := decode(t, resp.Body)
			assert.Equal(t, tc.wantKind, body["code"])
			assert.Equal(t, tc.wantMsg, body["error"])
		})
	}
}

func TestForwardRequestToTarget(t *testing.T) {
	testCases := []struct {
		name    string
		req     ForwardRequest
		want    model.Target
		wantErr bool
	}{
		{name: "satu pegawai", req: ForwardRequest{TargetType: "person", PegawaiID: 42}, want: model.PersonTarget{PegawaiID: 42}},
		{name: "satu pegawai dari daftar", req: ForwardRequest{TargetType: "person", PegawaiIDs: []uint{42}}, want: model.PersonTarget{PegawaiID: 42}},
		{name: "beberapa pegawai", req: ForwardRequest{TargetType: "person", PegawaiIDs: []uint{42, 43}}, wantErr: true},
		{name: "pegawai dan daftar", req: ForwardRequest{TargetType: "person", PegawaiID: 41, PegawaiIDs: []uint{42}}, wantErr: true},
		{name: "tanpa pegawai", req: ForwardRequest{TargetType: "person"}, wantErr: true},
		{name: "pegawai dengan jabatan", req: ForwardRequest{TargetType: "person", PegawaiID: 42, Jabatan: "Sekretaris"}, wantErr: true},
		{name: "jabatan", req: ForwardRequest{TargetType: "title", Jabatan: "Kepala Seksi Pelayanan"}, want: model.TitleTarget{Jabatan: "Kepala Seksi Pelayanan"}},
		{name: "jabatan kosong", req: ForwardRequest{TargetType: "title"}, wantErr: true},
		{name: "jabatan dengan pegawai", req: ForwardRequest{TargetType: "title", Jabatan: "Sekretaris", PegawaiIDs: []uint{2}}, wantErr: true},
		{name: "jenis tidak dikenal", req: ForwardRequest{TargetType: "broadcast"}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.req.ToTarget()
			if tc.wantErr {
				assert.True(t, errs.Is(err, errs.InvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParamID(t *testing.T) {
	app := fiber.New()
	app.Get("/:id", func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		return ok(c, "ok", id)
	})

	for path, want := range map[string]int{"/7": fiber.StatusOK, "/0": fiber.StatusBadRequest, "/abc": fiber.StatusBadRequest} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}

func TestFormIDs(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		ids, err := formIDs(c, "hapus_lampiran")
		if err != nil {
			return fail(c, err)
		}
		return ok(c, "ok", ids)
	})

	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader("hapus_lampiran=3"))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{float64(3)}, decode(t, resp.Body)["data"])

	req = httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader("hapus_lampiran=x"))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

type fakeDashboard struct {
	gotOrg uint
	stats  *repository.DashboardStats
}

func (f *fakeDashboard) GetDashboardStats(_ context.Context, orgID uint) (*repository.DashboardStats, error) {
	f.gotOrg = orgID
	return f.stats, nil
}

func TestDashboardGetStats(t *testing.T) {
	repo := &fakeDashboard{stats: &repository.DashboardStats{
		PerStatus:      map[model.Status]int64{model.StatusBelumDibaca: 2},
		PerSifat:       map[model.Sifat]int64{},
		TotalDisposisi: 2,
	}}
	hdl := NewDashboardHandler(repo)

	app := fiber.New()
	app.Get("/api/dashboard", func(c *fiber.Ctx) error {
		c.Locals("organisasi_id", float64(3))
		return c.Next()
	}, hdl.GetStats)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, uint(3), repo.gotOrg)

	data := decode(t, resp.Body)["data"].(map[string]any)
	assert.Equal(t, float64(2), data["total_disposisi"])
	assert.Equal(t, map[string]any{"belum dibaca": float64(2)}, data["per_status"])
}

type fakeOrganisasi struct {
	org     *model.Organisasi
	updated string
}

func (f *fakeOrganisasi) GetByID(_ context.Context, id uint) (*model.Organisasi, error) {
	if f.org == nil || f.org.ID != id {
		return nil, errs.NotFoundf("organisasi tidak ditemukan")
	}
	cp := *f.org
	return &cp, nil
}

func (f *fakeOrganisasi) Update(_ context.Context, org *model.Organisasi) error {
	f.updated = org.NamaOrganisasi
	return nil
}

func TestOrganisasiHandler(t *testing.T) {
	org := &model.Organisasi{NamaOrganisasi: "Dinas Kominfo", Pegawai: []model.Pegawai{
		{Nama: "Kepala", Jabatan: "Kepala Dinas", Tier: model.TierKepala},
		{Nama: "Staf", Jabatan: "Staf Teknis", Tier: model.TierBawahan},
	}}
	org.ID = 1
	repo := &fakeOrganisasi{org: org}
	hdl := NewOrganisasiHandler(repo)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("organisasi_id", float64(1))
		return c.Next()
	})
	app.Get("/", hdl.GetInfo)
	app.Put("/", hdl.UpdateOrganisasi)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := decode(t, resp.Body)["data"].(map[string]any)
	assert.Len(t, data["anggota"], 2)

	req := httptest.NewRequest(fiber.MethodPut, "/", strings.NewReader(`{"nama_organisasi":"  "}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodPut, "/", strings.NewReader(`{"nama_organisasi":"Dinas Komunikasi"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Dinas Komunikasi", repo.updated)
}
