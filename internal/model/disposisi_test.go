package model

import (
	"testing"

	"e-disposisi/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func pegawai(id uint, tier Tier, jabatan string) *Pegawai {
	return &Pegawai{Model: gorm.Model{ID: id}, OrganisasiID: 1, Tier: tier, Jabatan: jabatan, IsActive: true}
}

func newDisposisi(t *testing.T) (*Disposisi, *Pegawai) {
	t.Helper()
	kepala := pegawai(1, TierKepala, "Kepala Dinas")
	d, err := NewDisposisi(kepala, &Surat{Model: gorm.Model{ID: 10}}, DisposisiBaru{
		Sifat:     SifatSegera,
		Perihal:   "Undangan rapat",
		Instruksi: "Untuk ditindaklanjuti",
		Catatan:   "Mohon hadir",
		Jabatan:   "Sekretaris",
	})
	require.NoError(t, err)
	d.ID = 100
	return d, kepala
}

func TestNewDisposisi(t *testing.T) {
	d, kepala := newDisposisi(t)

	assert.Equal(t, StatusDiteruskan, d.StatusTier[TierKepala])
	assert.Equal(t, StatusBelumDibaca, d.StatusTier[TierKabid])
	assert.Equal(t, TierKabid, d.TierAktif)
	assert.Equal(t, StatusBelumDibaca, d.StatusAktif)
	assert.Nil(t, d.PemegangID)
	assert.Equal(t, "Sekretaris", d.JabatanPemegang)
	assert.Equal(t, "Mohon hadir", d.CatatanAtasan)
	assert.True(t, d.HolderConsistent())
	require.Len(t, d.Riwayat, 1)
	assert.Equal(t, kepala.ID, d.Riwayat[0].DariPegawaiID)

	_, err := NewDisposisi(pegawai(2, TierKabid, "Sekretaris"), &Surat{}, DisposisiBaru{Sifat: SifatBiasa, Jabatan: "Kabid"})
	assert.True(t, errs.Is(err, errs.Unauthorized))

	_, err = NewDisposisi(kepala, &Surat{}, DisposisiBaru{Sifat: "Kilat", Jabatan: "Sekretaris"})
	assert.True(t, errs.Is(err, errs.InvalidArgument))
}

// Scenario A, B.
func TestDisposisiLifecycle(t *testing.T) {
	d, _ := newDisposisi(t)
	sekretaris := pegawai(2, TierKabid, "Sekretaris")
	u42 := pegawai(42, TierBawahan, "Staf Umum")

	assert.True(t, d.MarkRead(sekretaris))
	assert.Equal(t, StatusDibaca, d.StatusTier[TierKabid])
	assert.False(t, d.MarkRead(sekretaris))

	require.NoError(t, d.Accept(sekretaris))
	assert.Equal(t, StatusDiterima, d.StatusTier[TierKabid])

	step, err := d.Forward(sekretaris, PersonTarget{PegawaiID: 42}, TierBawahan, "Segera diproses")
	require.NoError(t, err)
	assert.Equal(t, StatusDiteruskan, d.StatusTier[TierKabid])
	assert.Equal(t, StatusBelumDibaca, d.StatusTier[TierBawahan])
	require.NotNil(t, d.PemegangID)
	assert.Equal(t, uint(42), *d.PemegangID)
	assert.Empty(t, d.JabatanPemegang)
	assert.True(t, d.HolderConsistent())
	assert.Equal(t, "Segera diproses", d.CatatanAtasan)
	assert.Equal(t, TierKabid, step.DariTier)
	assert.Equal(t, TierBawahan, step.KeTier)

	assert.False(t, d.InQueue(TierKabid, sekretaris))
	assert.True(t, d.InQueue(TierBawahan, u42))
	assert.True(t, d.Involves(sekretaris))

	assert.True(t, d.MarkRead(u42))
	require.NoError(t, d.Accept(u42))
	tier, err := d.ApplyFeedback(u42, StatusSelesai)
	require.NoError(t, err)
	assert.Equal(t, TierBawahan, tier)
	assert.Equal(t, StatusSelesai, d.StatusTier[TierBawahan])

	_, err = d.ApplyFeedback(u42, StatusDiproses)
	assert.True(t, errs.Is(err, errs.StateConflict))

	require.NoError(t, d.ReviseFeedback(TierBawahan, StatusDiproses))
	assert.Equal(t, StatusDiproses, d.StatusAktif)
}

func TestDisposisiAcceptTwice(t *testing.T) {
	d, _ := newDisposisi(t)
	sekretaris := pegawai(2, TierKabid, "Sekretaris")
	d.MarkRead(sekretaris)
	require.NoError(t, d.Accept(sekretaris))

	err := d.Accept(sekretaris)
	assert.True(t, errs.Is(err, errs.StateConflict))
}

// Scenario E.
func TestDisposisiAcceptNotHolder(t *testing.T) {
	d, _ := newDisposisi(t)
	kabid := pegawai(3, TierKabid, "Kepala Bidang Umum")

	assert.False(t, d.MarkRead(kabid))
	err := d.Accept(kabid)
	assert.True(t, errs.Is(err, errs.Unauthorized))
}

// Scenario C plus every other non-accepted status.
func TestDisposisiForwardRequiresDiterima(t *testing.T) {
	sekretaris := pegawai(2, TierKabid, "Sekretaris")
	for _, s := range []Status{StatusBelumDibaca, StatusDibaca, StatusDiteruskan, StatusDiproses, StatusSelesai} {
		t.Run(string(s), func(t *testing.T) {
			d, _ := newDisposisi(t)
			d.setStatus(TierKabid, s)

			_, err := d.Forward(sekretaris, TitleTarget{Jabatan: "Staf Umum"}, TierBawahan, "")
			assert.True(t, errs.Is(err, errs.StateConflict))
			assert.Equal(t, "Sekretaris", d.JabatanPemegang)
		})
	}
}

func TestDisposisiForwardToTitle(t *testing.T) {
	d, _ := newDisposisi(t)
	sekretaris := pegawai(2, TierKabid, "Sekretaris")
	staf := pegawai(5, TierBawahan, "Staf Umum")
	d.MarkRead(sekretaris)
	require.NoError(t, d.Accept(sekretaris))

	_, err := d.Forward(sekretaris, TitleTarget{Jabatan: "Staf Umum"}, TierBawahan, "cek")
	require.NoError(t, err)
	assert.Nil(t, d.PemegangID)
	assert.Equal(t, "Staf Umum", d.JabatanPemegang)
	assert.True(t, d.HeldBy(staf))
	assert.False(t, d.HeldBy(sekretaris))

	// the forwarding tier is frozen
	assert.True(t, errs.Is(d.Accept(sekretaris), errs.StateConflict))
	_, err = d.ApplyFeedback(sekretaris, StatusSelesai)
	assert.True(t, errs.Is(err, errs.StateConflict))
	_, err = d.Forward(sekretaris, TitleTarget{Jabatan: "Staf Teknis"}, TierBawahan, "")
	assert.True(t, errs.Is(err, errs.StateConflict))
	assert.Equal(t, "Staf Umum", d.JabatanPemegang)
}

func TestDisposisiKepalaFrozenAfterCreate(t *testing.T) {
	d, kepala := newDisposisi(t)

	assert.True(t, errs.Is(d.Accept(kepala), errs.StateConflict))
	assert.True(t, errs.Is(d.CanForward(kepala), errs.StateConflict))
	_, err := d.ApplyFeedback(kepala, StatusSelesai)
	assert.True(t, errs.Is(err, errs.StateConflict))

	// outside the routing history it stays unauthorized
	kabid := pegawai(3, TierKabid, "Kepala Bidang Umum")
	assert.True(t, errs.Is(d.Accept(kabid), errs.Unauthorized))
}

func TestDisposisiPersonForwardFreezesSender(t *testing.T) {
	d, _ := newDisposisi(t)
	sekretaris := pegawai(2, TierKabid, "Sekretaris")
	d.MarkRead(sekretaris)
	require.NoError(t, d.Accept(sekretaris))
	step, err := d.Forward(sekretaris, PersonTarget{PegawaiID: 42}, TierBawahan, "")
	require.NoError(t, err)
	d.Riwayat = append(d.Riwayat, *step)

	assert.True(t, errs.Is(d.Accept(sekretaris), errs.StateConflict))
	// a different pegawai who was never handed the record
	assert.True(t, errs.Is(d.Accept(pegawai(43, TierBawahan, "Staf Umum")), errs.Unauthorized))
}

func TestDisposisiForwardWrongTier(t *testing.T) {
	d, _ := newDisposisi(t)
	sekretaris := pegawai(2, TierKabid, "Sekretaris")
	d.MarkRead(sekretaris)
	require.NoError(t, d.Accept(sekretaris))

	_, err := d.Forward(sekretaris, PersonTarget{PegawaiID: 9}, TierKepala, "")
	assert.True(t, errs.Is(err, errs.InvalidArgument))
	assert.Equal(t, StatusDiterima, d.StatusTier[TierKabid])
}

func TestDisposisiFeedbackNeedsHold(t *testing.T) {
	sekretaris := pegawai(2, TierKabid, "Sekretaris")
	for _, s := range []Status{StatusBelumDibaca, StatusDibaca, StatusSelesai} {
		t.Run(string(s), func(t *testing.T) {
			d, _ := newDisposisi(t)
			d.setStatus(TierKabid, s)
			_, err := d.ApplyFeedback(sekretaris, StatusDiproses)
			assert.True(t, errs.Is(err, errs.StateConflict))
		})
	}

	d, _ := newDisposisi(t)
	d.setStatus(TierKabid, StatusDiterima)
	_, err := d.ApplyFeedback(sekretaris, StatusDiproses)
	require.NoError(t, err)
	_, err = d.ApplyFeedback(sekretaris, StatusDiproses)
	require.NoError(t, err)
	_, err = d.ApplyFeedback(sekretaris, StatusDibaca)
	assert.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestStatusTierScan(t *testing.T) {
	var m StatusTier
	require.NoError(t, m.Scan([]byte(`{"kepala":"diteruskan","kabid":"dibaca"}`)))
	assert.Equal(t, StatusDibaca, m[TierKabid])
	tier, ok := m.Deepest()
	assert.True(t, ok)
	assert.Equal(t, TierKabid, tier)

	require.NoError(t, m.Scan(nil))
	assert.Empty(t, m)
	assert.Error(t, m.Scan(42))

	v, err := StatusTier(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestTierOrder(t *testing.T) {
	next, ok := TierKepala.Next()
	assert.True(t, ok)
	assert.Equal(t, TierKabid, next)
	_, ok = TierBawahan.Next()
	assert.False(t, ok)
	assert.True(t, TierKepala.Above(TierBawahan))
	assert.False(t, TierBawahan.Above(TierKabid))
	assert.False(t, Tier("lurah").Valid())
}
