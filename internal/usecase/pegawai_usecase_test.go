package usecase

import (
	"context"
	"testing"
	"time"

	"e-disposisi/config"
	"e-disposisi/internal/errs"
	"e-disposisi/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestPegawaiUsecase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(t, err)
	aktif := &model.Pegawai{Model: gorm.Model{ID: 7}, NIP: "198001012005011001", Password: string(hash), IsActive: true,
		Tier: model.TierKabid, OrganisasiID: 1, Role: &model.Role{NamaRole: "Pegawai"}}
	mati := &model.Pegawai{Model: gorm.Model{ID: 8}, NIP: "198001012005011002", Password: string(hash)}

	secret := []byte("test-secret")
	uc := NewPegawaiUsecase(newFakePegawai(aktif, mati), config.JWTConfig{Secret: secret, TTL: time.Hour})
	ctx := context.Background()

	token, p, err := uc.Login(ctx, aktif.NIP, "rahasia")
	require.NoError(t, err)
	assert.Equal(t, aktif.ID, p.ID)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) { return secret, nil })
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, "Pegawai", claims["role"])
	assert.Equal(t, "kabid", claims["tier"])

	_, _, err = uc.Login(ctx, aktif.NIP, "salah")
	assert.True(t, errs.Is(err, errs.Unauthorized))
	_, _, err = uc.Login(ctx, "000", "rahasia")
	assert.True(t, errs.Is(err, errs.Unauthorized))
	_, _, err = uc.Login(ctx, mati.NIP, "rahasia")
	assert.True(t, errs.Is(err, errs.Unauthorized))
}

func TestPegawaiUsecase_Profile(t *testing.T) {
	uc := NewPegawaiUsecase(newFakePegawai(kepala), config.JWTConfig{})

	p, err := uc.Profile(context.Background(), kepala.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kepala Dinas", p.Jabatan)

	_, err = uc.Profile(context.Background(), 404)
	assert.True(t, errs.Is(err, errs.Unauthorized))
}
