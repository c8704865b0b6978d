package usecase

import (
	"context"
	"time"

	"e-disposisi/config"
	"e-disposisi/internal/errs"
	"e-disposisi/internal/model"
	"e-disposisi/internal/repository"

	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type PegawaiUsecase struct {
	repo repository.PegawaiRepository
	jwt  config.JWTConfig
}

func NewPegawaiUsecase(repo repository.PegawaiRepository, jwtCfg config.JWTConfig) *PegawaiUsecase {
	return &PegawaiUsecase{repo: repo, jwt: jwtCfg}
}

func (u *PegawaiUsecase) Login(ctx context.Context, nip, password string) (string, *model.Pegawai, error) {
	// 1. Cari pegawai berdasarkan NIP
	p, err := u.repo.FindByNIP(ctx, nip)
	if errs.Is(err, errs.NotFound) {
		return "", nil, errs.Unauthorizedf("NIP atau password salah")
	}
	if err != nil {
		return "", nil, err
	}

	// 2. Bandingkan Password (Input vs Hash di DB)
	if err = bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password)); err != nil {
		log.Warnw("login gagal", "nip", nip)
		return "", nil, errs.Unauthorizedf("NIP atau password salah")
	}
	if !p.IsActive {
		return "", nil, errs.Unauthorizedf("akun anda tidak aktif")
	}

	// 3. Jika benar, buat Token JWT
	role := ""
	if p.Role != nil {
		role = p.Role.NamaRole
	}
	claims := jwt.MapClaims{
		"user_id":       p.ID,
		"nip":           p.NIP,
		"role":          role,
		"organisasi_id": p.OrganisasiID,
		"tier":          p.Tier,
		"exp":           time.Now().Add(u.jwt.TTL).Unix(),
	}
	t, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwt.Secret)
	if err != nil {
		return "", nil, err
	}
	return t, p, nil
}

func (u *PegawaiUsecase) Profile(ctx context.Context, id uint) (*model.Pegawai, error) {
	return loadActor(ctx, u.repo, id)
}
