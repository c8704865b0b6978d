package repository

import (
	"context"

	"e-disposisi/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type RoleRepository interface {
	GetAll(ctx context.Context) ([]model.Role, error)
	GetByName(ctx context.Context, name string) (*model.Role, error)
	GetAllPermissions(ctx context.Context) ([]model.Permission, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db}
}

func (r *roleRepository) GetAll(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	err := r.db.WithContext(ctx).Preload("Permissions").Find(&roles).Error
	return roles, errors.Wrap(err, "list role")
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Preload("Permissions").Where("nama_role = ?", name).First(&role).Error; err != nil {
		return nil, findErr(err, "role")
	}
	return &role, nil
}

func (r *roleRepository) GetAllPermissions(ctx context.Context) ([]model.Permission, error) {
	var perms []model.Permission
	err := r.db.WithContext(ctx).Find(&perms).Error
	return perms, errors.Wrap(err, "list permission")
}
