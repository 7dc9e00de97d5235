package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Credential, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Credential, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) credentials(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("employees e").
		Select("e.uuid, e.full_name, e.email, e.password_hashed, e.is_featured, e.role_id, r.name AS role_name").
		Joins("LEFT JOIN role r ON r.id = e.role_id")
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Credential, error) {
	var cred Credential
	if err := r.credentials(ctx).Where("e.email = ?", email).Take(&cred).Error; err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Credential, error) {
	var cred Credential
	if err := r.credentials(ctx).Where("e.uuid = ?", employeeID).Take(&cred).Error; err != nil {
		return nil, err
	}
	return &cred, nil
}
