package rbac

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	// FindRoleName returns gorm.ErrRecordNotFound for an unknown employee.
	FindRoleName(ctx context.Context, employeeID string) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindRoleName(ctx context.Context, employeeID string) (string, error) {
	var row struct {
		Name string
	}
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("role.name AS name").
		Joins("JOIN role ON role.id = employees.role_id").
		Where("employees.uuid = ?", employeeID).
		Take(&row).Error
	if err != nil {
		return "", err
	}
	return row.Name, nil
}
