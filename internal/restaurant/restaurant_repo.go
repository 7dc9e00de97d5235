package restaurant

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=restaurant_repo.go -destination=mock/restaurant_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Location, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Location, error) {
	var out []Location
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}
