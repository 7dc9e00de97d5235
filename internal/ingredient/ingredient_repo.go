package ingredient

import (
	"context"

	"go-resto/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=ingredient_repo.go -destination=mock/ingredient_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Ingredient, error)
	FindByID(ctx context.Context, id int) (*Ingredient, error)
	Create(ctx context.Context, ing *Ingredient) error
	Update(ctx context.Context, ing *Ingredient) error
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filter Filter) ([]Ingredient, error) {
	var out []Ingredient
	err := r.db.WithContext(ctx).
		Scopes(
			scope.Search(filter.Search, "name", "description"),
			scope.Between("price", filter.MinPrice, filter.MaxPrice),
			scope.Between("quantity", filter.MinQuantity, filter.MaxQuantity),
		).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*Ingredient, error) {
	var ing Ingredient
	if err := r.db.WithContext(ctx).First(&ing, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *repository) Create(ctx context.Context, ing *Ingredient) error {
	return r.db.WithContext(ctx).Create(ing).Error
}

func (r *repository) Update(ctx context.Context, ing *Ingredient) error {
	return r.db.WithContext(ctx).Save(ing).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&Ingredient{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
