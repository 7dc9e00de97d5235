package dish

import (
	"context"
	"database/sql"

	"go-resto/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=dish_repo.go -destination=mock/dish_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	List(ctx context.Context, filter Filter) ([]Dish, error)
	FindByID(ctx context.Context, id int) (*Dish, error)
	ListCategories(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, d *Dish) error
	Update(ctx context.Context, d *Dish) error
	Delete(ctx context.Context, id int) error
	ReplaceIngredients(ctx context.Context, dishID int, ingredientIDs []int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	if tx == nil {
		return r
	}
	conn := r.db.Session(&gorm.Session{NewDB: true})
	conn.Statement.ConnPool = tx
	return &repository{db: conn}
}

func categoryScope(categoryID int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if categoryID <= 0 {
			return db
		}
		return db.Where("category_id = ?", categoryID)
	}
}

func (r *repository) List(ctx context.Context, filter Filter) ([]Dish, error) {
	var dishes []Dish
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Ingredients").
		Scopes(
			scope.Search(filter.Search, "name", "description"),
			scope.Between("price", filter.MinPrice, filter.MaxPrice),
			scope.Between("rating", filter.MinRating, filter.MaxRating),
			categoryScope(filter.CategoryID),
		).
		Order("created_at DESC").
		Find(&dishes).Error
	return dishes, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*Dish, error) {
	var d Dish
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Ingredients").
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *repository) Create(ctx context.Context, d *Dish) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error
}

func (r *repository) Update(ctx context.Context, d *Dish) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(d).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&Dish{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceIngredients swaps the dish_contents rows of dishID for ingredientIDs.
// An empty list just clears them.
func (r *repository) ReplaceIngredients(ctx context.Context, dishID int, ingredientIDs []int) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("dish_id = ?", dishID).Delete(&DishContent{}).Error; err != nil {
		return err
	}
	if len(ingredientIDs) == 0 {
		return nil
	}
	rows := make([]DishContent, len(ingredientIDs))
	for i, id := range ingredientIDs {
		rows[i] = DishContent{DishID: dishID, IngredientID: id}
	}
	return db.Create(&rows).Error
}
