package employee

import (
	"context"
	"database/sql"

	"go-resto/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	FindByID(ctx context.Context, id int) (*Employee, error)
	FindByUUID(ctx context.Context, uid string) (*Employee, error)
	Create(ctx context.Context, empl *Employee) error
	Update(ctx context.Context, empl *Employee) error
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

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Employee, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&Employee{}).Scopes(scope.Search(filter.Query, "full_name", "email"))
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []Employee
	err := r.db.WithContext(ctx).
		Scopes(scope.Search(filter.Query, "full_name", "email")).
		Order("id ASC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&out).Error
	return out, total, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*Employee, error) {
	var empl Employee
	if err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByUUID(ctx context.Context, uid string) (*Employee, error) {
	var empl Employee
	if err := r.db.WithContext(ctx).First(&empl, "uuid = ?", uid).Error; err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}
