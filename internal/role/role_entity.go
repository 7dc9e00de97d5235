package role

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role struct {
	ID           int             `gorm:"primaryKey"`
	Name         string          `gorm:"size:100;not null"`
	SalaryPerDay decimal.Decimal `gorm:"column:salary_per_day;type:numeric"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    *time.Time
}

func (Role) TableName() string {
	return "role"
}
