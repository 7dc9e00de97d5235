package ingredient

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ingredient struct {
	ID          int `gorm:"primaryKey"`
	Name        string
	Description *string
	Price       decimal.Decimal `gorm:"type:numeric"`
	Quantity    decimal.Decimal `gorm:"type:numeric"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	UpdatedAt   *time.Time
}

func (Ingredient) TableName() string {
	return "ingredients"
}
