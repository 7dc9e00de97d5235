package dish

import (
	"time"

	"github.com/shopspring/decimal"
)

type Dish struct {
	ID          int `gorm:"primaryKey"`
	Name        string
	Description *string
	Price       decimal.Decimal  `gorm:"type:numeric"`
	Rating      *decimal.Decimal `gorm:"type:numeric"`
	CategoryID  *int
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   *time.Time

	Category    *Category        `gorm:"foreignKey:CategoryID"`
	Ingredients []DishIngredient `gorm:"many2many:dish_contents;joinForeignKey:DishID;joinReferences:IngredientID"`
}

func (Dish) TableName() string {
	return "dishes"
}

type Category struct {
	ID          int `gorm:"primaryKey"`
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (Category) TableName() string {
	return "categories"
}

// DishIngredient is the slice of an ingredient row shown on a dish.
type DishIngredient struct {
	ID       int `gorm:"primaryKey"`
	Name     string
	Quantity decimal.Decimal `gorm:"type:numeric"`
}

func (DishIngredient) TableName() string {
	return "ingredients"
}

type DishContent struct {
	DishID       int `gorm:"primaryKey"`
	IngredientID int `gorm:"primaryKey"`
}

func (DishContent) TableName() string {
	return "dish_contents"
}
