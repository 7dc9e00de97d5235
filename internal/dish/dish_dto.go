package dish

import "github.com/shopspring/decimal"

type Filter struct {
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	MinRating  *decimal.Decimal
	MaxRating  *decimal.Decimal
	CategoryID int
}

type CreateDishRequest struct {
	Name        string           `json:"name" binding:"required,min=2,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"price"`
	Rating      *decimal.Decimal `json:"rating"`
	CategoryID  *int             `json:"category_id" binding:"omitempty,min=1"`
	Ingredients []int            `json:"ingredients" binding:"omitempty,dive,min=1"`
}

// UpdateDishRequest replaces the ingredient list when Ingredients is
// present, even if it is empty.
type UpdateDishRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"price"`
	Rating      *decimal.Decimal `json:"rating"`
	CategoryID  *int             `json:"category_id" binding:"omitempty,min=1"`
	Ingredients *[]int           `json:"ingredients" binding:"omitempty,dive,min=1"`
}

func (r UpdateDishRequest) empty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil && r.Rating == nil &&
		r.CategoryID == nil && r.Ingredients == nil
}

type CategoryResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type IngredientResponse struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
}

type DishResponse struct {
	ID          int                  `json:"id"`
	Name        string               `json:"name"`
	Description *string              `json:"description"`
	Price       decimal.Decimal      `json:"price"`
	Rating      *decimal.Decimal     `json:"rating"`
	CategoryID  *int                 `json:"category_id"`
	Category    *CategoryResponse    `json:"category,omitempty"`
	Ingredients []IngredientResponse `json:"ingredients"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   *string              `json:"updated_at"`
}
