package role

import "github.com/shopspring/decimal"

type CreateRoleRequest struct {
	Name         string           `json:"name" binding:"required,min=2,max=100"`
	SalaryPerDay *decimal.Decimal `json:"salary_per_day"`
}

type UpdateRoleRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=2,max=100"`
	SalaryPerDay *decimal.Decimal `json:"salary_per_day"`
}

type RoleResponse struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	SalaryPerDay decimal.Decimal `json:"salary_per_day"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at,omitempty"`
}
