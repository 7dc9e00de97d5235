package schedule

import "github.com/shopspring/decimal"

type Filter struct {
	StartDate  string
	EndDate    string
	LocationID int
	RoleID     int
}

type CreateShiftRequest struct {
	ShiftDate  string `json:"shift_date" binding:"required"`
	LocationID int    `json:"location_id" binding:"required,min=1"`
	AdminID    string `json:"admin_id" binding:"omitempty,uuid"`
}

type UpdateShiftRequest struct {
	Profit  *decimal.Decimal `json:"profit"`
	AdminID *string          `json:"admin_id" binding:"omitempty,uuid"`
}

type AssignRequest struct {
	ShiftDate  string `json:"shift_date" binding:"required"`
	LocationID int    `json:"location_id" binding:"required,min=1"`
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

// EligibilityQuery asks whether an assignment would be clean before it is made.
type EligibilityQuery struct {
	ShiftDate  string `form:"shift_date" binding:"required"`
	LocationID int    `form:"location_id" binding:"required,min=1"`
	EmployeeID string `form:"employee_id" binding:"required,uuid"`
	RoleID     int    `form:"role_id" binding:"required,min=1"`
}

type UnassignRequest struct {
	ShiftDate  string `json:"shift_date" binding:"required"`
	LocationID int    `json:"location_id" binding:"required,min=1"`
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type ShiftResponse struct {
	ShiftDate  string           `json:"shift_date"`
	LocationID int              `json:"location_id"`
	AdminID    string           `json:"admin_id,omitempty"`
	Profit     *decimal.Decimal `json:"profit"`
	StartedAt  string           `json:"started_at"`
	UpdatedAt  string           `json:"updated_at,omitempty"`
}

type EmployeeScheduleResponse struct {
	ShiftDate  string `json:"shift_date"`
	LocationID int    `json:"location_id"`
	EmployeeID string `json:"employee_id"`
	CreatedAt  string `json:"created_at"`
}

type UnassignResponse struct {
	Removed    bool                      `json:"removed"`
	Assignment *EmployeeScheduleResponse `json:"assignment"`
}

type StaffRoleResponse struct {
	Name string `json:"name"`
}

type StaffResponse struct {
	UUID       string            `json:"uuid"`
	FullName   string            `json:"full_name"`
	RoleID     int               `json:"role_id"`
	LocationID int               `json:"location_id"`
	IsFeatured bool              `json:"is_featured"`
	Role       StaffRoleResponse `json:"role"`
}

// DayValidation is the server-side validation of one date that has assignments.
type DayValidation struct {
	Date                   string       `json:"date"`
	Assignments            []Assignment `json:"assignments"`
	IsComplete             bool         `json:"isComplete"`
	MissingRoles           []int        `json:"missingRoles"`
	Conflicts              []Conflict   `json:"conflicts"`
	CompletenessPercentage int          `json:"completenessPercentage"`
}
