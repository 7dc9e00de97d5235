package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shift is keyed by date alone; one shift row covers every location that day.
type Shift struct {
	ShiftDate  time.Time        `gorm:"column:shift_Date;type:date;primaryKey"`
	LocationID int              `gorm:"column:location_id"`
	AdminID    *uuid.UUID       `gorm:"column:admin_id;type:uuid"`
	Profit     *decimal.Decimal `gorm:"column:profit;type:numeric"`
	StartedAt  time.Time        `gorm:"column:started_at"`
	UpdatedAt  *time.Time       `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (Shift) TableName() string { return "shifts" }

type EmployeeSchedule struct {
	ShiftDate  time.Time `gorm:"column:shift_date;type:date;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey"`
	LocationID int       `gorm:"column:location_id"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (EmployeeSchedule) TableName() string { return "employees_schedule" }

// AssignmentRow is an employees_schedule row joined with the employee's current role.
type AssignmentRow struct {
	ShiftDate  time.Time `gorm:"column:shift_date"`
	LocationID int       `gorm:"column:location_id"`
	EmployeeID uuid.UUID `gorm:"column:employee_id"`
	RoleID     int       `gorm:"column:role_id"`
}

type StaffRow struct {
	UUID       uuid.UUID `gorm:"column:uuid"`
	FullName   string    `gorm:"column:full_name"`
	RoleID     int       `gorm:"column:role_id"`
	RoleName   string    `gorm:"column:role_name"`
	LocationID int       `gorm:"column:location_id"`
	IsFeatured bool      `gorm:"column:is_featured"`
}

type RoleRow struct {
	ID   int    `gorm:"column:id"`
	Name string `gorm:"column:name"`
}
