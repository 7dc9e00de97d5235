package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a row of employees. UUID is the auth subject and the key
// schedule rows reference.
type Employee struct {
	ID             int       `gorm:"primaryKey"`
	UUID           uuid.UUID `gorm:"column:uuid;type:uuid;uniqueIndex"`
	FullName       string
	Age            *int
	Email          string `gorm:"uniqueIndex:uq_employees_email"`
	PasswordHashed string `gorm:"column:password_hashed"`
	IsFeatured     bool
	RoleID         int
	LocationID     int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

func (Employee) TableName() string {
	return "employees"
}
