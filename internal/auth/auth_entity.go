package auth

// Credential is the login view of an employee row joined with its role.
type Credential struct {
	EmployeeID     string `gorm:"column:uuid"`
	FullName       string `gorm:"column:full_name"`
	Email          string `gorm:"column:email"`
	PasswordHashed string `gorm:"column:password_hashed"`
	IsFeatured     bool   `gorm:"column:is_featured"`
	RoleID         int    `gorm:"column:role_id"`
	RoleName       string `gorm:"column:role_name"`
}
