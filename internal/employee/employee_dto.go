package employee

type ListFilter struct {
	Query    string
	Page     int
	PageSize int
}

type CreateEmployeeRequest struct {
	FullName   string `json:"full_name" binding:"required,min=2,max=100"`
	Age        *int   `json:"age" binding:"omitempty,min=16,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6,max=72"`
	IsFeatured bool   `json:"is_featured"`
	RoleID     int    `json:"role_id" binding:"required,min=1"`
	LocationID int    `json:"location_id" binding:"required,min=1"`
}

// UpdateEmployeeRequest is a partial update; nil fields are left alone.
type UpdateEmployeeRequest struct {
	FullName   *string `json:"full_name" binding:"omitempty,min=2,max=100"`
	Age        *int    `json:"age" binding:"omitempty,min=16,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Password   *string `json:"password" binding:"omitempty,min=6,max=72"`
	IsFeatured *bool   `json:"is_featured"`
	RoleID     *int    `json:"role_id" binding:"omitempty,min=1"`
	LocationID *int    `json:"location_id" binding:"omitempty,min=1"`
}

func (r UpdateEmployeeRequest) empty() bool {
	return r.FullName == nil && r.Age == nil && r.Email == nil && r.Password == nil &&
		r.IsFeatured == nil && r.RoleID == nil && r.LocationID == nil
}

type EmployeeResponse struct {
	ID         int     `json:"id"`
	UUID       string  `json:"uuid"`
	FullName   string  `json:"full_name"`
	Age        *int    `json:"age,omitempty"`
	Email      string  `json:"email"`
	IsFeatured bool    `json:"is_featured"`
	RoleID     int     `json:"role_id"`
	LocationID int     `json:"location_id"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  *string `json:"updated_at,omitempty"`
}

// UpdateProfileRequest is what a caller may change on their own row.
// Role, location and roster status stay with managers.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=2,max=100"`
	Age      *int    `json:"age" binding:"omitempty,min=16,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
}

func (r UpdateProfileRequest) empty() bool {
	return r.asUpdate().empty()
}

func (r UpdateProfileRequest) asUpdate() UpdateEmployeeRequest {
	return UpdateEmployeeRequest{
		FullName: r.FullName,
		Age:      r.Age,
		Email:    r.Email,
		Password: r.Password,
	}
}
