package rbac

type CheckRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type MeResponse struct {
	Role        string          `json:"role"`
	IsAdmin     bool            `json:"is_admin"`
	Permissions map[string]bool `json:"permissions"`
}
