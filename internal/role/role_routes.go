package role

import (
	"go-resto/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	stack middleware.Stack,
) {
	roles := r.Group("/roles")
	roles.Use(stack.Protected()...)
	{
		roles.GET("", stack.ReadLimit(), h.GetAll)
		roles.GET("/:id", stack.ReadLimit(), h.GetByID)
		roles.POST("", stack.WriteLimit(), middleware.RBACAuthorize(rbacService, "role", "manage"), h.Create)
		roles.PATCH("/:id", stack.WriteLimit(), middleware.RBACAuthorize(rbacService, "role", "manage"), h.Update)
	}
}
