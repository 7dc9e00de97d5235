package ingredient

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
	ingredients := r.Group("/ingredients")
	ingredients.Use(stack.Protected()...)
	{
		ingredients.GET("", stack.ReadLimit(), h.List)
		ingredients.GET("/:id", stack.ReadLimit(), h.GetByID)
		ingredients.POST("", stack.WriteLimit(), middleware.RBACAuthorize(rbacService, "ingredient", "manage"), h.Create)
		ingredients.PUT("/:id", stack.WriteLimit(), middleware.RBACAuthorize(rbacService, "ingredient", "manage"), h.Update)
		ingredients.DELETE("/:id", stack.WriteLimit(), middleware.RBACAuthorize(rbacService, "ingredient", "manage"), h.Delete)
	}
}
