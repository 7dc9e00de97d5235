package dish

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
	dishes := r.Group("/dishes")
	dishes.Use(stack.Protected()...)
	{
		dishes.GET("", stack.ReadLimit(), h.List)
		dishes.GET("/categories", stack.ReadLimit(), h.Categories)
		dishes.GET("/:id", stack.ReadLimit(), h.GetByID)
		dishes.POST("", stack.WriteLimit(), middleware.RBACAuthorize(rbacService, "dish", "manage"), h.Create)
		dishes.PUT("/:id", stack.WriteLimit(), middleware.RBACAuthorize(rbacService, "dish", "manage"), h.Update)
		dishes.DELETE("/:id", stack.WriteLimit(), middleware.RBACAuthorize(rbacService, "dish", "manage"), h.Delete)
	}
}
