package employee

import (
	"go-resto/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	stack middleware.Stack,
) {
	employees := r.Group("/employees")
	employees.Use(stack.Protected()...)
	{
		employees.GET("/profile", stack.ReadLimit(), handler.GetProfile)
		employees.PATCH("/profile", stack.WriteLimit(), handler.UpdateProfile)

		employees.GET("", stack.ReadLimit(), handler.List)
		employees.GET("/:id", stack.ReadLimit(), handler.GetByID)

		employees.POST("",
			stack.WriteLimit(),
			middleware.RBACAuthorize(rbacService, "employee", "manage"),
			handler.Create,
		)
		employees.PATCH("/:id",
			stack.WriteLimit(),
			middleware.RBACAuthorize(rbacService, "employee", "manage"),
			handler.Update,
		)
		employees.PATCH("/:id/fire",
			stack.WriteLimit(),
			middleware.RBACAuthorize(rbacService, "employee", "manage"),
			handler.Fire,
		)
	}
}
