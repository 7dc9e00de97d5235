package rbac

import (
	"go-resto/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, stack middleware.Stack) {
	group := r.Group("/rbac")
	group.Use(stack.Protected()...)
	{
		group.GET("/me", stack.ReadLimit(), handler.Me)
		group.GET("/permissions", stack.ReadLimit(), handler.ListPermissions)
		group.POST("/enforce", stack.ReadLimit(), handler.Enforce)
	}
}
