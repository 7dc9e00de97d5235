package restaurant

import (
	"go-resto/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, stack middleware.Stack) {
	restaurants := r.Group("/restaurants")
	restaurants.Use(stack.Protected()...)
	restaurants.GET("", stack.ReadLimit(), h.List)
}
