package middleware

import (
	"net/http"

	"go-resto/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

var ErrInvalidUserID = apperror.New("INVALID_USER_ID", "Invalid user id format", http.StatusUnauthorized)

// ExtractUserID re-stores the authenticated id as a typed string under
// "user_id_validated" for the middleware that runs after it.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			abortWith(c, ErrInvalidUserID)
			return
		}

		c.Set("user_id_validated", userIDStr)
		c.Next()
	}
}
