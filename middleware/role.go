package middleware

import (
	"net/http"

	"stayhaven/utils"

	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects requests whose authenticated actor is not an admin.
// It must run after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Error: "authentication required",
			})
			return
		}
		if !actor.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{
				Error: "admin access required",
			})
			return
		}
		c.Next()
	}
}
