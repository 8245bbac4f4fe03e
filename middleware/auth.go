package middleware

import (
	"net/http"
	"strings"

	"stayhaven/models"
	"stayhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// actorKey is the gin context key the authenticated identity is stored under.
const actorKey = "actor"

// JWTAuthMiddleware validates the bearer token, rejects denylisted tokens and
// stores the acting identity in the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Error: "authentication required",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Error: "authentication required",
			})
			return
		}

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Error: "invalid or expired token",
			})
			return
		}

		revoked, err := utils.IsTokenRevoked(c.Request.Context(), utils.HashToken(tokenString))
		if err != nil {
			// Treat a denylist outage as a miss rather than locking everyone out.
			utils.GetLogger().Warn("token denylist unavailable", zap.Error(err))
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Error: "token has been revoked",
			})
			return
		}

		c.Set(actorKey, models.Actor{ID: claims.UserID, Role: claims.Role})
		c.Set("token", tokenString)
		c.Next()
	}
}

// CurrentActor returns the identity stored by JWTAuthMiddleware.
func CurrentActor(c *gin.Context) (models.Actor, bool) {
	val, exists := c.Get(actorKey)
	if !exists {
		return models.Actor{}, false
	}
	actor, ok := val.(models.Actor)
	return actor, ok
}

// CurrentToken returns the raw bearer token stored by JWTAuthMiddleware.
func CurrentToken(c *gin.Context) string {
	return c.GetString("token")
}
