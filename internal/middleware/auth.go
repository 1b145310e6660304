package middleware

import (
	"net/http"
	"strings"

	jwtsvc "foodgram/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Auth requires a valid Bearer token and sets user_id on the context.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, jwt)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid or missing token",
				},
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// OptionalAuth sets user_id when a valid token is present but lets anonymous
// requests through. Read endpoints use it so per-user flags and flag filters
// work for authenticated readers.
func OptionalAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseToken(c, jwt); ok {
			c.Set("user_id", claims.UserID)
		}
		c.Next()
	}
}

func parseToken(c *gin.Context, jwt *jwtsvc.Service) (*jwtsvc.Claims, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return nil, false
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tokenStr == "" {
		return nil, false
	}

	claims, err := jwt.ValidateToken(tokenStr)
	if err != nil {
		return nil, false
	}
	return claims, true
}
