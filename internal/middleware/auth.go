package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Nhongkham198/SGdelivery/internal/auth"
)

// AuthMiddleware validates the bearer token and attaches the owner identity
// to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		ownerID, email, role, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
			c.Abort()
			return
		}

		c.Set("ownerID", ownerID)
		c.Set("ownerEmail", email)
		c.Set("ownerRole", role)
		c.Next()
	}
}

// RequireOwner guards owner-only routes; run after AuthMiddleware.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("ownerRole") != auth.RoleOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "owner access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
