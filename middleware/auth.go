package middleware

import (
	"net/http"
	"strings"

	"github.com/singhAyush18/progress-tracker/helpers"

	"github.com/gin-gonic/gin"
)

func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie("token"); err == nil && token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// Authenticate rejects requests without a valid token and stores the
// claims on the context for handlers.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token, authorization denied"})
			return
		}
		claims, err := helpers.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is not valid"})
			return
		}
		c.Set("claims", claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present and lets the
// request through either way.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenFromRequest(c); token != "" {
			if claims, err := helpers.ValidateToken(token); err == nil {
				c.Set("claims", claims)
			}
		}
		c.Next()
	}
}
