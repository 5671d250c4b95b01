package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trainingcentre/internal/infrastructure/security"
)

// AuthMiddleware validates the bearer session token and puts the session
// id on the context. It does not load the slot: a handler that needs the
// user still has to deal with an ended session.
func AuthMiddleware(tokens *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		sessionID, err := tokens.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("sessionId", sessionID)

		c.Next()
	}
}
