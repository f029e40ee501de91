package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenHeader carries the shared-secret API token on every request.
const TokenHeader = "X-Token"

// RequireToken checks the token header by exact match against the configured
// shared secret. An empty configured secret means the server never loaded it,
// which is a server fault, not the client's.
func RequireToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server misconfigured: API_TOKEN not set"})
			return
		}
		if c.GetHeader(TokenHeader) != token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API token"})
			return
		}
		c.Next()
	}
}
