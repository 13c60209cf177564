package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// IngestActorID is the actor recorded for entries written by the ingestion pipeline.
const IngestActorID = "system:email-ingest"

// APIKeyAuth authenticates machine callers by comparing the x-api-key header
// against a bcrypt hash. An empty hash disables the route.
func APIKeyAuth(keyHash, actorID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if keyHash == "" {
			logger.Warn("API key route called but no key hash is configured")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Ingestion is not enabled"})
			return
		}

		apiKey := c.GetHeader("x-api-key")
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "x-api-key header required"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(apiKey)); err != nil {
			logger.Warn("Invalid API key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		setAuthenticatedUser(c, actorID, AuthMethodAPIKey)
		c.Next()
	}
}
