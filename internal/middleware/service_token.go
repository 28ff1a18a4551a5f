package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/serenespa/booking-api/internal/config"
)

// ServiceTokenMiddleware guards the notification endpoints: only the
// booking flow (or another trusted backend) holding the shared service
// token may trigger dispatches or send email.
func ServiceTokenMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(cfg.ServiceToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_service_token"})
			return
		}

		c.Next()
	}
}
