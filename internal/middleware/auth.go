package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"syncnotes/pkg/response"
)

const HeaderAPIKey = "X-API-Key"

// APIKey rejects requests whose X-API-Key does not match the configured key.
// It is a no-op when no key is configured.
func (m Middleware) APIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		got := c.GetHeader(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.apiKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.APIKey: rejected request from %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}

		c.Next()
	}
}
