package middleware

import (
	"crypto/subtle"

	"smap-engine/pkg/response"
	"smap-engine/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth returns a middleware that authenticates internal requests and sets the
// caller scope in context. The engine sits behind the platform gateway, which
// forwards the shared internal key plus the tenant and user it already
// authenticated.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Internal-Key")
		if key == "" {
			m.logger.Warnf(c.Request.Context(), "Missing X-Internal-Key header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.logger.Warnf(c.Request.Context(), "Invalid internal key | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tenantID := c.GetHeader("X-Tenant-Id")
		if tenantID == "" {
			m.logger.Warnf(c.Request.Context(), "Missing X-Tenant-Id header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload := scope.Payload{
			TenantID: tenantID,
			UserID:   c.GetHeader("X-User-Id"),
			Role:     c.GetHeader("X-User-Role"),
		}

		// Set payload in context for use in handlers
		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
