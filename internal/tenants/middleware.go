package tenants

import (
	"leadscore_backend/platform/logger"
	"strings"

	"leadscore_backend/internal/tenants/service"
	"leadscore_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// APIKeyAuth authenticates requests using a tenant API key supplied either in
// the X-API-Key header or as an Authorization bearer token. On success the
// tenant and key ids are stored on the request context.
func APIKeyAuth(svc *service.Service, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		plaintext := c.GetHeader("X-API-Key")
		if plaintext == "" {
			auth := c.GetHeader("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				plaintext = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if plaintext == "" {
			httpkit.Error(c, 401, "missing API key", nil)
			c.Abort()
			return
		}

		key, err := svc.Authenticate(c.Request.Context(), plaintext)
		if err != nil {
			log.Warn("API key authentication failed",
				"remote_addr", c.ClientIP(),
				"path", c.Request.URL.Path,
			)
			httpkit.Error(c, 401, "invalid API key", nil)
			c.Abort()
			return
		}

		c.Set(httpkit.ContextTenantIDKey, key.TenantID)
		c.Set(httpkit.ContextAPIKeyIDKey, key.ID)
		c.Next()
	}
}

// AdminAuth guards bootstrap endpoints with a shared admin secret passed in
// the X-Admin-Secret header.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" || c.GetHeader("X-Admin-Secret") != secret {
			httpkit.Error(c, 401, "invalid admin secret", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
