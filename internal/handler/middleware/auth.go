package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"stock-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	headerUserID     = "X-User-ID"
	headerSessionID  = "X-Session-ID"
	headerAdminToken = "X-Admin-Token"
)

type AdminAuthMiddleware struct {
	token string
}

func NewAdminAuthMiddleware(cfg config.ServerConfig) *AdminAuthMiddleware {
	if cfg.AdminToken == "" {
		slog.Warn("ADMIN_TOKEN is empty, admin routes are unauthenticated")
	}
	return &AdminAuthMiddleware{token: cfg.AdminToken}
}

func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.token == "" {
			c.Next()
			return
		}

		given := c.GetHeader(headerAdminToken)
		if subtle.ConstantTimeCompare([]byte(given), []byte(m.token)) != 1 {
			slog.Warn("admin token rejected", "path", c.Request.URL.Path, "client_ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Unauthorized"},
			})
			return
		}

		c.Next()
	}
}
