package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/saizgar/website-backend/internal/platform/logger"
)

// AuthMiddleware guards the admin surface with a static bearer token. The
// token is operator-provisioned; an empty token disables the admin routes
// entirely rather than leaving them open.
type AuthMiddleware struct {
	log        *logger.Logger
	adminToken string
}

func NewAuthMiddleware(log *logger.Logger, adminToken string) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, adminToken: strings.TrimSpace(adminToken)}
}

func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if am.adminToken == "" {
			am.log.Warn("Admin token not configured, rejecting admin request", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access disabled"})
			return
		}
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(am.adminToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
