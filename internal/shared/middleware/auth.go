package middleware

import (
	"strings"

	"blog-backend/internal/shared/response"
	"blog-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware and read by handlers and the
// permission gate.
const (
	CtxAdminID = "adminID"
	CtxRole    = "role"
)

// AuthMiddleware verifies the bearer credential and resolves the subject
// into the request context. Every privileged route composes this in front.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Not authorized to access this route")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Not authorized to access this route")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Not authorized to access this route")
			c.Abort()
			return
		}

		c.Set(CtxAdminID, claims.AdminID)
		c.Set(CtxRole, claims.Role)

		c.Next()
	}
}

// AdminID returns the authenticated subject id from the context.
func AdminID(c *gin.Context) string {
	return c.GetString(CtxAdminID)
}
