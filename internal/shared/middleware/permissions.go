package middleware

import (
	"blog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Permission names a privileged operation. The role sets allowed for each
// operation live in one table instead of being scattered through handlers.
type Permission string

const (
	PermBlogRead    Permission = "blog:read"
	PermBlogWrite   Permission = "blog:write"
	PermBlogPublish Permission = "blog:publish"
	PermBlogDelete  Permission = "blog:delete"
)

var allowedRoles = map[Permission][]string{
	PermBlogRead:    {"admin", "editor"},
	PermBlogWrite:   {"admin", "editor"},
	PermBlogPublish: {"admin"},
	PermBlogDelete:  {"admin"},
}

// Authorize enforces the permission table against the role resolved by
// AuthMiddleware. Must run after it.
func Authorize(perm Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)

		for _, allowed := range allowedRoles[perm] {
			if role == allowed {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Role '"+role+"' is not authorized to access this route")
		c.Abort()
	}
}
