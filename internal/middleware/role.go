package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/pkg/response"
)

// RequireRole rejects authenticated requests whose token carries any
// other role. It runs after the token gate, which is what puts the role
// claim into the context.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly restricts a route group to admin accounts, the only role
// the seed tool creates today.
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
