package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "github.com/ThomasZeryouh/gite-location-ellezelles/internal/pkg/jwt"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/pkg/response"
)

// ExtractToken finds the candidate admin token on a request. The cookie
// wins over the Authorization header when both are present, so the rule
// stays deterministic for browser and API clients alike.
func ExtractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil {
		if v := strings.TrimSpace(cookie); v != "" {
			return v
		}
	}

	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// RequireToken gates mutating API endpoints. Requests without a valid
// token are rejected with 401 before the handler runs; valid claims are
// placed in the gin context for downstream role checks.
func RequireToken(jwt *jwtsvc.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ExtractToken(c, cookieName)
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireTokenOrRedirect gates admin pages. Browsers without a valid
// token are sent to the login page instead of getting a JSON error.
func RequireTokenOrRedirect(jwt *jwtsvc.Service, cookieName, loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ExtractToken(c, cookieName)
		if tokenStr == "" {
			c.Redirect(http.StatusFound, loginURL)
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.Redirect(http.StatusFound, loginURL)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}
