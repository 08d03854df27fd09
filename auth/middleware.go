package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminUserKey is the gin context key holding the authenticated admin
// username on protected routes.
const AdminUserKey = "admin_user"

// RequireAdmin guards a route with the admin credential set. It accepts
// HTTP Basic credentials or a Bearer paseto token from /api/login.
func RequireAdmin(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))

		if strings.HasPrefix(strings.ToLower(header), "bearer ") {
			token := strings.TrimSpace(header[len("bearer "):])
			if user, ok := v.CheckToken(token); ok {
				c.Set(AdminUserKey, user)
				c.Next()
				return
			}
		} else if user, pass, ok := c.Request.BasicAuth(); ok && v.Verify(user, pass) {
			c.Set(AdminUserKey, user)
			c.Next()
			return
		}

		c.Header("WWW-Authenticate", `Basic realm="Admin"`)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Unauthorized",
		})
	}
}
