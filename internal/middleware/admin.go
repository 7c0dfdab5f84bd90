// File: internal/middleware/admin.go
package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/auth"
)

// AdminOnly guards the admin surface. It accepts either a Bearer session
// token from /api/admin/login, or the legacy X-Admin-Email header compared
// against the configured admin address. The comparison lives here, at the
// API boundary, not inline in handlers.
func AdminOnly(adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "Invalid token format, must be a Bearer token"})
				return
			}

			email, err := auth.ParseAdminToken(tokenString)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "Invalid or expired token"})
				return
			}

			c.Set("adminEmail", email)
			c.Next()
			return
		}

		// Legacy fallback used by the original admin dialog.
		if legacy := c.GetHeader("X-Admin-Email"); legacy != "" {
			if strings.EqualFold(strings.TrimSpace(legacy), strings.TrimSpace(adminEmail)) {
				c.Set("adminEmail", adminEmail)
				c.Next()
				return
			}
			log.Printf("WARN: Admin access denied for email header %q", legacy)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "message": "Access denied. You are not an admin."})
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "Authorization is required"})
	}
}
