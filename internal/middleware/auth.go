package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"chronos/internal/services"
)

// AdminSession guards the admin area. The token comes from the passcode
// challenge (POST /auth/admin); its signing key lives only in process
// memory, so every restart invalidates all admin sessions.
func AdminSession(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		if err := auth.ParseAdminToken(strings.TrimSpace(parts[1])); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired admin session"})
			return
		}
		c.Next()
	}
}
