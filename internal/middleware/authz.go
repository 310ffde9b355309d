package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chronos/internal/authz"
	"chronos/internal/models"
	"chronos/internal/state"
)

// RequirePermission resolves the acting operator from the snapshot and
// checks one capability flag. Enforcement is advisory: this is a
// single-operator dashboard with no second trust boundary behind it.
func RequirePermission(container *state.Container, check func(models.Permission) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := container.Snapshot()
		user := st.UserByID(st.CurrentUserID)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no current user"})
			return
		}
		if user.Suspended {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "user suspended"})
			return
		}
		if !check(authz.Effective(st.Settings, user.Role)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Set("user_id", user.ID)
		c.Set("role", string(user.Role))
		c.Next()
	}
}
