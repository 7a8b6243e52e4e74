package middleware

import (
	"net/http"

	"jobportal/internal/logger"
	"jobportal/internal/models"
	"jobportal/internal/session"

	"github.com/gin-gonic/gin"
)

// Context keys set by the session middleware.
const (
	ContextUsernameKey = "username"
	ContextRoleKey     = "role"
)

// SessionInfo populates the session identity in the gin context when a valid
// session cookie is present. It never blocks; routes that tolerate missing
// sessions (the inline admin checks) rely on this.
func SessionInfo(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := sessions.Current(c); err == nil {
			c.Set(ContextUsernameKey, claims.Username)
			c.Set(ContextRoleKey, claims.Role)
			c.Request = c.Request.WithContext(logger.WithUsername(c.Request.Context(), claims.Username))
		}
		c.Next()
	}
}

// LoginRequired guards a route: without a session it flashes and redirects to
// the login page, mirroring the login_required behavior of the portal.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUsername(c) == "" {
			session.Flash(c, "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUsername returns the session username, or "" when not logged in.
func CurrentUsername(c *gin.Context) string {
	if v, ok := c.Get(ContextUsernameKey); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

// CurrentRole returns the session role, or "" when not logged in.
func CurrentRole(c *gin.Context) models.UserRole {
	if v, ok := c.Get(ContextRoleKey); ok {
		if role, ok := v.(models.UserRole); ok {
			return role
		}
	}
	return ""
}
