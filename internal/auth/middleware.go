package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextKeyUserID is the Gin context key holding the authenticated user's ID.
const ContextKeyUserID = "auth_user_id"

// RequireUser gates a route group on session presence. When no user id is
// in the session the request is redirected to the landing page before any
// handler logic runs; otherwise the id is stored in the Gin context for
// handlers to read via GetUserID.
func (sm *SessionManager) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := sm.GetUserID(c.Request)
		if userID == 0 {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID from the Gin context.
// Returns 0 if the request is not authenticated.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}
