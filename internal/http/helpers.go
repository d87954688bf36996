package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookclub/internal/auth"
)

// GetUserID extracts the authenticated user's ID from the Gin context.
// Protected routes always have it set by the session gate.
func GetUserID(c *gin.Context) uint {
	return auth.GetUserID(c)
}

// Flasher carries one-shot notices between a redirect and the next
// rendered page. Implemented by auth.SessionManager in production.
type Flasher interface {
	AddFlash(r *http.Request, severity, message string)
	PopFlashes(r *http.Request) []auth.Flash
}

// parseIDParam extracts an unsigned integer ID from URL parameters.
// A malformed ID is treated like an unknown one: not-found page.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		renderNotFound(c)
		return 0, false
	}
	return uint(id), true
}

// renderNotFound shows the not-found page. Unknown book ids get an
// explicit 404 rather than an unhandled error.
func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
	c.Abort()
}

// respondInternalError logs the error and sends a 500 response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.String(http.StatusInternalServerError, "internal server error")
	c.Abort()
}

// redirectBack sends the user to the page they came from, falling back
// to the given path when no referrer is known.
func redirectBack(c *gin.Context, fallback string) {
	target := c.Request.Referer()
	if target == "" {
		target = fallback
	}
	c.Redirect(http.StatusFound, target)
}
