package handlers

import (
	"net/http"
	"time"

	"daily_companion/internal/metrics"
	"daily_companion/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxIdentityKey = "identity"

// requireAuth gates every todo/journal/report route behind the session.
// No session means a redirect to the login page, not an error.
func (h *Handler) requireAuth(c *gin.Context) {
	ident, ok := h.sessions.Current(c.Request)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Set(ctxIdentityKey, ident)
	c.Next()
}

// identity returns the authenticated identity placed by requireAuth.
func identity(c *gin.Context) session.Identity {
	v, _ := c.Get(ctxIdentityKey)
	ident, _ := v.(session.Identity)
	return ident
}

func sessionIdentity(userID int, name string) session.Identity {
	return session.Identity{UserID: userID, Name: name}
}

// observe logs each request with a request id and records metrics. The
// route pattern, not the raw URL, is used as the metrics label to keep
// cardinality bounded.
func (h *Handler) observe(c *gin.Context) {
	start := time.Now()
	reqID := uuid.NewString()

	c.Next()

	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	if path == "/metrics" {
		return
	}

	dur := time.Since(start)
	metrics.RecordRequest(c.Request.Method, path, c.Writer.Status(), dur.Seconds())

	if h.log != nil {
		h.log.Infow("request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", dur.Milliseconds(),
			"size", c.Writer.Size(),
		)
	}
}
