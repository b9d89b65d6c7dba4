package middleware

import (
	"github.com/dawar-shafaque/restaurant-application/session"

	"github.com/gin-gonic/gin"
)

// Context keys set by the session middleware.
const (
	ContextSession   = "session"
	ContextSessionID = "sessionID"
)

// SessionHeader carries the opaque session ID between browser and server.
const SessionHeader = "X-Session-ID"

// ResolveSession loads the session named by the request header, if any, and
// stores it in the request context. Public routes work fine without one;
// the guards below decide whether absence is fatal.
func ResolveSession(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			c.Next()
			return
		}
		sess, err := manager.Get(c.Request.Context(), id)
		if err != nil {
			// Expired or logged out; proceed unauthenticated.
			c.Next()
			return
		}
		c.Set(ContextSessionID, id)
		c.Set(ContextSession, *sess)
		c.Next()
	}
}

// SessionFrom extracts the resolved session, if present.
func SessionFrom(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

// SessionIDFrom extracts the resolved session ID, if present.
func SessionIDFrom(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextSessionID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
