// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the cart session id
const SessionCookieName = "storefront_session"

// sessionKey is the gin context key the session id is stored under
const sessionKey = "session_id"

// Session assigns each browser a stable session id used as the cart
// key. A missing or empty cookie gets a fresh UUID with the cookie
// lifetime matching the cart TTL.
func Session(ttlSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookieName, sessionID, ttlSeconds, "/", "", false, true)
		}

		c.Set(sessionKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session id attached to the request
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
