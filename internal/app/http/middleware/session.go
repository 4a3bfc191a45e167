package middleware

import (
	"strings"

	"artist-site/internal/domain/access"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session"

const sessionKey = "session"

// Session attaches the caller's session token to the request. An explicit
// "Authorization: Bearer <token>" header wins so a stale browser cookie
// cannot shadow it; otherwise the cookie set at login is used.
// Nothing is verified here, the admin surface does that.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}
		if token == "" {
			token, _ = c.Cookie(SessionCookie)
		}
		c.Set(sessionKey, access.Session{Token: token})
		c.Next()
	}
}

// SessionFrom returns the session context attached by Session, or the
// anonymous session.
func SessionFrom(c *gin.Context) access.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(access.Session); ok {
			return sess
		}
	}
	return access.Session{}
}
