// middlewares/session_middleware.go
package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie is the cookie carrying the owner token.
	SessionCookie = "sessionId"
	// SessionMaxAge is the client-side lifetime of the cookie in seconds (7 days).
	SessionMaxAge = 7 * 24 * 60 * 60

	ctxSessionKey = "sessionID"
)

// SessionMiddleware rejects requests without a session cookie and exposes the
// token to handlers. The token is used verbatim; there is no server-side
// session store to check it against.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session required"})
			return
		}

		c.Set(ctxSessionKey, token)
		c.Next()
	}
}

// SessionFromCtx returns the owner token stashed by SessionMiddleware.
func SessionFromCtx(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok && token != ""
}
