package middleware

import (
	"errors"
	"net/http"

	"tablebook/services/auth"
	"tablebook/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by SessionAuthMiddleware for downstream handlers.
const (
	CtxSessionID = "sessionID"
	CtxUsername  = "username"
)

// SessionAuthMiddleware gates an endpoint behind a logged-in session. The
// cookie carries a signed token wrapping the session ID; the server-side
// flag in the session store is authoritative.
func SessionAuthMiddleware(sessions auth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := sessionIDFromCookie(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized. Please log in."})
			return
		}

		session, err := sessions.CheckAuth(c.Request.Context(), sessionID)
		if err != nil {
			var authzErr *auth.AuthorizationError
			if errors.As(err, &authzErr) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized. Please log in."})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}

		c.Set(CtxSessionID, sessionID)
		c.Set(CtxUsername, session.Username)
		c.Next()
	}
}

// sessionIDFromCookie extracts and validates the session ID from the request
// cookie. A missing cookie or a token that fails validation both read as an
// anonymous request.
func sessionIDFromCookie(c *gin.Context) (string, bool) {
	token, err := c.Cookie(utils.SessionCookieName)
	if err != nil || token == "" {
		return "", false
	}
	sessionID, err := utils.ExtractSessionID(token)
	if err != nil || sessionID == "" {
		return "", false
	}
	return sessionID, true
}
