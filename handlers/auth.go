package handlers

import (
	"errors"
	"net/http"

	"tablebook/middleware"
	"tablebook/services/auth"
	"tablebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the login/logout/check-auth endpoints.
type AuthHandler struct {
	Sessions auth.SessionService
	Logger   *zap.Logger
}

func NewAuthHandler(sessions auth.SessionService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Sessions: sessions, Logger: logger}
}

// LoginHandler verifies the credential pair and establishes the session
// cookie on success.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	result, err := h.Sessions.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		var authErr *auth.AuthenticationError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		h.Logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.SetCookie(utils.SessionCookieName, result.Token, int(result.TTL.Seconds()), "/", "", utils.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    gin.H{"username": result.Session.Username},
	})
}

// LogoutHandler destroys the session. It runs behind the session gate, so
// the session ID is already on the context.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	sessionID := c.GetString(middleware.CtxSessionID)
	if err := h.Sessions.Logout(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging out"})
		return
	}
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", utils.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// CheckAuthHandler reports whether the calling session holds the logged-in
// flag. The endpoint is open: its 401 is the negative answer, not a gate.
func (h *AuthHandler) CheckAuthHandler(c *gin.Context) {
	token, err := c.Cookie(utils.SessionCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false, "message": "User not logged in."})
		return
	}
	sessionID, err := utils.ExtractSessionID(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false, "message": "User not logged in."})
		return
	}

	session, err := h.Sessions.CheckAuth(c.Request.Context(), sessionID)
	if err != nil {
		var authzErr *auth.AuthorizationError
		if errors.As(err, &authzErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false, "message": "User not logged in."})
			return
		}
		h.Logger.Error("Check-auth failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          gin.H{"username": session.Username},
	})
}
