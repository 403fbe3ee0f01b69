package auth

import (
	"context"
	"time"

	"tablebook/models"
	"tablebook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoginResult carries what the handler needs to establish the cookie.
type LoginResult struct {
	SessionID string
	Token     string
	Session   models.Session
	TTL       time.Duration
}

// SessionService drives the Anonymous -> Authenticated -> Anonymous session
// state machine.
type SessionService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	CheckAuth(ctx context.Context, sessionID string) (*models.Session, error)
}

// DefaultSessionService is the concrete implementation.
type DefaultSessionService struct {
	Verifier CredentialVerifier
	Store    SessionStore
	TTL      time.Duration
}

// Login verifies the credential pair and, on success, establishes a
// server-side session with a fresh ID plus a signed cookie token carrying it.
func (s *DefaultSessionService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if !s.Verifier.Verify(username, password) {
		return nil, &AuthenticationError{}
	}

	now := time.Now()
	session := models.Session{
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.TTL),
	}
	sessionID := uuid.New().String()
	if err := s.Store.Save(ctx, sessionID, session, s.TTL); err != nil {
		utils.GetLogger().Error("Failed to save session", zap.Error(err))
		return nil, &SessionStoreError{Op: "save session", Err: err}
	}

	token, err := utils.GenerateSessionToken(sessionID, s.TTL)
	if err != nil {
		// Roll back the flag so no orphaned session lingers.
		_ = s.Store.Delete(ctx, sessionID)
		return nil, &SessionStoreError{Op: "sign session token", Err: err}
	}

	return &LoginResult{SessionID: sessionID, Token: token, Session: session, TTL: s.TTL}, nil
}

// Logout destroys the session; a store failure surfaces as a server error.
func (s *DefaultSessionService) Logout(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Error("Failed to destroy session", zap.Error(err))
		return &SessionStoreError{Op: "destroy session", Err: err}
	}
	return nil
}

// CheckAuth reports whether the session currently holds the logged-in flag.
// A missing or expired session yields an AuthorizationError.
func (s *DefaultSessionService) CheckAuth(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, &AuthorizationError{}
	}
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		utils.GetLogger().Error("Failed to look up session", zap.Error(err))
		return nil, &SessionStoreError{Op: "lookup session", Err: err}
	}
	if session == nil {
		return nil, &AuthorizationError{}
	}
	return session, nil
}
