package auth

// AuthenticationError reports a failed credential check. The message is
// deliberately generic so nothing about the configured pair leaks.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "invalid credentials"
}

// AuthorizationError reports a request without a valid logged-in session.
type AuthorizationError struct{}

func (e *AuthorizationError) Error() string {
	return "no valid session"
}

// SessionStoreError wraps a session store failure, distinct from a plain
// missing session.
type SessionStoreError struct {
	Op  string
	Err error
}

func (e *SessionStoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *SessionStoreError) Unwrap() error {
	return e.Err
}
