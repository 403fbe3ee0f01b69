package models

import "time"

// Session is the server-side record that a session ID is authenticated.
type Session struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session has passed its expiry time.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
