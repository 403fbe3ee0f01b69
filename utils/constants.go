// File: utils/constants.go
package utils

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "tablebook_session"

// SessionKeyPrefix is the prefix used for Redis session keys.
const SessionKeyPrefix = "session:"
