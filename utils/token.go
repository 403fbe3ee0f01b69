package utils

import (
	"errors"
	"time"

	"tablebook/config"

	"github.com/golang-jwt/jwt"
)

func sessionSecret() []byte {
	return []byte(config.AppConfig.SessionSecret)
}

// GenerateSessionToken creates a signed token carrying the session ID.
// The token expires after the specified duration, matching the server-side
// session TTL. The session flag in Redis stays authoritative; the token only
// gives the cookie integrity.
func GenerateSessionToken(sessionID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret())
}

// ValidateSessionToken parses and validates a token string and returns the token if valid.
func ValidateSessionToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return sessionSecret(), nil
	})
}

// ExtractSessionID extracts the session ID from a valid token string.
func ExtractSessionID(tokenString string) (string, error) {
	token, err := ValidateSessionToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("token does not contain a valid 'sid' claim")
	}

	return sid, nil
}
