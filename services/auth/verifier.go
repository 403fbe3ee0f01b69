package auth

import (
	"crypto/subtle"

	"tablebook/config"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a username/password pair. Implementations must
// not reveal which part of the pair failed.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticVerifier compares against one configured plaintext pair. It exists
// for parity with the original fixed admin login and for tests.
type StaticVerifier struct {
	Username string
	Password string
}

func (v *StaticVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.Password)) == 1
	return userOK && passOK
}

// BcryptVerifier compares against a configured bcrypt hash.
type BcryptVerifier struct {
	Username     string
	PasswordHash string
}

func (v *BcryptVerifier) Verify(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(v.PasswordHash), []byte(password)) == nil
}

// VerifierFromConfig picks the bcrypt verifier when a password hash is
// configured, the static plaintext pair otherwise.
func VerifierFromConfig() CredentialVerifier {
	if config.AppConfig.AdminPasswordHash != "" {
		return &BcryptVerifier{
			Username:     config.AppConfig.AdminUsername,
			PasswordHash: config.AppConfig.AdminPasswordHash,
		}
	}
	return &StaticVerifier{
		Username: config.AppConfig.AdminUsername,
		Password: config.AppConfig.AdminPassword,
	}
}
