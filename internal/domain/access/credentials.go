package access

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials is the single shared admin login. When PasswordHash is set
// it takes precedence over Password and must be a bcrypt hash.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// Authenticator checks login attempts against credentials captured at
// construction; they cannot change afterwards.
type Authenticator struct {
	creds Credentials
}

func NewAuthenticator(creds Credentials) *Authenticator {
	return &Authenticator{creds: creds}
}

// Authenticate reports whether both fields match exactly. It never tells
// the caller which of the two was wrong.
func (a *Authenticator) Authenticate(login, password string) bool {
	if a.creds.Username == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(login), []byte(a.creds.Username)) == 1

	var passOK bool
	if a.creds.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(a.creds.PasswordHash), []byte(password)) == nil
	} else {
		passOK = a.creds.Password != "" &&
			subtle.ConstantTimeCompare([]byte(password), []byte(a.creds.Password)) == 1
	}
	return userOK && passOK
}
