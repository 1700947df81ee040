package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for operator passwords.
const Cost = 12

// Hash returns the bcrypt hash to store in ADMIN_PASSWORD_HASH.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches hash. A malformed or empty hash never matches.
func Verify(plain, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
