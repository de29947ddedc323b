package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is enforced at registration and password reset.
const MinPasswordLength = 6

// HashPassword creates a bcrypt hash of the password. bcrypt embeds a
// per-password random salt in the hash itself.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a password against its stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
