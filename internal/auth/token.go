package auth

import "github.com/google/uuid"

// GenerateOneTimeToken returns a random token for email confirmation
// and password-reset links.
func GenerateOneTimeToken() string {
	return uuid.NewString()
}
