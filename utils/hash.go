package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt digest of plaintext. Hashing an empty
// string is allowed and yields a valid digest.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash reports whether plaintext matches the stored digest.
// A malformed digest verifies false instead of surfacing an error.
func CheckPasswordHash(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
