// Package hash wraps bcrypt password hashing.
package hash

import "golang.org/x/crypto/bcrypt"

// Password hashes a plain-text password using bcrypt with the default cost.
func Password(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plain-text password matches the stored hash.
// A malformed hash is treated as a mismatch, not an error.
func Verify(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
