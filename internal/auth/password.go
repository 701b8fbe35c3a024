package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the conventional work factor used for all stored hashes.
const bcryptCost = 12

// HashPassword returns the salted bcrypt hash of password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
