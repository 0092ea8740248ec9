package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor applied to every stored
// password hash. 10 rounds keeps verification under a few tens of
// milliseconds while still resisting offline brute force.
const passwordHashCost = 10

// HashPassword derives a salted bcrypt hash from the plaintext password.
// The salt is generated per call by bcrypt itself, so hashing the same
// password twice yields different digests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. Plaintext passwords are never compared directly; this is the
// only verification primitive.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
