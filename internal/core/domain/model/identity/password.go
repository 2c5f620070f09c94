package identity

import (
	"fulfillment/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the minimum accepted plaintext password length.
const minPasswordLength = 8

// HashPassword validates and bcrypt-hashes a plaintext password.
func HashPassword(plain string) (string, error) {
	if len(plain) < minPasswordLength {
		return "", errs.NewValueIsOutOfRangeError("password length", len(plain), minPasswordLength, 72)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the
// identity's stored hash. Used as proof of possession on self-service
// password and activation operations.
func (i *Identity) VerifyPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(i.passwordHash), []byte(plain)) == nil
}
