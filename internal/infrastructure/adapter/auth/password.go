package auth

import (
	"github.com/corepay/payroll-ledger/internal/domain/port/core"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements the PasswordHasher interface using bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a password hasher with the default bcrypt cost
func NewBcryptHasher() core.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a one-way hash of the given password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether the password matches the stored hash
func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
