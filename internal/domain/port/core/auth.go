package core

import (
	"time"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
)

// PasswordHasher abstracts credential hashing for the auth collaborator
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password
	Hash(password string) (string, error)
	// Compare reports whether the plaintext matches the stored hash
	Compare(hash, password string) error
}

// TokenIssuer mints and verifies the signed tokens carrying a principal
type TokenIssuer interface {
	// Issue signs a token for the principal with the given lifetime
	Issue(principal entity.Principal, ttl time.Duration) (string, error)
	// Verify parses a token and returns the principal it carries
	Verify(token string) (entity.Principal, error)
}
