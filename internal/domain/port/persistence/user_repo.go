package persistence

import (
	"context"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
)

// UserRepository stores authentication identities for the auth collaborator
type UserRepository interface {
	// GetByEmail retrieves a user by email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same email already exists
	Create(ctx context.Context, user *entity.User) error
}
