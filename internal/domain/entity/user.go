package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/corepay/payroll-ledger/internal/domain/error"
)

// Roles recognized by the binary authorization check
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User is an authentication identity. The ledger core never sees credentials;
// it only receives the authenticated principal (email + role).
type User struct {
	ID           uint64
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// NewUser creates an auth user with an already-hashed password
func NewUser(email, passwordHash, role string, now time.Time) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", errs.ErrInvalidRequest)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash is required", errs.ErrInvalidRequest)
	}
	if role != RoleAdmin && role != RoleEmployee {
		role = RoleEmployee
	}

	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
	}, nil
}

// IsAdmin reports whether the user passes the binary admin check
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Principal is the authenticated identity handed to core operations
type Principal struct {
	Email string
	Role  string
}

// IsAdmin reports whether the principal passes the binary admin check
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
