package core

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
)

// MockPasswordHasher is a mock implementation of the PasswordHasher port
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of the TokenIssuer port
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(principal entity.Principal, ttl time.Duration) (string, error) {
	args := m.Called(principal, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Verify(token string) (entity.Principal, error) {
	args := m.Called(token)
	return args.Get(0).(entity.Principal), args.Error(1)
}
