package persistence

import (
	"context"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
)

// EmployeeRepository defines essential methods to interact with employee data
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	//
	// Possible errors:
	// - ErrEmployeeNotFound: If the employee doesn't exist
	// - ErrDatabaseConnection: If the database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Employee, error)

	// GetByEmail retrieves the employee whose email matches the login
	// identity. Emails are unique, so at most one row matches.
	//
	// Possible errors:
	// - ErrEmployeeNotFound: If no employee carries that email
	// - ErrDatabaseConnection: If the database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)

	// List returns all employees ordered by ID
	List(ctx context.Context) ([]*entity.Employee, error)

	// Create persists a new employee and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateEmail: If an employee with the same email already exists
	// - ErrDatabaseConnection: If the database connection fails
	Create(ctx context.Context, employee *entity.Employee) error

	// Update persists changes to an existing employee
	//
	// Possible errors:
	// - ErrEmployeeNotFound: If the employee doesn't exist
	// - ErrDatabaseConnection: If the database connection fails
	Update(ctx context.Context, employee *entity.Employee) error

	// Delete removes an employee together with its transactions and bonuses.
	// Must run inside the enclosing unit of work so the cascade is atomic.
	//
	// Possible errors:
	// - ErrEmployeeNotFound: If the employee doesn't exist
	// - ErrDatabaseConnection: If the database connection fails
	Delete(ctx context.Context, id uint64) error

	// CountStreaming returns the number of employees with an active stream
	CountStreaming(ctx context.Context) (int64, error)
}
