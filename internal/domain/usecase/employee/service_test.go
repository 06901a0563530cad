package employee

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	errs "github.com/corepay/payroll-ledger/internal/domain/error"
	mockcore "github.com/corepay/payroll-ledger/mocks/port/core"
	mockpersistence "github.com/corepay/payroll-ledger/mocks/port/persistence"
)

type serviceFixture struct {
	uow          *mockpersistence.MockUnitOfWork
	employeeRepo *mockpersistence.MockEmployeeRepository
	ledgerRepo   *mockpersistence.MockLedgerRepository
	service      *Service
	txCtx        context.Context
	now          time.Time
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	f := &serviceFixture{
		uow:          new(mockpersistence.MockUnitOfWork),
		employeeRepo: new(mockpersistence.MockEmployeeRepository),
		ledgerRepo:   new(mockpersistence.MockLedgerRepository),
		txCtx:        context.WithValue(context.Background(), struct{ k string }{"tx"}, "open"),
		now:          now,
	}

	tp := new(mockcore.MockTimeProvider)
	tp.On("Now").Return(now).Maybe()

	f.service = NewService(f.uow, f.employeeRepo, f.ledgerRepo, tp, mockcore.NoopLogger{})

	f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil).Maybe()
	f.uow.On("GetEmployeeRepository", f.txCtx).Return(f.employeeRepo).Maybe()
	f.uow.On("GetLedgerRepository", f.txCtx).Return(f.ledgerRepo).Maybe()

	return f
}

func (f *serviceFixture) storedEmployee(t *testing.T) *entity.Employee {
	t.Helper()
	employee, err := entity.NewEmployee("Alice", "alice@corepay.io", "", f.now)
	require.NoError(t, err)
	employee.ID = 5
	return employee
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a valid employee", func(t *testing.T) {
		f := newServiceFixture(t)
		f.employeeRepo.On("Create", ctx, mock.Anything).Return(nil)

		employee, err := f.service.Create(ctx, "Alice", "alice@corepay.io", "engineer")

		require.NoError(t, err)
		assert.Equal(t, "Alice", employee.Name)
		assert.False(t, employee.IsStreaming)
	})

	t.Run("propagates a duplicate email", func(t *testing.T) {
		f := newServiceFixture(t)
		f.employeeRepo.On("Create", ctx, mock.Anything).Return(errs.ErrDuplicateEmail)

		_, err := f.service.Create(ctx, "Alice", "alice@corepay.io", "")

		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})

	t.Run("rejects invalid input without touching the repository", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.service.Create(ctx, "", "alice@corepay.io", "")

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		f.employeeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_UpdateTaxOverride(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the custom rate", func(t *testing.T) {
		f := newServiceFixture(t)
		employee := f.storedEmployee(t)
		rate := decimal.NewFromInt(25)

		f.employeeRepo.On("GetByID", ctx, uint64(5)).Return(employee, nil)
		f.employeeRepo.On("Update", ctx, employee).Return(nil)

		updated, err := f.service.UpdateTaxOverride(ctx, 5, true, &rate)

		require.NoError(t, err)
		got, ok := updated.TaxOverride()
		require.True(t, ok)
		assert.True(t, got.Equal(rate))
	})

	t.Run("rejects enabling without a rate", func(t *testing.T) {
		f := newServiceFixture(t)
		f.employeeRepo.On("GetByID", ctx, uint64(5)).Return(f.storedEmployee(t), nil)

		_, err := f.service.UpdateTaxOverride(ctx, 5, true, nil)

		assert.ErrorIs(t, err, errs.ErrInvalidTaxRate)
		f.employeeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an employee without history", func(t *testing.T) {
		f := newServiceFixture(t)

		f.employeeRepo.On("GetByID", f.txCtx, uint64(5)).Return(f.storedEmployee(t), nil)
		f.ledgerRepo.On("HasHistory", f.txCtx, uint64(5)).Return(false, nil)
		f.employeeRepo.On("Delete", f.txCtx, uint64(5)).Return(nil)
		f.uow.On("Commit", f.txCtx).Return(nil)

		err := f.service.Delete(ctx, 5, false)

		require.NoError(t, err)
		f.uow.AssertCalled(t, "Commit", f.txCtx)
	})

	t.Run("rejects deleting an employee with ledger history", func(t *testing.T) {
		f := newServiceFixture(t)

		f.employeeRepo.On("GetByID", f.txCtx, uint64(5)).Return(f.storedEmployee(t), nil)
		f.ledgerRepo.On("HasHistory", f.txCtx, uint64(5)).Return(true, nil)
		f.uow.On("Rollback", f.txCtx).Return(nil)

		err := f.service.Delete(ctx, 5, false)

		assert.ErrorIs(t, err, errs.ErrEmployeeHasLedgerHistory)
		f.employeeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("force delete cascades despite history", func(t *testing.T) {
		f := newServiceFixture(t)

		f.employeeRepo.On("GetByID", f.txCtx, uint64(5)).Return(f.storedEmployee(t), nil)
		f.ledgerRepo.On("HasHistory", f.txCtx, uint64(5)).Return(true, nil)
		f.employeeRepo.On("Delete", f.txCtx, uint64(5)).Return(nil)
		f.uow.On("Commit", f.txCtx).Return(nil)

		err := f.service.Delete(ctx, 5, true)

		require.NoError(t, err)
	})

	t.Run("propagates a missing employee", func(t *testing.T) {
		f := newServiceFixture(t)

		f.employeeRepo.On("GetByID", f.txCtx, uint64(5)).Return(nil, errs.ErrEmployeeNotFound)
		f.uow.On("Rollback", f.txCtx).Return(nil)

		err := f.service.Delete(ctx, 5, false)

		assert.ErrorIs(t, err, errs.ErrEmployeeNotFound)
	})
}

func TestService_Transactions(t *testing.T) {
	ctx := context.Background()

	t.Run("verifies the employee exists first", func(t *testing.T) {
		f := newServiceFixture(t)
		f.employeeRepo.On("GetByID", ctx, uint64(5)).Return(nil, errs.ErrEmployeeNotFound)

		_, err := f.service.Transactions(ctx, 5)

		assert.ErrorIs(t, err, errs.ErrEmployeeNotFound)
		f.ledgerRepo.AssertNotCalled(t, "ListByEmployee", mock.Anything, mock.Anything)
	})

	t.Run("returns the employee's ledger entries", func(t *testing.T) {
		f := newServiceFixture(t)
		employee := f.storedEmployee(t)

		txn, err := entity.NewTransaction(5,
			decimal.RequireFromString("80.00"), decimal.RequireFromString("20.00"),
			"Salary payment", f.now)
		require.NoError(t, err)

		f.employeeRepo.On("GetByID", ctx, uint64(5)).Return(employee, nil)
		f.ledgerRepo.On("ListByEmployee", ctx, uint64(5)).Return([]*entity.Transaction{txn}, nil)

		transactions, err := f.service.Transactions(ctx, 5)

		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "100.00", entity.FormatMoney(transactions[0].Gross()))
	})
}

func TestService_ProfileByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("sums lifetime net earnings", func(t *testing.T) {
		f := newServiceFixture(t)
		employee := f.storedEmployee(t)
		f.employeeRepo.On("GetByEmail", ctx, "alice@corepay.io").Return(employee, nil)

		first, err := entity.NewTransaction(5, decimal.RequireFromString("80.00"), decimal.RequireFromString("20.00"), "Salary payment", f.now)
		require.NoError(t, err)
		second, err := entity.NewTransaction(5, decimal.RequireFromString("40.00"), decimal.RequireFromString("10.00"), "Bonus: Q1", f.now)
		require.NoError(t, err)
		f.ledgerRepo.On("ListByEmployee", ctx, uint64(5)).Return([]*entity.Transaction{second, first}, nil)

		profile, err := f.service.ProfileByEmail(ctx, "alice@corepay.io")

		require.NoError(t, err)
		require.NotNil(t, profile.Employee)
		assert.Equal(t, uint64(5), profile.Employee.ID)
		assert.Equal(t, "120.00", entity.FormatMoney(profile.TotalEarned))
	})

	t.Run("returns an empty profile when no employee matches the email", func(t *testing.T) {
		f := newServiceFixture(t)
		f.employeeRepo.On("GetByEmail", ctx, "ops@corepay.io").Return(nil, errs.ErrEmployeeNotFound)

		profile, err := f.service.ProfileByEmail(ctx, "ops@corepay.io")

		require.NoError(t, err)
		assert.Nil(t, profile.Employee)
		assert.True(t, profile.TotalEarned.IsZero())
		f.ledgerRepo.AssertNotCalled(t, "ListByEmployee", mock.Anything, mock.Anything)
	})
}

func TestService_TransactionsByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("lists the matching employee's entries", func(t *testing.T) {
		f := newServiceFixture(t)
		employee := f.storedEmployee(t)
		f.employeeRepo.On("GetByEmail", ctx, "alice@corepay.io").Return(employee, nil)

		entry, err := entity.NewTransaction(5, decimal.RequireFromString("80.00"), decimal.RequireFromString("20.00"), "Salary payment", f.now)
		require.NoError(t, err)
		f.ledgerRepo.On("ListByEmployee", ctx, uint64(5)).Return([]*entity.Transaction{entry}, nil)

		transactions, err := f.service.TransactionsByEmail(ctx, "alice@corepay.io")

		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "80.00", entity.FormatMoney(transactions[0].NetAmount))
	})

	t.Run("returns an empty list when no employee matches the email", func(t *testing.T) {
		f := newServiceFixture(t)
		f.employeeRepo.On("GetByEmail", ctx, "ops@corepay.io").Return(nil, errs.ErrEmployeeNotFound)

		transactions, err := f.service.TransactionsByEmail(ctx, "ops@corepay.io")

		require.NoError(t, err)
		assert.Empty(t, transactions)
	})
}
