package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	errs "github.com/corepay/payroll-ledger/internal/domain/error"
	"github.com/corepay/payroll-ledger/internal/domain/usecase/payroll"
	"github.com/corepay/payroll-ledger/internal/domain/usecase/tax"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/corepay/payroll-ledger/internal/infrastructure/adapter/time"
	mockcore "github.com/corepay/payroll-ledger/mocks/port/core"
)

type payoutStack struct {
	engine       *payroll.Engine
	employeeRepo *repository.EmployeeRepository
	treasuryRepo *repository.TreasuryRepository
	ledgerRepo   *repository.LedgerRepository
}

// newPayoutStack wires the real engine over a throwaway sqlite database.
// A single connection keeps sqlite's writer serialization deterministic.
func newPayoutStack(t *testing.T) *payoutStack {
	t.Helper()

	logger := mockcore.NoopLogger{}
	tp := timeProvider.NewRealTimeProvider()

	db, err := Connect(&Config{
		Driver:       DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "payroll.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "error",
	})
	require.NoError(t, err)

	require.NoError(t, NewMigrator(db, logger, tp).MigrateAll())

	settingsRepo := repository.NewSettingsRepository(db, tp, logger)
	calculator := tax.NewCalculator(settingsRepo, decimal.NewFromInt(10), logger)
	uow := NewUnitOfWork(db, logger, tp)

	return &payoutStack{
		engine:       payroll.NewEngine(uow, calculator, tp, logger),
		employeeRepo: repository.NewEmployeeRepository(db, logger),
		treasuryRepo: repository.NewTreasuryRepository(db, tp, logger),
		ledgerRepo:   repository.NewLedgerRepository(db, logger),
	}
}

func (s *payoutStack) seedEmployee(t *testing.T, ctx context.Context, taxRate string) *entity.Employee {
	t.Helper()

	tp := timeProvider.NewRealTimeProvider()
	employee, err := entity.NewEmployee("Alice", "alice@corepay.io", "engineer", tp.Now())
	require.NoError(t, err)
	rate := decimal.RequireFromString(taxRate)
	require.NoError(t, employee.SetTaxOverride(true, &rate, tp.Now()))
	employee.StartStreaming(tp.Now())
	require.NoError(t, s.employeeRepo.Create(ctx, employee))
	return employee
}

func (s *payoutStack) seedTreasury(t *testing.T, ctx context.Context, balance string) {
	t.Helper()

	tp := timeProvider.NewRealTimeProvider()
	treasury, err := s.treasuryRepo.GetOrCreate(ctx)
	require.NoError(t, err)
	require.NoError(t, treasury.Deposit(decimal.RequireFromString(balance), tp.Now()))
	require.NoError(t, s.treasuryRepo.Save(ctx, treasury))
}

func TestConcurrentPayouts(t *testing.T) {
	ctx := context.Background()

	// Net per payout is 10.00 (gross 12.50 at 20%), so a 50.00 treasury
	// covers exactly five of the eight attempts.
	const attempts = 8
	gross := decimal.RequireFromString("12.50")

	stack := newPayoutStack(t)
	employee := stack.seedEmployee(t, ctx, "20")
	stack.seedTreasury(t, ctx, "50.00")

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := stack.engine.PaySalary(ctx, employee.ID, gross, "Salary payment")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		assert.True(t, errs.IsInsufficientFundsError(err),
			"losing payouts must fail with insufficient funds, got: %v", err)
	}
	assert.Equal(t, 5, successes, "successes must exactly exhaust the treasury")

	treasury, err := stack.treasuryRepo.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.False(t, treasury.TotalBalance.IsNegative())
	assert.Equal(t, "0.00", entity.FormatMoney(treasury.TotalBalance))

	transactions, err := stack.ledgerRepo.ListByEmployee(ctx, employee.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 5, "only committed payouts may leave ledger rows")
	for _, transaction := range transactions {
		assert.Equal(t, "10.00", entity.FormatMoney(transaction.NetAmount))
		assert.Equal(t, "2.50", entity.FormatMoney(transaction.TaxAmount))
	}

	totalTax, err := stack.ledgerRepo.TotalTax(ctx)
	require.NoError(t, err)
	assert.Equal(t, "12.50", entity.FormatMoney(totalTax))
}

func TestSequentialPayoutExhaustion(t *testing.T) {
	ctx := context.Background()

	stack := newPayoutStack(t)
	employee := stack.seedEmployee(t, ctx, "0")
	stack.seedTreasury(t, ctx, "30.00")

	gross := decimal.RequireFromString("10.00")

	for i := 0; i < 3; i++ {
		_, err := stack.engine.PaySalary(ctx, employee.ID, gross, "Salary payment")
		require.NoError(t, err)
	}

	_, err := stack.engine.PaySalary(ctx, employee.ID, gross, "Salary payment")
	assert.True(t, errs.IsInsufficientFundsError(err))

	treasury, err := stack.treasuryRepo.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0.00", entity.FormatMoney(treasury.TotalBalance))
}
