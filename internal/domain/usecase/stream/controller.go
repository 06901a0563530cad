package stream

import (
	"context"

	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/domain/port/persistence"
)

// Controller toggles an employee's streaming-eligibility flag. The flag gates
// whether the payroll engine admits salary payments; it is not a running
// payment timer. Both transitions are idempotent.
type Controller struct {
	employeeRepo persistence.EmployeeRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewController creates a stream controller
func NewController(
	employeeRepo persistence.EmployeeRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Controller {
	return &Controller{
		employeeRepo: employeeRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Start marks the employee as eligible for salary payments and returns the new
// flag value. Starting an already-active stream is a no-op success.
func (c *Controller) Start(ctx context.Context, employeeID uint64) (bool, error) {
	return c.setStreaming(ctx, employeeID, true)
}

// Pause marks the employee as ineligible for salary payments and returns the
// new flag value. Already-recorded transactions are unaffected.
func (c *Controller) Pause(ctx context.Context, employeeID uint64) (bool, error) {
	return c.setStreaming(ctx, employeeID, false)
}

func (c *Controller) setStreaming(ctx context.Context, employeeID uint64, active bool) (bool, error) {
	employee, err := c.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return false, err
	}

	if employee.IsStreaming == active {
		return employee.IsStreaming, nil
	}

	now := c.timeProvider.Now()
	if active {
		employee.StartStreaming(now)
	} else {
		employee.PauseStreaming(now)
	}

	if err := c.employeeRepo.Update(ctx, employee); err != nil {
		return false, err
	}

	c.logger.Info("Employee streaming flag changed", map[string]any{
		"employee_id":  employeeID,
		"is_streaming": employee.IsStreaming,
	})

	return employee.IsStreaming, nil
}
