package stream

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	errs "github.com/corepay/payroll-ledger/internal/domain/error"
	mockcore "github.com/corepay/payroll-ledger/mocks/port/core"
	mockpersistence "github.com/corepay/payroll-ledger/mocks/port/persistence"
)

func newTestEmployee(t *testing.T, streaming bool) *entity.Employee {
	t.Helper()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	employee, err := entity.NewEmployee("Alice", "alice@corepay.io", "", now)
	require.NoError(t, err)
	employee.ID = 3
	if streaming {
		employee.StartStreaming(now)
	}
	return employee
}

func newController(repo *mockpersistence.MockEmployeeRepository) *Controller {
	tp := new(mockcore.MockTimeProvider)
	tp.On("Now").Return(time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)).Maybe()
	return NewController(repo, tp, mockcore.NoopLogger{})
}

func TestController_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("activates a paused stream", func(t *testing.T) {
		employee := newTestEmployee(t, false)
		repo := new(mockpersistence.MockEmployeeRepository)
		repo.On("GetByID", ctx, uint64(3)).Return(employee, nil)
		repo.On("Update", ctx, employee).Return(nil)

		isStreaming, err := newController(repo).Start(ctx, 3)

		require.NoError(t, err)
		assert.True(t, isStreaming)
		repo.AssertExpectations(t)
	})

	t.Run("is a no-op on an active stream", func(t *testing.T) {
		employee := newTestEmployee(t, true)
		repo := new(mockpersistence.MockEmployeeRepository)
		repo.On("GetByID", ctx, uint64(3)).Return(employee, nil)

		isStreaming, err := newController(repo).Start(ctx, 3)

		require.NoError(t, err)
		assert.True(t, isStreaming)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("propagates a missing employee", func(t *testing.T) {
		repo := new(mockpersistence.MockEmployeeRepository)
		repo.On("GetByID", ctx, uint64(3)).Return(nil, errs.ErrEmployeeNotFound)

		_, err := newController(repo).Start(ctx, 3)

		assert.ErrorIs(t, err, errs.ErrEmployeeNotFound)
	})
}

func TestController_Pause(t *testing.T) {
	ctx := context.Background()

	t.Run("pauses an active stream", func(t *testing.T) {
		employee := newTestEmployee(t, true)
		repo := new(mockpersistence.MockEmployeeRepository)
		repo.On("GetByID", ctx, uint64(3)).Return(employee, nil)
		repo.On("Update", ctx, employee).Return(nil)

		isStreaming, err := newController(repo).Pause(ctx, 3)

		require.NoError(t, err)
		assert.False(t, isStreaming)
	})

	t.Run("is a no-op on a paused stream", func(t *testing.T) {
		employee := newTestEmployee(t, false)
		repo := new(mockpersistence.MockEmployeeRepository)
		repo.On("GetByID", ctx, uint64(3)).Return(employee, nil)

		isStreaming, err := newController(repo).Pause(ctx, 3)

		require.NoError(t, err)
		assert.False(t, isStreaming)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
