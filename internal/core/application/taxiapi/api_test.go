package taxiapi_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"taxi/internal/adapters/out/memory"
	"taxi/internal/core/application/taxiapi"
	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/order"
	"taxi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Get(ctx context.Context, id int) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

type MockOrderIDAllocator struct{ mock.Mock }

func (m *MockOrderIDAllocator) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
}

func newAPI() *taxiapi.API {
	return taxiapi.New(memory.NewStubDriverRepository(), memory.NewSequenceAllocator(), fixedClock)
}

func TestAPI_CreateOrderWithoutDestination(t *testing.T) {
	t.Run("should create orders with sequential ids", func(t *testing.T) {
		api := newAPI()

		first, err := api.CreateOrderWithoutDestination(t.Context(), "Anna", "Smith", "Baker St", "12")
		require.NoError(t, err)
		second, err := api.CreateOrderWithoutDestination(t.Context(), "Ivan", "Ivanov", "Lenina", "1")
		require.NoError(t, err)

		assert.Equal(t, 1, first.ID())
		assert.Equal(t, 2, second.ID())
		assert.Equal(t, order.WaitingForDriver, first.Status())
		assert.Equal(t,
			"OrderId: 1 Status: WaitingForDriver Client: Anna Smith Driver: not assigned "+
				"From: Baker St 12 To: unspecified LastProgressTime: 2024-03-05 10:00:00",
			api.GetShortOrderInfo(first))
	})

	t.Run("should return allocator error", func(t *testing.T) {
		ids := new(MockOrderIDAllocator)
		ids.On("NextID", mock.Anything).Return(0, errors.New("sequence unavailable")).Once()
		api := taxiapi.New(memory.NewStubDriverRepository(), ids, fixedClock)

		o, err := api.CreateOrderWithoutDestination(t.Context(), "Anna", "Smith", "Baker St", "12")

		require.EqualError(t, err, "sequence unavailable")
		assert.Nil(t, o)
		ids.AssertExpectations(t)
	})
}

func TestAPI_OrderLifecycle(t *testing.T) {
	api := newAPI()
	o, err := api.CreateOrderWithoutDestination(t.Context(), "Anna", "Smith", "Baker St", "12")
	require.NoError(t, err)

	require.NoError(t, api.UpdateDestination(o, "Lenina", "1"))
	assert.Contains(t, api.GetShortOrderInfo(o), "To: Lenina 1")

	_, ok := api.GetDriverFullInfo(o)
	assert.False(t, ok)

	require.NoError(t, api.AssignDriver(t.Context(), o, memory.StubDriverID))
	info, ok := api.GetDriverFullInfo(o)
	require.True(t, ok)
	assert.Contains(t, info, "Baklazhan")

	require.NoError(t, api.UnassignDriver(o))
	require.NoError(t, api.AssignDriver(t.Context(), o, memory.StubDriverID))
	require.NoError(t, api.StartRide(o))
	require.NoError(t, api.FinishRide(o))
	assert.Equal(t, order.Finished, o.Status())

	require.ErrorIs(t, api.Cancel(o), errs.ErrInvalidState)
	require.ErrorIs(t, api.StartRide(o), errs.ErrInvalidState)
}

func TestAPI_AssignDriver(t *testing.T) {
	t.Run("should surface driver lookup failure unchanged", func(t *testing.T) {
		api := newAPI()
		o, err := api.CreateOrderWithoutDestination(t.Context(), "Anna", "Smith", "Baker St", "12")
		require.NoError(t, err)

		err = api.AssignDriver(t.Context(), o, 7)

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, 7, notFound.ID)
		assert.Equal(t, order.WaitingForDriver, o.Status())
	})

	t.Run("should look the driver up exactly once", func(t *testing.T) {
		drivers := new(MockDriverRepository)
		stub, err := memory.NewStubDriverRepository().Get(t.Context(), memory.StubDriverID)
		require.NoError(t, err)
		drivers.On("Get", mock.Anything, memory.StubDriverID).Return(stub, nil).Once()

		api := taxiapi.New(drivers, memory.NewSequenceAllocator(), fixedClock)
		o, err := api.CreateOrderWithoutDestination(t.Context(), "Anna", "Smith", "Baker St", "12")
		require.NoError(t, err)

		require.NoError(t, api.AssignDriver(t.Context(), o, memory.StubDriverID))

		drivers.AssertExpectations(t)
	})

	t.Run("should fail second assignment with invalid state", func(t *testing.T) {
		api := newAPI()
		o, err := api.CreateOrderWithoutDestination(t.Context(), "Anna", "Smith", "Baker St", "12")
		require.NoError(t, err)
		require.NoError(t, api.AssignDriver(t.Context(), o, memory.StubDriverID))

		err = api.AssignDriver(t.Context(), o, memory.StubDriverID)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestAPI_Cancel(t *testing.T) {
	api := newAPI()
	o, err := api.CreateOrderWithoutDestination(t.Context(), "Anna", "Smith", "Baker St", "12")
	require.NoError(t, err)
	require.NoError(t, api.AssignDriver(t.Context(), o, memory.StubDriverID))

	require.NoError(t, api.Cancel(o))

	assert.Equal(t, order.Canceled, o.Status())
	_, ok := api.GetDriverFullInfo(o)
	assert.False(t, ok)
	require.ErrorIs(t, api.Cancel(o), errs.ErrInvalidState)
}
