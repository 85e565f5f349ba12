package commands_test

import (
	"errors"
	"testing"

	"taxi/internal/core/application/usecases/commands"
	"taxi/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	cmd := commands.NewCreateOrderCommand("Anna", "Smith", "Baker St", "12")

	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Anna Smith", cmd.ClientName().FullName())
	assert.Equal(t, "Baker St 12", cmd.Start().Line())
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateOrderCommand("Anna", "Smith", "Baker St", "12")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	var added *order.TaxiOrder
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("NextID", ctx).Return(42, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.TaxiOrder")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*order.TaxiOrder) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory, testClock)
	id, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 42, id)
	require.NotNil(t, added)
	assert.Equal(t, 42, added.ID())
	assert.Equal(t, order.WaitingForDriver, added.Status())
	assert.Equal(t, testClock(), added.CreationTime())
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, testClock)

	_, err := handler.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_NextIDError(t *testing.T) {
	ctx := t.Context()
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("NextID", ctx).Return(0, errors.New("sequence error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, testClock)
	_, err := handler.Handle(ctx, commands.NewCreateOrderCommand("Anna", "Smith", "Baker St", "12"))

	require.EqualError(t, err, "sequence error")
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory, testClock)
	_, err := handler.Handle(ctx, commands.NewCreateOrderCommand("Anna", "Smith", "Baker St", "12"))

	require.EqualError(t, err, "begin error")
}
