package commands

import (
	"context"

	"taxi/internal/core/domain/model/order"
	"taxi/internal/core/ports"
)

type UpdateDestinationCommandHandler struct {
	mutation orderMutation
}

func NewUpdateDestinationCommandHandler(uowFactory UoWFactory, locker ports.OrderLocker) UpdateDestinationCommandHandler {
	return UpdateDestinationCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, locker: locker},
	}
}

func (h UpdateDestinationCommandHandler) Handle(ctx context.Context, cmd UpdateDestinationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutation.apply(ctx, cmd.OrderID(), func(_ context.Context, _ UoW, o *order.TaxiOrder) error {
		return o.UpdateDestination(cmd.Destination())
	})
}
