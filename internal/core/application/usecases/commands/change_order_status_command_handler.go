package commands

import (
	"context"

	"taxi/internal/core/domain/model/order"
	"taxi/internal/core/ports"
)

type ChangeOrderStatusCommandHandler struct {
	mutation orderMutation
}

func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory, locker ports.OrderLocker) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, locker: locker},
	}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutation.apply(ctx, cmd.OrderID(), func(_ context.Context, _ UoW, o *order.TaxiOrder) error {
		switch cmd.Action() {
		case UnassignDriver:
			return o.UnassignDriver()
		case Cancel:
			return o.Cancel()
		case StartRide:
			return o.StartRide()
		case FinishRide:
			return o.FinishRide()
		default:
			return cmd.Action().Validate()
		}
	})
}
