package commands

import (
	"context"

	"taxi/internal/core/domain/model/order"
	"taxi/internal/core/ports"
)

// AssignDriverCommandHandler looks the driver up once and assigns it to the order.
// A failed lookup is returned unchanged.
type AssignDriverCommandHandler struct {
	mutation orderMutation
}

func NewAssignDriverCommandHandler(uowFactory UoWFactory, locker ports.OrderLocker) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, locker: locker},
	}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutation.apply(ctx, cmd.OrderID(), func(ctx context.Context, uow UoW, o *order.TaxiOrder) error {
		d, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
		if err != nil {
			return err
		}
		return o.AssignDriver(d)
	})
}
