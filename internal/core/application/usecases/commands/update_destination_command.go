package commands

import (
	"errors"
	"fmt"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/errs"
	"taxi/internal/pkg/guard"
)

var ErrUpdateDestinationCommandIsNotConstructed = errors.New(
	"UpdateDestinationCommand must be created via NewUpdateDestinationCommand constructor",
)

type UpdateDestinationCommand struct {
	orderID     int
	destination kernel.Address

	guard guard.ConstructorGuard
}

func NewUpdateDestinationCommand(orderID int, street, building string) (UpdateDestinationCommand, error) {
	if err := validateID("order id", orderID); err != nil {
		return UpdateDestinationCommand{}, err
	}

	return UpdateDestinationCommand{
		orderID:     orderID,
		destination: kernel.NewAddress(street, building),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDestinationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDestinationCommandIsNotConstructed)
}

func (c UpdateDestinationCommand) OrderID() int {
	return c.orderID
}

func (c UpdateDestinationCommand) Destination() kernel.Address {
	return c.destination
}

func validateID(name string, id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}
