package commands

import (
	"errors"

	"taxi/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand assigns the driver with the given id to an order that
// is waiting for a driver.
type AssignDriverCommand struct {
	orderID  int
	driverID int

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(orderID, driverID int) (AssignDriverCommand, error) {
	if err := errors.Join(
		validateID("order id", orderID),
		validateID("driver id", driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		orderID:  orderID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) OrderID() int {
	return c.orderID
}

func (c AssignDriverCommand) DriverID() int {
	return c.driverID
}
