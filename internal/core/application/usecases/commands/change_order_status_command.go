package commands

import (
	"errors"
	"fmt"

	"taxi/internal/pkg/errs"
	"taxi/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// OrderAction is a status transition that needs no input besides the order.
type OrderAction int

const (
	UnknownAction OrderAction = iota
	UnassignDriver
	Cancel
	StartRide
	FinishRide
)

func (a OrderAction) String() string {
	switch a {
	case UnassignDriver:
		return "unassign_driver"
	case Cancel:
		return "cancel"
	case StartRide:
		return "start_ride"
	case FinishRide:
		return "finish_ride"
	default:
		return "unknown"
	}
}

func (a OrderAction) Validate() error {
	if a < UnassignDriver || a > FinishRide {
		return errs.NewValueIsInvalidErrorWithCause("order action", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

type ChangeOrderStatusCommand struct {
	orderID int
	action  OrderAction

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID int, action OrderAction) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(
		validateID("order id", orderID),
		action.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		action:  action,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() int {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Action() OrderAction {
	return c.action
}
