package commands

import (
	"errors"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand requests a new order without destination for a client
// waiting at a start address. Blank name and address parts are accepted.
type CreateOrderCommand struct {
	clientName kernel.PersonName
	start      kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(firstName, lastName, street, building string) CreateOrderCommand {
	return CreateOrderCommand{
		clientName: kernel.NewPersonName(firstName, lastName),
		start:      kernel.NewAddress(street, building),
		guard:      guard.NewConstructorGuard(),
	}
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ClientName() kernel.PersonName {
	return c.clientName
}

func (c CreateOrderCommand) Start() kernel.Address {
	return c.start
}
