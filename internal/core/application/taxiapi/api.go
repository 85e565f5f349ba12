// Package taxiapi is a stateless facade over the order state machine. It takes
// primitive inputs, builds the value objects and calls the matching TaxiOrder
// operation. Errors of the order and of the driver lookup are returned unchanged.
package taxiapi

import (
	"context"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/domain/model/order"
	"taxi/internal/core/ports"
)

type API struct {
	drivers ports.DriverRepository
	ids     ports.OrderIDAllocator
	clock   kernel.Clock
}

// New creates an API. Every order it creates keeps clock for its whole life.
func New(drivers ports.DriverRepository, ids ports.OrderIDAllocator, clock kernel.Clock) *API {
	return &API{
		drivers: drivers,
		ids:     ids,
		clock:   clock,
	}
}

func (a *API) CreateOrderWithoutDestination(
	ctx context.Context,
	firstName, lastName, street, building string,
) (*order.TaxiOrder, error) {
	id, err := a.ids.NextID(ctx)
	if err != nil {
		return nil, err
	}

	return order.CreateOrderWithoutDestination(id,
		kernel.NewPersonName(firstName, lastName),
		kernel.NewAddress(street, building),
		a.clock,
	)
}

func (a *API) UpdateDestination(o *order.TaxiOrder, street, building string) error {
	return o.UpdateDestination(kernel.NewAddress(street, building))
}

// AssignDriver looks the driver up once and assigns it.
func (a *API) AssignDriver(ctx context.Context, o *order.TaxiOrder, driverID int) error {
	d, err := a.drivers.Get(ctx, driverID)
	if err != nil {
		return err
	}
	return o.AssignDriver(d)
}

func (a *API) UnassignDriver(o *order.TaxiOrder) error {
	return o.UnassignDriver()
}

// GetDriverFullInfo returns false when no driver is assigned.
func (a *API) GetDriverFullInfo(o *order.TaxiOrder) (string, bool) {
	return o.DriverFullInfo()
}

func (a *API) GetShortOrderInfo(o *order.TaxiOrder) string {
	return o.ShortInfo()
}

func (a *API) Cancel(o *order.TaxiOrder) error {
	return o.Cancel()
}

func (a *API) StartRide(o *order.TaxiOrder) error {
	return o.StartRide()
}

func (a *API) FinishRide(o *order.TaxiOrder) error {
	return o.FinishRide()
}
