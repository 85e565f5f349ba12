package ports

import (
	"context"

	"taxi/internal/core/domain/model/order"
)

// OrderIDAllocator hands out identifiers for new orders. Identifiers are
// positive and never reused.
type OrderIDAllocator interface {
	// NextID reserves the id of the next order.
	NextID(ctx context.Context) (int, error)
}

// OrderRepository stores TaxiOrder aggregates. Ids come from the embedded
// OrderIDAllocator.
type OrderRepository interface {
	OrderIDAllocator

	// Add stores a new order. The order must be constructed and its id unused.
	Add(ctx context.Context, aggregate *order.TaxiOrder) error

	// Update overwrites the stored state of an existing order with aggregate.
	Update(ctx context.Context, aggregate *order.TaxiOrder) error

	// Get loads the order with the id, driver included.
	// Returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id int) (*order.TaxiOrder, error)
}
