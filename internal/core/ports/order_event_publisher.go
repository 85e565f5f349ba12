package ports

import (
	"context"

	"taxi/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to other services.
type OrderEventPublisher interface {
	// PublishOrderChanged sends the current state of every order in orders.
	PublishOrderChanged(ctx context.Context, orders ...*order.TaxiOrder) error
}
