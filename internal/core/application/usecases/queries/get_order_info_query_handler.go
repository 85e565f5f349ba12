package queries

import (
	"context"

	"taxi/internal/core/ports"
)

// GetOrderInfoQueryHandler loads an order through the repository and renders
// its short info and driver info.
type GetOrderInfoQueryHandler struct {
	orderRepository ports.OrderRepository
}

func NewGetOrderInfoQueryHandler(orderRepository ports.OrderRepository) GetOrderInfoQueryHandler {
	return GetOrderInfoQueryHandler{orderRepository: orderRepository}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderInfoQueryHandler) Handle(
	ctx context.Context,
	query GetOrderInfoQuery,
) (GetOrderInfoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderInfoQueryResponse{}, err
	}

	o, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderInfoQueryResponse{}, err
	}

	driverInfo, hasDriver := o.DriverFullInfo()

	return GetOrderInfoQueryResponse{
		ID:             o.ID(),
		Status:         o.Status(),
		ShortInfo:      o.ShortInfo(),
		DriverFullInfo: driverInfo,
		HasDriver:      hasDriver,
	}, nil
}
