// Package queries contains read operations over orders.
// Queries never change state and never take the order lock.
package queries

import (
	"errors"
	"fmt"

	"taxi/internal/core/domain/model/order"
	"taxi/internal/pkg/errs"
	"taxi/internal/pkg/guard"
)

var ErrGetOrderInfoQueryIsNotConstructed = errors.New(
	"GetOrderInfoQuery must be created via NewGetOrderInfoQuery constructor",
)

// GetOrderInfoQuery fetches the human readable summary of one order.
//
// Example:
//
//	query, err := NewGetOrderInfoQuery(42)
//	if err != nil {
//	    return err
//	}
//
//	info, err := handler.Handle(ctx, query)
//	fmt.Println(info.ShortInfo)
type GetOrderInfoQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderInfoQuery creates the query. orderID must be positive.
func NewGetOrderInfoQuery(orderID int) (GetOrderInfoQuery, error) {
	if orderID <= 0 {
		return GetOrderInfoQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"order id", fmt.Errorf("%d is not greater than 0", orderID))
	}

	return GetOrderInfoQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderInfoQueryIsNotConstructed)
}

func (q GetOrderInfoQuery) OrderID() int {
	return q.orderID
}

// GetOrderInfoQueryResponse is the read model of a single order.
// DriverFullInfo is empty when HasDriver is false.
type GetOrderInfoQueryResponse struct {
	ID             int
	Status         order.Status
	ShortInfo      string
	DriverFullInfo string
	HasDriver      bool
}
