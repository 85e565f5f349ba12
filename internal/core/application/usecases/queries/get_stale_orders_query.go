package queries

import (
	"errors"
	"fmt"
	"time"

	"taxi/internal/core/domain/model/order"
	"taxi/internal/pkg/errs"
	"taxi/internal/pkg/guard"
)

var ErrGetStaleOrdersQueryIsNotConstructed = errors.New(
	"GetStaleOrdersQuery must be created via NewGetStaleOrdersQuery constructor",
)

// GetStaleOrdersQuery finds orders that are still open and have not changed
// status for longer than olderThan.
type GetStaleOrdersQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStaleOrdersQuery creates the query. olderThan must be positive.
func NewGetStaleOrdersQuery(olderThan time.Duration) (GetStaleOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStaleOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"olderThan", fmt.Errorf("%s is not positive", olderThan))
	}

	return GetStaleOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetStaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleOrdersQueryIsNotConstructed)
}

func (q GetStaleOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}

type GetStaleOrdersQueryResponse struct {
	ID               int
	Status           order.Status
	DriverID         *int
	LastProgressTime time.Time
}
