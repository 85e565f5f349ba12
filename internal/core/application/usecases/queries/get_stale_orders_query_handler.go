package queries

import (
	"context"
	"database/sql"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStaleOrdersQueryHandler reads stale orders straight from the taxi_orders
// table, bypassing the aggregate.
//
// Example:
//
//	query, _ := NewGetStaleOrdersQuery(15 * time.Minute)
//	stale, err := NewGetStaleOrdersQueryHandler(db, kernel.SystemClock()).Handle(ctx, query)
//	for _, o := range stale {
//	    log.Printf("order %d stuck in %s since %s", o.ID, o.Status, o.LastProgressTime)
//	}
type GetStaleOrdersQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetStaleOrdersQueryHandler(db *gorm.DB, clock kernel.Clock) GetStaleOrdersQueryHandler {
	return GetStaleOrdersQueryHandler{db: db, clock: clock}
}

// Handle returns the stale orders, oldest progress first.
func (h GetStaleOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStaleOrdersQuery,
) ([]GetStaleOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	threshold := h.clock().Add(-query.OlderThan())
	orders := make([]GetStaleOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			driver_id,
			last_progress_time
		FROM taxi_orders
		WHERE status NOT IN (?, ?)
			AND last_progress_time < ?
		ORDER BY last_progress_time, id
	`, int(order.Finished), int(order.Canceled), threshold).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStaleOrdersQueryResponse
		var status int16
		var driverID sql.NullInt64

		if err = rows.Scan(&resp.ID, &status, &driverID, &resp.LastProgressTime); err != nil {
			return nil, err
		}

		resp.Status = order.Status(status)
		if driverID.Valid {
			id := int(driverID.Int64)
			resp.DriverID = &id
		}
		resp.LastProgressTime = resp.LastProgressTime.UTC()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
