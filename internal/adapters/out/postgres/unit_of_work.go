// Package postgres provides the GORM-based Unit of Work over the order and
// driver repositories.
//
// A unit of work tracks every order added or updated through its repositories.
// After a successful Commit the tracked orders are handed to the
// OrderEventPublisher. A failed publication is logged and does not undo the
// commit.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().Get(ctx, orderID) // row is locked until commit
//	// ... change o
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"log/slog"

	"taxi/internal/adapters/out/postgres/driverrepo"
	"taxi/internal/adapters/out/postgres/orderrepo"
	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/domain/model/order"
	"taxi/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        int
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one database,
// clock, event publisher and logger.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	clock     kernel.Clock
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory. publisher may be nil, in which
// case committed changes are not announced.
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	clock kernel.Clock,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		clock:     clock,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

// Create produces a new UnitOfWork with its own transaction state and tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		clock:             f.clock,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the aggregates
// it changes.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	clock             kernel.Clock
	publisher         ports.OrderEventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and publishes the tracked orders.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishTracked(ctx)
	return nil
}

// Rollback discards the transaction and forgets tracked aggregates.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// DriverRepository returns a driver repository bound to the current
// transaction, or to the database when none is active.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn())
}

// OrderRepository returns an order repository bound to the current transaction,
// or to the database when none is active. Inside a transaction Get locks the
// order row.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	repo := orderrepo.NewGormOrderRepository(uow.conn(), uow, uow.clock)
	if uow.tx != nil {
		return repo.ForUpdate()
	}
	return repo
}

// TrackAggregate registers an aggregate changed within this unit of work.
// Repositories call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id int, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// publishTracked sends the latest state of every tracked order once.
func (uow *GormUnitOfWork) publishTracked(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	if uow.publisher == nil || len(tracked) == 0 {
		return
	}

	latest := make(map[int]*order.TaxiOrder, len(tracked))
	ids := make([]int, 0, len(tracked))
	for _, t := range tracked {
		o, ok := t.Aggregate.(*order.TaxiOrder)
		if !ok {
			continue
		}
		if _, seen := latest[t.ID]; !seen {
			ids = append(ids, t.ID)
		}
		latest[t.ID] = o
	}

	orders := make([]*order.TaxiOrder, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, latest[id])
	}

	if err := uow.publisher.PublishOrderChanged(ctx, orders...); err != nil {
		uow.logger.WarnContext(ctx, "Failed to publish order changes", "orders", ids, "error", err)
	}
}
