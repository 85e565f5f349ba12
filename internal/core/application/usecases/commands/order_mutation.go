package commands

import (
	"context"

	"taxi/internal/core/domain/model/order"
	"taxi/internal/core/ports"
)

type mutateFunc func(ctx context.Context, uow UoW, o *order.TaxiOrder) error

// orderMutation runs a change of one order under its lock and inside a unit of work.
type orderMutation struct {
	uowFactory UoWFactory
	locker     ports.OrderLocker
}

func (m orderMutation) apply(ctx context.Context, orderID int, mutate mutateFunc) error {
	unlock, err := m.locker.Lock(ctx, orderID)
	if err != nil {
		return err
	}

	// The lock is released even when the caller's context is already canceled.
	defer func() {
		_ = unlock(context.WithoutCancel(ctx))
	}()

	uow := m.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = mutate(ctx, uow, o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
