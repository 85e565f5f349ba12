package ports

import (
	"context"
	"errors"
)

// ErrOrderIsLocked is returned by OrderLocker.Lock when another operation holds the order.
var ErrOrderIsLocked = errors.New("order is locked by another operation")

// Unlock releases a lock obtained from OrderLocker.
type Unlock func(ctx context.Context) error

// OrderLocker provides per-order mutual exclusion, so that two transitions of
// the same order never run concurrently.
type OrderLocker interface {
	// Lock takes the order without waiting and fails with ErrOrderIsLocked
	// while it is held. The returned Unlock may be called more than once.
	Lock(ctx context.Context, orderID int) (Unlock, error)
}
