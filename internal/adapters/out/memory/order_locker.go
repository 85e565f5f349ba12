package memory

import (
	"context"
	"sync"

	"taxi/internal/core/ports"
)

// OrderLocker is an in-process ports.OrderLocker. Lock does not wait: it fails
// with ports.ErrOrderIsLocked while another caller holds the same order.
type OrderLocker struct {
	mu     sync.Mutex
	locked map[int]struct{}
}

func NewOrderLocker() *OrderLocker {
	return &OrderLocker{
		locked: make(map[int]struct{}),
	}
}

func (l *OrderLocker) Lock(_ context.Context, orderID int) (ports.Unlock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, held := l.locked[orderID]; held {
		return nil, ports.ErrOrderIsLocked
	}
	l.locked[orderID] = struct{}{}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			l.mu.Lock()
			delete(l.locked, orderID)
			l.mu.Unlock()
		})
		return nil
	}, nil
}
