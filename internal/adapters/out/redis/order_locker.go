package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"taxi/internal/core/ports"
	"taxi/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const orderLockKeyPrefix = "taxi:order-lock:"

// releaseScript deletes the lock only while it still holds our token, so an
// expired lock taken over by someone else is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// OrderLocker takes per-order locks with SET NX PX. A lock expires after ttl
// even if its owner never releases it.
type OrderLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewOrderLocker(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) (*OrderLocker, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not positive", ttl))
	}

	return &OrderLocker{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "order_locker"),
	}, nil
}

// Lock returns ports.ErrOrderIsLocked when the order is already held.
// The returned Unlock is safe to call more than once.
func (l *OrderLocker) Lock(ctx context.Context, orderID int) (ports.Unlock, error) {
	key := orderLockKey(orderID)
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock for order %d: %w", orderID, err)
	}
	if !acquired {
		return nil, ports.ErrOrderIsLocked
	}

	var (
		once      sync.Once
		unlockErr error
	)
	return func(ctx context.Context) error {
		once.Do(func() {
			released, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
			if err != nil {
				unlockErr = fmt.Errorf("release lock for order %d: %w", orderID, err)
				return
			}
			if released == 0 {
				l.logger.WarnContext(ctx, "Order lock expired before release", "orderId", orderID)
			}
		})
		return unlockErr
	}, nil
}

func orderLockKey(orderID int) string {
	return orderLockKeyPrefix + strconv.Itoa(orderID)
}
