package locker

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// Locker serializes check-then-insert sequences on a shared key
// (cabin id for bookings, booking id for payments).
type Locker interface {
	Acquire(ctx context.Context, name string) (UnlockFunc, error)
}

type UnlockFunc func(ctx context.Context) error

type redsyncLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

func New(client *redis.Client) Locker {
	pool := goredis.NewPool(client)
	return &redsyncLocker{
		rs:     redsync.New(pool),
		expiry: 8 * time.Second,
	}
}

func (l *redsyncLocker) Acquire(ctx context.Context, name string) (UnlockFunc, error) {
	mutex := l.rs.NewMutex(name,
		redsync.WithExpiry(l.expiry),
		redsync.WithTries(16),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		_, err := mutex.UnlockContext(ctx)
		return err
	}, nil
}
