package contracts

import (
	"context"
	"time"
)

// LockerService gates non-reentrant operations, notably payment submission,
// against double firing.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, lockValue string, err error)
	Unlock(ctx context.Context, key, lockValue string) error
}
