package interfaces

import "context"

// IRunLock guards against two workflow runs at the same time.
//
// TryAcquire never blocks; acquired is false when another run holds the lock.
type IRunLock interface {
	TryAcquire(ctx context.Context) (release func(), acquired bool, err error)
}
