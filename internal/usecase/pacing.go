package usecase

import (
	"context"
	"math/rand"
	"time"
)

// PacingPolicy returns how long to wait before the next outbound action.
type PacingPolicy func() time.Duration

// UniformPacing draws a delay uniformly from [min, max].
func UniformPacing(min, max time.Duration) PacingPolicy {
	if max < min {
		min, max = max, min
	}
	return func() time.Duration {
		if max == min {
			return min
		}
		return min + time.Duration(rand.Int63n(int64(max-min)+1))
	}
}

func NoPacing() PacingPolicy {
	return func() time.Duration { return 0 }
}

// pause sleeps for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
