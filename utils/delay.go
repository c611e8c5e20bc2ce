package utils

import (
	"context"
	"time"
)

// Pause sleeps for d, returning early if ctx is cancelled. Used for the
// fixed pacing break after every batch of processed listings.
func Pause(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
