package timeutil

import (
	"context"
	"time"
)

// Sleeper blocks for a duration. Components take a Sleeper instead of calling
// time.Sleep so tests can observe delays without waiting for them.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper sleeps on the wall clock and returns early with ctx.Err()
// when the context is cancelled.
type RealSleeper struct{}

func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
