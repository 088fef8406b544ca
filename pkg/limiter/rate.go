package limiter

import (
	"context"
	"time"

	"github.com/rohmanhakim/park-finder/pkg/timeutil"
)

// Throttle
// Gate that every outbound page request passes through before touching the network.
// Responsibilities:
// - Enforce the fixed courtesy delay expected by the scraped origin
// - Abort the wait when the caller's context is cancelled
type Throttle interface {
	Wait(ctx context.Context) error
}

// FixedDelay waits the same delay before every request. It keeps no history:
// the delay is paid in full on each call, not measured from the previous fetch.
type FixedDelay struct {
	delay   time.Duration
	sleeper timeutil.Sleeper
}

func NewFixedDelay(delay time.Duration) *FixedDelay {
	if delay < 0 {
		delay = 0
	}
	return &FixedDelay{
		delay:   delay,
		sleeper: timeutil.RealSleeper{},
	}
}

// SetSleeper allows injecting a custom sleeper for testing
func (f *FixedDelay) SetSleeper(sleeper timeutil.Sleeper) {
	f.sleeper = sleeper
}

func (f *FixedDelay) Delay() time.Duration {
	return f.delay
}

func (f *FixedDelay) Wait(ctx context.Context) error {
	return f.sleeper.Sleep(ctx, f.delay)
}

// NoDelay is a Throttle that never waits.
type NoDelay struct{}

func (NoDelay) Wait(ctx context.Context) error {
	return ctx.Err()
}
